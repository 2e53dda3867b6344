package core

import "time"

// Stats aggregates the work performed by one solve.
//
//   - NodesExplored: recursive search entries.
//   - Backtracks: exhausted variables (all candidate values failed).
//   - ConstraintChecks: satisfaction tests plus revise calls.
//   - DomainReductions: successful value removals that the search kept
//     (heuristic simulations that are rolled back do not count).
//   - TotalTime: wall clock for the whole solve, including preprocessing.
type Stats struct {
	NodesExplored    uint64
	Backtracks       uint64
	ConstraintChecks uint64
	DomainReductions uint64
	TotalTime        time.Duration
}

// Reset zeroes every counter.
func (s *Stats) Reset() { *s = Stats{} }

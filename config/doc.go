// Package config loads solver options from YAML documents, so that solver
// tuning can live beside deployment configuration instead of in code.
//
// What
//
//	A small schema mapping one-to-one onto solver.Option values:
//
//	    timeout_ms: 2000            # 0 disables the budget
//	    propagation: true           # omit to keep the solver default
//	    full_propagation: false
//	    variable_ordering: mrv      # static | mrv | degree | dynamic-mrv
//	    value_ordering: natural     # natural | least-constraining | random
//	    seed: 42
//
//	Load reads a file, Parse decodes bytes, and Config.Options converts the
//	decoded document into []solver.Option ready for solver.New. Unknown keys
//	and unknown ordering names are errors, not silent defaults.
//
// Why
//
//	The solver itself carries no file or environment access; configuration
//	is an explicit collaborator injected by the caller. This package is that
//	collaborator for YAML-shaped deployments.
//
// Errors
//
//   - ErrInvalidConfig wraps decode failures, unknown keys, and negative
//     timeouts.
//   - ErrUnknownOrdering reports an unrecognized ordering name together
//     with the offending spelling.
package config

package core

// Domain is an insertion-ordered finite set of Values.
//
// The backing slice is fixed at construction; pruning marks entries dead
// rather than moving survivors. This gives O(1) Remove and Restore, keeps
// iteration order identical to insertion order no matter how many
// remove/restore cycles the search performs, and lets the original domain
// remain queryable after arbitrary pruning.
//
// A Domain is not safe for concurrent use; it belongs to exactly one
// Variable inside exactly one solver.
type Domain struct {
	values []Value       // insertion order, deduplicated, never mutated
	alive  []bool        // alive[i] reports whether values[i] is still present
	index  map[Value]int // value → position in values
	size   int           // number of live entries
}

// Snapshot is an opaque restore point for a Domain; see Domain.Snapshot.
type Snapshot struct {
	alive []bool
	size  int
}

// NewDomain builds a Domain from vs, preserving first-occurrence order and
// silently dropping duplicates.
func NewDomain(vs ...Value) *Domain {
	d := &Domain{
		values: make([]Value, 0, len(vs)),
		alive:  make([]bool, 0, len(vs)),
		index:  make(map[Value]int, len(vs)),
	}
	for _, v := range vs {
		if _, dup := d.index[v]; dup {
			continue
		}
		d.index[v] = len(d.values)
		d.values = append(d.values, v)
		d.alive = append(d.alive, true)
	}
	d.size = len(d.values)
	return d
}

// Size returns the number of values currently in the domain.
func (d *Domain) Size() int { return d.size }

// IsEmpty reports whether no values remain. An empty domain means the
// current subtree is infeasible.
func (d *Domain) IsEmpty() bool { return d.size == 0 }

// Contains reports whether v is currently in the domain.
func (d *Domain) Contains(v Value) bool {
	i, ok := d.index[v]
	return ok && d.alive[i]
}

// ContainsOriginal reports whether v belonged to the domain at
// construction time, regardless of subsequent pruning.
func (d *Domain) ContainsOriginal(v Value) bool {
	_, ok := d.index[v]
	return ok
}

// Remove deletes v from the domain. It returns whether the domain changed;
// removing an absent value is a no-op returning false.
func (d *Domain) Remove(v Value) bool {
	i, ok := d.index[v]
	if !ok || !d.alive[i] {
		return false
	}
	d.alive[i] = false
	d.size--
	return true
}

// Restore re-inserts a previously removed value at its original position.
// It returns false if v never belonged to the domain or is already present.
func (d *Domain) Restore(v Value) bool {
	i, ok := d.index[v]
	if !ok || d.alive[i] {
		return false
	}
	d.alive[i] = true
	d.size++
	return true
}

// Intersect removes every value not present in other, returning the number
// of values removed.
func (d *Domain) Intersect(other *Domain) int {
	removed := 0
	for i, v := range d.values {
		if d.alive[i] && !other.Contains(v) {
			d.alive[i] = false
			d.size--
			removed++
		}
	}
	return removed
}

// First returns the earliest-inserted remaining value. The second result
// is false when the domain is empty.
func (d *Domain) First() (Value, bool) {
	for i, v := range d.values {
		if d.alive[i] {
			return v, true
		}
	}
	return Value{}, false
}

// Values returns the remaining values in insertion order as a fresh slice.
func (d *Domain) Values() []Value {
	out := make([]Value, 0, d.size)
	for i, v := range d.values {
		if d.alive[i] {
			out = append(out, v)
		}
	}
	return out
}

// Each calls f for every remaining value in insertion order, stopping early
// if f returns false. No allocation is performed.
func (d *Domain) Each(f func(Value) bool) {
	for i, v := range d.values {
		if d.alive[i] && !f(v) {
			return
		}
	}
}

// Snapshot captures the current membership for a later RestoreSnapshot.
// Prefer the Trail for search-frame undo; Snapshot exists for callers that
// need whole-domain checkpoints (tests, validation tooling).
func (d *Domain) Snapshot() Snapshot {
	s := Snapshot{alive: make([]bool, len(d.alive)), size: d.size}
	copy(s.alive, d.alive)
	return s
}

// RestoreSnapshot returns the domain to the membership captured by s.
// Panics if s was taken from a different domain (length mismatch).
func (d *Domain) RestoreSnapshot(s Snapshot) {
	if len(s.alive) != len(d.alive) {
		panic("core: snapshot from a different domain")
	}
	copy(d.alive, s.alive)
	d.size = s.size
}

// Clone returns an independent copy with identical membership and order.
func (d *Domain) Clone() *Domain {
	c := &Domain{
		values: d.values, // backing values are immutable and shareable
		alive:  make([]bool, len(d.alive)),
		index:  d.index,
		size:   d.size,
	}
	copy(c.alive, d.alive)
	return c
}

package core

import "math"

// Identity hands out agent ids: non-negative, strictly increasing, never
// reused. It is an explicit allocator object rather than package-level state
// so models and tests control id sequences deterministically. Like the rest
// of the core it carries no internal locking; callers serialize access (see
// the package documentation).
type Identity struct {
	next int64
}

// NewIdentity returns an allocator whose first id is 0.
func NewIdentity() *Identity {
	return &Identity{}
}

// NewIdentityAt returns an allocator whose first id is next. Negative starts
// are clamped to 0. Useful for probing exhaustion in tests and for
// partitioning id ranges between independently constructed populations.
func NewIdentityAt(next int64) *Identity {
	if next < 0 {
		next = 0
	}
	return &Identity{next: next}
}

// Next allocates the next id. Once the counter reaches the maximum
// representable integer the allocator is exhausted and every subsequent call
// fails with ErrIdentitySpaceExhausted; this is a hard ceiling, not a
// retryable condition.
func (seq *Identity) Next() (int64, error) {
	if seq.next == math.MaxInt64 {
		return 0, ErrIdentitySpaceExhausted
	}
	id := seq.next
	seq.next++
	return id, nil
}

package core

// Rand is the uniform integer source consumed by topologies and behaviors.
// Intn must return a value in [0, n) for n > 0. The library treats the source
// as opaque: whether it is seeded, and with what, is the caller's decision.
// *math/rand.Rand satisfies the interface.
type Rand interface {
	Intn(n int) int
}

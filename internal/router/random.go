package router

// RandomSource is the per-worker PRNG capability consumed by the adaptive
// policy. Implementations must be safe to call only from the single
// worker goroutine they are bound to; no locking is required or permitted
// (spec.md 5).
type RandomSource interface {
	// ZeroToOneExclusive draws a value in the half-open interval [0, 1).
	ZeroToOneExclusive() float64
}

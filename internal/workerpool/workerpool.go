// Package workerpool implements the per-worker PRNG pool the router core
// draws on for its adaptive roulette policy (spec.md 5, 9 "per-worker PRNG
// as process-wide state").
//
// Each worker owns its own math/rand source and is touched by exactly one
// goroutine for its lifetime; no locking is required or permitted. A
// session is pinned to one worker for its whole lifetime via a stable hash
// of its session ID, the same single-threaded-per-connection model the
// teacher's handleClient/main accept loop uses (one goroutine owns a
// connection end to end).
package workerpool

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	mathrand "math/rand"
)

// Worker is a single worker's PRNG, bound to exactly one goroutine.
type Worker struct {
	id  int
	rnd *mathrand.Rand
}

// ID returns the worker's index within its pool.
func (w *Worker) ID() int { return w.id }

// ZeroToOneExclusive draws a value in the half-open interval [0, 1),
// implementing router.RandomSource.
func (w *Worker) ZeroToOneExclusive() float64 {
	return w.rnd.Float64()
}

// Pool is a fixed pool of workers, each with an independently seeded PRNG.
type Pool struct {
	workers []*Worker
}

// New builds a pool of n workers, seeding each from an independent
// crypto/rand draw so that no two workers ever share PRNG state.
func New(n int) (*Pool, error) {
	if n <= 0 {
		n = 1
	}
	workers := make([]*Worker, n)
	for i := 0; i < n; i++ {
		seed, err := independentSeed()
		if err != nil {
			return nil, err
		}
		workers[i] = &Worker{id: i, rnd: mathrand.New(mathrand.NewSource(seed))}
	}
	return &Pool{workers: workers}, nil
}

// independentSeed draws a fresh int64 seed from crypto/rand, giving each
// worker an entropy source independent of the others (spec.md 5).
func independentSeed() (int64, error) {
	max := big.NewInt(1<<63 - 1)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return 0, err
	}
	return n.Int64(), nil
}

// WorkerFor returns the worker a session with the given ID is pinned to for
// its lifetime. The same sessionID always maps to the same worker within
// one pool.
func (p *Pool) WorkerFor(sessionID uint64) *Worker {
	return p.workers[sessionID%uint64(len(p.workers))]
}

// Size returns the number of workers in the pool.
func (p *Pool) Size() int { return len(p.workers) }

// sessionIDFromBytes is a small helper for callers that identify sessions
// by opaque byte tokens (e.g. a connection's remote address) rather than by
// an already-numeric ID.
func sessionIDFromBytes(b []byte) uint64 {
	var buf [8]byte
	copy(buf[:], b)
	return binary.LittleEndian.Uint64(buf[:])
}

// SessionIDFromBytes exposes sessionIDFromBytes for callers outside the
// package.
func SessionIDFromBytes(b []byte) uint64 { return sessionIDFromBytes(b) }

// Package session provides a minimal router.Session implementation binding
// a client session to its pinned worker for the session's lifetime
// (spec.md 5).
package session

import (
	"github.com/fighterleslie/dbrouter/internal/router"
	"github.com/fighterleslie/dbrouter/internal/workerpool"
)

// Session is a client session pinned to one worker.
type Session struct {
	ID     uint64
	worker *workerpool.Worker
}

// New pins a new session with the given ID to a worker from pool.
func New(id uint64, pool *workerpool.Pool) *Session {
	return &Session{ID: id, worker: pool.WorkerFor(id)}
}

// RandomSource implements router.Session.
func (s *Session) RandomSource() router.RandomSource { return s.worker }

// WorkerID reports which worker this session is pinned to, for diagnostics.
func (s *Session) WorkerID() int { return s.worker.ID() }

// CommandList is a plain SessionCommandList of a fixed size, standing in
// for the externally-owned SessionCommandList spec.md assumes exists
// (spec.md 1, out of scope: "session-command replay semantics").
type CommandList int

// Size implements router.SessionCommandList.
func (c CommandList) Size() int { return int(c) }

// Package backend provides a concrete, TCP-dialing implementation of
// router.Backend. spec.md treats Backend as an external collaborator
// supplied by the monitor/configuration layer; this package is that
// collaborator, adapted from the teacher's handleClient connection-proxying
// logic (net.Dial, defer Close, io.Copy) generalized from "proxy one
// connection now" to "open and hold a session connection, replaying queued
// session commands".
package backend

import (
	"bufio"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fighterleslie/dbrouter/internal/router"
)

// Role is the replication role a backend is currently monitored as.
type Role int

const (
	RoleSlave Role = iota
	RoleMaster
	RoleRelay
)

// Server is the monitor-maintained state for one backend server: address,
// weight, replication role, drain flag, and live statistics. Address, Port
// and Weight are plain configuration fields; the statistics fields are
// updated via atomics so the router core can read them without locking
// (spec.md 5).
type Server struct {
	Address string
	Port    int
	Weight  float64

	mu      sync.RWMutex
	role    Role
	drained bool

	nCurrent            atomic.Int64
	nCurrentOps         atomic.Int64
	rlag                atomic.Int64
	responseTimeAverage atomic.Uint64 // math.Float64bits
}

// SetRole updates the replication role reported by the monitor.
func (s *Server) SetRole(r Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.role = r
}

func (s *Server) getRole() Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

// SetDrained marks the server as administratively not accepting new
// connections (CanConnect will report false).
func (s *Server) SetDrained(drained bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drained = drained
}

func (s *Server) isDrained() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drained
}

// Backend wraps a Server with the per-session connection state the router
// core mutates: in_use, router-local connection count, queued session
// commands.
type Backend struct {
	name   string
	server *Server
	conn   net.Conn

	mu          sync.Mutex
	inUse       bool
	connections int
	pendingCmds int
}

// New returns a Backend for server, named name for diagnostics.
func New(name string, server *Server) *Backend {
	return &Backend{name: name, server: server}
}

func (b *Backend) IsMaster() bool { return b.server.getRole() == RoleMaster }
func (b *Backend) IsSlave() bool  { return b.server.getRole() == RoleSlave }
func (b *Backend) IsRelay() bool  { return b.server.getRole() == RoleRelay }
func (b *Backend) CanConnect() bool {
	return !b.server.isDrained()
}

func (b *Backend) InUse() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.inUse
}

func (b *Backend) HasSessionCommands() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pendingCmds > 0
}

func (b *Backend) Name() string    { return b.name }
func (b *Backend) Address() string { return b.server.Address }

// Ref returns the scoring view the router core reads once per comparison.
func (b *Backend) Ref() *router.ServerRef {
	b.mu.Lock()
	connections := b.connections
	b.mu.Unlock()

	return &router.ServerRef{
		Connections:  connections,
		ServerWeight: b.server.Weight,
		Stats: router.ServerStats{
			NCurrent:            int(b.server.nCurrent.Load()),
			NCurrentOps:         int(b.server.nCurrentOps.Load()),
			Rlag:                int(b.server.rlag.Load()),
			ResponseTimeAverage: loadFloat64(&b.server.responseTimeAverage),
			Address:             b.server.Address,
			Port:                b.server.Port,
		},
	}
}

// Connect dials the backend (if not already connected), replays cmds if
// supplied, and marks the backend in_use on success. Adapted from the
// teacher's handleClient: net.Dial, defer-style cleanup on failure.
func (b *Backend) Connect(session router.Session, cmds router.SessionCommandList) bool {
	b.mu.Lock()
	if b.inUse && b.conn != nil {
		b.mu.Unlock()
		return true
	}
	b.mu.Unlock()

	addr := fmt.Sprintf("%s:%d", b.server.Address, b.server.Port)
	conn, err := net.DialTimeout("tcp", addr, 2*time.Second)
	if err != nil {
		return false
	}

	pending := 0
	if cmds != nil {
		pending = cmds.Size()
		if !replaySessionCommands(conn, pending) {
			conn.Close()
			return false
		}
	}

	b.mu.Lock()
	b.conn = conn
	b.inUse = true
	b.connections++
	b.pendingCmds = pending
	b.mu.Unlock()
	return true
}

// Close tears down the backend's session connection, returning it to idle.
// Teardown is driven by session close, external to the router core
// (spec.md "state machine").
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.conn == nil {
		return nil
	}
	err := b.conn.Close()
	b.conn = nil
	b.inUse = false
	b.connections--
	b.pendingCmds = 0
	return err
}

// replaySessionCommands writes one "REPLAY" line per pending command and
// flushes; it does not read any reply from the server. The actual SQL text
// lives outside this core's scope (spec.md 1 "out of scope: session-command
// replay semantics").
func replaySessionCommands(conn net.Conn, n int) bool {
	if n == 0 {
		return true
	}
	w := bufio.NewWriter(conn)
	for i := 0; i < n; i++ {
		if _, err := w.WriteString("REPLAY\n"); err != nil {
			return false
		}
	}
	return w.Flush() == nil
}

func loadFloat64(addr *atomic.Uint64) float64 {
	bits := addr.Load()
	return float64FromBits(bits)
}

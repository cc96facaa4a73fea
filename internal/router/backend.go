package router

// Backend is one configured database server as seen by the selection core.
// It is shared by reference between a session and the router's backend
// list: state mutations caused by Connect are observed by every holder.
type Backend interface {
	// IsMaster reports whether the monitor currently considers this backend
	// a replication master.
	IsMaster() bool
	// IsSlave reports whether the monitor currently considers this backend
	// a replication slave.
	IsSlave() bool
	// IsRelay reports whether this backend is a relay (treated as a slave
	// for read routing).
	IsRelay() bool
	// InUse reports whether a connection to this backend is currently open
	// for the session.
	InUse() bool
	// HasSessionCommands reports whether this backend still has queued
	// session commands to replay.
	HasSessionCommands() bool
	// CanConnect reports whether the backend currently accepts new
	// connections (false when administratively drained).
	CanConnect() bool
	// Ref returns the scoring view of the underlying server.
	Ref() *ServerRef
	// Connect attempts to open (or reuse) a connection for the session,
	// optionally replaying cmds first. It returns true on success.
	Connect(session Session, cmds SessionCommandList) bool
	// Name returns a short display name for diagnostics.
	Name() string
	// Address returns the backend's network address for diagnostics.
	Address() string
}

// Session is the opaque per-connection handle the core threads through
// bring-up. It exists so the core never needs to know anything about the
// session beyond which worker (and therefore which PRNG) it is bound to.
type Session interface {
	// RandomSource returns the per-worker PRNG bound to this session for
	// the lifetime of the session.
	RandomSource() RandomSource
}

// SessionCommandList is the (externally owned) queue of statements that
// must be replayed on every backend attached to a session.
type SessionCommandList interface {
	// Size reports how many commands remain to replay.
	Size() int
}

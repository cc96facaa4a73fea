// Package router implements the backend selection core: scoring, adaptive
// roulette, priority bucketing, and session bring-up for a read/write-split
// database proxy.
package router

// Policy selects which scoring algorithm chooses among eligible backends.
type Policy int

const (
	// LeastRouterConnections scores by router-local live connections.
	LeastRouterConnections Policy = iota
	// LeastGlobalConnections scores by process-wide current connections.
	LeastGlobalConnections
	// LeastBehindMaster scores by replication lag in seconds.
	LeastBehindMaster
	// LeastCurrentOperations scores by in-flight operations.
	LeastCurrentOperations
	// AdaptiveRouting draws a backend via response-time-weighted roulette.
	AdaptiveRouting
)

// String returns the diagnostic name of the policy.
func (p Policy) String() string {
	switch p {
	case LeastRouterConnections:
		return "LEAST_ROUTER_CONNECTIONS"
	case LeastGlobalConnections:
		return "LEAST_GLOBAL_CONNECTIONS"
	case LeastBehindMaster:
		return "LEAST_BEHIND_MASTER"
	case LeastCurrentOperations:
		return "LEAST_CURRENT_OPERATIONS"
	case AdaptiveRouting:
		return "ADAPTIVE_ROUTING"
	default:
		return "UNKNOWN_POLICY"
	}
}

// MasterFailureMode governs what happens to bring-up when no usable master
// is found.
type MasterFailureMode int

const (
	// FailInstantly aborts bring-up entirely when the master is missing or
	// drained.
	FailInstantly MasterFailureMode = iota
	// FailOnWrite lets bring-up proceed without a master; writes fail later.
	FailOnWrite
	// ErrorOnWrite lets bring-up proceed without a master; writes error later.
	ErrorOnWrite
)

// ConnectionType selects whether bring-up should also pick a master this
// round, or only top up slaves.
type ConnectionType int

const (
	// ConnectAll picks a master (if required) and tops up slaves.
	ConnectAll ConnectionType = iota
	// ConnectSlave tops up slaves only.
	ConnectSlave
)

// ServerStats holds the read-only, monitor-supplied statistics for one
// backend server. Fields are read without locking and may be stale; callers
// should read each field into a local once per scoring pass.
type ServerStats struct {
	// NCurrent is the process-wide current connection count.
	NCurrent int
	// NCurrentOps is the number of in-flight operations.
	NCurrentOps int
	// Rlag is replication lag in seconds; may be negative or a
	// monitor-specific sentinel for "unknown" and is used as-is (see
	// DESIGN.md "Open Questions").
	Rlag int
	// ResponseTimeAverage is the average response time in seconds, >= 0.
	ResponseTimeAverage float64
	// Address and Port identify the underlying server.
	Address string
	Port    int
}

// StatusString returns the server's address as a short diagnostic label.
func (s ServerStats) StatusString() string {
	return s.Address
}

// ServerRef is the view of a backend's server that the core scores against.
type ServerRef struct {
	// Connections is the router-local live connection count.
	Connections int
	// ServerWeight is configuration-derived; 0 means "exclude this server".
	ServerWeight float64
	// Stats is the monitor-maintained statistics block.
	Stats ServerStats
}

// Config carries the recognized configuration options that influence
// backend selection for one session.
type Config struct {
	SlaveSelectionCriteria Policy
	MaxSlaveConnections    int
	MasterAcceptsReads     bool
	MasterFailureMode      MasterFailureMode
}

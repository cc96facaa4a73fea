package backend

import "math"

func float64FromBits(bits uint64) float64 { return math.Float64frombits(bits) }

// SetNCurrent updates the process-wide current connection count, as the
// monitor subsystem would.
func (s *Server) SetNCurrent(n int) { s.nCurrent.Store(int64(n)) }

// SetNCurrentOps updates the in-flight operation count.
func (s *Server) SetNCurrentOps(n int) { s.nCurrentOps.Store(int64(n)) }

// SetRlag updates replication lag, in seconds. May be negative or a
// monitor-specific sentinel; the router core uses it as-is (DESIGN.md
// "Open Questions").
func (s *Server) SetRlag(seconds int) { s.rlag.Store(int64(seconds)) }

// SetResponseTimeAverage updates the average response time, in seconds.
func (s *Server) SetResponseTimeAverage(seconds float64) {
	s.responseTimeAverage.Store(math.Float64bits(seconds))
}

package router

import "fmt"

// getRootMaster returns the first backend whose IsMaster predicate holds,
// in list order, or nil if none is found. List order is the authoritative,
// stable-within-a-session order spec.md 4.D step 1 requires.
func getRootMaster(backends []Backend) Backend {
	for _, b := range backends {
		if b.IsMaster() {
			return b
		}
	}
	return nil
}

// validForSlave reports whether b is eligible to serve as a slave
// connection given the (possibly absent) master m.
func validForSlave(b, master Backend) bool {
	if !(b.IsSlave() || b.IsRelay()) {
		return false
	}
	return master == nil || b != master
}

// getSlaveCounts reports how many backends are eligible slaves for master,
// and how many of those are already connected.
func getSlaveCounts(backends []Backend, master Backend) (found, connected int) {
	for _, b := range backends {
		if b.CanConnect() && validForSlave(b, master) {
			found++
			if b.InUse() {
				connected++
			}
		}
	}
	return found, connected
}

// diagnosticLine renders the metric relevant to policy for one backend, for
// optional info-level observability (spec.md 4.D step 3).
func diagnosticLine(b Backend, policy Policy) string {
	ref := b.Ref()
	switch policy {
	case LeastRouterConnections:
		return fmt.Sprintf("%s: connections=%d weight=%.2f", b.Name(), ref.Connections, ref.ServerWeight)
	case LeastGlobalConnections:
		return fmt.Sprintf("%s: n_current=%d weight=%.2f", b.Name(), ref.Stats.NCurrent, ref.ServerWeight)
	case LeastBehindMaster:
		return fmt.Sprintf("%s: rlag=%ds weight=%.2f", b.Name(), ref.Stats.Rlag, ref.ServerWeight)
	case LeastCurrentOperations:
		return fmt.Sprintf("%s: n_current_ops=%d weight=%.2f", b.Name(), ref.Stats.NCurrentOps, ref.ServerWeight)
	case AdaptiveRouting:
		return fmt.Sprintf("%s: response_time_average=%.6fs", b.Name(), ref.Stats.ResponseTimeAverage)
	default:
		return fmt.Sprintf("%s: <unknown policy %v>", b.Name(), policy)
	}
}

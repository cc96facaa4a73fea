package router

// Priority tags, sparse and intentionally non-contiguous (spec.md 4.C, 9):
// any three distinct totally-ordered values preserving
// idle-slave < idle-non-slave < busy-slave would do; these are the values
// the source uses.
const (
	priorityIdleReadCapable = 1
	priorityIdleMasterOnly  = 2
	priorityBusyReadCapable = 13
)

// classify assigns a backend's bring-up priority: lower is better.
func classify(b Backend, mastersAcceptReads bool) int {
	actsSlave := b.IsSlave() || (b.IsMaster() && mastersAcceptReads)
	isBusy := b.InUse() && b.HasSessionCommands()

	switch {
	case actsSlave && !isBusy:
		return priorityIdleReadCapable
	case !actsSlave:
		return priorityIdleMasterOnly
	default:
		return priorityBusyReadCapable
	}
}

// findBestBackend groups backends by bring-up priority, keeps only the
// lowest-numbered non-empty bucket, and delegates to selectFn to pick the
// winner within it. It returns nil if backends is empty.
func findBestBackend(backends []Backend, selectFn BackendSelectFunc, rnd RandomSource, mastersAcceptReads bool) Backend {
	if len(backends) == 0 {
		return nil
	}

	best := priorityBusyReadCapable + 1
	for _, b := range backends {
		if p := classify(b, mastersAcceptReads); p < best {
			best = p
		}
	}

	bucket := make([]Backend, 0, len(backends))
	for _, b := range backends {
		if classify(b, mastersAcceptReads) == best {
			bucket = append(bucket, b)
		}
	}

	idx := selectFn(bucket, rnd)
	if idx < 0 {
		return nil
	}
	return bucket[idx]
}

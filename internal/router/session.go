package router

import (
	"errors"

	"go.uber.org/zap"
)

// ErrNoMasterCandidate and ErrMasterDrained distinguish the two ways bring-up
// can fail the master-failure gate (spec.md 7).
var (
	ErrNoMasterCandidate = errors.New("router: no master candidate found")
	ErrMasterDrained     = errors.New("router: master exists but cannot connect (drained)")
)

// BringUpResult is the outcome of SelectConnectBackendServers.
type BringUpResult struct {
	// Master is the backend connected as master this round, or nil if none
	// was connected (ConnectionType was Slave, no master was found, or the
	// master's connect attempt failed).
	Master Backend
	// ExpectedResponses is incremented once per slave that successfully
	// connected while replaying a non-empty SessionCommandList.
	ExpectedResponses int
}

// SelectConnectBackendServers is the core's single public entry point: it
// locates the root master, applies the master-failure gate, optionally
// connects a master, computes the slave quota, and tops up slave
// connections until the quota is filled or candidates are exhausted
// (spec.md 4.D).
func SelectConnectBackendServers(
	session Session,
	backends []Backend,
	sescmd SessionCommandList,
	connType ConnectionType,
	cfg Config,
	log *zap.Logger,
) (BringUpResult, error) {
	var result BringUpResult

	// Step 1: locate root master.
	master := getRootMaster(backends)

	// Step 2: master-failure gate.
	if cfg.MasterFailureMode == FailInstantly {
		if master == nil {
			return result, ErrNoMasterCandidate
		}
		if !master.CanConnect() {
			return result, ErrMasterDrained
		}
	}

	// Step 3: diagnostic emission, one line per backend, policy-relevant.
	// zap filters by configured level internally, so no explicit check is
	// needed here beyond the nil guard.
	if log != nil {
		for _, b := range backends {
			log.Info(diagnosticLine(b, cfg.SlaveSelectionCriteria))
		}
	}

	// Step 4: master connection, only for ConnectAll.
	if connType == ConnectAll && master != nil {
		for _, b := range backends {
			if b == master {
				if b.CanConnect() && b.Connect(session, nil) {
					result.Master = b
				}
				break
			}
		}
	}

	// Step 5: slave quota bookkeeping.
	_, slavesConnected := getSlaveCounts(backends, master)

	// Step 6: candidate set for top-up.
	candidates := make([]Backend, 0, len(backends))
	for _, b := range backends {
		if !b.InUse() && b.CanConnect() && validForSlave(b, master) {
			candidates = append(candidates, b)
		}
	}

	selectFn := GetBackendSelectFunction(cfg.SlaveSelectionCriteria)
	rnd := session.RandomSource()

	// Step 7: top-up loop. max_slave_connections == 0 disables the quota
	// check entirely (unbounded).
	for (cfg.MaxSlaveConnections == 0 || slavesConnected < cfg.MaxSlaveConnections) && len(candidates) > 0 {
		chosen := findBestBackend(candidates, selectFn, rnd, cfg.MasterAcceptsReads)
		if chosen == nil {
			break
		}

		replaying := sescmd != nil && sescmd.Size() > 0
		if chosen.Connect(session, sescmd) {
			if replaying {
				result.ExpectedResponses++
			}
			slavesConnected++
		}

		candidates = removeBackend(candidates, chosen)
	}

	return result, nil
}

// removeBackend returns candidates with every occurrence of target removed,
// preserving order of the remainder, so the top-up loop never retries the
// same backend within one SelectConnectBackendServers call.
func removeBackend(candidates []Backend, target Backend) []Backend {
	out := candidates[:0:0]
	for _, c := range candidates {
		if c == target {
			continue
		}
		out = append(out, c)
	}
	return out
}

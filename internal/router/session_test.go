package router

import (
	"errors"
	"testing"
)

func defaultConfig() Config {
	return Config{
		SlaveSelectionCriteria: LeastRouterConnections,
		MaxSlaveConnections:    2,
		MasterAcceptsReads:     false,
		MasterFailureMode:      FailOnWrite,
	}
}

// TestSelectConnectBackendServersInstantFailDrainedMaster mirrors spec.md 8
// scenario 3: a drained master under FAIL_INSTANTLY aborts bring-up before
// any Connect call.
func TestSelectConnectBackendServersInstantFailDrainedMaster(t *testing.T) {
	master := newMaster("m", false) // can_connect=false
	slave := newSlave("s1", 1, 0, false)
	backends := []Backend{master, slave}

	cfg := defaultConfig()
	cfg.MasterFailureMode = FailInstantly

	session := &fakeSession{rnd: fixedRandom(0)}
	_, err := SelectConnectBackendServers(session, backends, nil, ConnectAll, cfg, nil)

	if !errors.Is(err, ErrMasterDrained) {
		t.Fatalf("got err=%v, want ErrMasterDrained", err)
	}
	if master.connectCall != 0 || slave.connectCall != 0 {
		t.Fatalf("no Connect call should have been made, master=%d slave=%d", master.connectCall, slave.connectCall)
	}
}

func TestSelectConnectBackendServersInstantFailNoMaster(t *testing.T) {
	slave := newSlave("s1", 1, 0, false)
	backends := []Backend{slave}

	cfg := defaultConfig()
	cfg.MasterFailureMode = FailInstantly

	session := &fakeSession{rnd: fixedRandom(0)}
	_, err := SelectConnectBackendServers(session, backends, nil, ConnectAll, cfg, nil)

	if !errors.Is(err, ErrNoMasterCandidate) {
		t.Fatalf("got err=%v, want ErrNoMasterCandidate", err)
	}
}

// TestSelectConnectBackendServersTopUpSkipsFailedConnect mirrors spec.md 8
// scenario 5: candidate C1 is chosen first; its Connect fails; the loop
// must move on to C2 without retrying C1.
func TestSelectConnectBackendServersTopUpSkipsFailedConnect(t *testing.T) {
	c1 := newSlave("c1", 1, 0, false)
	c1.connectOK = false // connect fails
	c2 := newSlave("c2", 1, 5, false)
	c2.connectOK = true

	backends := []Backend{c1, c2}
	cfg := defaultConfig()
	cfg.MaxSlaveConnections = 2

	session := &fakeSession{rnd: fixedRandom(0)}
	result, err := SelectConnectBackendServers(session, backends, nil, ConnectSlave, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c1.connectCall != 1 {
		t.Fatalf("c1 should have been attempted exactly once, got %d", c1.connectCall)
	}
	if c2.connectCall != 1 {
		t.Fatalf("c2 should have been attempted exactly once, got %d", c2.connectCall)
	}
	if !c2.inUse {
		t.Fatalf("c2 should be connected")
	}
	if result.ExpectedResponses != 0 {
		t.Fatalf("no sescmd list supplied, expected 0 expected responses, got %d", result.ExpectedResponses)
	}
}

// TestSelectConnectBackendServersQuota verifies the quota invariant: the
// top-up loop never connects more slaves than max_slave_connections.
func TestSelectConnectBackendServersQuota(t *testing.T) {
	backends := []Backend{
		newSlave("s1", 1, 0, false),
		newSlave("s2", 1, 0, false),
		newSlave("s3", 1, 0, false),
	}
	cfg := defaultConfig()
	cfg.MaxSlaveConnections = 2

	session := &fakeSession{rnd: fixedRandom(0)}
	_, err := SelectConnectBackendServers(session, backends, nil, ConnectSlave, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	connected := 0
	for _, b := range backends {
		if b.InUse() {
			connected++
		}
	}
	if connected != 2 {
		t.Fatalf("got %d connected slaves, want 2 (quota)", connected)
	}
}

// TestSelectConnectBackendServersUnboundedQuota checks max_slave_connections
// == 0 disables the quota check (unbounded).
func TestSelectConnectBackendServersUnboundedQuota(t *testing.T) {
	backends := []Backend{
		newSlave("s1", 1, 0, false),
		newSlave("s2", 1, 0, false),
		newSlave("s3", 1, 0, false),
	}
	cfg := defaultConfig()
	cfg.MaxSlaveConnections = 0

	session := &fakeSession{rnd: fixedRandom(0)}
	_, err := SelectConnectBackendServers(session, backends, nil, ConnectSlave, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, b := range backends {
		if !b.InUse() {
			t.Fatalf("expected all candidates connected when quota is unbounded")
		}
	}
}

// TestSelectConnectBackendServersExpectedResponses verifies the
// expected-responses accounting: incremented once per slave newly
// connected with a non-empty session command list.
func TestSelectConnectBackendServersExpectedResponses(t *testing.T) {
	backends := []Backend{
		newSlave("s1", 1, 0, false),
		newSlave("s2", 1, 0, false),
	}
	cfg := defaultConfig()
	cfg.MaxSlaveConnections = 2

	session := &fakeSession{rnd: fixedRandom(0)}
	result, err := SelectConnectBackendServers(session, backends, fakeSessionCommandList(3), ConnectSlave, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ExpectedResponses != 2 {
		t.Fatalf("got %d expected responses, want 2", result.ExpectedResponses)
	}
}

// TestSelectConnectBackendServersMasterIdentity verifies that the returned
// master, when non-nil, is identical by reference to the root master.
func TestSelectConnectBackendServersMasterIdentity(t *testing.T) {
	master := newMaster("m", true)
	backends := []Backend{master}
	cfg := defaultConfig()

	session := &fakeSession{rnd: fixedRandom(0)}
	result, err := SelectConnectBackendServers(session, backends, nil, ConnectAll, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Master != Backend(master) {
		t.Fatalf("expected returned master to be identical to root master")
	}
}

// TestSelectConnectBackendServersZeroWeightExcluded mirrors spec.md 8
// scenario 6: a zero-weight backend is never chosen while another eligible
// backend exists.
func TestSelectConnectBackendServersZeroWeightExcluded(t *testing.T) {
	excluded := newSlave("excluded", 0, 0, false)
	eligible := newSlave("eligible", 1, 0, false)
	backends := []Backend{excluded, eligible}

	cfg := defaultConfig()
	cfg.MaxSlaveConnections = 1

	session := &fakeSession{rnd: fixedRandom(0)}
	_, err := SelectConnectBackendServers(session, backends, nil, ConnectSlave, cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if excluded.InUse() {
		t.Fatalf("zero-weight backend should not have been connected")
	}
	if !eligible.InUse() {
		t.Fatalf("eligible backend should have been connected")
	}
}

package router

// fakeBackend is an in-memory Backend used across the core's test files. It
// mirrors how the teacher's tests construct servers directly as plain
// values (see load_balancer_test.go) rather than through a mock framework.
type fakeBackend struct {
	name        string
	address     string
	isMaster    bool
	isSlave     bool
	isRelay     bool
	inUse       bool
	hasSesCmd   bool
	canConnect  bool
	ref         ServerRef
	connectOK   bool
	connectCall int
}

func (b *fakeBackend) IsMaster() bool            { return b.isMaster }
func (b *fakeBackend) IsSlave() bool             { return b.isSlave }
func (b *fakeBackend) IsRelay() bool             { return b.isRelay }
func (b *fakeBackend) InUse() bool               { return b.inUse }
func (b *fakeBackend) HasSessionCommands() bool  { return b.hasSesCmd }
func (b *fakeBackend) CanConnect() bool          { return b.canConnect }
func (b *fakeBackend) Ref() *ServerRef           { return &b.ref }
func (b *fakeBackend) Name() string              { return b.name }
func (b *fakeBackend) Address() string           { return b.address }

func (b *fakeBackend) Connect(session Session, cmds SessionCommandList) bool {
	b.connectCall++
	if b.connectOK {
		b.inUse = true
	}
	return b.connectOK
}

func newSlave(name string, weight float64, connections int, inUse bool) *fakeBackend {
	return &fakeBackend{
		name:       name,
		address:    name,
		isSlave:    true,
		inUse:      inUse,
		canConnect: true,
		connectOK:  true,
		ref: ServerRef{
			Connections:  connections,
			ServerWeight: weight,
		},
	}
}

func newMaster(name string, canConnect bool) *fakeBackend {
	return &fakeBackend{
		name:       name,
		address:    name,
		isMaster:   true,
		canConnect: canConnect,
		connectOK:  canConnect,
		ref: ServerRef{
			ServerWeight: 1,
		},
	}
}

// fakeSessionCommandList reports a fixed size.
type fakeSessionCommandList int

func (f fakeSessionCommandList) Size() int { return int(f) }

// fixedRandom always draws the configured value; used to make adaptive
// roulette deterministic in tests that don't need statistical coverage.
type fixedRandom float64

func (f fixedRandom) ZeroToOneExclusive() float64 { return float64(f) }

// sequenceRandom draws a fixed sequence of values, cycling if exhausted.
type sequenceRandom struct {
	values []float64
	i      int
}

func (s *sequenceRandom) ZeroToOneExclusive() float64 {
	v := s.values[s.i%len(s.values)]
	s.i++
	return v
}

// fakeSession binds a fixed RandomSource for tests that don't exercise the
// worker pool.
type fakeSession struct {
	rnd RandomSource
}

func (s *fakeSession) RandomSource() RandomSource { return s.rnd }

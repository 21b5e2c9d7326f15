package frame

import (
	"fmt"
	"pagesim/file"

	"go.uber.org/zap"
)

/*
Step describes how a single reference was handled. Slot is the slot that hit, or the slot the faulting page
was loaded into. Evicted is set when the fault replaced a resident page, which is then held in Victim;
Victim is nil otherwise.
Examined is the number of slots the strategy inspected to place a fault, and Faults the running fault count
including this reference.
*/
type Step struct {
	Position int          `json:"position"`
	Page     file.PageId  `json:"page"`
	Fault    bool         `json:"fault"`
	Slot     int          `json:"slot"`
	Evicted  bool         `json:"evicted"`
	Victim   *file.PageId `json:"victim,omitempty"`
	Examined int          `json:"examined,omitempty"`
	Faults   int          `json:"faults"`
}

// Result is the outcome of a simulation run.
type Result struct {
	Policy     Policy `json:"policy"`
	Frames     int    `json:"frames"`
	References int    `json:"references"`
	Faults     int    `json:"faults"`
	Hits       int    `json:"hits"`
	Evictions  int    `json:"evictions"`
}

// FaultRate returns the fraction of references that faulted.
func (r Result) FaultRate() float64 {
	if r.References == 0 {
		return 0
	}
	return float64(r.Faults) / float64(r.References)
}

// Option configures a Manager.
type Option func(*Manager)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(m *Manager) { m.metrics = metrics }
}

// WithObserver registers a function that is called after every processed reference.
func WithObserver(observer func(Step)) Option {
	return func(m *Manager) { m.observer = observer }
}

/*
Manager drives simulation runs. It owns the configuration of a run (frame count and policy); every call to
Run or Simulate builds a fresh pool, index and strategy, so runs never share state and repeating a run on
the same sequence always yields the same result.
*/
type Manager struct {
	numFrames int
	policy    Policy
	logger    *zap.Logger
	metrics   *Metrics
	observer  func(Step)
}

// NewManager validates the run configuration. It fails with ErrInvalidFrameCount or ErrUnknownPolicy.
func NewManager(numFrames int, policy Policy, opts ...Option) (*Manager, error) {
	if numFrames <= 0 {
		return nil, fmt.Errorf("%w: %d (must be at least 1)", ErrInvalidFrameCount, numFrames)
	}
	if !policy.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPolicy, int(policy))
	}
	m := &Manager{
		numFrames: numFrames,
		policy:    policy,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Manager) Policy() Policy {
	return m.policy
}

func (m *Manager) Frames() int {
	return m.numFrames
}

// Run loads the reference sequence from source and simulates it. A source failure is reported as
// ErrSequenceUnavailable before any simulation state exists.
func (m *Manager) Run(source file.Source) (Result, error) {
	refs, err := source.References()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
	}
	return m.Simulate(refs), nil
}

// Simulate processes refs in order and returns the fault count of the configured policy.
func (m *Manager) Simulate(refs []file.PageId) Result {
	sim := m.newSimulation(refs)
	for pos := range refs {
		step := sim.step(pos)
		m.metrics.observe(m.policy, step)
		if m.observer != nil {
			m.observer(step)
		}
		if ce := m.logger.Check(zap.DebugLevel, "reference processed"); ce != nil {
			ce.Write(
				zap.Int("position", step.Position),
				zap.Int("page", int(step.Page)),
				zap.Bool("fault", step.Fault),
				zap.Int("slot", step.Slot),
				zap.Int("faults", step.Faults),
			)
		}
	}

	result := Result{
		Policy:     m.policy,
		Frames:     m.numFrames,
		References: len(refs),
		Faults:     sim.faults,
		Hits:       sim.hits,
		Evictions:  sim.evictions,
	}
	m.logger.Info("simulation finished",
		zap.Stringer("policy", m.policy),
		zap.Int("frames", m.numFrames),
		zap.Int("references", result.References),
		zap.Int("faults", result.Faults),
	)
	return result
}

// simulation is the mutable state of one run. It is owned by a single Simulate call.
type simulation struct {
	pool      *Pool
	strategy  ReplacementStrategy
	refs      []file.PageId
	faults    int
	hits      int
	evictions int
}

func (m *Manager) newSimulation(refs []file.PageId) *simulation {
	// Both were validated by NewManager.
	pool, _ := NewPool(m.numFrames)
	strategy, _ := NewStrategy(m.policy)
	strategy.initialize(pool, refs)
	return &simulation{
		pool:     pool,
		strategy: strategy,
		refs:     refs,
	}
}

func (s *simulation) step(pos int) Step {
	page := s.refs[pos]
	step := Step{Position: pos, Page: page}

	if slot, ok := s.pool.Locate(page); ok {
		s.strategy.accessed(slot, pos)
		s.hits++
		step.Slot = slot
		step.Faults = s.faults
		return step
	}

	slot, examined := s.strategy.chooseVictim(pos)
	victim, evicted := s.pool.Install(slot, page)
	s.strategy.loaded(slot, pos)
	s.faults++
	if evicted {
		s.evictions++
	}

	step.Fault = true
	step.Slot = slot
	step.Evicted = evicted
	if evicted {
		step.Victim = &victim
	}
	step.Examined = examined
	step.Faults = s.faults
	return step
}

// Compare loads the sequence from source once and simulates it under each of the given policies. With no
// policies it compares all of them. Results are returned in the order the policies were given.
func Compare(numFrames int, source file.Source, policies []Policy, opts ...Option) ([]Result, error) {
	if len(policies) == 0 {
		policies = Policies()
	}
	managers := make([]*Manager, len(policies))
	for i, policy := range policies {
		m, err := NewManager(numFrames, policy, opts...)
		if err != nil {
			return nil, err
		}
		managers[i] = m
	}

	refs, err := source.References()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSequenceUnavailable, err)
	}

	results := make([]Result, len(managers))
	for i, m := range managers {
		results[i] = m.Simulate(refs)
	}
	return results, nil
}

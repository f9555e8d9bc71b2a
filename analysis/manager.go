package analysis

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Sunflower-Dolls/Vapoursynth-llvmexpr/token"
)

// Pass is a pure function from the token stream and prior pass results
// to its own result, identified by a stable Name(). A pass declares its
// dependencies by calling GetResult for them at the start of Run; the
// manager resolves the dependency DAG lazily, the first time each pass
// is asked for.
type Pass interface {
	Name() string
	Run(ctx context.Context, m *Manager) (any, error)
}

// Manager owns pass instances for the lifetime of one analysis run over
// one token stream: it runs each pass at most once, memoizes results,
// and resolves a pass's declared dependencies before invoking it. The
// manager, the token stream, and the result store are not shared across
// threads during a run; different runs on different streams may proceed
// in parallel, each with its own Manager (see package batch).
type Manager struct {
	Tokens token.Stream
	RunID  uuid.UUID

	ctx context.Context

	// active is incremented while a top-level Execute is driving the
	// dependency DAG; GetResult calls made while active == 0 are
	// rejected with PassNotRun, matching spec's "asking for a result
	// outside a run fails with PassNotRun".
	active int

	mu      sync.Mutex
	results map[string]any
	running map[string]bool
}

// NewManager creates a manager for a single analysis run over tokens.
// ctx governs cooperative cancellation between blocks/tokens inside
// passes; pass nil for context.Background.
func NewManager(ctx context.Context, tokens token.Stream) *Manager {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Manager{
		Tokens:  tokens,
		RunID:   uuid.New(),
		ctx:     ctx,
		results: make(map[string]any),
		running: make(map[string]bool),
	}
}

// Execute is the top-level entry point: it runs p (and, transitively,
// whatever it depends on) and returns its result. Call this once per
// pass you want published; re-running with the same pass is a no-op
// that returns the cached value.
func (m *Manager) Execute(p Pass) (any, error) {
	m.mu.Lock()
	m.active++
	m.mu.Unlock()
	defer func() {
		m.mu.Lock()
		m.active--
		m.mu.Unlock()
	}()
	return m.run(p)
}

func (m *Manager) run(p Pass) (any, error) {
	name := p.Name()

	m.mu.Lock()
	if r, ok := m.results[name]; ok {
		m.mu.Unlock()
		return r, nil
	}
	if m.running[name] {
		m.mu.Unlock()
		return nil, newDiagnostic(DependencyCycle, 0, "analysis pass %q requested its own result while already running", name)
	}
	m.running[name] = true
	m.mu.Unlock()

	res, err := p.Run(m.ctx, m)

	m.mu.Lock()
	delete(m.running, name)
	if err == nil {
		m.results[name] = res
	}
	m.mu.Unlock()

	return res, err
}

// GetResult returns p's result, running p (and its dependencies) if it
// has not already run during this manager's active top-level Execute.
// It is meant to be called from within another pass's Run method. Called
// with no Execute in progress, it fails with PassNotRun rather than
// silently starting a run on its own.
func (m *Manager) GetResult(p Pass) (any, error) {
	m.mu.Lock()
	if r, ok := m.results[p.Name()]; ok {
		m.mu.Unlock()
		return r, nil
	}
	active := m.active
	m.mu.Unlock()
	if active == 0 {
		return nil, newDiagnostic(PassNotRun, 0, "result for pass %q requested outside an active run", p.Name())
	}
	return m.run(p)
}

// Result returns p's cached result without triggering execution. It
// exists for error-formatting/introspection callers that want to see
// what had already been published when a run aborted (spec §4.1's
// failure model: "already-cached results of earlier passes remain
// observable for error formatting only").
func (m *Manager) Result(p Pass) (any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[p.Name()]
	return r, ok
}

// GetResult is a generic convenience wrapper around Manager.GetResult
// that type-asserts the raw result to R, matching the design note's
// "generic container parameterized by pass identity" option. Go has no
// generic methods, so this is a free function rather than Manager's own
// method.
func GetResult[R any](m *Manager, p Pass) (R, error) {
	var zero R
	raw, err := m.GetResult(p)
	if err != nil {
		return zero, err
	}
	r, ok := raw.(R)
	if !ok {
		return zero, newDiagnostic(PassNotRun, 0, "pass %q produced unexpected result type", p.Name())
	}
	return r, nil
}

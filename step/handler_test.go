package step_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

// instantClock fires every tick immediately.
type instantClock struct{}

func (instantClock) After(time.Duration) (<-chan time.Time, func() bool) {
	c := make(chan time.Time)
	close(c)
	return c, func() bool { return true }
}

// manualClock fires a tick only when the test sends one.
type manualClock struct{ ticks chan time.Time }

func newManualClock() *manualClock { return &manualClock{ticks: make(chan time.Time)} }

func (m *manualClock) After(time.Duration) (<-chan time.Time, func() bool) {
	return m.ticks, func() bool { return true }
}

func (m *manualClock) tick() { m.ticks <- time.Time{} }

// counter yields n times, then finishes with end (nil, a Notice or a fatal error).
type counter struct {
	n, i    int
	end     error
	stepped chan int
}

func (c *counter) Step(t step.Target) (bool, error) {
	if c.i >= c.n {
		return true, c.end
	}
	c.i++
	t.Render(core.SlotRef(c.i))
	if c.stepped != nil {
		c.stepped <- c.i
	}

	return false, nil
}

// fakeAlg hands out counters and counts cleanups.
type fakeAlg struct {
	mu       sync.Mutex
	n        int
	end      error
	refuse   error
	stepped  chan int
	begins   int
	cleanups int
}

func (a *fakeAlg) Begin() (step.Procedure, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.refuse != nil {
		return nil, a.refuse
	}
	a.begins++

	return &counter{n: a.n, end: a.end, stepped: a.stepped}, nil
}

func (a *fakeAlg) Cleanup() {
	a.mu.Lock()
	a.cleanups++
	a.mu.Unlock()
}

func (a *fakeAlg) cleaned() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cleanups
}

// recorder is a Target that counts calls.
type recorder struct {
	mu       sync.Mutex
	renders  []core.Ref
	repaints int
}

func (r *recorder) Render(ref core.Ref) {
	r.mu.Lock()
	r.renders = append(r.renders, ref)
	r.mu.Unlock()
}

func (r *recorder) Repaint() {
	r.mu.Lock()
	r.repaints++
	r.mu.Unlock()
}

func (r *recorder) repainted() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.repaints
}

func TestHandler_NextLifecycle(t *testing.T) {
	alg := &fakeAlg{n: 3}
	h := step.NewHandler(alg)
	rec := &recorder{}
	assert.Equal(t, step.NotBegun, h.State())

	for i := 1; i <= 3; i++ {
		require.NoError(t, h.Next(rec))
		assert.Equal(t, step.Paused, h.State())
		assert.Equal(t, i, h.Steps())
	}
	assert.Len(t, rec.renders, 3)

	// exhausted: completion stops and cleans up once
	require.NoError(t, h.Next(rec))
	assert.Equal(t, step.Stopped, h.State())
	assert.Equal(t, 1, alg.cleaned())
	assert.Equal(t, 1, rec.repainted())

	// idempotent stop
	h.ForceStop(rec)
	h.ForceStop(nil)
	assert.Equal(t, 1, alg.cleaned())
}

func TestHandler_PlayToCompletion(t *testing.T) {
	alg := &fakeAlg{n: 5}
	h := step.NewHandler(alg, step.WithClock(instantClock{}))

	require.NoError(t, h.Play(context.Background(), nil))
	assert.Equal(t, step.Stopped, h.State())
	assert.Equal(t, 5, h.Steps())
	assert.Equal(t, 1, alg.cleaned())

	// a new Play after Stopped starts a fresh procedure
	require.NoError(t, h.Play(context.Background(), nil))
	assert.Equal(t, 2, alg.begins)
}

func TestHandler_PreconditionNotice(t *testing.T) {
	notes := step.NewNotifier()
	var got []string
	notes.OnPost(func(msg string) { got = append(got, msg) })

	alg := &fakeAlg{refuse: step.Notice("cannot run Kruskal on directed edges")}
	h := step.NewHandler(alg, step.WithNotifier(notes), step.WithClock(instantClock{}))

	require.NoError(t, h.Play(context.Background(), nil))
	assert.Equal(t, step.NotBegun, h.State())
	assert.Equal(t, "cannot run Kruskal on directed edges", notes.Text())
	assert.Equal(t, []string{"cannot run Kruskal on directed edges"}, got)
	assert.Zero(t, alg.cleaned(), "a refused algorithm never started")

	n, err := h.RunToEnd(nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestHandler_RuntimeNotice(t *testing.T) {
	unreachable := step.Notice("node not reachable")
	alg := &fakeAlg{n: 2, end: unreachable}
	h := step.NewHandler(alg, step.WithClock(instantClock{}))

	require.NoError(t, h.Play(context.Background(), nil))
	assert.Equal(t, step.Stopped, h.State())
	assert.Equal(t, "node not reachable", h.Notifier().Text())
	assert.Equal(t, 1, alg.cleaned())
	assert.True(t, errors.Is(unreachable, step.Notice("node not reachable")))
}

func TestHandler_FatalError(t *testing.T) {
	boom := errors.New("priority queue empty")
	alg := &fakeAlg{n: 1, end: boom}
	h := step.NewHandler(alg, step.WithClock(instantClock{}))

	err := h.Play(context.Background(), nil)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, step.Stopped, h.State())
	assert.Equal(t, 1, alg.cleaned())
	assert.Empty(t, h.Notifier().Text())
}

func TestHandler_BeginError(t *testing.T) {
	boom := errors.New("bad wiring")
	h := step.NewHandler(&fakeAlg{refuse: boom})
	require.ErrorIs(t, h.Next(nil), boom)
	assert.Equal(t, step.NotBegun, h.State())

	require.ErrorIs(t, step.NewHandler(nil).Next(nil), step.ErrNilAlgorithm)
}

func TestHandler_PauseResume(t *testing.T) {
	clock := newManualClock()
	alg := &fakeAlg{n: 4, stepped: make(chan int, 8)}
	h := step.NewHandler(alg, step.WithClock(clock))

	done := make(chan error, 1)
	go func() { done <- h.Play(context.Background(), nil) }()

	clock.tick()
	<-alg.stepped
	clock.tick()
	<-alg.stepped

	h.Pause()
	require.NoError(t, <-done)
	assert.Equal(t, step.Paused, h.State())
	assert.Equal(t, 2, h.Steps())

	// resume at the same yield point
	go func() { done <- h.Play(context.Background(), nil) }()
	clock.tick()
	assert.Equal(t, 3, <-alg.stepped)
	clock.tick()
	assert.Equal(t, 4, <-alg.stepped)
	clock.tick() // completion
	require.NoError(t, <-done)
	assert.Equal(t, step.Stopped, h.State())
	assert.Equal(t, 1, alg.begins)
}

func TestHandler_PlayReentryAndForceStop(t *testing.T) {
	clock := newManualClock()
	alg := &fakeAlg{n: 10}
	states := make(chan step.RunState, 16)
	h := step.NewHandler(alg, step.WithClock(clock), step.WithOnState(func(s step.RunState) { states <- s }))
	rec := &recorder{}

	done := make(chan error, 1)
	go func() { done <- h.Play(context.Background(), rec) }()
	require.Equal(t, step.Running, <-states)

	// second Play must not spawn another loop
	require.ErrorIs(t, h.Play(context.Background(), rec), step.ErrAlreadyRunning)

	h.ForceStop(rec)
	require.NoError(t, <-done)
	assert.Equal(t, step.Stopped, <-states)
	assert.Equal(t, step.Stopped, h.State())
	assert.Equal(t, 1, alg.cleaned())
	assert.Equal(t, 1, rec.repainted())
	assert.Zero(t, h.Steps())
}

func TestHandler_ContextCancelPauses(t *testing.T) {
	clock := newManualClock()
	h := step.NewHandler(&fakeAlg{n: 3}, step.WithClock(clock))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := h.Play(ctx, nil)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, step.Paused, h.State())
}

func TestHandler_Delay(t *testing.T) {
	h := step.NewHandler(&fakeAlg{}, step.WithDelay(-time.Second))
	assert.Equal(t, step.DefaultDelay, h.Delay(), "non-positive option is ignored")

	require.ErrorIs(t, h.SetDelay(0), step.ErrBadDelay)
	require.ErrorIs(t, h.SetDelay(-5*time.Millisecond), step.ErrBadDelay)
	assert.Equal(t, step.DefaultDelay, h.Delay())

	require.NoError(t, h.SetDelay(20*time.Millisecond))
	assert.Equal(t, 20*time.Millisecond, h.Delay())
}

func TestHandler_Reset(t *testing.T) {
	alg := &fakeAlg{n: 3}
	h := step.NewHandler(alg)
	rec := &recorder{}
	require.NoError(t, h.Next(rec))

	h.Reset()
	assert.Equal(t, step.NotBegun, h.State())
	assert.Zero(t, h.Steps())
	assert.Equal(t, 1, alg.cleaned())
	assert.Equal(t, 1, rec.repainted())

	n, err := h.RunToEnd(rec)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 2, alg.begins)
}

func TestRunState_String(t *testing.T) {
	assert.Equal(t, "Running", step.Running.String())
	assert.Equal(t, "RunState(9)", step.RunState(9).String())
}

func TestHandler_OnStep(t *testing.T) {
	var seen []int
	var targets []step.Target
	rec := &recorder{}
	h := step.NewHandler(&fakeAlg{n: 3}, step.WithClock(instantClock{}),
		step.WithOnStep(func(tg step.Target, n int) {
			seen = append(seen, n)
			targets = append(targets, tg)
		}))

	require.NoError(t, h.Play(context.Background(), rec))
	assert.Equal(t, []int{1, 2, 3}, seen)
	for _, tg := range targets {
		assert.Same(t, rec, tg)
	}
}

func TestNotifier_ListenerMayRegisterAnother(t *testing.T) {
	notes := step.NewNotifier()
	var first, second []string
	notes.OnPost(func(msg string) {
		first = append(first, msg)
		if len(first) == 1 {
			notes.OnPost(func(msg string) { second = append(second, msg) })
		}
	})

	notes.Post("one")
	notes.Post("two")
	assert.Equal(t, []string{"one", "two"}, first)
	assert.Equal(t, []string{"two"}, second, "listeners added during a post see only later ones")
	assert.Equal(t, 2, notes.Posted())
	assert.Equal(t, "two", notes.Text())
}

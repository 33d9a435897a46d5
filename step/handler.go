package step

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Handler owns the lifecycle of one algorithm's Procedure.
type Handler struct {
	mu sync.Mutex

	alg   Algorithm
	proc  Procedure
	state RunState

	delay   time.Duration
	clock   Clock
	notes   *Notifier
	log     *log.Logger
	onState func(RunState)
	onStep  func(Target, int)

	target Target        // last target seen, repainted on Reset
	wake   chan struct{} // interrupts a waiting play loop
	loop   uint64        // generation of the active play loop
	runID  string        // identifies the current procedure in logs
	steps  int           // yield points emitted by the current procedure
}

// NewHandler wraps alg.
func NewHandler(alg Algorithm, opts ...Option) *Handler {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Handler{
		alg:     alg,
		state:   NotBegun,
		delay:   o.Delay,
		clock:   o.Clock,
		notes:   o.Notifier,
		log:     o.Logger,
		onState: o.OnState,
		onStep:  o.OnStep,
		wake:    make(chan struct{}, 1),
	}
}

// State returns the current run state.
func (h *Handler) State() RunState {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.state
}

// Steps returns how many yield points the current (or last) procedure emitted.
func (h *Handler) Steps() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.steps
}

// Delay returns the tick interval.
func (h *Handler) Delay() time.Duration {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.delay
}

// SetDelay changes the tick interval. Non-positive values are rejected and
// the previous delay is kept. A running loop picks the change up on its next tick.
func (h *Handler) SetDelay(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: %s", ErrBadDelay, d)
	}
	h.mu.Lock()
	h.delay = d
	h.mu.Unlock()

	return nil
}

// Notifier returns the notification slot the handler posts to.
func (h *Handler) Notifier() *Notifier { return h.notes }

// Reset discards any procedure, runs cleanup, and returns to NotBegun.
// Algorithms call it from their Init methods. A running loop exits at its next tick.
func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.proc = nil
	h.steps = 0
	if h.alg != nil {
		h.alg.Cleanup()
	}
	h.setState(NotBegun)
	if h.target != nil {
		h.target.Repaint()
	}
	h.signal()
	h.log.Debug("reset")
}

// Play starts or resumes the procedure and blocks until the loop ends:
// completion, ForceStop, Pause, Reset, a fatal error, or ctx cancellation
// (which pauses the handler and returns ctx.Err()).
func (h *Handler) Play(ctx context.Context, t Target) error {
	if t == nil {
		t = Discard
	}

	h.mu.Lock()
	if h.state == Running {
		h.mu.Unlock()
		return ErrAlreadyRunning
	}
	started, err := h.begin()
	if err != nil || !started {
		h.mu.Unlock()
		return err
	}
	h.loop++
	gen := h.loop
	h.target = t
	select {
	case <-h.wake:
	default:
	}
	h.setState(Running)
	h.log.Debug("play", "run", h.runID, "steps", h.steps, "delay", h.delay)
	h.mu.Unlock()

	for {
		h.mu.Lock()
		delay := h.delay
		h.mu.Unlock()

		tick, release := h.clock.After(delay)
		select {
		case <-ctx.Done():
			release()
			h.pauseLoop(gen)
			return ctx.Err()
		case <-h.wake:
			release()
		case <-tick:
		}

		h.mu.Lock()
		if h.state != Running || h.loop != gen {
			h.mu.Unlock()
			return nil
		}
		err = h.advance(t)
		running := h.state == Running
		h.mu.Unlock()

		if err != nil {
			return err
		}
		if !running {
			return nil
		}
	}
}

// Pause stops the play loop at the next tick boundary and keeps the
// procedure, so a later Play resumes at the same yield point.
func (h *Handler) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state != Running {
		return
	}
	h.setState(Paused)
	h.signal()
	h.log.Debug("pause", "run", h.runID, "steps", h.steps)
}

// Next advances the procedure by exactly one yield point, creating it if
// needed. A handler that is not Running becomes Paused while stepping.
func (h *Handler) Next(t Target) error {
	if t == nil {
		t = Discard
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	started, err := h.begin()
	if err != nil || !started {
		return err
	}
	h.target = t
	if h.state != Running {
		h.setState(Paused)
	}

	return h.advance(t)
}

// ForceStop aborts the procedure: state becomes Stopped and cleanup runs,
// as on natural completion. It is a no-op when nothing is in flight.
func (h *Handler) ForceStop(t Target) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.proc == nil {
		return
	}
	if t != nil {
		h.target = t
	}
	h.stop("force stop")
}

// RunToEnd steps the procedure until it stops, ignoring the delay, and
// returns the number of yield points emitted by this call.
func (h *Handler) RunToEnd(t Target) (int, error) {
	n := 0
	for {
		if err := h.Next(t); err != nil {
			return n, err
		}
		switch h.State() {
		case Stopped:
			return n, nil
		case NotBegun:
			// Begin was refused.
			return n, nil
		}
		n++
	}
}

// begin creates the procedure if none exists. It reports false when the
// algorithm refused to start with a Notice. h.mu must be held.
func (h *Handler) begin() (bool, error) {
	if h.proc != nil {
		return true, nil
	}
	if h.alg == nil {
		return false, ErrNilAlgorithm
	}

	proc, err := h.alg.Begin()
	if err != nil {
		if IsNotice(err) {
			h.notes.Post(err.Error())
			h.log.Debug("refused", "reason", err)
			return false, nil
		}
		return false, fmt.Errorf("step: begin: %w", err)
	}

	h.proc = proc
	h.steps = 0
	h.runID = uuid.NewString()
	h.log.Debug("begin", "run", h.runID)

	return true, nil
}

// advance runs one Step and applies its outcome. h.mu must be held.
func (h *Handler) advance(t Target) error {
	done, err := h.proc.Step(t)
	switch {
	case err != nil && IsNotice(err):
		h.notes.Post(err.Error())
		h.log.Debug("notice", "run", h.runID, "msg", err.Error())
		h.stop("notice")
		return nil
	case err != nil:
		h.log.Error("step failed", "run", h.runID, "steps", h.steps, "err", err)
		h.stop("failed")
		return err
	case done:
		h.stop("completed")
		return nil
	}
	h.steps++
	if h.onStep != nil {
		h.onStep(t, h.steps)
	}

	return nil
}

// stop moves to Stopped, runs cleanup once, and repaints. h.mu must be held.
func (h *Handler) stop(reason string) {
	if h.state == Stopped || h.state == NotBegun {
		h.proc = nil
		return
	}
	h.proc = nil
	h.setState(Stopped)
	h.alg.Cleanup()
	if h.target != nil {
		h.target.Repaint()
	}
	h.signal()
	h.log.Debug("stop", "run", h.runID, "steps", h.steps, "reason", reason)
}

// pauseLoop pauses only if gen is still the active loop.
func (h *Handler) pauseLoop(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == Running && h.loop == gen {
		h.setState(Paused)
		h.log.Debug("pause", "run", h.runID, "steps", h.steps, "reason", "context done")
	}
}

func (h *Handler) setState(s RunState) {
	if h.state == s {
		return
	}
	h.state = s
	if h.onState != nil {
		h.onState(s)
	}
}

// signal wakes a waiting play loop without blocking.
func (h *Handler) signal() {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

package step

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/stepviz/core"
)

// DefaultDelay is the tick interval used when none is configured.
const DefaultDelay = 100 * time.Millisecond

// Sentinel errors for handler control.
var (
	// ErrAlreadyRunning is returned by Play when a play loop is active.
	ErrAlreadyRunning = errors.New("step: handler already running")

	// ErrBadDelay is returned by SetDelay for non-positive delays.
	ErrBadDelay = errors.New("step: delay must be positive")

	// ErrNilAlgorithm is returned by Play and Next on a handler built without an algorithm.
	ErrNilAlgorithm = errors.New("step: algorithm is nil")
)

// RunState is the transport state of a Handler.
type RunState int

const (
	// NotBegun: no procedure has been created since the last Reset.
	NotBegun RunState = iota
	// Stopped: the last procedure completed or was aborted.
	Stopped
	// Paused: a procedure exists and is waiting for Play or Next.
	Paused
	// Running: a play loop is advancing the procedure.
	Running
)

// String returns the state name.
func (s RunState) String() string {
	switch s {
	case NotBegun:
		return "NotBegun"
	case Stopped:
		return "Stopped"
	case Paused:
		return "Paused"
	case Running:
		return "Running"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Target is the render surface supplied by the shell.
//
// Render repaints one entity; Repaint redraws the whole surface. Procedures
// call Render after every mutation and never batch.
type Target interface {
	Render(ref core.Ref)
	Repaint()
}

// Discard is a Target that ignores every call. Handlers substitute it for a
// nil target.
var Discard Target = discard{}

type discard struct{}

func (discard) Render(core.Ref) {}
func (discard) Repaint()        {}

// Procedure is a resumable algorithm.
//
// Step advances to the next yield point and returns done=false. Once the
// procedure has nothing left it returns done=true without mutating anything.
// A returned Notice ends the procedure with a user-facing message; any other
// error is fatal.
type Procedure interface {
	Step(t Target) (done bool, err error)
}

// Algorithm is implemented by every animated algorithm.
//
// Begin validates the current inputs and builds a fresh Procedure.
// Precondition violations are returned as Notice errors and keep the
// algorithm from starting. Cleanup resets transient display state and is
// called exactly once per transition to Stopped, and on Reset.
type Algorithm interface {
	Begin() (Procedure, error)
	Cleanup()
}

// Notice is a user-facing outcome message. It implements error so that
// procedures can return it, and it is comparable so that sentinel notices
// work with errors.Is.
type Notice string

// Error returns the message.
func (n Notice) Error() string { return string(n) }

// IsNotice reports whether err is, or wraps, a Notice.
func IsNotice(err error) bool {
	var n Notice
	return errors.As(err, &n)
}

// Clock schedules ticks. After returns a channel that fires once after d and
// a function that releases the timer early.
type Clock interface {
	After(d time.Duration) (<-chan time.Time, func() bool)
}

// WallClock is the Clock backed by time.Timer.
type WallClock struct{}

// After implements Clock.
func (WallClock) After(d time.Duration) (<-chan time.Time, func() bool) {
	t := time.NewTimer(d)
	return t.C, t.Stop
}

// Option configures a Handler.
type Option func(*Options)

// Options holds Handler configuration.
type Options struct {
	// Delay between ticks of the play loop.
	Delay time.Duration

	// Clock schedules ticks; tests substitute an instant clock.
	Clock Clock

	// Logger receives Debug transition logs.
	Logger *log.Logger

	// Notifier receives Notice messages. Handlers of one scene share it.
	Notifier *Notifier

	// OnState, if non-nil, is called after every run-state change, with the
	// handler lock held. It must not call back into the Handler.
	OnState func(RunState)

	// OnStep, if non-nil, is called after every yield point with the target
	// that was painted and the step count, with the handler lock held. The
	// terminal shell flushes frames from it.
	OnStep func(t Target, steps int)
}

// DefaultOptions returns Options with:
//   - Delay: DefaultDelay
//   - Clock: WallClock
//   - Logger: discarding logger
//   - Notifier: a private Notifier
func DefaultOptions() Options {
	return Options{
		Delay:    DefaultDelay,
		Clock:    WallClock{},
		Logger:   log.New(io.Discard),
		Notifier: NewNotifier(),
	}
}

// WithDelay sets the tick interval. Non-positive values are ignored.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d > 0 {
			o.Delay = d
		}
	}
}

// WithClock sets the tick source.
func WithClock(c Clock) Option {
	return func(o *Options) {
		if c != nil {
			o.Clock = c
		}
	}
}

// WithLogger sets the transition logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithNotifier shares a scene-wide notification slot.
func WithNotifier(n *Notifier) Option {
	return func(o *Options) {
		if n != nil {
			o.Notifier = n
		}
	}
}

// WithOnState registers a run-state observer.
func WithOnState(fn func(RunState)) Option {
	return func(o *Options) { o.OnState = fn }
}

// WithOnStep registers a per-yield observer.
func WithOnStep(fn func(t Target, steps int)) Option {
	return func(o *Options) { o.OnStep = fn }
}

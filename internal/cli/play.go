package cli

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/stepviz/config"
	"github.com/katalvlaran/stepviz/internal/term"
	"github.com/katalvlaran/stepviz/step"
)

// player is the part of step.Handler the shell drives.
type player interface {
	Play(ctx context.Context, t step.Target) error
	Notifier() *step.Notifier
	Steps() int
	State() step.RunState
}

// stepOptions builds the handler options every command shares.
func stepOptions(c config.Config, l *log.Logger) []step.Option {
	return []step.Option{
		step.WithDelay(c.Delay),
		step.WithLogger(l),
		step.WithOnStep(term.FlushOnStep),
	}
}

// play animates p on a screen drawing view until it stops or the user
// interrupts. An interrupt leaves the handler paused.
func play(ctx context.Context, w io.Writer, g *globals, title string, p player, view func() string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	logger := loggerFromContext(ctx)
	scr := term.NewScreen(w, title, view, !g.static).WithNotifier(p.Notifier())
	scr.Repaint()

	prog := newProgress(logger)
	err := p.Play(ctx, scr)
	if err != nil && ctx.Err() == nil {
		return err
	}
	if msg := p.Notifier().Text(); msg != "" {
		logger.Warn(msg)
	}
	prog.done(title, "steps", p.Steps(), "state", p.State())

	return nil
}

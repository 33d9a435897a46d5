package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

const clearHome = "\x1b[H\x1b[2J"

// Screen is a step.Target that redraws a whole frame from a view function.
// Render and Repaint only mark the frame dirty; Flush writes it.
type Screen struct {
	w      io.Writer
	title  string
	view   func() string
	notes  *step.Notifier
	live   bool
	dirty  bool
	frames int
	last   core.Ref
}

// NewScreen draws view() to w. With live set, every frame clears the
// terminal first so the output animates in place.
func NewScreen(w io.Writer, title string, view func() string, live bool) *Screen {
	return &Screen{w: w, title: title, view: view, live: live}
}

// WithNotifier shows the notifier text under every frame.
func (s *Screen) WithNotifier(n *step.Notifier) *Screen {
	s.notes = n
	return s
}

// Render implements step.Target.
func (s *Screen) Render(ref core.Ref) {
	s.dirty = true
	s.last = ref
}

// Repaint implements step.Target.
func (s *Screen) Repaint() {
	s.dirty = true
	s.Flush()
}

// Frames returns the number of frames written.
func (s *Screen) Frames() int { return s.frames }

// Flush writes the current frame if anything changed since the last one.
func (s *Screen) Flush() {
	if !s.dirty {
		return
	}
	s.dirty = false
	s.frames++

	var b strings.Builder
	if s.live {
		b.WriteString(clearHome)
	}
	b.WriteString(StyleTitle.Render(s.title))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  frame %d  last %v", s.frames, s.last)))
	b.WriteByte('\n')
	b.WriteString(s.view())
	if s.notes != nil {
		if msg := s.notes.Text(); msg != "" {
			b.WriteString("\n" + StyleNotice.Render(msg))
		}
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(s.w, b.String())
}

// FlushOnStep is a step.WithOnStep callback that flushes Screen targets.
func FlushOnStep(t step.Target, _ int) {
	if s, ok := t.(*Screen); ok {
		s.Flush()
	}
}

package alloc

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

var (
	// ErrStaleHandle is returned for nil, freed or foreign handles.
	ErrStaleHandle = errors.New("alloc: stale or invalid handle")
	// ErrBadSize is returned by Malloc for non-positive sizes.
	ErrBadSize = errors.New("alloc: size must be positive")
	// ErrNilValue is returned by Malloc for a nil value.
	ErrNilValue = errors.New("alloc: value is nil")
)

// Value is anything a record can hold. Bytes is the in-memory image shown
// by hex views; String is the human-readable form.
type Value interface {
	Bytes() []byte
	String() string
}

// Deallocator is implemented by values that own other allocations. Dealloc
// runs after the owning record has been freed.
type Deallocator interface {
	Dealloc(h *Heap) error
}

// Ptr is a generation-checked handle. The zero Ptr is nil.
type Ptr struct {
	slot uint32 // index+1; 0 means nil
	gen  uint32
}

// Nil is the nil handle.
var Nil Ptr

// IsNil reports whether p is the nil handle.
func (p Ptr) IsNil() bool { return p.slot == 0 }

// Slot returns the slot index, or -1 for Nil. Slots are reused after free.
func (p Ptr) Slot() int { return int(p.slot) - 1 }

// String renders the handle as "slot#gen".
func (p Ptr) String() string {
	if p.IsNil() {
		return "nil"
	}

	return fmt.Sprintf("%d#%d", p.Slot(), p.gen)
}

// Record describes one live allocation.
type Record struct {
	Ptr    Ptr
	Offset int
	Size   int
	Value  Value
}

// End returns the first offset past the record.
func (r Record) End() int { return r.Offset + r.Size }

// Options configures a Heap.
type Options struct {
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// WithLogger routes allocation events to l at Debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Options with a discarding logger.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard)}
}

package core

import "fmt"

// Slot is one element of a sortable array.
type Slot struct {
	Value int
	State State
}

// Array is the sequence a sorting algorithm rearranges in place.
type Array struct {
	Slots []Slot
}

// NewArray builds an Array holding values, all in state None.
func NewArray(values ...int) *Array {
	a := &Array{}
	a.Load(values)

	return a
}

// Load replaces the contents with values and clears display states.
func (a *Array) Load(values []int) {
	a.Slots = make([]Slot, len(values))
	for i, v := range values {
		a.Slots[i] = Slot{Value: v}
	}
}

// Len returns the number of slots.
func (a *Array) Len() int { return len(a.Slots) }

// At returns the value at i.
func (a *Array) At(i int) int { return a.Slots[i].Value }

// Set overwrites the value at i.
func (a *Array) Set(i, v int) error {
	if i < 0 || i >= len(a.Slots) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	a.Slots[i].Value = v

	return nil
}

// Swap exchanges the values at i and j; display states stay in place.
func (a *Array) Swap(i, j int) {
	a.Slots[i].Value, a.Slots[j].Value = a.Slots[j].Value, a.Slots[i].Value
}

// Values returns a copy of the current values.
func (a *Array) Values() []int {
	out := make([]int, len(a.Slots))
	for i, s := range a.Slots {
		out[i] = s.Value
	}

	return out
}

// ResetStates paints every slot back to None.
func (a *Array) ResetStates() {
	for i := range a.Slots {
		a.Slots[i].State = None
	}
}

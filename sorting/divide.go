package sorting

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

const (
	mergeOuter = iota
	mergeRun
	mergePick
	mergeWrite
	mergeFinish
)

// merge is a bottom-up merge sort: runs of width 1, 2, 4, ... are merged
// through an auxiliary copy of the two runs.
type merge struct {
	base
	pc          int
	width       int
	lo, mid, hi int
	l, r, k     int // heads into aux (relative to lo) and write cursor
	aux         []int
	takeRight   bool
}

func newMerge(b base) *merge { return &merge{base: b, width: 1} }

func (p *merge) Step(t step.Target) (bool, error) {
	p.cool(t)
	n := p.arr.Len()
	for {
		switch p.pc {
		case mergeOuter:
			if p.width >= n {
				p.pc = mergeFinish
				continue
			}
			p.lo = 0
			p.pc = mergeRun

		case mergeRun:
			p.mid = p.lo + p.width
			if p.mid >= n {
				p.width *= 2
				p.pc = mergeOuter
				continue
			}
			p.hi = min(p.lo+2*p.width, n)
			p.aux = append(p.aux[:0], p.arr.Values()[p.lo:p.hi]...)
			p.l, p.r, p.k = 0, p.mid-p.lo, p.lo
			p.pc = mergePick

		case mergePick:
			if p.k >= p.hi {
				p.lo += 2 * p.width
				p.pc = mergeRun
				continue
			}
			leftEnd, rightEnd := p.mid-p.lo, p.hi-p.lo
			if p.l < leftEnd && p.r < rightEnd {
				// the right head has not been overwritten yet: k < lo+r
				p.mark(t, core.Compare, p.k, p.lo+p.r)
				p.takeRight = p.aux[p.r] < p.aux[p.l]
				p.pc = mergeWrite
				return false, nil
			}
			p.takeRight = p.l >= leftEnd
			p.pc = mergeWrite

		case mergeWrite:
			var v int
			if p.takeRight {
				v = p.aux[p.r]
				p.r++
			} else {
				v = p.aux[p.l]
				p.l++
			}
			p.arr.Slots[p.k].Value = v
			p.mark(t, core.SwapDone, p.k)
			p.k++
			p.pc = mergePick
			return false, nil

		default:
			return p.finish(t), nil
		}
	}
}

const (
	quickPop = iota
	quickCompare
	quickSwap
	quickSwapped
	quickPlace
	quickPlaced
	quickPush
	quickFinish
)

// quick is Lomuto-partition quicksort over an explicit stack of ranges.
// The pivot is the last slot of the range and is painted Moving.
type quick struct {
	base
	pc     int
	stack  [][2]int
	lo, hi int
	i, j   int
}

func newQuick(b base) *quick {
	q := &quick{base: b}
	if n := b.arr.Len(); n > 1 {
		q.stack = append(q.stack, [2]int{0, n - 1})
	}

	return q
}

func (p *quick) Step(t step.Target) (bool, error) {
	p.cool(t)
	for {
		switch p.pc {
		case quickPop:
			if len(p.stack) == 0 {
				p.pc = quickFinish
				continue
			}
			top := p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]
			p.lo, p.hi = top[0], top[1]
			if p.lo >= p.hi {
				continue
			}
			p.i, p.j = p.lo, p.lo
			p.pc = quickCompare

		case quickCompare:
			if p.j >= p.hi {
				p.pc = quickPlace
				continue
			}
			p.mark(t, core.Moving, p.hi)
			p.mark(t, core.Compare, p.j)
			if p.less(p.j, p.hi) {
				if p.i != p.j {
					p.pc = quickSwap
				} else {
					p.i++
					p.j++
				}
			} else {
				p.j++
			}
			return false, nil

		case quickSwap:
			p.mark(t, core.Swap, p.i, p.j)
			p.pc = quickSwapped
			return false, nil

		case quickSwapped:
			p.arr.Swap(p.i, p.j)
			p.mark(t, core.SwapDone, p.i, p.j)
			p.i++
			p.j++
			p.pc = quickCompare
			return false, nil

		case quickPlace:
			if p.i == p.hi {
				p.pc = quickPush
				continue
			}
			p.mark(t, core.Swap, p.i, p.hi)
			p.pc = quickPlaced
			return false, nil

		case quickPlaced:
			p.arr.Swap(p.i, p.hi)
			p.mark(t, core.SwapDone, p.i, p.hi)
			p.pc = quickPush
			return false, nil

		case quickPush:
			// left range on top so it is partitioned first
			p.stack = append(p.stack, [2]int{p.i + 1, p.hi}, [2]int{p.lo, p.i - 1})
			p.pc = quickPop

		default:
			return p.finish(t), nil
		}
	}
}

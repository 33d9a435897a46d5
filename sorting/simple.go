package sorting

import (
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/step"
)

const (
	bubbleCompare = iota
	bubbleSwap
	bubbleSwapped
	bubbleFinish
)

// bubble: after pass i the last i+1 slots hold their final values.
type bubble struct {
	base
	pc   int
	i, j int
}

func (p *bubble) Step(t step.Target) (bool, error) {
	p.cool(t)
	n := p.arr.Len()
	for {
		switch p.pc {
		case bubbleCompare:
			if p.i >= n-1 {
				p.pc = bubbleFinish
				continue
			}
			if p.j >= n-1-p.i {
				p.i++
				p.j = 0
				continue
			}
			p.mark(t, core.Compare, p.j, p.j+1)
			if p.less(p.j+1, p.j) {
				p.pc = bubbleSwap
			} else {
				p.j++
			}
			return false, nil

		case bubbleSwap:
			p.mark(t, core.Swap, p.j, p.j+1)
			p.pc = bubbleSwapped
			return false, nil

		case bubbleSwapped:
			p.arr.Swap(p.j, p.j+1)
			p.mark(t, core.SwapDone, p.j, p.j+1)
			p.j++
			p.pc = bubbleCompare
			return false, nil

		default:
			return p.finish(t), nil
		}
	}
}

const (
	insOuter = iota
	insCompare
	insSwap
	insSwapped
	insFinish
)

// insertion sinks slot i leftwards until its left neighbor is not larger.
type insertion struct {
	base
	pc   int
	i, j int
}

func (p *insertion) Step(t step.Target) (bool, error) {
	p.cool(t)
	n := p.arr.Len()
	for {
		switch p.pc {
		case insOuter:
			if p.i >= n {
				p.pc = insFinish
				continue
			}
			p.j = p.i
			p.pc = insCompare

		case insCompare:
			if p.j == 0 {
				p.i++
				p.pc = insOuter
				continue
			}
			p.mark(t, core.Compare, p.j-1, p.j)
			if p.less(p.j, p.j-1) {
				p.pc = insSwap
			} else {
				p.i++
				p.pc = insOuter
			}
			return false, nil

		case insSwap:
			p.mark(t, core.Swap, p.j-1, p.j)
			p.pc = insSwapped
			return false, nil

		case insSwapped:
			p.arr.Swap(p.j-1, p.j)
			p.mark(t, core.SwapDone, p.j-1, p.j)
			p.j--
			p.pc = insCompare
			return false, nil

		default:
			return p.finish(t), nil
		}
	}
}

const (
	selOuter = iota
	selCompare
	selDecide
	selSwapped
	selFinish
)

// selection scans for the minimum of [i, n) and swaps it into i.
type selection struct {
	base
	pc        int
	i, j, min int
}

func (p *selection) Step(t step.Target) (bool, error) {
	p.cool(t)
	n := p.arr.Len()
	for {
		switch p.pc {
		case selOuter:
			if p.i >= n-1 {
				p.pc = selFinish
				continue
			}
			p.min = p.i
			p.j = p.i + 1
			p.pc = selCompare

		case selCompare:
			if p.j >= n {
				p.pc = selDecide
				continue
			}
			p.mark(t, core.Compare, p.min, p.j)
			if p.less(p.j, p.min) {
				p.min = p.j
			}
			p.j++
			return false, nil

		case selDecide:
			if p.min == p.i {
				p.i++
				p.pc = selOuter
				continue
			}
			p.mark(t, core.Swap, p.i, p.min)
			p.pc = selSwapped
			return false, nil

		case selSwapped:
			p.arr.Swap(p.i, p.min)
			p.mark(t, core.SwapDone, p.i, p.min)
			p.i++
			p.pc = selOuter
			return false, nil

		default:
			return p.finish(t), nil
		}
	}
}

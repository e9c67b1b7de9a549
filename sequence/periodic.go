package sequence

import (
	"fmt"

	"github.com/katalvlaran/revolve/binomial"
)

// ComputeMMax returns an upper bound on the candidate period sizes for
// the periodic disk schedule, from the β brackets of the disk round-trip
// cost (Aupy & Herrmann 2017).
func ComputeMMax(cm int, wd, rd, uf float64) int {
	td1 := 0
	for binomial.BetaFloat(cm, td1) <= (wd+rd)/uf {
		td1++
	}
	td2 := 0
	for binomial.BetaFloat(cm, td2) <= wd/uf {
		td2++
	}
	m1 := int(binomial.Beta(cm, td1+1).Int64())
	m2 := 2*int(binomial.Beta(cm, td2).Int64()) + 1

	return max(m1, m2)
}

// relCostX is the amortised per-step cost of a period of size m whose
// interior is adjoined at cost opt1dM.
func relCostX(m int, opt1dM, wd, rd float64) float64 {
	return (wd + rd + opt1dM) / float64(m)
}

// ComputeMX scans the candidate periods 1..mmax and returns the one of
// minimal amortised cost (last argmin). The period depends only on cm
// and the cost model (uf, ub, wd, rd), not on the schedule length.
func ComputeMX(cm int, p *Params, opt0 [][]float64, opt1d []float64, mmax int) int {
	if mmax == 0 {
		mmax = ComputeMMax(cm, p.wd(), p.rd(), p.UF)
	}
	if opt0 == nil || len(opt0[0]) < mmax+1 {
		opt0 = Opt0Table(mmax, cm, p.UF, p.UB)
	}
	if opt1d == nil || len(opt1d) < mmax+1 {
		opt1d = Opt1DTable(mmax, cm, p, opt0)
	}
	mx := 1
	objbest := relCostX(1, opt1d[0], p.wd(), p.rd())
	for mxi := 2; mxi <= mmax; mxi++ {
		if obj := relCostX(mxi, opt1d[mxi-1], p.wd(), p.rd()); obj <= objbest {
			objbest = obj
			mx = mxi
		}
	}

	return mx
}

// MXCloseFormula returns the asymptotically optimal period by the closed
// formula of Aupy & Herrmann 2017; periodic disk checkpointing with this
// period is asymptotically optimal both offline and online.
func MXCloseFormula(cm int, p *Params) int {
	f := func(x, y, c int) int {
		v := int(binomial.Beta(c+1, x+y-1).Int64())
		for k := 0; k < y; k++ {
			v -= int(binomial.Beta(c, k).Int64())
		}

		return v
	}
	fsum := func(x, y, c int) int {
		var s int
		for j := 1; j <= y; j++ {
			s += f(j, x, c)
		}

		return s
	}

	x := 0
	for p.rd() >= binomial.BetaFloat(cm+1, x) {
		x++
	}
	y := 0
	for p.wd() > float64(fsum(x, y, cm)) {
		y++
	}
	mx := f(y, x, cm)
	x++
	y = 0
	for p.wd() > float64(fsum(x, y, cm)) {
		y++
	}
	mxalt := f(y, x, cm)

	mmax := max(mx, mxalt)
	opt0 := Opt0Table(mmax, cm, p.UF, p.UB)
	opt1d := Opt1DTable(mmax, cm, p, opt0)
	if relCostX(mx, opt1d[mx-1], p.wd(), p.rd()) < relCostX(mxalt, opt1d[mxalt-1], p.wd(), p.rd()) {
		return mx
	}

	return mxalt
}

// MXRRCloseFormula returns the period minimising the asymptotic
// execution time when disk checkpoints are read only once.
func MXRRCloseFormula(cm int, uf, rd, wd float64) int {
	t := 0
	for binomial.BetaFloat(cm+1, t) <= (wd+rd)/uf {
		t++
	}

	return int(binomial.Beta(cm, t).Int64())
}

// PeriodicDiskRevolve builds the periodic disk schedule for l forward
// steps with cm memory slots: write a disk checkpoint every mX steps
// during the forward sweep, then adjoin period by period in reverse,
// each period solved as an inner Revolve / Revolve1D problem.
//
// The period is taken from p.Period when set; otherwise it is the
// optimal one (closed formula with OneReadDisk or Fast, exhaustive scan
// otherwise).
func PeriodicDiskRevolve(l, cm int, p *Params) (*Sequence, error) {
	if l < 0 {
		return nil, ErrBadLength
	}

	// 1) Establish the period and the table sizes it requires.
	mx := p.Period
	mmax := p.MMax
	if mmax == 0 {
		if p.OneReadDisk {
			mmax = MXRRCloseFormula(cm, p.UF, p.rd(), p.wd())
			if mx == 0 {
				mx = mmax
			}
		} else {
			mmax = ComputeMMax(cm, p.wd(), p.rd(), p.UF)
		}
	}
	if mx != 0 {
		mmax = max(mmax, mx) + 1
	}
	tmax := max(mmax, l)
	opt0 := Opt0Table(tmax, cm, p.UF, p.UB)
	var opt1d []float64
	if !p.OneReadDisk {
		opt1d = Opt1DTable(tmax, cm, p, opt0)
	}
	if mx == 0 {
		switch {
		case p.OneReadDisk:
			mx = MXRRCloseFormula(cm, p.UF, p.rd(), p.wd())
		case p.Fast:
			mx = MXCloseFormula(cm, p)
		default:
			mx = ComputeMX(cm, p, opt0, opt1d, mmax)
		}
	}
	if p.Verbose {
		fmt.Printf("periodic-disk-revolve: using periods of size %d\n", mx)
	}

	// 2) Forward sweep: spill a disk checkpoint at the start of every
	//    full period.
	seq := &Sequence{}
	currentTask := 0
	for l-currentTask > mx {
		seq.insert(p, Operation{Type: OpWrite, Level: 1, N0: currentTask})
		seq.insert(p, Operation{Type: OpForward, N0: currentTask, N1: currentTask + mx})
		currentTask += mx
	}

	// 3) Final (possibly short) segment, adjoined in place.
	if p.OneReadDisk || opt1d[l-currentTask] == opt0[cm][l-currentTask] {
		sub, err := Revolve(l-currentTask, cm, p, opt0)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(sub.Shift(currentTask))
	} else {
		seq.insert(p, Operation{Type: OpWrite, Level: 1, N0: currentTask})
		sub, err := Revolve1D(l-currentTask, cm, p, opt0, opt1d)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(sub.Shift(currentTask))
	}

	// 4) Reverse sweep: reload each period front and adjoin its mx-1
	//    interior steps.
	for currentTask > 0 {
		currentTask -= mx
		seq.insert(p, Operation{Type: OpRead, Level: 1, N0: currentTask})
		var sub *Sequence
		var err error
		if p.OneReadDisk {
			sub, err = Revolve(mx-1, cm, p, opt0)
		} else {
			sub, err = Revolve1D(mx-1, cm, p, opt0, opt1d)
		}
		if err != nil {
			return nil, err
		}
		seq.insertSequence(sub.Shift(currentTask))
	}

	return seq, nil
}

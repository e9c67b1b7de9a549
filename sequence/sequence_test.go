package sequence_test

import (
	"testing"

	"github.com/katalvlaran/revolve/binomial"
	"github.com/katalvlaran/revolve/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unitParams() sequence.Params {
	return sequence.DefaultParams(2, 2, 1, 1)
}

// TestOpt0Table_Borders pins the hand-computed border values for unit
// costs.
func TestOpt0Table_Borders(t *testing.T) {
	opt := sequence.Opt0Table(5, 3, 1, 1)

	assert.Equal(t, 1.0, opt[0][0], "zero further steps cost one backward")
	assert.Equal(t, 3.0, opt[2][1], "one step costs uf + 2ub")
	assert.Equal(t, 10.0, opt[1][3], "single slot: (l+1)ub + l(l+1)/2 uf")
	assert.Equal(t, 8.0, opt[2][3], "two slots over three steps")
}

// TestOpt0Table_MatchesClosedFormula cross-checks the DP against the
// closed binomial formula over a grid.
func TestOpt0Table_MatchesClosedFormula(t *testing.T) {
	const lmax, mmax = 12, 4
	opt := sequence.Opt0Table(lmax, mmax, 1, 1)
	for cm := 1; cm <= mmax; cm++ {
		for l := 0; l <= lmax; l++ {
			assert.InDelta(t, sequence.Opt0ClosedFormula(l, cm, 1, 1), opt[cm][l], 1e-9,
				"table and closed formula must agree at cm=%d l=%d", cm, l)
		}
	}
}

// TestOpt1DTable_Borders checks the disk-front table borders, with and
// without a memory slot.
func TestOpt1DTable_Borders(t *testing.T) {
	p := unitParams()

	opt1d := sequence.Opt1DTable(3, 1, &p, nil)
	assert.Equal(t, 1.0, opt1d[0])
	assert.Equal(t, 3.0, opt1d[1], "with a memory slot the disk read is avoided")

	opt1d0 := sequence.Opt1DTable(1, 0, &p, nil)
	assert.Equal(t, 5.0, opt1d0[1], "without memory the restart re-reads the disk front")
}

// TestOptInfTable_NeverWorseThanMemory verifies optInf <= opt0: the
// unlimited disk can always be ignored.
func TestOptInfTable_NeverWorseThanMemory(t *testing.T) {
	p := unitParams()
	const lmax, cm = 30, 3
	opt0 := sequence.Opt0Table(lmax, cm, p.UF, p.UB)
	optInf := sequence.OptInfTable(lmax, cm, &p, opt0, nil)
	for l := 0; l <= lmax; l++ {
		assert.LessOrEqual(t, optInf[l], opt0[cm][l], "l=%d", l)
	}
}

// TestRevolve_SingleSlotTrace pins the exact operation list of the
// single-slot linear walk for three steps.
func TestRevolve_SingleSlotTrace(t *testing.T) {
	p := unitParams()
	seq, err := sequence.Revolve(3, 1, &p, nil)
	require.NoError(t, err)

	want := []sequence.Operation{
		{Type: sequence.OpWrite, N0: 0},
		{Type: sequence.OpForward, N0: 0, N1: 3},
		{Type: sequence.OpWriteForward, N0: 4},
		{Type: sequence.OpForward, N0: 3, N1: 4},
		{Type: sequence.OpBackward, N0: 3, N1: 4},
		{Type: sequence.OpDiscardForward, N0: 4},
		{Type: sequence.OpRead, N0: 0},
		{Type: sequence.OpForward, N0: 0, N1: 2},
		{Type: sequence.OpWriteForward, N0: 3},
		{Type: sequence.OpForward, N0: 2, N1: 3},
		{Type: sequence.OpBackward, N0: 2, N1: 3},
		{Type: sequence.OpDiscardForward, N0: 3},
		{Type: sequence.OpRead, N0: 0},
		{Type: sequence.OpForward, N0: 0, N1: 1},
		{Type: sequence.OpWriteForward, N0: 2},
		{Type: sequence.OpForward, N0: 1, N1: 2},
		{Type: sequence.OpBackward, N0: 1, N1: 2},
		{Type: sequence.OpDiscardForward, N0: 2},
		{Type: sequence.OpRead, N0: 0},
		{Type: sequence.OpWriteForward, N0: 1},
		{Type: sequence.OpForward, N0: 0, N1: 1},
		{Type: sequence.OpBackward, N0: 0, N1: 1},
		{Type: sequence.OpDiscardForward, N0: 1},
		{Type: sequence.OpDiscard, N0: 0},
	}
	assert.Equal(t, want, seq.Ops)
	assert.Equal(t, 10, seq.ForwardSteps())
}

// TestRevolve_ForwardStepCountLaw verifies the Griewank–Walther cost
// law: the total forward work of the schedule for l steps over cm slots
// is ((l+1)(t+1) - β(cm+1, t)) recomputation steps plus the l+1 primal
// steps, where t is the rerun depth.
func TestRevolve_ForwardStepCountLaw(t *testing.T) {
	p := unitParams()
	for cm := 1; cm <= 5; cm++ {
		opt0 := sequence.Opt0Table(25, cm, p.UF, p.UB)
		for l := 0; l <= 25; l++ {
			seq, err := sequence.Revolve(l, cm, &p, opt0)
			require.NoError(t, err)

			var want int
			if l == 0 {
				want = 1
			} else {
				tt := sequence.GetT(l, cm)
				want = (l+1)*(tt+1) - int(binomial.Beta(cm+1, tt).Int64()) + l + 1
			}
			assert.Equal(t, want, seq.ForwardSteps(), "cm=%d l=%d", cm, l)
		}
	}
}

// TestRevolve_NoMemory verifies the zero-slot guard.
func TestRevolve_NoMemory(t *testing.T) {
	p := unitParams()
	_, err := sequence.Revolve(3, 0, &p, nil)
	assert.ErrorIs(t, err, sequence.ErrNoMemory)
}

// TestRevolve1D_FallsBackToMemory ensures that when disk reloads are
// not worth their cost the sequence degenerates to plain Revolve.
func TestRevolve1D_FallsBackToMemory(t *testing.T) {
	p := sequence.DefaultParams(1000, 1000, 1, 1)
	seq1d, err := sequence.Revolve1D(6, 3, &p, nil, nil)
	require.NoError(t, err)
	seq, err := sequence.Revolve(6, 3, &p, nil)
	require.NoError(t, err)

	assert.Equal(t, seq.Ops, seq1d.Ops, "prohibitive disk costs must reduce 1D-Revolve to Revolve")
}

// TestDiskRevolve_SpillsWhenDiskIsFree checks that cheap disk storage
// triggers spills, and that backward coverage is complete.
func TestDiskRevolve_SpillsWhenDiskIsFree(t *testing.T) {
	p := sequence.DefaultParams(0.5, 0.5, 1, 1)
	seq, err := sequence.DiskRevolve(20, 2, &p, nil, nil, nil)
	require.NoError(t, err)

	var diskWrites, backwards int
	for _, op := range seq.Ops {
		if op.Type == sequence.OpWrite && op.Level == 1 {
			diskWrites++
		}
		if op.Type == sequence.OpBackward {
			backwards++
		}
	}
	assert.Positive(t, diskWrites, "cheap disk must be used")
	assert.Equal(t, 21, backwards, "every step of the AC graph is adjoined once")
}

// TestPeriodicDiskRevolve_PeriodStructure verifies the forward sweep
// writes one disk checkpoint per full period and the reverse sweep
// reads each back.
func TestPeriodicDiskRevolve_PeriodStructure(t *testing.T) {
	p := unitParams()
	p.Period = 5
	const l = 17
	seq, err := sequence.PeriodicDiskRevolve(l, 2, &p)
	require.NoError(t, err)

	var diskWrites, diskReads, backwards []int
	for _, op := range seq.Ops {
		switch {
		case op.Type == sequence.OpWrite && op.Level == 1:
			diskWrites = append(diskWrites, op.N0)
		case op.Type == sequence.OpRead && op.Level == 1:
			diskReads = append(diskReads, op.N0)
		case op.Type == sequence.OpBackward:
			backwards = append(backwards, op.N1)
		}
	}
	assert.Equal(t, []int{0, 5, 10}, diskWrites, "one spill per full period")
	assert.Equal(t, []int{10, 5, 0}, diskReads, "periods are reloaded in reverse order")
	assert.Len(t, backwards, l+1, "every step adjoined exactly once")
}

// TestHRevolve_TwoLevelSmoke checks the two-level hierarchy produces a
// complete adjoint sweep with bounded storage.
func TestHRevolve_TwoLevelSmoke(t *testing.T) {
	seq, err := sequence.HRevolve(24, []int{1, 1}, []float64{0, 2}, []float64{0, 2}, 1, 1)
	require.NoError(t, err)

	var backwards int
	live := map[int]map[int]bool{0: {}, 1: {}}
	peak := map[int]int{}
	for _, op := range seq.Ops {
		switch op.Type {
		case sequence.OpBackward:
			backwards++
		case sequence.OpWrite:
			live[op.Level][op.N0] = true
			peak[op.Level] = max(peak[op.Level], len(live[op.Level]))
		case sequence.OpDiscard:
			delete(live[op.Level], op.N0)
		}
	}
	assert.Equal(t, 25, backwards, "25 adjoint steps for l=24")
	assert.LessOrEqual(t, peak[0], 1, "memory slot budget respected")
	assert.LessOrEqual(t, peak[1], 1, "disk slot budget respected")
}

// TestHRevolve_BadHierarchy checks vector validation.
func TestHRevolve_BadHierarchy(t *testing.T) {
	_, err := sequence.HRevolve(5, []int{1, 1}, []float64{0}, []float64{0, 2}, 1, 1)
	assert.ErrorIs(t, err, sequence.ErrBadHierarchy)
}

// TestParams_Validate checks the cost-model guards.
func TestParams_Validate(t *testing.T) {
	p := unitParams()
	assert.NoError(t, p.Validate())

	bad := unitParams()
	bad.UF = 0
	assert.ErrorIs(t, bad.Validate(), sequence.ErrBadCosts)

	bad = unitParams()
	bad.Rvect = []float64{0}
	assert.ErrorIs(t, bad.Validate(), sequence.ErrBadCosts)
}

package twolevel_test

import (
	"testing"

	"github.com/katalvlaran/revolve/schedule"
	"github.com/katalvlaran/revolve/twolevel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_InputValidation checks fail-fast construction.
func TestNew_InputValidation(t *testing.T) {
	_, err := twolevel.New(0, 1, nil)
	assert.ErrorIs(t, err, twolevel.ErrInvalidPeriod)

	_, err = twolevel.New(4, -1, nil)
	assert.ErrorIs(t, err, twolevel.ErrInvalidSnapshots)

	_, err = twolevel.New(4, 1, &twolevel.Options{BinomialStorage: schedule.Work})
	assert.ErrorIs(t, err, twolevel.ErrInvalidStorage)
}

// runForward pulls periodic forward actions until the solver would
// reach n, then finalizes. Returns the periodic disk writes observed.
func runForward(t *testing.T, s *twolevel.Schedule, n int) []int {
	t.Helper()

	var writes []int
	for {
		act, err := s.Next()
		require.NoError(t, err)
		fwd, ok := act.(schedule.Forward)
		require.True(t, ok, "online phase emits Forward actions only")
		require.True(t, fwd.WriteICs)
		require.Equal(t, schedule.Disk, fwd.Storage)
		writes = append(writes, fwd.N0)
		if fwd.N1 >= n {
			require.NoError(t, s.Finalize(n))

			return writes
		}
	}
}

// TestTwoLevel_PeriodOfFour drives period=4, one binomial snapshot and
// 12 forward steps: exactly three periodic disk writes, and at most two
// live snapshots (one periodic + one binomial) during any period.
func TestTwoLevel_PeriodOfFour(t *testing.T) {
	s, err := twolevel.New(4, 1, nil)
	require.NoError(t, err)

	writes := runForward(t, s, 12)
	assert.Equal(t, []int{0, 4, 8}, writes, "one disk checkpoint per period")

	// End of forward.
	act, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, schedule.EndForward{}, act)

	// Reverse pass: mirror the driver, bounding the live snapshots of
	// the inner binomial problem.
	periodic := map[int]bool{0: true, 4: true, 8: true}
	binomial := map[int]bool{}
	modelN, modelR := 12, 0
	depsLive := false
	for {
		act, err := s.Next()
		require.NoError(t, err)
		switch a := act.(type) {
		case schedule.Forward:
			require.Equal(t, modelN, a.N0)
			require.LessOrEqual(t, a.N1, 12-modelR)
			modelN = a.N1
			if a.WriteICs {
				binomial[a.N0] = true
			}
			if a.WriteAdjDeps {
				depsLive = true
			}
		case schedule.Reverse:
			require.Equal(t, 12-modelR, a.N1)
			require.True(t, depsLive)
			modelR += a.Len()
			depsLive = false
		case schedule.Copy:
			require.True(t, periodic[a.N] || binomial[a.N], "copy of step %d references no checkpoint", a.N)
			modelN = a.N
		case schedule.Move:
			require.True(t, binomial[a.N], "only binomial snapshots are consumed")
			delete(binomial, a.N)
			modelN = a.N
		}
		require.Equal(t, modelN, s.N())
		require.Equal(t, modelR, s.R())
		assert.LessOrEqual(t, len(binomial), 1, "at most one binomial snapshot per period")

		if _, done := act.(schedule.EndReverse); done {
			break
		}
	}
	assert.Equal(t, 12, modelR, "full adjoint completed")
	assert.Empty(t, binomial, "binomial snapshots drained")
}

// TestTwoLevel_UnlimitedAdjoints verifies a second reverse pass runs
// after EndReverse and the schedule never exhausts.
func TestTwoLevel_UnlimitedAdjoints(t *testing.T) {
	s, err := twolevel.New(3, 1, nil)
	require.NoError(t, err)
	runForward(t, s, 7)

	countReverse := func() int {
		var steps int
		for {
			act, err := s.Next()
			require.NoError(t, err)
			if rev, ok := act.(schedule.Reverse); ok {
				steps += rev.Len()
			}
			if _, done := act.(schedule.EndReverse); done {
				return steps
			}
		}
	}
	// First pass includes EndForward; drain it first.
	act, err := s.Next()
	require.NoError(t, err)
	require.Equal(t, schedule.EndForward{}, act)

	assert.Equal(t, 7, countReverse(), "first adjoint")
	assert.False(t, s.IsExhausted())
	assert.Equal(t, 7, countReverse(), "second adjoint reuses the periodic checkpoints")
}

// TestTwoLevel_StorageDeclaration checks the declared-tier rule for
// both binomial storage choices.
func TestTwoLevel_StorageDeclaration(t *testing.T) {
	s, err := twolevel.New(4, 1, nil)
	require.NoError(t, err)
	assert.True(t, s.UsesStorageType(schedule.Disk))
	assert.False(t, s.UsesStorageType(schedule.RAM), "default binomial storage is disk")
	assert.True(t, s.UsesStorageType(schedule.Work))

	s, err = twolevel.New(4, 1, &twolevel.Options{BinomialStorage: schedule.RAM})
	require.NoError(t, err)
	assert.True(t, s.UsesStorageType(schedule.RAM))
}

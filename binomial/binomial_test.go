package binomial_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/revolve/binomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBinomial_SmallValues checks hand-computed coefficients.
func TestBinomial_SmallValues(t *testing.T) {
	assert.Equal(t, int64(1), binomial.Binomial(0, 0).Int64())
	assert.Equal(t, int64(10), binomial.Binomial(5, 2).Int64())
	assert.Equal(t, int64(35), binomial.Binomial(7, 3).Int64())
	assert.Equal(t, int64(0), binomial.Binomial(3, 5).Int64(), "k > n is zero")
	assert.Equal(t, int64(0), binomial.Binomial(3, -1).Int64(), "negative k is zero")
}

// TestBinomial_PascalIdentity verifies C(n,k) = C(n-1,k-1) + C(n-1,k)
// across a grid, including sizes far beyond float64 factorials.
func TestBinomial_PascalIdentity(t *testing.T) {
	for _, n := range []int{10, 60, 171, 250} {
		for _, k := range []int{1, 2, n / 3, n / 2} {
			want := new(big.Int).Add(binomial.Binomial(n-1, k-1), binomial.Binomial(n-1, k))
			assert.Zero(t, want.Cmp(binomial.Binomial(n, k)),
				"Pascal identity must hold at C(%d,%d)", n, k)
		}
	}
}

// TestBeta_MatchesBinomial checks β(x,y) = C(x+y, x) and the y<0 case.
func TestBeta_MatchesBinomial(t *testing.T) {
	assert.Equal(t, int64(0), binomial.Beta(3, -1).Int64())
	assert.Equal(t, int64(1), binomial.Beta(3, 0).Int64())
	assert.Equal(t, int64(4), binomial.Beta(3, 1).Int64())
	assert.Equal(t, int64(10), binomial.Beta(3, 2).Int64())
	assert.Equal(t, float64(10), binomial.BetaFloat(3, 2))
	assert.True(t, binomial.BetaAtMost(3, 2, 10))
	assert.False(t, binomial.BetaAtMost(3, 2, 9))
}

// TestNAdvance_InputValidation checks the fail-fast guards.
func TestNAdvance_InputValidation(t *testing.T) {
	_, err := binomial.NAdvance(0, 1, binomial.TrajectoryMaximum)
	assert.ErrorIs(t, err, binomial.ErrNoBlocks)

	_, err = binomial.NAdvance(5, 0, binomial.TrajectoryMaximum)
	assert.ErrorIs(t, err, binomial.ErrNoSnapshots)

	_, err = binomial.NAdvance(5, 2, binomial.Trajectory(9))
	assert.ErrorIs(t, err, binomial.ErrBadTrajectory)
}

// TestNAdvance_LimitingCases checks the minimal- and maximal-storage
// shortcuts.
func TestNAdvance_LimitingCases(t *testing.T) {
	for _, trajectory := range []binomial.Trajectory{binomial.TrajectoryMaximum, binomial.TrajectoryRevolve} {
		adv, err := binomial.NAdvance(10, 1, trajectory)
		require.NoError(t, err)
		assert.Equal(t, 9, adv, "one snapshot walks to the last step")

		adv, err = binomial.NAdvance(10, 9, trajectory)
		require.NoError(t, err)
		assert.Equal(t, 1, adv, "maximal storage advances a single step")

		adv, err = binomial.NAdvance(10, 50, trajectory)
		require.NoError(t, err)
		assert.Equal(t, 1, adv, "excess snapshots are discarded")
	}
}

// TestNAdvance_GeneralCase pins down hand-derived interior values.
func TestNAdvance_GeneralCase(t *testing.T) {
	// n=4, s=2: t=2, β(2,1)=3, β(2,2)=6; maximum yields n-β(2,1)+β(2,0)=2.
	adv, err := binomial.NAdvance(4, 2, binomial.TrajectoryMaximum)
	require.NoError(t, err)
	assert.Equal(t, 2, adv)

	// Same point, classical revolve trajectory: β(2,0)=1.
	adv, err = binomial.NAdvance(4, 2, binomial.TrajectoryRevolve)
	require.NoError(t, err)
	assert.Equal(t, 1, adv)
}

// TestNAdvance_StaysInRange verifies 1 <= advance < n over a grid, for
// both trajectories - the property every schedule loop depends on.
func TestNAdvance_StaysInRange(t *testing.T) {
	for _, trajectory := range []binomial.Trajectory{binomial.TrajectoryMaximum, binomial.TrajectoryRevolve} {
		for n := 2; n <= 120; n++ {
			for s := 1; s <= 12; s++ {
				adv, err := binomial.NAdvance(n, s, trajectory)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, adv, 1, "n=%d s=%d %s", n, s, trajectory)
				assert.Less(t, adv, n, "n=%d s=%d %s", n, s, trajectory)
			}
		}
	}
}

// TestOptimalSteps_BaseCases checks the closed-form regions.
func TestOptimalSteps_BaseCases(t *testing.T) {
	// n <= s+1: every step runs exactly once.
	v, err := binomial.OptimalSteps(5, 4)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	// s = 1: triangular walk.
	v, err = binomial.OptimalSteps(4, 1)
	require.NoError(t, err)
	assert.Equal(t, 9, v)

	v, err = binomial.OptimalSteps(10, 1)
	require.NoError(t, err)
	assert.Equal(t, 54, v)
}

// TestOptimalSteps_Monotonic verifies more snapshots never cost more.
func TestOptimalSteps_Monotonic(t *testing.T) {
	for n := 2; n <= 60; n += 7 {
		prev := 1 << 30
		for s := 1; s < n; s++ {
			v, err := binomial.OptimalSteps(n, s)
			require.NoError(t, err)
			assert.LessOrEqual(t, v, prev, "cost must be non-increasing in snapshots (n=%d s=%d)", n, s)
			prev = v
		}
	}
}

// TestOptimalSteps_InputValidation checks the fail-fast guards.
func TestOptimalSteps_InputValidation(t *testing.T) {
	_, err := binomial.OptimalSteps(0, 1)
	assert.ErrorIs(t, err, binomial.ErrInvalidSteps)

	_, err = binomial.OptimalSteps(5, 0)
	assert.ErrorIs(t, err, binomial.ErrInvalidSnapshots)

	_, err = binomial.OptimalSteps(5, 5)
	assert.ErrorIs(t, err, binomial.ErrInvalidSnapshots)
}

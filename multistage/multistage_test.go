package multistage_test

import (
	"testing"

	"github.com/katalvlaran/revolve/binomial"
	"github.com/katalvlaran/revolve/multistage"
	"github.com/katalvlaran/revolve/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drive consumes the schedule to EndReverse, mirroring driver state and
// asserting the stream invariants after every action.
func drive(t *testing.T, s schedule.CheckpointSchedule, maxN int, limits map[schedule.StorageType]int) (forwardSteps int, actions []string) {
	t.Helper()

	snaps := map[schedule.StorageType]map[int]bool{schedule.RAM: {}, schedule.Disk: {}}
	modelN, modelR := 0, 0
	depsLive := false
	for {
		act, err := s.Next()
		require.NoError(t, err)
		actions = append(actions, act.String())

		switch a := act.(type) {
		case schedule.Forward:
			require.Equal(t, modelN, a.N0)
			require.Less(t, a.N0, a.N1)
			require.LessOrEqual(t, a.N1, maxN-modelR)
			forwardSteps += a.N1 - a.N0
			modelN = a.N1
			if a.WriteICs {
				require.False(t, snaps[a.Storage][a.N0])
				snaps[a.Storage][a.N0] = true
			}
			if a.WriteAdjDeps {
				require.Equal(t, a.N0+1, a.N1)
				depsLive = true
			}
		case schedule.Reverse:
			require.Equal(t, maxN-modelR, a.N1)
			require.True(t, depsLive)
			modelR += a.Len()
			depsLive = false
		case schedule.Copy:
			require.True(t, snaps[a.From][a.N], "copy of step %d from %s", a.N, a.From)
			modelN = a.N
		case schedule.Move:
			require.True(t, snaps[a.From][a.N], "move of step %d from %s", a.N, a.From)
			delete(snaps[a.From], a.N)
			modelN = a.N
		case schedule.EndForward:
			require.Equal(t, maxN, modelN)
		case schedule.EndReverse:
			require.Equal(t, maxN, modelR)
		}
		require.Equal(t, modelN, s.N())
		require.Equal(t, modelR, s.R())
		for tier, limit := range limits {
			require.LessOrEqual(t, len(snaps[tier]), limit, "%s capacity after %s", tier, act)
		}
		if _, done := act.(schedule.EndReverse); done {
			return forwardSteps, actions
		}
	}
}

// TestNew_InputValidation checks fail-fast construction.
func TestNew_InputValidation(t *testing.T) {
	_, err := multistage.New(0, 1, 0, nil)
	assert.ErrorIs(t, err, multistage.ErrInvalidMaxN)

	_, err = multistage.New(10, -1, 0, nil)
	assert.ErrorIs(t, err, multistage.ErrInvalidSnapshots)

	_, err = multistage.New(10, 0, 0, nil)
	assert.ErrorIs(t, err, binomial.ErrNoSnapshots, "no snapshots cannot schedule a multi-step run")

	_, err = multistage.New(10, 1, 0, &multistage.Options{Trajectory: binomial.Trajectory(7)})
	assert.ErrorIs(t, err, binomial.ErrBadTrajectory)
}

// TestSingleSlot_ReferenceCount verifies the hand-derived total for
// max_n=4 with one RAM slot: 10 forward step executions.
func TestSingleSlot_ReferenceCount(t *testing.T) {
	s, err := multistage.New(4, 1, 0, nil)
	require.NoError(t, err)
	forward, _ := drive(t, s, 4, map[schedule.StorageType]int{schedule.RAM: 1, schedule.Disk: 0})
	assert.Equal(t, 10, forward)
}

// TestDiskOnly_BothTrajectories runs max_n=10 with three disk slots.
// Both trajectories stay within the binomial optimum for the
// recomputation work and never touch RAM.
func TestDiskOnly_BothTrajectories(t *testing.T) {
	optimal, err := binomial.OptimalSteps(10, 3)
	require.NoError(t, err)

	var forwards []int
	for _, trajectory := range []binomial.Trajectory{binomial.TrajectoryMaximum, binomial.TrajectoryRevolve} {
		s, err := multistage.New(10, 0, 3, &multistage.Options{Trajectory: trajectory})
		require.NoError(t, err)

		assert.False(t, s.UsesStorageType(schedule.RAM), "no RAM slots allocated")
		assert.True(t, s.UsesStorageType(schedule.Disk))

		forward, _ := drive(t, s, 10, map[schedule.StorageType]int{schedule.RAM: 0, schedule.Disk: 3})
		// Recomputation work excludes the 10 primal steps.
		assert.LessOrEqual(t, forward-10, optimal, "trajectory %s", trajectory)
		forwards = append(forwards, forward)
	}
	assert.Equal(t, forwards[0], forwards[1], "both trajectories are optimal, so their totals agree")
}

// TestMixedTiers_Allocation verifies the calibration-driven RAM/disk
// split: slot counts are preserved and capacities hold throughout.
func TestMixedTiers_Allocation(t *testing.T) {
	weights, allocation, err := multistage.AllocateSnapshots(20, 2, 3, nil)
	require.NoError(t, err)
	require.Len(t, allocation, 5)
	require.Len(t, weights, 5)

	var ram, disk int
	for _, tier := range allocation {
		switch tier {
		case schedule.RAM:
			ram++
		case schedule.Disk:
			disk++
		}
	}
	assert.Equal(t, 2, ram)
	assert.Equal(t, 3, disk)
	for _, w := range weights {
		assert.Positive(t, w, "every slot is written at least once")
	}

	s, err := multistage.New(20, 2, 3, nil)
	require.NoError(t, err)
	drive(t, s, 20, map[schedule.StorageType]int{schedule.RAM: 2, schedule.Disk: 3})
}

// TestValidityGrid runs the mirror harness across problem sizes.
func TestValidityGrid(t *testing.T) {
	for _, tc := range []struct{ n, ram, disk int }{
		{1, 1, 0}, {2, 1, 0}, {10, 3, 0}, {25, 0, 5}, {64, 4, 4}, {100, 10, 0},
	} {
		s, err := multistage.New(tc.n, tc.ram, tc.disk, nil)
		require.NoError(t, err, "n=%d ram=%d disk=%d", tc.n, tc.ram, tc.disk)
		drive(t, s, tc.n, map[schedule.StorageType]int{schedule.RAM: tc.ram, schedule.Disk: tc.disk})
	}
}

// TestDeterminism verifies identical parameters yield identical streams.
func TestDeterminism(t *testing.T) {
	run := func() []string {
		s, err := multistage.New(30, 2, 4, nil)
		require.NoError(t, err)
		_, actions := drive(t, s, 30, map[schedule.StorageType]int{schedule.RAM: 2, schedule.Disk: 4})

		return actions
	}
	assert.Equal(t, run(), run())
}

// TestExhaustion checks the terminal contract.
func TestExhaustion(t *testing.T) {
	s, err := multistage.New(5, 2, 0, nil)
	require.NoError(t, err)
	drive(t, s, 5, map[schedule.StorageType]int{schedule.RAM: 2, schedule.Disk: 0})

	assert.True(t, s.IsExhausted())
	_, err = s.Next()
	assert.ErrorIs(t, err, schedule.ErrExhausted)
}

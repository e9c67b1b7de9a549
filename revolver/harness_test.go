package revolver_test

import (
	"testing"

	"github.com/katalvlaran/revolve/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// driveResult aggregates the observable quantities of a full run.
type driveResult struct {
	forwardSteps int
	reverseSteps int
	actions      []string
	peak         map[schedule.StorageType]int
}

// drive consumes a schedule to EndReverse, mirroring the driver-side
// state and asserting the stream invariants after every action:
// forwards start at the current position, reverses start at the adjoint
// front with dependency data in place, restores reference live restart
// checkpoints, and per-tier capacity limits hold throughout. limits
// maps tier -> capacity (-1 for unlimited).
//
// Adjoint-dependency writes are transient for the revolver family: each
// is produced by the unit forward immediately preceding its reverse and
// cleared by that reverse.
func drive(t *testing.T, s schedule.CheckpointSchedule, maxN int, limits map[schedule.StorageType]int) driveResult {
	t.Helper()

	res := driveResult{peak: map[schedule.StorageType]int{}}
	snaps := map[schedule.StorageType]map[int]bool{
		schedule.RAM:  {},
		schedule.Disk: {},
	}
	modelN, modelR := 0, 0
	depsLive := false

	for step := 0; ; step++ {
		require.Less(t, step, 100*maxN*maxN+1000, "schedule must terminate")
		act, err := s.Next()
		require.NoError(t, err, "Next must not fail mid-stream")
		res.actions = append(res.actions, act.String())

		switch a := act.(type) {
		case schedule.Forward:
			require.Equal(t, modelN, a.N0, "forward must start at the current position")
			require.Less(t, a.N0, a.N1, "forward must advance")
			require.LessOrEqual(t, a.N1, maxN-modelR, "no forward beyond the adjoint front")
			res.forwardSteps += a.N1 - a.N0
			modelN = a.N1
			if a.WriteICs {
				require.Contains(t, []schedule.StorageType{schedule.RAM, schedule.Disk}, a.Storage,
					"restart data must go to a persistent tier")
				require.False(t, snaps[a.Storage][a.N0], "step %d already checkpointed in %s", a.N0, a.Storage)
				snaps[a.Storage][a.N0] = true
			}
			if a.WriteAdjDeps {
				require.Equal(t, a.N0+1, a.N1, "dependency data is written one step at a time")
				depsLive = true
			}

		case schedule.Reverse:
			require.Equal(t, maxN-modelR, a.N1, "reverse must start at the adjoint front")
			require.Less(t, a.N0, a.N1, "reverse must advance")
			require.True(t, depsLive, "adjoint dependencies must be available")
			res.reverseSteps += a.N1 - a.N0
			modelR += a.N1 - a.N0
			if a.ClearAdjDeps {
				depsLive = false
			}

		case schedule.Copy:
			require.True(t, snaps[a.From][a.N], "copy of step %d from %s references no checkpoint", a.N, a.From)
			require.Equal(t, schedule.Work, a.To, "restores target working storage")
			modelN = a.N

		case schedule.Move:
			require.True(t, snaps[a.From][a.N], "move of step %d from %s references no checkpoint", a.N, a.From)
			require.Equal(t, schedule.Work, a.To, "restores target working storage")
			delete(snaps[a.From], a.N)
			modelN = a.N

		case schedule.EndForward:
			require.Equal(t, maxN, modelN, "EndForward must coincide with the last forward step")
			require.Zero(t, modelR, "EndForward before any adjoint work")

		case schedule.EndReverse:
			require.Equal(t, maxN, modelR, "EndReverse must complete the adjoint")
		}

		// Position mirror and capacity discipline after every action.
		require.Equal(t, modelN, s.N(), "schedule and driver disagree on n after %s", act)
		require.Equal(t, modelR, s.R(), "schedule and driver disagree on r after %s", act)
		for tier, limit := range limits {
			if limit >= 0 {
				require.LessOrEqual(t, len(snaps[tier]), limit, "%s capacity exceeded after %s", tier, act)
			}
			res.peak[tier] = max(res.peak[tier], len(snaps[tier]))
		}

		if _, done := act.(schedule.EndReverse); done {
			break
		}
	}

	assert.Equal(t, maxN, res.reverseSteps, "every step must be adjoined exactly once")

	return res
}

// collect drains a schedule into a printable action trace.
func collect(t *testing.T, s schedule.CheckpointSchedule) []string {
	t.Helper()

	var out []string
	for {
		act, err := s.Next()
		require.NoError(t, err)
		out = append(out, act.String())
		if _, done := act.(schedule.EndReverse); done {
			return out
		}
	}
}

package binomial

// NAdvance returns the number of forward steps to advance before storing
// the next restart checkpoint, given n remaining blocks and the given
// number of free snapshot slots.
//
// This is the step rule of GW2000: find t such that
// β(s, t-1) < n <= β(s, t), computing the β values as a side effect via
// the integer recurrence β(s, t) = β(s, t-1)·(s+t)/t, then pick the step
// within the optimal region according to the trajectory.
//
// Preconditions:
//   - n >= 1, snapshots >= 1 (excess snapshots are discarded).
//
// Complexity: O(t) integer operations, t = O(n^(1/s)) for fixed s.
func NAdvance(n, snapshots int, trajectory Trajectory) (int, error) {
	if n < 1 {
		return 0, ErrNoBlocks
	}
	if snapshots <= 0 {
		return 0, ErrNoSnapshots
	}
	if !trajectory.Valid() {
		return 0, ErrBadTrajectory
	}

	// 1) Discard excess snapshots.
	snapshots = max(min(snapshots, n-1), 1)

	// 2) Handle limiting cases.
	if snapshots == 1 {
		return n - 1, nil // minimal storage
	} else if snapshots == n-1 {
		return 1, nil // maximal storage
	}

	// 3) Find t as in GW2000 Proposition 1 ('m' in GW2000 is n here,
	//    's' is snapshots). A minimal rerun of 1 is the maximal-storage
	//    case handled above, so start from t = 2.
	t := 2
	bSTm2 := 1
	bSTm1 := snapshots + 1
	bST := ((snapshots + 1) * (snapshots + 2)) / 2
	for bSTm1 >= n || n > bST {
		t++
		bSTm2 = bSTm1
		bSTm1 = bST
		bST = (bST * (snapshots + t)) / t
	}

	// 4) Pick the step size inside the optimal region.
	if trajectory == TrajectoryMaximum {
		// Maximal step size compatible with Fig. 4 of GW2000.
		bSm1Tm2 := (bSTm2 * snapshots) / (snapshots + t - 2)
		if n <= bSTm1+bSm1Tm2 {
			return n - bSTm1 + bSTm2, nil
		}
		bSm1Tm1 := (bSTm1 * snapshots) / (snapshots + t - 1)
		bSm2Tm1 := (bSm1Tm1 * (snapshots - 1)) / (snapshots + t - 2)
		if n <= bSTm1+bSm2Tm1+bSm1Tm2 {
			return bSTm2 + bSm1Tm2, nil
		} else if n <= bSTm1+bSm1Tm1+bSm2Tm1 {
			return n - bSm1Tm1 - bSm2Tm1, nil
		}

		return bSTm1, nil
	}

	// TrajectoryRevolve: the equation at the bottom of p. 34 of GW2000.
	bSm1Tm1 := (bSTm1 * snapshots) / (snapshots + t - 1)
	bSm2Tm1 := (bSm1Tm1 * (snapshots - 1)) / (snapshots + t - 2)
	switch {
	case n <= bSTm1+bSm2Tm1:
		return bSTm2, nil
	case n < bSTm1+bSm1Tm1+bSm2Tm1:
		return n - bSm1Tm1 - bSm2Tm1, nil
	default:
		return bSTm1, nil
	}
}

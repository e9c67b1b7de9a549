// Package twolevel provides the online periodic/binomial schedule.
package twolevel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/revolve/binomial"
	"github.com/katalvlaran/revolve/schedule"
)

// Sentinel errors for construction.
var (
	// ErrInvalidPeriod indicates a non-positive checkpoint period.
	ErrInvalidPeriod = errors.New("twolevel: period must be positive")

	// ErrInvalidStorage indicates a binomial storage tier other than
	// RAM or disk.
	ErrInvalidStorage = errors.New("twolevel: invalid binomial storage")

	// ErrInvalidSnapshots indicates a negative binomial snapshot count.
	ErrInvalidSnapshots = errors.New("twolevel: invalid number of snapshots")
)

// Options configures the inner binomial solver.
type Options struct {
	// BinomialStorage is the tier of the additional restart checkpoints
	// used between periodic disk checkpoints: RAM or Disk.
	BinomialStorage schedule.StorageType

	// BinomialTrajectory selects the step-rule solution.
	BinomialTrajectory binomial.Trajectory
}

// DefaultOptions stores binomial checkpoints on disk with the
// "maximum" trajectory.
func DefaultOptions() Options {
	return Options{
		BinomialStorage:    schedule.Disk,
		BinomialTrajectory: binomial.TrajectoryMaximum,
	}
}

// Schedule is the two-level periodic/binomial checkpointing schedule.
// Online; unlimited adjoint calculations permitted.
type Schedule struct {
	schedule.State

	period     int
	binSnaps   int
	binStorage schedule.StorageType
	trajectory binomial.Trajectory

	endForwardDone bool
	reverse        []schedule.Action
	ridx           int
}

// New builds the schedule: a disk checkpoint every period forward
// steps, with binomialSnapshots extra slots for the reverse sweep.
func New(period, binomialSnapshots int, opts *Options) (*Schedule, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}
	if binomialSnapshots < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSnapshots, binomialSnapshots)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.BinomialStorage != schedule.RAM && o.BinomialStorage != schedule.Disk {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStorage, o.BinomialStorage)
	}
	if !o.BinomialTrajectory.Valid() {
		return nil, binomial.ErrBadTrajectory
	}

	return &Schedule{
		period:     period,
		binSnaps:   binomialSnapshots,
		binStorage: o.BinomialStorage,
		trajectory: o.BinomialTrajectory,
	}, nil
}

// IsExhausted always reports false: the periodic disk checkpoints stay
// valid, so any number of adjoint calculations may run.
func (s *Schedule) IsExhausted() bool { return false }

// UsesStorageType reports whether the schedule emits actions against
// the given tier.
func (s *Schedule) UsesStorageType(tier schedule.StorageType) bool {
	switch tier {
	case schedule.Disk:
		return true // periodic checkpoints
	case schedule.RAM:
		return s.binStorage == schedule.RAM
	case schedule.Work:
		return true
	default:
		return false
	}
}

// Next yields the next action. Before Finalize the schedule emits one
// periodic forward segment per call; afterwards it replays the reverse
// pass, regenerating it for every new adjoint calculation.
func (s *Schedule) Next() (schedule.Action, error) {
	// 1) Online forward phase.
	if s.MaxN() == 0 {
		n0 := s.N()
		n1 := n0 + s.period
		s.SetN(n1)

		return schedule.Forward{N0: n0, N1: n1, WriteICs: true, Storage: schedule.Disk}, nil
	}

	// 2) Forward -> reverse boundary, exactly once.
	if !s.endForwardDone {
		s.endForwardDone = true

		return schedule.EndForward{}, nil
	}

	// 3) Reverse pass, expanded per adjoint calculation.
	if s.reverse == nil {
		rev, err := buildReverse(s.MaxN(), s.period, s.binSnaps, s.binStorage, s.trajectory)
		if err != nil {
			return nil, err
		}
		s.reverse = rev
		s.ridx = 0
		// A new adjoint calculation starts from r = 0.
		s.SetR(0)
	}
	act := s.reverse[s.ridx]
	s.ridx++
	switch a := act.(type) {
	case schedule.Forward:
		s.SetN(a.N1)
	case schedule.Reverse:
		s.SetR(s.R() + a.Len())
	case schedule.Copy:
		s.SetN(a.N)
	case schedule.Move:
		s.SetN(a.N)
	case schedule.EndReverse:
		// r stays at max_n; the next call starts a new reverse.
		s.reverse = nil
	}

	return act, nil
}

// buildReverse expands one full adjoint calculation over [0, maxN).
func buildReverse(maxN, period, binSnaps int, binStorage schedule.StorageType, trajectory binomial.Trajectory) ([]schedule.Action, error) {
	var acts []schedule.Action
	r := 0
	for r < maxN {
		// 1) Locate the period holding the next step to adjoin.
		n0s := ((maxN - r - 1) / period) * period
		n1s := min(n0s+period, maxN)
		if r != maxN-n1s {
			return nil, schedule.ErrInvalidState
		}

		// 2) Adjoin the period with the periodic checkpoint anchored at
		//    its start plus the binomial slots.
		snapshots := []int{n0s}
		for r < maxN-n0s {
			if len(snapshots) == 0 {
				return nil, schedule.ErrInvalidState
			}
			cpN := snapshots[len(snapshots)-1]
			var n int
			if cpN == maxN-r-1 {
				snapshots = snapshots[:len(snapshots)-1]
				n = cpN
				if cpN == n0s {
					acts = append(acts, schedule.Copy{N: cpN, From: schedule.Disk, To: schedule.Work})
				} else {
					acts = append(acts, schedule.Move{N: cpN, From: binStorage, To: schedule.Work})
				}
			} else {
				n = cpN
				if cpN == n0s {
					acts = append(acts, schedule.Copy{N: cpN, From: schedule.Disk, To: schedule.Work})
				} else {
					acts = append(acts, schedule.Copy{N: cpN, From: binStorage, To: schedule.Work})
				}

				// The reloaded slot stays usable, hence the extra slot.
				adv, err := binomial.NAdvance(maxN-r-n, binSnaps+1-len(snapshots)+1, trajectory)
				if err != nil {
					return nil, err
				}
				n0, n1 := n, n+adv
				n = n1
				acts = append(acts, schedule.Forward{N0: n0, N1: n1, Storage: schedule.Work})

				for n < maxN-r-1 {
					adv, err = binomial.NAdvance(maxN-r-n, binSnaps+1-len(snapshots), trajectory)
					if err != nil {
						return nil, err
					}
					n0, n1 = n, n+adv
					n = n1
					acts = append(acts, schedule.Forward{N0: n0, N1: n1, WriteICs: true, Storage: binStorage})
					if len(snapshots) >= binSnaps+1 {
						return nil, schedule.ErrInvalidState
					}
					snapshots = append(snapshots, n0)
				}
				if n != maxN-r-1 {
					return nil, schedule.ErrInvalidState
				}
			}

			// 3) Final unit step of the sub-problem, then its adjoint.
			n++
			acts = append(acts, schedule.Forward{N0: n - 1, N1: n, WriteAdjDeps: true, Storage: schedule.Work})
			r++
			acts = append(acts, schedule.Reverse{N1: n, N0: n - 1, ClearAdjDeps: true})
		}
		if r != maxN-n0s || len(snapshots) != 0 {
			return nil, schedule.ErrInvalidState
		}
	}
	acts = append(acts, schedule.EndReverse{})

	return acts, nil
}

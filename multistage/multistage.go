// Package multistage provides the MultiStage binomial schedule.
package multistage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/revolve/binomial"
	"github.com/katalvlaran/revolve/schedule"
)

// Sentinel errors for construction.
var (
	// ErrInvalidMaxN indicates a non-positive forward step count.
	ErrInvalidMaxN = errors.New("multistage: max_n must be positive")

	// ErrInvalidSnapshots indicates a negative snapshot count or no
	// snapshots at all for a multi-step calculation.
	ErrInvalidSnapshots = errors.New("multistage: invalid number of snapshots")
)

// Options configures the schedule. The zero value selects the
// "maximum" trajectory.
type Options struct {
	// Trajectory selects the Griewank–Walther step-rule solution; see
	// package binomial.
	Trajectory binomial.Trajectory
}

// DefaultOptions returns the "maximum" trajectory.
func DefaultOptions() Options {
	return Options{Trajectory: binomial.TrajectoryMaximum}
}

// Schedule is the MultiStage binomial checkpointing schedule. Offline,
// one adjoint calculation permitted.
type Schedule struct {
	schedule.State

	actions   []schedule.Action
	idx       int
	exhausted bool

	snapRAM, snapDisk int
	storage           []schedule.StorageType
	trajectory        binomial.Trajectory
}

// New builds the schedule for maxN forward steps with at most snapRAM
// restart checkpoints in memory and snapDisk on disk.
//
// When both tiers hold slots, the RAM/disk split is decided by a
// calibration run (see AllocateSnapshots); with a single tier the
// allocation is immediate.
func New(maxN, snapRAM, snapDisk int, opts *Options) (*Schedule, error) {
	if maxN < 1 {
		return nil, fmt.Errorf("%w: max_n=%d", ErrInvalidMaxN, maxN)
	}
	if snapRAM < 0 || snapDisk < 0 {
		return nil, fmt.Errorf("%w: snap_ram=%d, snap_disk=%d", ErrInvalidSnapshots, snapRAM, snapDisk)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if !o.Trajectory.Valid() {
		return nil, binomial.ErrBadTrajectory
	}

	snapRAM = min(snapRAM, maxN-1)
	snapDisk = min(snapDisk, maxN-1)
	var storage []schedule.StorageType
	switch {
	case snapRAM == 0:
		storage = uniform(schedule.Disk, snapDisk)
	case snapDisk == 0:
		storage = uniform(schedule.RAM, snapRAM)
	default:
		ao := DefaultAllocOptions()
		ao.Trajectory = o.Trajectory
		var err error
		if _, storage, err = AllocateSnapshots(maxN, snapRAM, snapDisk, &ao); err != nil {
			return nil, err
		}
	}
	s := &Schedule{
		snapRAM:    count(storage, schedule.RAM),
		snapDisk:   count(storage, schedule.Disk),
		storage:    storage,
		trajectory: o.Trajectory,
	}
	if err := s.Init(maxN); err != nil {
		return nil, err
	}
	acts, err := expand(maxN, storage, o.Trajectory)
	if err != nil {
		return nil, err
	}
	s.actions = acts

	return s, nil
}

// IsExhausted reports whether the schedule has concluded.
func (s *Schedule) IsExhausted() bool { return s.exhausted }

// UsesStorageType reports whether the schedule emits actions against
// the given tier.
func (s *Schedule) UsesStorageType(tier schedule.StorageType) bool {
	switch tier {
	case schedule.RAM:
		return s.snapRAM > 0
	case schedule.Disk:
		return s.snapDisk > 0
	case schedule.Work:
		return true
	default:
		return false
	}
}

// Next replays the next action, tracking the position pair.
func (s *Schedule) Next() (schedule.Action, error) {
	if s.exhausted {
		return nil, schedule.ErrExhausted
	}
	if s.idx >= len(s.actions) {
		return nil, schedule.ErrInvalidState
	}
	act := s.actions[s.idx]
	s.idx++
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
		s.exhausted = true
	}

	return act, nil
}

// expand runs the Griewank–Walther recursion once, emitting the whole
// action stream up front.
func expand(maxN int, storage []schedule.StorageType, trajectory binomial.Trajectory) ([]schedule.Action, error) {
	var acts []schedule.Action
	var snapshots []int
	total := len(storage)

	write := func(n int) (schedule.StorageType, error) {
		if len(snapshots) >= total {
			return schedule.NoStorage, fmt.Errorf("%w: snapshot stack overflow at step %d", schedule.ErrInvalidState, n)
		}
		snapshots = append(snapshots, n)

		return storage[len(snapshots)-1], nil
	}

	// 1) Forward sweep: checkpoint at every split point.
	n, r := 0, 0
	for n < maxN-1 {
		adv, err := binomial.NAdvance(maxN-n, total-len(snapshots), trajectory)
		if err != nil {
			return nil, err
		}
		n0, n1 := n, n+adv
		n = n1
		tier, err := write(n0)
		if err != nil {
			return nil, err
		}
		acts = append(acts, schedule.Forward{N0: n0, N1: n1, WriteICs: true, Storage: tier})
	}
	if n != maxN-1 {
		return nil, schedule.ErrInvalidState
	}

	// 2) Forward -> reverse turn.
	n++
	acts = append(acts,
		schedule.Forward{N0: n - 1, N1: n, WriteAdjDeps: true, Storage: schedule.Work},
		schedule.EndForward{})
	r++
	acts = append(acts, schedule.Reverse{N1: n, N0: n - 1, ClearAdjDeps: true})

	// 3) Reverse sweep: pop the stack, recompute the gap, adjoin.
	for r < maxN {
		if len(snapshots) == 0 {
			return nil, schedule.ErrInvalidState
		}
		cpN := snapshots[len(snapshots)-1]
		cpTier := storage[len(snapshots)-1]
		if cpN == maxN-r-1 {
			snapshots = snapshots[:len(snapshots)-1]
			n = cpN
			acts = append(acts, schedule.Move{N: cpN, From: cpTier, To: schedule.Work})
		} else {
			n = cpN
			acts = append(acts, schedule.Copy{N: cpN, From: cpTier, To: schedule.Work})

			// The reloaded slot stays usable, hence the extra slot.
			adv, err := binomial.NAdvance(maxN-r-n, total-len(snapshots)+1, trajectory)
			if err != nil {
				return nil, err
			}
			n0, n1 := n, n+adv
			n = n1
			acts = append(acts, schedule.Forward{N0: n0, N1: n1, Storage: schedule.Work})

			for n < maxN-r-1 {
				adv, err = binomial.NAdvance(maxN-r-n, total-len(snapshots), trajectory)
				if err != nil {
					return nil, err
				}
				n0, n1 = n, n+adv
				n = n1
				tier, err := write(n0)
				if err != nil {
					return nil, err
				}
				acts = append(acts, schedule.Forward{N0: n0, N1: n1, WriteICs: true, Storage: tier})
			}
			if n != maxN-r-1 {
				return nil, schedule.ErrInvalidState
			}
		}

		n++
		acts = append(acts, schedule.Forward{N0: n - 1, N1: n, WriteAdjDeps: true, Storage: schedule.Work})
		r++
		acts = append(acts, schedule.Reverse{N1: n, N0: n - 1, ClearAdjDeps: true})
	}
	if r != maxN || len(snapshots) != 0 {
		return nil, schedule.ErrInvalidState
	}
	acts = append(acts, schedule.EndReverse{})

	return acts, nil
}

// uniform returns n copies of tier.
func uniform(tier schedule.StorageType, n int) []schedule.StorageType {
	s := make([]schedule.StorageType, n)
	for i := range s {
		s[i] = tier
	}

	return s
}

// count returns the number of slots assigned to tier.
func count(storage []schedule.StorageType, tier schedule.StorageType) int {
	var c int
	for _, t := range storage {
		if t == tier {
			c++
		}
	}

	return c
}

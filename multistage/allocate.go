package multistage

import (
	"sort"

	"github.com/katalvlaran/revolve/binomial"
	"github.com/katalvlaran/revolve/schedule"
)

// AllocOptions weighs the calibration run behind AllocateSnapshots.
type AllocOptions struct {
	WriteWeight  float64
	ReadWeight   float64
	DeleteWeight float64
	Trajectory   binomial.Trajectory
}

// DefaultAllocOptions returns unit write/read weights and free deletes,
// the weighting under which the RAM/disk split matches Stumm & Walther.
func DefaultAllocOptions() AllocOptions {
	return AllocOptions{WriteWeight: 1, ReadWeight: 1, Trajectory: binomial.TrajectoryMaximum}
}

// AllocateSnapshots distributes the checkpointing units of a binomial
// schedule between RAM and disk.
//
// The schedule is executed virtually once with all units in a single
// tier, accumulating a read/write/delete weight per stack slot; the
// snapRAM heaviest slots are then assigned to RAM and the remainder to
// disk. For unit read/write weights and free deletes the distribution
// is equivalent to the MultiStage allocation of Stumm & Walther (2009).
func AllocateSnapshots(maxN, snapRAM, snapDisk int, opts *AllocOptions) ([]float64, []schedule.StorageType, error) {
	o := DefaultAllocOptions()
	if opts != nil {
		o = *opts
	}
	snapRAM = min(snapRAM, maxN-1)
	snapDisk = min(snapDisk, maxN-1)
	snapshots := min(snapRAM+snapDisk, maxN-1)
	weights := make([]float64, snapshots)

	// 1) Calibration run: one tier, full slot budget.
	cp, err := New(maxN, snapshots, 0, &Options{Trajectory: o.Trajectory})
	if err != nil {
		return nil, nil, err
	}
	snapshotI := -1
	for {
		act, err := cp.Next()
		if err != nil {
			return nil, nil, err
		}
		switch a := act.(type) {
		case schedule.Copy:
			if snapshotI < 0 {
				return nil, nil, schedule.ErrInvalidState
			}
			weights[snapshotI] += o.ReadWeight
		case schedule.Move:
			if snapshotI < 0 {
				return nil, nil, schedule.ErrInvalidState
			}
			weights[snapshotI] += o.ReadWeight
			if a.To == schedule.Work {
				weights[snapshotI] += o.DeleteWeight
				snapshotI--
			}
		case schedule.Forward:
			if a.WriteICs {
				snapshotI++
				if snapshotI >= snapshots {
					return nil, nil, schedule.ErrInvalidState
				}
				weights[snapshotI] += o.WriteWeight
			}
		}
		if _, done := act.(schedule.EndReverse); done {
			break
		}
	}
	if snapshotI != -1 {
		return nil, nil, schedule.ErrInvalidState
	}

	// 2) Heaviest slots to RAM, rest to disk; stable order on ties.
	allocation := make([]schedule.StorageType, snapshots)
	for i := range allocation {
		allocation[i] = schedule.Disk
	}
	order := make([]int, snapshots)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return weights[order[a]] > weights[order[b]]
	})
	for _, i := range order[:min(snapRAM, snapshots)] {
		allocation[i] = schedule.RAM
	}

	return weights, allocation, nil
}

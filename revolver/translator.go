package revolver

import (
	"fmt"

	"github.com/katalvlaran/revolve/schedule"
	"github.com/katalvlaran/revolve/sequence"
)

// Schedule is an offline revolver schedule: a flat operation list
// produced by package sequence, translated lazily - one operation per
// Next call - into the public action algebra.
//
// Offline, one adjoint calculation permitted.
type Schedule struct {
	schedule.State

	ops []sequence.Operation
	idx int

	// queue holds an action displaced by a same-operation emission
	// (EndForward follows the Forward that reaches max_n).
	queue []schedule.Action

	// mirror tracks the live checkpoint steps per persistent tier.
	mirror map[schedule.StorageType]map[int]bool

	snapRAM, snapDisk int
	usesRAM, usesDisk bool
	usesWork          bool
	makespan          float64
	exhausted         bool
}

// newSchedule wraps a built sequence in a translating schedule.
func newSchedule(maxN, snapRAM, snapDisk int, seq *sequence.Sequence) (*Schedule, error) {
	s := &Schedule{
		ops:      seq.Ops,
		mirror:   map[schedule.StorageType]map[int]bool{schedule.RAM: {}, schedule.Disk: {}},
		snapRAM:  snapRAM,
		snapDisk: snapDisk,
		makespan: seq.Makespan,
	}
	if err := s.Init(maxN); err != nil {
		return nil, err
	}

	// Declare a tier iff the operation list touches it.
	for _, op := range seq.Ops {
		switch op.Type {
		case sequence.OpWrite, sequence.OpRead, sequence.OpDiscard,
			sequence.OpWriteForward, sequence.OpDiscardForward:
			if op.Level == 0 {
				s.usesRAM = true
			} else {
				s.usesDisk = true
			}
		}
		if op.Type == sequence.OpRead {
			s.usesWork = true
		}
	}

	return s, nil
}

// tierOf maps a sequence storage level onto a checkpoint tier.
func tierOf(level int) schedule.StorageType {
	if level == 0 {
		return schedule.RAM
	}

	return schedule.Disk
}

// capacityOf returns the declared slot count of a tier.
func (s *Schedule) capacityOf(tier schedule.StorageType) int {
	if tier == schedule.RAM {
		return s.snapRAM
	}

	return s.snapDisk
}

// Makespan returns the modelled execution time of the schedule under
// the cost options it was built with.
func (s *Schedule) Makespan() float64 { return s.makespan }

// IsExhausted reports whether the schedule has concluded.
func (s *Schedule) IsExhausted() bool { return s.exhausted }

// UsesStorageType reports whether the schedule ever emits an action
// referencing the given tier.
func (s *Schedule) UsesStorageType(tier schedule.StorageType) bool {
	switch tier {
	case schedule.RAM:
		return s.usesRAM
	case schedule.Disk:
		return s.usesDisk
	case schedule.Work:
		return s.usesWork
	default:
		return false
	}
}

// Finalize accepts only n == max_n once the forward stands at max_n and
// fails otherwise: revolver schedules are offline.
func (s *Schedule) Finalize(n int) error { return s.State.Finalize(n) }

// Next translates the next operation into an action, maintaining the
// forward/reverse positions and the per-tier checkpoint mirror.
func (s *Schedule) Next() (schedule.Action, error) {
	// 1) Serve an action displaced by the previous operation.
	if len(s.queue) > 0 {
		act := s.queue[0]
		s.queue = s.queue[1:]

		return act, nil
	}
	if s.exhausted {
		return nil, schedule.ErrExhausted
	}

	// 2) Translate operations until one emits an action; writes and
	//    discards are bookkeeping only.
	for s.idx < len(s.ops) {
		op := s.ops[s.idx]
		s.idx++

		switch op.Type {
		case sequence.OpForward:
			return s.translateForward(op)

		case sequence.OpBackward:
			if op.N1 != s.N() {
				return nil, fmt.Errorf("%w: backward at %d, forward at %d", ErrInvalidActionIndex, op.N1, s.N())
			}
			if op.N1 != s.MaxN()-s.R() {
				return nil, fmt.Errorf("%w: backward at %d, adjoint at %d", ErrInvalidForwardStep, op.N1, s.MaxN()-s.R())
			}
			s.SetR(s.R() + 1)

			return schedule.Reverse{N1: op.N1, N0: op.N0, ClearAdjDeps: true}, nil

		case sequence.OpRead:
			return s.translateRead(op)

		case sequence.OpWrite:
			if op.N0 != s.N() {
				return nil, fmt.Errorf("%w: write at %d, forward at %d", ErrInvalidActionIndex, op.N0, s.N())
			}

		case sequence.OpWriteForward:
			if op.N0 != s.N()+1 {
				return nil, fmt.Errorf("%w: write-forward at %d, forward at %d", ErrInvalidActionIndex, op.N0, s.N())
			}

		case sequence.OpDiscard:
			// Lenient: the entry may already have been freed by the
			// Move emitted at its final read.
			delete(s.mirror[tierOf(op.Level)], op.N0)

		case sequence.OpDiscardForward:
			if op.N0 != s.N() {
				return nil, fmt.Errorf("%w: discard-forward at %d, forward at %d", ErrInvalidActionIndex, op.N0, s.N())
			}

		default:
			return nil, fmt.Errorf("%w: %s", ErrInvalidOperation, op.Type)
		}
	}

	// 3) Terminal state: memory must be drained; single-read disk
	//    checkpoints may remain, but never beyond the declared slots.
	if len(s.mirror[schedule.RAM]) != 0 {
		return nil, fmt.Errorf("%w: %d memory checkpoints left at end of reverse", schedule.ErrInvalidState, len(s.mirror[schedule.RAM]))
	}
	if len(s.mirror[schedule.Disk]) > s.snapDisk {
		return nil, fmt.Errorf("%w: %d disk checkpoints left, capacity %d", ErrCapacityExceeded, len(s.mirror[schedule.Disk]), s.snapDisk)
	}
	s.exhausted = true

	return schedule.EndReverse{}, nil
}

// translateForward emits the Forward action for op, deriving its write
// flags from the operation preceding it in the list.
func (s *Schedule) translateForward(op sequence.Operation) (schedule.Action, error) {
	if op.N0 != s.N() {
		return nil, fmt.Errorf("%w: forward from %d, position %d", ErrInvalidForwardStep, op.N0, s.N())
	}
	s.SetN(op.N1)

	writeICs := false
	writeAdjDeps := false
	storage := schedule.NoStorage
	if s.idx >= 2 {
		switch prev := s.ops[s.idx-2]; prev.Type {
		case sequence.OpWrite:
			if prev.N0 != op.N0 {
				return nil, fmt.Errorf("%w: checkpoint write at %d before forward from %d", ErrInvalidActionIndex, prev.N0, op.N0)
			}
			writeICs = true
			storage = tierOf(prev.Level)
			if err := s.record(storage, prev.N0); err != nil {
				return nil, err
			}
		case sequence.OpWriteForward:
			if prev.N0 != op.N1 {
				return nil, fmt.Errorf("%w: dependency write at %d before forward to %d", ErrInvalidActionIndex, prev.N0, op.N1)
			}
			writeAdjDeps = true
			storage = tierOf(prev.Level)
		}
	}

	act := schedule.Forward{
		N0: op.N0, N1: op.N1,
		WriteICs: writeICs, WriteAdjDeps: writeAdjDeps,
		Storage: storage,
	}
	if s.N() == s.MaxN() {
		if s.R() != 0 {
			return nil, fmt.Errorf("%w: forward completed with %d adjoint steps done", ErrInvalidReverseStep, s.R())
		}
		s.queue = append(s.queue, schedule.EndForward{})
	}

	return act, nil
}

// translateRead emits Copy, or Move when the step is about to be
// reversed and its slot can be freed.
func (s *Schedule) translateRead(op sequence.Operation) (schedule.Action, error) {
	tier := tierOf(op.Level)
	if !s.mirror[tier][op.N0] {
		return nil, fmt.Errorf("%w: read of step %d from %s, no such checkpoint", schedule.ErrInvalidState, op.N0, tier)
	}
	s.SetN(op.N0)
	if op.N0 == s.MaxN()-s.R()-1 {
		delete(s.mirror[tier], op.N0)

		return schedule.Move{N: op.N0, From: tier, To: schedule.Work}, nil
	}

	return schedule.Copy{N: op.N0, From: tier, To: schedule.Work}, nil
}

// record registers a checkpoint write in the mirror, enforcing the
// declared tier capacity.
func (s *Schedule) record(tier schedule.StorageType, n int) error {
	set := s.mirror[tier]
	if set[n] {
		return fmt.Errorf("%w: step %d already checkpointed in %s", schedule.ErrInvalidState, n, tier)
	}
	if len(set) >= s.capacityOf(tier) {
		return fmt.Errorf("%w: %s full (%d slots)", ErrCapacityExceeded, tier, s.capacityOf(tier))
	}
	set[n] = true

	return nil
}

// Package basic provides the trivial single-memory, single-disk and
// forward-only schedules.
package basic

import "github.com/katalvlaran/revolve/schedule"

// SingleMemory stores every adjoint dependency in working memory.
// Online, unlimited adjoint calculations permitted.
type SingleMemory struct {
	schedule.State

	endForwardDone bool
}

// NewSingleMemory returns the single-memory schedule.
func NewSingleMemory() *SingleMemory {
	return &SingleMemory{}
}

// IsExhausted always reports false: the stored dependencies permit any
// number of adjoint calculations.
func (s *SingleMemory) IsExhausted() bool { return false }

// UsesStorageType reports Work only: all data lives with the solver.
func (s *SingleMemory) UsesStorageType(tier schedule.StorageType) bool {
	return tier == schedule.Work
}

// Next yields an unbounded forward while online, then one full-range
// reverse per adjoint calculation.
func (s *SingleMemory) Next() (schedule.Action, error) {
	if s.MaxN() == 0 {
		n0 := s.N()
		s.SetN(schedule.Unlimited)

		return schedule.Forward{N0: n0, N1: schedule.Unlimited, WriteAdjDeps: true, Storage: schedule.Work}, nil
	}
	if !s.endForwardDone {
		s.endForwardDone = true

		return schedule.EndForward{}, nil
	}
	if s.R() == 0 {
		s.SetR(s.MaxN())

		return schedule.Reverse{N1: s.MaxN(), N0: 0, ClearAdjDeps: true}, nil
	}
	if s.R() == s.MaxN() {
		// Reset for a new reverse.
		s.SetR(0)

		return schedule.EndReverse{}, nil
	}

	return nil, schedule.ErrInvalidState
}

// SingleDisk stores every adjoint dependency on disk in unit-size
// segments. Online; unlimited adjoint calculations permitted unless
// MoveData consumes each segment on use.
type SingleDisk struct {
	schedule.State

	moveData       bool
	endForwardDone bool
	pendingReverse bool
	exhausted      bool
}

// NewSingleDisk returns the single-disk schedule. With moveData the
// reverse pass frees each disk segment as it is consumed, permitting
// exactly one adjoint calculation.
func NewSingleDisk(moveData bool) *SingleDisk {
	return &SingleDisk{moveData: moveData}
}

// IsExhausted reports whether a move-data reverse pass has completed.
func (s *SingleDisk) IsExhausted() bool { return s.exhausted }

// UsesStorageType reports Disk and Work.
func (s *SingleDisk) UsesStorageType(tier schedule.StorageType) bool {
	return tier == schedule.Disk || tier == schedule.Work
}

// Next yields unit forwards while online, then alternates restore and
// reverse actions walking the steps backwards.
func (s *SingleDisk) Next() (schedule.Action, error) {
	if s.exhausted {
		return nil, schedule.ErrExhausted
	}
	if s.MaxN() == 0 {
		n0 := s.N()
		s.SetN(n0 + 1)

		return schedule.Forward{N0: n0, N1: n0 + 1, WriteAdjDeps: true, Storage: schedule.Disk}, nil
	}
	if !s.endForwardDone {
		s.endForwardDone = true

		return schedule.EndForward{}, nil
	}
	if s.pendingReverse {
		s.pendingReverse = false
		n1 := s.MaxN() - s.R()
		s.SetR(s.MaxN() - (n1 - 1))

		return schedule.Reverse{N1: n1, N0: n1 - 1, ClearAdjDeps: true}, nil
	}
	if s.R() < s.MaxN() {
		n0 := s.MaxN() - s.R() - 1
		s.SetN(n0)
		s.pendingReverse = true
		if s.moveData {
			return schedule.Move{N: n0, From: schedule.Disk, To: schedule.Work}, nil
		}

		return schedule.Copy{N: n0, From: schedule.Disk, To: schedule.Work}, nil
	}

	// Reset for a new reverse; with moveData the segments are gone.
	s.SetR(0)
	if s.moveData {
		s.exhausted = true
	}

	return schedule.EndReverse{}, nil
}

// None performs no adjoint calculation: forward only, EndForward is the
// terminal action.
type None struct {
	schedule.State

	exhausted bool
}

// NewNone returns the forward-only schedule.
func NewNone() *None {
	return &None{}
}

// IsExhausted reports whether EndForward has been yielded.
func (s *None) IsExhausted() bool { return s.exhausted }

// UsesStorageType always reports false: nothing is ever stored.
func (s *None) UsesStorageType(schedule.StorageType) bool { return false }

// Next yields an unbounded forward while online, then EndForward once.
func (s *None) Next() (schedule.Action, error) {
	if s.exhausted {
		return nil, schedule.ErrExhausted
	}
	if s.MaxN() == 0 {
		n0 := s.N()
		s.SetN(schedule.Unlimited)

		return schedule.Forward{N0: n0, N1: schedule.Unlimited, Storage: schedule.NoStorage}, nil
	}
	s.exhausted = true

	return schedule.EndForward{}, nil
}

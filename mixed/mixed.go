package mixed

import (
	"fmt"

	"github.com/katalvlaran/revolve/schedule"
)

// Options configures the mixed schedule.
type Options struct {
	// Storage is the tier of the checkpointing units: RAM or Disk.
	Storage schedule.StorageType
}

// DefaultOptions stores checkpointing units on disk.
func DefaultOptions() Options {
	return Options{Storage: schedule.Disk}
}

// Schedule mixes forward restart data and adjoint-dependency data in a
// single pool of checkpointing units; each unit holds one or the other,
// never both. Offline, one adjoint calculation permitted.
type Schedule struct {
	schedule.State

	steps     []step
	idx       int
	exhausted bool

	snapshots int
	storage   schedule.StorageType
}

// step pairs an action with the position the schedule is at once the
// action has been yielded (the dependency-read resume point differs
// from the copied step, so the positions are recorded at expansion).
type step struct {
	act  schedule.Action
	n, r int
}

// New builds the mixed schedule for maxN forward steps and the given
// number of checkpointing units.
func New(maxN, snapshots int, opts *Options) (*Schedule, error) {
	if maxN < 1 {
		return nil, fmt.Errorf("%w: max_n=%d", ErrInvalidSteps, maxN)
	}
	if snapshots < min(1, maxN-1) {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSnapshots, snapshots)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Storage != schedule.RAM && o.Storage != schedule.Disk {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStorage, o.Storage)
	}
	s := &Schedule{
		snapshots: min(snapshots, maxN-1),
		storage:   o.Storage,
	}
	if err := s.Init(maxN); err != nil {
		return nil, err
	}
	steps, err := expand(maxN, s.snapshots, s.storage)
	if err != nil {
		return nil, err
	}
	s.steps = steps

	return s, nil
}

// IsExhausted reports whether the schedule has concluded.
func (s *Schedule) IsExhausted() bool { return s.exhausted }

// UsesStorageType reports whether the schedule emits actions against
// the given tier.
func (s *Schedule) UsesStorageType(tier schedule.StorageType) bool {
	switch tier {
	case s.storage, schedule.Work:
		return true
	default:
		return false
	}
}

// Next replays the next action together with its recorded position.
func (s *Schedule) Next() (schedule.Action, error) {
	if s.exhausted {
		return nil, schedule.ErrExhausted
	}
	if s.idx >= len(s.steps) {
		return nil, schedule.ErrInvalidState
	}
	st := s.steps[s.idx]
	s.idx++
	s.SetN(st.n)
	s.SetR(st.r)
	if _, done := st.act.(schedule.EndReverse); done {
		s.exhausted = true
	}

	return st.act, nil
}

// snapshotRef is one entry of the unit stack: how the unit will be
// consumed and the step it belongs to.
type snapshotRef struct {
	kind StepType
	n    int
}

// expand runs the DP-driven iteration once, emitting the whole stream.
func expand(maxN, snaps int, storage schedule.StorageType) ([]step, error) {
	t := Tabulate(maxN, snaps)
	t0 := Tabulate0(maxN, snaps, t)

	var out []step
	snapshotN := make(map[int]bool)
	var stack []snapshotRef
	n, r := 0, 0
	emit := func(act schedule.Action) { out = append(out, step{act: act, n: n, r: r}) }

	stepType := StepNone
	for {
		// 1) Advance the forward to the next step to adjoin, consuming
		//    units as the DP dictates.
		for n < maxN-r {
			n0 := n
			var e Entry
			if snapshotN[n0] {
				e = lookup0(t0, maxN-r-n0, snaps-len(stack))
			} else {
				e = lookup(t, maxN-r-n0, snaps-len(stack))
			}
			stepType = e.Kind
			n1 := n0 + e.Split

			switch e.Kind {
			case StepForwardReverse:
				if n1 <= n0 {
					return nil, fmt.Errorf("%w: empty forward-reverse segment at %d", schedule.ErrInvalidState, n0)
				}
				if n1 > n0+1 {
					n = n1 - 1
					emit(schedule.Forward{N0: n0, N1: n1 - 1, Storage: schedule.NoStorage})
				}
				n++
				emit(schedule.Forward{N0: n1 - 1, N1: n1, WriteAdjDeps: true, Storage: schedule.Work})

			case StepForward:
				if n1 <= n0 {
					return nil, fmt.Errorf("%w: empty forward segment at %d", schedule.ErrInvalidState, n0)
				}
				n = n1
				emit(schedule.Forward{N0: n0, N1: n1, Storage: schedule.NoStorage})

			case StepWriteData:
				if n1 != n0+1 {
					return nil, fmt.Errorf("%w: dependency write spanning %d steps", schedule.ErrInvalidState, n1-n0)
				}
				n = n1
				emit(schedule.Forward{N0: n0, N1: n1, WriteAdjDeps: true, Storage: storage})
				if snapshotN[n0] || len(stack) > snaps-1 {
					return nil, schedule.ErrInvalidState
				}
				snapshotN[n0] = true
				stack = append(stack, snapshotRef{kind: StepReadData, n: n0})

			case StepWriteICs:
				if n1 <= n0+1 {
					return nil, fmt.Errorf("%w: restart write spanning %d steps", schedule.ErrInvalidState, n1-n0)
				}
				n = n1
				emit(schedule.Forward{N0: n0, N1: n1, WriteICs: true, Storage: storage})
				if snapshotN[n0] || len(stack) > snaps-1 {
					return nil, schedule.ErrInvalidState
				}
				snapshotN[n0] = true
				stack = append(stack, snapshotRef{kind: StepReadICs, n: n0})

			default:
				return nil, fmt.Errorf("%w: unexpected step type", schedule.ErrInvalidState)
			}
		}
		if n != maxN-r {
			return nil, schedule.ErrInvalidState
		}
		if stepType != StepForwardReverse && stepType != StepReadData {
			return nil, schedule.ErrInvalidState
		}

		// 2) Adjoin one step.
		if r == 0 {
			emit(schedule.EndForward{})
		}
		r++
		emit(schedule.Reverse{N1: maxN - r + 1, N0: maxN - r, ClearAdjDeps: true})

		if r == maxN {
			break
		}

		// 3) Reload the top unit. Delete it if, after the deletion,
		//    the free units still cover the remaining dependency window.
		top := stack[len(stack)-1]
		stepType = top.kind
		cpDelete := top.n >= maxN-r-1-(snaps-len(stack)+1)
		if cpDelete {
			delete(snapshotN, top.n)
			stack = stack[:len(stack)-1]
		}
		n = top.n
		if top.kind == StepReadData {
			// A dependency snapshot cannot seed a forward restart; it
			// must be consumed by the very next adjoint step.
			if !cpDelete {
				return nil, schedule.ErrInvalidState
			}
			n++
		} else if top.kind != StepReadICs {
			return nil, schedule.ErrInvalidState
		}
		if cpDelete {
			emit(schedule.Move{N: top.n, From: storage, To: schedule.Work})
		} else {
			emit(schedule.Copy{N: top.n, From: storage, To: schedule.Work})
		}
	}

	if len(snapshotN) > 0 || len(stack) > 0 {
		return nil, schedule.ErrInvalidState
	}
	emit(schedule.EndReverse{})

	return out, nil
}

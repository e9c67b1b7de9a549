// Package mixed provides the mixed restart/dependency schedule and its
// dynamic program.
package mixed

import (
	"errors"
	"fmt"
)

// StepType classifies what a schedule iteration does with the current
// checkpointing unit.
type StepType int

const (
	// StepNone: unfilled table entry.
	StepNone StepType = iota

	// StepForward: advance without storing.
	StepForward

	// StepForwardReverse: advance and immediately adjoin the last step.
	StepForwardReverse

	// StepWriteData: store adjoint-dependency data for one step.
	StepWriteData

	// StepWriteICs: store forward restart data.
	StepWriteICs

	// StepReadData: a stored dependency snapshot (stack bookkeeping).
	StepReadData

	// StepReadICs: a stored restart snapshot (stack bookkeeping).
	StepReadICs
)

// Sentinel errors for the mixed schedule.
var (
	// ErrInvalidSteps indicates a non-positive step count.
	ErrInvalidSteps = errors.New("mixed: invalid number of steps")

	// ErrInvalidSnapshots indicates too few checkpointing units.
	ErrInvalidSnapshots = errors.New("mixed: invalid number of snapshots")

	// ErrInvalidStorage indicates a unit storage tier other than RAM or
	// disk.
	ErrInvalidStorage = errors.New("mixed: invalid storage")
)

// Entry is one cell of the mixed DP: the action kind for the current
// unit, the split (forward advance) it implies, and the total forward
// step cost of the optimal schedule from here.
type Entry struct {
	Kind  StepType
	Split int
	Cost  int
}

// Tabulate fills the primary table T[n][s]: the optimal mixed schedule
// for n remaining steps and s free units, with no checkpoint at the
// current step.
//
//	n = 1          -> forward-reverse, cost 1
//	n <= s+1       -> store dependency data step by step, cost n
//	s = 1          -> one restart checkpoint, cost n(n+1)/2 - 1
//	otherwise      -> best of WRITE_ICS over splits i in [2, n) and
//	                  WRITE_DATA (1 + T[n-1][s-1]), later candidates
//	                  winning ties.
func Tabulate(n, s int) [][]Entry {
	t := make([][]Entry, n+1)
	for i := range t {
		t[i] = make([]Entry, s+1)
		for j := range t[i] {
			t[i][j] = Entry{Kind: StepNone, Cost: -1}
		}
	}
	for si := 0; si <= s; si++ {
		t[1][si] = Entry{Kind: StepForwardReverse, Split: 1, Cost: 1}
	}
	for si := 1; si <= s; si++ {
		for ni := 2; ni <= n; ni++ {
			switch {
			case ni <= si+1:
				t[ni][si] = Entry{Kind: StepWriteData, Split: 1, Cost: ni}
			case si == 1:
				t[ni][si] = Entry{Kind: StepWriteICs, Split: ni - 1, Cost: ni*(ni+1)/2 - 1}
			default:
				for i := 2; i < ni; i++ {
					m1 := i + t[i][si].Cost + t[ni-i][si-1].Cost
					if t[ni][si].Cost < 0 || m1 <= t[ni][si].Cost {
						t[ni][si] = Entry{Kind: StepWriteICs, Split: i, Cost: m1}
					}
				}
				if m1 := 1 + t[ni-1][si-1].Cost; m1 <= t[ni][si].Cost {
					t[ni][si] = Entry{Kind: StepWriteData, Split: 1, Cost: m1}
				}
			}
		}
	}

	return t
}

// Tabulate0 fills the companion table T0[n][s] for the case where the
// current step already holds a restart checkpoint: the unit is not
// rewritten, so only plain forwards (splitting against T) and the
// single-unit triangular walk are available.
func Tabulate0(n, s int, t [][]Entry) [][]Entry {
	t0 := make([][]Entry, n+1)
	for i := range t0 {
		t0[i] = make([]Entry, s+1)
		for j := range t0[i] {
			t0[i][j] = Entry{Kind: StepNone, Cost: -1}
		}
	}
	for ni := 2; ni <= n; ni++ {
		t0[ni][0] = Entry{Kind: StepForwardReverse, Split: ni, Cost: ni*(ni+1)/2 - 1}
	}
	for si := 1; si < s; si++ {
		for ni := si + 2; ni <= n; ni++ {
			for i := 1; i < ni; i++ {
				m1 := i + t[i][si+1].Cost + t[ni-i][si].Cost
				if t0[ni][si].Cost < 0 || m1 <= t0[ni][si].Cost {
					t0[ni][si] = Entry{Kind: StepForward, Split: i, Cost: m1}
				}
			}
		}
	}

	return t0
}

// lookup returns T[n][s] with the snapshot count clamped to its useful
// range, mirroring the memoized reference.
func lookup(t [][]Entry, n, s int) Entry {
	return t[n][min(s, n-1)]
}

// lookup0 returns T0[n][s], clamped: with a restart checkpoint in place
// at most n-2 further units are useful.
func lookup0(t0 [][]Entry, n, s int) Entry {
	return t0[n][min(s, n-2)]
}

// OptimalStepsMixed returns the total number of forward steps of the
// optimal mixed schedule for n steps and s checkpointing units.
func OptimalStepsMixed(n, s int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidSteps
	}
	if s < min(1, n-1) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidSnapshots, s)
	}
	s = min(s, n-1)
	t := Tabulate(n, s)

	return lookup(t, n, s).Cost, nil
}

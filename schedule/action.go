package schedule

import "fmt"

// Action is one element of a checkpointing schedule stream. The concrete
// variants are Forward, Reverse, Copy, Move, EndForward and EndReverse;
// drivers dispatch with a type switch.
type Action interface {
	fmt.Stringer

	// isAction restricts the set of variants to this package.
	isAction()
}

// Forward advances the forward solver from the start of step N0 to the
// start of step N1 (N0 < N1).
//
//   - WriteICs: store the forward restart data for step N0 in Storage.
//   - WriteAdjDeps: store the forward data required to adjoin step N1-1
//     in Storage.
//
// For example Forward{10, 25, true, false, RAM} reads: advance from step
// 10 to the start of step 25, and write the restart data for step 10 to
// memory.
type Forward struct {
	N0, N1       int
	WriteICs     bool
	WriteAdjDeps bool
	Storage      StorageType
}

// Len returns the number of forward steps covered by the action.
func (a Forward) Len() int { return a.N1 - a.N0 }

// Contains reports whether the action advances over the given step.
func (a Forward) Contains(step int) bool { return a.N0 <= step && step < a.N1 }

func (a Forward) String() string {
	return fmt.Sprintf("Forward(%d, %d, %t, %t, %s)",
		a.N0, a.N1, a.WriteICs, a.WriteAdjDeps, a.Storage)
}

func (Forward) isAction() {}

// Reverse advances the adjoint solver from the start of step N1 to the
// start of step N0 (N0 < N1). If ClearAdjDeps is set the driver may
// discard its adjoint-dependency data afterwards.
type Reverse struct {
	N1, N0       int
	ClearAdjDeps bool
}

// Len returns the number of adjoint steps covered by the action.
func (a Reverse) Len() int { return a.N1 - a.N0 }

// Contains reports whether the action adjoins the given step.
func (a Reverse) Contains(step int) bool { return a.N0 <= step && step < a.N1 }

func (a Reverse) String() string {
	return fmt.Sprintf("Reverse(%d, %d, %t)", a.N1, a.N0, a.ClearAdjDeps)
}

func (Reverse) isAction() {}

// Copy restores the checkpoint of step N from one tier to another; the
// source entry remains valid.
type Copy struct {
	N    int
	From StorageType
	To   StorageType
}

func (a Copy) String() string {
	return fmt.Sprintf("Copy(%d, %s, %s)", a.N, a.From, a.To)
}

func (Copy) isAction() {}

// Move restores the checkpoint of step N from one tier to another and
// invalidates the source entry, freeing its slot.
type Move struct {
	N    int
	From StorageType
	To   StorageType
}

func (a Move) String() string {
	return fmt.Sprintf("Move(%d, %s, %s)", a.N, a.From, a.To)
}

func (Move) isAction() {}

// EndForward indicates the forward solver is finalised. It is emitted
// exactly once, separating the forward phase from the reverse phase.
type EndForward struct{}

func (EndForward) String() string { return "EndForward()" }

func (EndForward) isAction() {}

// EndReverse indicates the end of an adjoint calculation.
type EndReverse struct{}

func (EndReverse) String() string { return "EndReverse()" }

func (EndReverse) isAction() {}

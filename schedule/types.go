// Package schedule defines storage tiers, sentinel errors and the
// producer interface implemented by every checkpointing schedule.
package schedule

import (
	"errors"
	"math"
)

// StorageType identifies where checkpoint data lives.
//
//   - RAM and Disk are persistent checkpoint tiers with capacity limits.
//   - FwdRestart, AdjDeps and Work denote transient live state owned by
//     the solvers: the forward-restart variable, the adjoint-dependency
//     variable and scratch working storage.
//   - NoStorage means "do not store".
type StorageType int

const (
	// RAM: persistent checkpoint storage in memory.
	RAM StorageType = iota

	// Disk: persistent checkpoint storage on disk.
	Disk

	// FwdRestart: the variable used to restart the forward solver.
	FwdRestart

	// AdjDeps: the variable holding adjoint-dependency data.
	AdjDeps

	// Work: transient working storage consumed immediately by a solver.
	Work

	// NoStorage: no storage location; the data is discarded.
	NoStorage
)

// String returns the canonical tier name: "RAM" for memory, lower-case
// names for the other tiers.
func (s StorageType) String() string {
	switch s {
	case RAM:
		return "RAM"
	case Disk:
		return "disk"
	case FwdRestart:
		return "fwd_restart"
	case AdjDeps:
		return "adj_deps"
	case Work:
		return "work"
	case NoStorage:
		return "none"
	default:
		return "invalid"
	}
}

// Valid reports whether s is one of the declared tiers.
func (s StorageType) Valid() bool {
	return s >= RAM && s <= NoStorage
}

// Unlimited is the sentinel upper bound used by online schedules for
// Forward actions emitted before Finalize fixes the step count.
const Unlimited = math.MaxInt

// Sentinel errors shared by all schedule implementations.
var (
	// ErrExhausted indicates Next was called after the terminal action.
	ErrExhausted = errors.New("schedule: schedule exhausted")

	// ErrInvalidState indicates the schedule's internal bookkeeping
	// disagrees with the expected forward/reverse position. This is
	// unreachable under valid inputs; the schedule must not be reused.
	ErrInvalidState = errors.New("schedule: invalid checkpointing state")

	// ErrInvalidMaxN indicates a non-positive forward step count.
	ErrInvalidMaxN = errors.New("schedule: max_n must be positive")

	// ErrNotOnline indicates Finalize was called on a schedule whose
	// step count was already fixed, with a different count or before the
	// forward reached that count.
	ErrNotOnline = errors.New("schedule: step count already finalized")
)

// CheckpointSchedule is the producer contract: a stateful, single-pass
// iterator over checkpointing actions.
//
// Producers are not restartable mid-stream; a schedule is iterated once
// from construction to EndReverse (some online schedules permit repeated
// reverse passes and never exhaust).
type CheckpointSchedule interface {
	// Next advances the schedule and returns the next action. It fails
	// with ErrExhausted after the terminal action and with
	// ErrInvalidState if an internal invariant is broken.
	Next() (Action, error)

	// IsExhausted reports whether the schedule has concluded. Schedules
	// permitting unlimited adjoint calculations never conclude.
	IsExhausted() bool

	// UsesStorageType reports whether the schedule may emit an action
	// referencing the given tier; the driver uses it to pre-allocate.
	UsesStorageType(StorageType) bool

	// Finalize fixes the number of forward steps of an online schedule.
	// On a schedule whose step count is already fixed (offline, or
	// finalized before) it succeeds only when n equals that count and the
	// forward stands at step n; otherwise, and when called out of
	// sequence, it fails.
	Finalize(n int) error

	// N returns the current forward step location.
	N() int

	// R returns the number of adjoint steps completed so far.
	R() int

	// MaxN returns the total number of forward steps, or 0 while the
	// schedule is online and not yet finalized.
	MaxN() int
}

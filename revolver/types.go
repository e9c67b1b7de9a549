// Package revolver defines options and sentinel errors for the offline
// revolver schedules.
package revolver

import "errors"

// Sentinel errors raised while translating a revolver sequence. The
// invariant errors indicate a malformed operation list and are
// unreachable for sequences produced by package sequence.
var (
	// ErrInvalidMaxN indicates a non-positive forward step count.
	ErrInvalidMaxN = errors.New("revolver: max_n must be positive")

	// ErrInvalidSnapshots indicates a negative snapshot count, or zero
	// snapshots for a schedule that needs at least one.
	ErrInvalidSnapshots = errors.New("revolver: invalid number of snapshots")

	// ErrInvalidForwardStep indicates a forward operation starting away
	// from the current forward position.
	ErrInvalidForwardStep = errors.New("revolver: forward step out of sequence")

	// ErrInvalidReverseStep indicates an adjoint operation at the wrong
	// reverse position.
	ErrInvalidReverseStep = errors.New("revolver: reverse step out of sequence")

	// ErrInvalidActionIndex indicates an operation index inconsistent
	// with its neighbours.
	ErrInvalidActionIndex = errors.New("revolver: operation index out of sequence")

	// ErrInvalidOperation indicates an operation the translator does
	// not recognise at this position.
	ErrInvalidOperation = errors.New("revolver: unexpected operation")

	// ErrCapacityExceeded indicates more live checkpoints in a tier
	// than the schedule declared.
	ErrCapacityExceeded = errors.New("revolver: storage capacity exceeded")
)

// Options tunes the cost model of the revolver schedules. The zero
// value is not meaningful; use DefaultOptions and override fields.
//
//	FwdCost, BwdCost - cost of one forward / one adjoint step.
//	WCost, RCost     - cost of writing / reading one disk checkpoint.
//	OneReadDisk      - disk checkpoints are read only once.
//	Fast             - use the closed period formula (PeriodicDiskRevolve).
//	Period           - fixed period; 0 selects the optimal one.
//	Verbose          - print the chosen period, as the reference does.
type Options struct {
	FwdCost float64
	BwdCost float64
	WCost   float64
	RCost   float64

	OneReadDisk bool
	Fast        bool
	Period      int
	Verbose     bool
}

// DefaultOptions returns unit step costs, disk round trips twice the
// step cost, single-read disk checkpoints and an automatic period.
func DefaultOptions() Options {
	return Options{
		FwdCost:     1,
		BwdCost:     1,
		WCost:       2,
		RCost:       2,
		OneReadDisk: true,
	}
}

// Validate checks the option combination.
func (o *Options) Validate() error {
	if o.FwdCost <= 0 || o.BwdCost < 0 || o.WCost < 0 || o.RCost < 0 {
		return ErrInvalidCosts
	}
	if o.Period < 0 {
		return ErrInvalidCosts
	}

	return nil
}

// ErrInvalidCosts indicates a negative or degenerate cost model.
var ErrInvalidCosts = errors.New("revolver: invalid cost options")

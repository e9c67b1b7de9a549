// Package binomial defines trajectories and sentinel errors for the
// Griewank–Walther step rule.
package binomial

import "errors"

// Trajectory selects a solution of the step-size problem when multiple
// step counts are optimal (Fig. 4 of GW2000).
type Trajectory int

const (
	// TrajectoryMaximum: the maximum admissible step size within the
	// optimal region.
	TrajectoryMaximum Trajectory = iota

	// TrajectoryRevolve: the classical revolve solution, as specified
	// by the equation at the bottom of p. 34 of GW2000.
	TrajectoryRevolve
)

// String returns the canonical trajectory name.
func (t Trajectory) String() string {
	switch t {
	case TrajectoryMaximum:
		return "maximum"
	case TrajectoryRevolve:
		return "revolve"
	default:
		return "invalid"
	}
}

// Valid reports whether t names a known trajectory.
func (t Trajectory) Valid() bool {
	return t == TrajectoryMaximum || t == TrajectoryRevolve
}

// Sentinel errors for step-rule input validation.
var (
	// ErrNoBlocks indicates a non-positive remaining step count.
	ErrNoBlocks = errors.New("binomial: require at least one block")

	// ErrNoSnapshots indicates a non-positive snapshot count.
	ErrNoSnapshots = errors.New("binomial: require at least one snapshot")

	// ErrBadTrajectory indicates an unknown trajectory value.
	ErrBadTrajectory = errors.New("binomial: unexpected trajectory")

	// ErrInvalidSteps indicates a non-positive total step count.
	ErrInvalidSteps = errors.New("binomial: invalid number of steps")

	// ErrInvalidSnapshots indicates a snapshot count outside the
	// admissible range for the given step count.
	ErrInvalidSnapshots = errors.New("binomial: invalid number of snapshots")
)

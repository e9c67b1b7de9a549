// Package sequence defines the primitive operation vocabulary, the
// builder parameters and the sentinel errors of the revolver family.
package sequence

import "errors"

// OpType enumerates the primitive operations of a revolver sequence.
// Checkpoint operations carry a storage level: level 0 is memory, level
// 1 is disk, and H-Revolve generalises to K levels (0 = cheapest).
type OpType int

const (
	// OpForward: advance the forward solver from step N0 to step N1.
	OpForward OpType = iota

	// OpBackward: advance the adjoint solver from step N1 to step N0.
	OpBackward

	// OpWrite: write the restart checkpoint of step N0 at Level.
	OpWrite

	// OpRead: read the restart checkpoint of step N0 from Level.
	OpRead

	// OpDiscard: drop the restart checkpoint of step N0 from Level.
	OpDiscard

	// OpWriteForward: write the adjoint-dependency data of step N0 at
	// Level; it is consumed by the immediately following backward.
	OpWriteForward

	// OpDiscardForward: drop the adjoint-dependency data of step N0.
	OpDiscardForward
)

// String returns the short mnemonic used by the revolver literature
// (F, B, W, R, D, WF, DF).
func (t OpType) String() string {
	switch t {
	case OpForward:
		return "F"
	case OpBackward:
		return "B"
	case OpWrite:
		return "W"
	case OpRead:
		return "R"
	case OpDiscard:
		return "D"
	case OpWriteForward:
		return "WF"
	case OpDiscardForward:
		return "DF"
	default:
		return "invalid"
	}
}

// Operation is one primitive schedule element.
//
//   - OpForward: advance over [N0, N1); Level unused.
//   - OpBackward: adjoin step N1-1, moving the adjoint from N1 to N0.
//   - checkpoint ops: N0 is the step, Level the storage level.
type Operation struct {
	Type   OpType
	Level  int
	N0, N1 int
}

// Cost returns the execution cost of the operation under p.
func (o Operation) Cost(p *Params) float64 {
	switch o.Type {
	case OpForward:
		return float64(o.N1-o.N0) * p.UF
	case OpBackward:
		return p.UB
	case OpWrite, OpWriteForward:
		return p.Wvect[o.Level]
	case OpRead:
		return p.Rvect[o.Level]
	default: // discards are free
		return 0
	}
}

// shift translates the step indices of the operation by size.
func (o *Operation) shift(size int) {
	o.N0 += size
	if o.Type == OpForward || o.Type == OpBackward {
		o.N1 += size
	}
}

// Params carries the cost model and tuning knobs shared by the builders.
//
//	UF, UB       - cost of one forward / one adjoint step.
//	Wvect, Rvect - per-level write and read costs; level 0 is memory.
//	OneReadDisk  - disk checkpoints are read only once.
//	Fast         - use the closed formula for the optimal period.
//	Period       - fixed period mX for PeriodicDiskRevolve; 0 = optimal.
//	MMax         - override for the period scan bound; 0 = automatic.
//	Verbose      - print the chosen period, as the reference does.
type Params struct {
	UF, UB       float64
	Wvect, Rvect []float64
	OneReadDisk  bool
	Fast         bool
	Period       int
	MMax         int
	Verbose      bool
}

// DefaultParams returns the builder parameters for a two-level
// memory+disk architecture: free memory traffic, the given disk write
// and read costs, disk checkpoints read once, no fixed period.
func DefaultParams(wd, rd, uf, ub float64) Params {
	return Params{
		UF:          uf,
		UB:          ub,
		Wvect:       []float64{0, wd},
		Rvect:       []float64{0, rd},
		OneReadDisk: true,
	}
}

// Validate checks the cost model for structural soundness.
func (p *Params) Validate() error {
	if p.UF <= 0 || p.UB < 0 {
		return ErrBadCosts
	}
	if len(p.Wvect) == 0 || len(p.Wvect) != len(p.Rvect) {
		return ErrBadCosts
	}
	for i := range p.Wvect {
		if p.Wvect[i] < 0 || p.Rvect[i] < 0 {
			return ErrBadCosts
		}
	}
	if p.Period < 0 || p.MMax < 0 {
		return ErrBadCosts
	}

	return nil
}

// wd and rd are the top-level (disk) costs of a two-level architecture.
func (p *Params) wd() float64 { return p.Wvect[len(p.Wvect)-1] }
func (p *Params) rd() float64 { return p.Rvect[len(p.Rvect)-1] }

// Sentinel errors for builder input validation.
var (
	// ErrNoMemory indicates an adjoint computation graph of positive
	// length with zero checkpoint slots, which is unschedulable.
	ErrNoMemory = errors.New("sequence: cannot schedule without checkpoint slots")

	// ErrBadCosts indicates an inconsistent cost model.
	ErrBadCosts = errors.New("sequence: invalid cost parameters")

	// ErrBadLength indicates a negative step count.
	ErrBadLength = errors.New("sequence: negative step count")

	// ErrBadHierarchy indicates inconsistent H-Revolve level vectors.
	ErrBadHierarchy = errors.New("sequence: level vectors must be non-empty and of equal length")
)

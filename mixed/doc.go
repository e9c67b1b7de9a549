// Package mixed implements a checkpointing schedule which mixes storage
// of forward restart data and adjoint-dependency data in the same pool
// of checkpointing units.
//
// 🚀 Why mix?
//
//	Classical binomial schedules store only restart data and recompute
//	the final step of every gap. When the data needed to restart the
//	forward has the same size as the data needed to adjoin one step, a
//	unit can instead hold the adjoint dependencies of a single step
//	directly - saving that recomputation. The optimal choice per unit is
//	a dynamic program over (remaining steps, free units).
//
// ✨ Key features:
//   - offline, exactly one adjoint calculation
//   - every unit holds either restart data or dependency data, never
//     both; the dependency data of several consecutive steps can be
//     stored at once
//   - OptimalStepsMixed exposes the DP cost directly for verification
//
// ⚙️ Usage:
//
//	sched, err := mixed.New(250, 25, nil)
//
// Reference: James R. Maddison, "On the implementation of checkpointing
// with high-level algorithmic differentiation", arXiv:2305.09568, 2023.
package mixed

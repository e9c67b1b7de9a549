// Package multistage implements the binomial checkpointing schedule of
// Griewank–Walther (Algorithm 799) with a MultiStage distribution of
// snapshots between RAM and disk.
//
// 🚀 How it works
//
//	The forward sweep stores restart checkpoints at the split points
//	dictated by the Griewank–Walther step rule; the reverse sweep pops
//	the snapshot stack, recomputing each gap and adjoining one step at a
//	time. When both RAM and disk slots are available, a calibration run
//	of the schedule first measures the read/write traffic of every slot,
//	then assigns the busiest slots to RAM - the MultiStage distribution
//	of Stumm & Walther (SIAM J. Sci. Comput. 31(3), 2009).
//
// ✨ Key features:
//   - offline, exactly one adjoint calculation
//   - two trajectories for the step rule: "revolve" (classical) and
//     "maximum" (largest admissible step), both optimal
//   - AllocateSnapshots exposes the calibration weights directly
//
// ⚙️ Usage:
//
//	sched, err := multistage.New(250, 5, 20, nil)
//
// The entire action stream is expanded at construction; Next replays it
// one action at a time while tracking the forward/reverse positions.
package multistage

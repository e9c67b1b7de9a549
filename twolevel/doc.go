// Package twolevel implements a two-level mixed periodic/binomial
// checkpointing schedule.
//
// 🚀 How it works
//
//	During the forward calculation a restart checkpoint is written to
//	disk every period steps - the schedule is online, so the total step
//	count need not be known until the driver calls Finalize. The reverse
//	pass then treats each period as an independent binomial problem: the
//	periodic disk checkpoint anchors the period, and up to
//	binomial_snapshots additional restart checkpoints (in RAM or disk,
//	caller's choice) are managed by the Griewank–Walther step rule.
//
// ✨ Key features:
//   - online; unlimited adjoint calculations permitted
//   - periodic disk checkpoints are never invalidated, so a new reverse
//     pass can start at any time
//   - the binomial inner solver reuses the trajectory machinery of
//     package binomial
//
// ⚙️ Usage:
//
//	sched, err := twolevel.New(4, 1, nil)
//	// pull Forward actions, run the solver, then:
//	err = sched.Finalize(12)
//	// keep pulling until schedule.EndReverse
//
// References: Pringle et al., "Providing the ARCHER community with
// adjoint modelling tools", EPCC 2016; Goldberg et al., JGR Oceans
// 125(11), 2020.
package twolevel

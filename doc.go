// Package revolve computes checkpointing schedules for reverse-mode
// algorithmic differentiation of time-stepped simulations.
//
// 🚀 What is revolve?
//
//	A forward calculation advances through N discrete steps; the adjoint
//	("reverse") pass must revisit each step in reverse order. Storing every
//	intermediate state is prohibitive, and recomputing from scratch for each
//	reverse step is quadratic. A checkpoint schedule trades storage for
//	recomputation: it decides when to advance, when to snapshot, when to
//	reload, and when to reverse - the driver owns the solvers and the bytes.
//
// ✨ What's inside?
//
//   - schedule/   — the action algebra (Forward, Reverse, Copy, Move,
//     EndForward, EndReverse) and the pull-based producer contract
//   - binomial/   — exact big-integer binomials and the Griewank–Walther
//     step rule underpinning every binomial schedule
//   - sequence/   — dynamic-programming cost tables and the Revolve /
//     1D-Revolve / Disk-Revolve / Periodic-Disk-Revolve / H-Revolve
//     operation builders
//   - revolver/   — offline schedules translating those operation lists
//     into the action algebra with full invariant checking
//   - multistage/ — binomial schedule with two-tier RAM+disk allocation
//   - twolevel/   — online periodic-disk + binomial-inner schedule
//   - mixed/      — schedule mixing restart and adjoint-dependency data
//   - basic/      — trivial single-memory / single-disk / none schedules
//
// ⚙️ Usage:
//
//	sched, err := revolver.NewRevolve(100, 5, nil)
//	for {
//	    act, err := sched.Next()
//	    // drive solvers according to act; stop on schedule.EndReverse
//	}
//
// Every schedule is deterministic: a fixed (kind, parameters, max_n)
// triple always yields the same action stream, byte for byte.
package revolve

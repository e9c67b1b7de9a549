// Package basic contains the trivial checkpointing schedules: the
// degenerate strategies used when storage is effectively unlimited or
// when no adjoint calculation is performed at all.
//
// 🚀 The three schedules
//
//   - SingleMemory — every adjoint dependency is kept in working
//     memory; the reverse pass is a single sweep. Online, unlimited
//     adjoint calculations.
//   - SingleDisk — dependencies go to disk in unit-size segments and
//     are copied (or, with MoveData, moved) back one step at a time.
//     Online; unlimited adjoints unless MoveData consumes the data.
//   - None — forward only. EndForward is the terminal action: no
//     EndReverse is ever emitted, and further pulls fail with
//     schedule.ErrExhausted.
//
// ⚙️ Usage:
//
//	sched := basic.NewSingleMemory()
//	// pull Forward actions while running the solver, then:
//	err := sched.Finalize(n)
//	// pull EndForward, Reverse, EndReverse
//
// These schedules are primarily useful as baselines and in tests of
// driver code: they exercise the full action contract with no
// recomputation logic at all.
package basic

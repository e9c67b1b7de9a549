// Package binomial provides the exact combinatorial machinery behind
// binomial checkpointing schedules.
//
// 🚀 Why exact arithmetic?
//
//	Binomial schedules split the step range at points governed by
//	β(s, t) = C(s+t, s). Double-precision factorials overflow past
//	n ≈ 170 and silently change schedule decisions; this package computes
//	β and C(n, k) on big integers via the multiplicative recurrence, so
//	every comparison - and therefore every generated schedule - is exact
//	and reproducible across platforms.
//
// ✨ Key features:
//   - Beta / Binomial on math/big integers, overflow-free
//   - NAdvance - the Griewank–Walther step-size rule (GW2000,
//     Proposition 1 and Fig. 4), with the classical "revolve" and the
//     "maximum" trajectories
//   - OptimalSteps - the minimal total number of forward steps needed to
//     adjoin n steps with s checkpoint slots
//
// ⚙️ Usage:
//
//	adv, err := binomial.NAdvance(remaining, freeSlots, binomial.TrajectoryMaximum)
//
// Reference: Griewank, A. and Walther, A., "Algorithm 799: revolve",
// ACM Transactions on Mathematical Software 26(1), 2000.
package binomial

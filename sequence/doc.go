// Package sequence builds the raw operation lists of the revolver
// family of checkpointing strategies, together with the dynamic-programming
// cost tables that drive their splitting decisions.
//
// 🚀 What is an operation list?
//
//	The revolver algorithms are naturally recursive: adjoin a range by
//	checkpointing its front, advancing, solving the tail, reloading, and
//	solving the head. This package expands that recursion eagerly into a
//	flat list of primitive operations - forwards, backwards, per-level
//	checkpoint writes/reads/discards - which the revolver package then
//	translates one at a time into the public action algebra.
//
// ✨ Key features:
//   - Opt0Table / Opt1DTable / OptInfTable / HOptTables - bottom-up DP
//     tables giving the optimal makespan for every (steps, slots, level)
//   - Revolve - binomial, memory only (Griewank–Walther Algorithm 799)
//   - Revolve1D - one disk slot already holding step 0
//   - DiskRevolve - unbounded disk (Aupy, Herrmann, Hovland, Robert 2016)
//   - PeriodicDiskRevolve - asymptotically optimal disk period
//     (Aupy & Herrmann 2017)
//   - HRevolve - K-level hierarchical storage (Herrmann & Pallez 2020)
//
// ⚙️ Usage:
//
//	p := sequence.DefaultParams(2, 2, 1, 1) // wd, rd, uf, ub
//	seq, err := sequence.DiskRevolve(99, 3, &p, nil, nil, nil)
//	for _, op := range seq.Ops { ... }
//
// Splitting points are chosen by a last-argmin convention: among equal
// minima the largest split wins, reproducing the published schedules
// exactly. All binomials are computed on exact integers (see package
// binomial), so the generated lists are platform-independent.
package sequence

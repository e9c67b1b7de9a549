// Package revolver exposes the offline revolver schedules - Revolve,
// DiskRevolve, PeriodicDiskRevolve and HRevolve - as checkpointing
// action streams.
//
// 🚀 How it works
//
//	Each constructor expands the corresponding builder from package
//	sequence into a flat operation list at construction time, then Next
//	translates one operation at a time into the public action algebra of
//	package schedule, enforcing the stream invariants as it goes:
//
//	  • a Forward following a checkpoint write carries write_ics and the
//	    write's storage tier; following an adjoint-dependency write it
//	    carries write_adj_deps
//	  • a Read of the step about to be reversed becomes a Move (the slot
//	    is freed); any other Read becomes a Copy
//	  • writes and discards are bookkeeping only, tracked in a mirror of
//	    the live checkpoints per tier with hard capacity checks
//	  • EndForward is emitted exactly when the forward reaches max_n,
//	    EndReverse exactly when the last step is adjoined
//
// ✨ Schedules:
//   - NewRevolve            — binomial, memory only
//   - NewDiskRevolve        — memory plus unbounded disk
//   - NewPeriodicDiskRevolve — asymptotically optimal disk period
//   - NewHRevolve           — two-level hierarchical (RAM + disk)
//
// ⚙️ Usage:
//
//	sched, err := revolver.NewRevolve(100, 5, nil)
//	for {
//	    act, err := sched.Next()
//	    ...
//	}
//
// All four are offline (max_n fixed at construction) and permit exactly
// one adjoint calculation.
package revolver

// Package schedule defines the checkpointing action algebra and the
// pull-based producer contract shared by every schedule in this module.
//
// 🚀 What is the action algebra?
//
//	A checkpoint schedule is a deterministic stream of actions consumed by
//	an external driver. The driver owns the forward solver, the adjoint
//	solver and the checkpoint bytes; the schedule owns only the decision
//	logic, expressed as a tagged sum of six actions:
//
//	  • Forward     — advance the forward solver, optionally snapshotting
//	  • Reverse     — advance the adjoint solver
//	  • Copy / Move — restore checkpoint data (Move frees the source slot)
//	  • EndForward  — the forward phase is complete
//	  • EndReverse  — the reverse pass is complete
//
// ✨ Key guarantees:
//   - Strictly pull-based: each call to Next advances the schedule by
//     exactly one action; there is no other preemption point.
//   - Deterministic: identical parameters yield identical streams.
//   - Single-threaded: a schedule instance must not be shared between
//     goroutines; independent instances are isolated.
//
// ⚙️ Usage:
//
//	for !sched.IsExhausted() {
//	    act, err := sched.Next()
//	    if err != nil { ... }
//	    switch a := act.(type) {
//	    case schedule.Forward:  // advance solver over [a.N0, a.N1)
//	    case schedule.Reverse:  // adjoin steps [a.N0, a.N1)
//	    case schedule.Copy:     // copy checkpoint a.N from a.From to a.To
//	    case schedule.Move:     // as Copy, then drop the source entry
//	    case schedule.EndForward:
//	    case schedule.EndReverse:
//	    }
//	}
//
// Offline schedules know the total step count at construction; online
// schedules emit unbounded Forward actions (N1 == Unlimited) until the
// driver calls Finalize with the realised step count.
package schedule

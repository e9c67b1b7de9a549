package schedule

import "fmt"

// State carries the position triple shared by every schedule: the
// current forward step n, the number of completed adjoint steps r, and
// the total forward length max_n (0 while online and not yet fixed).
//
// Schedule implementations embed State and mutate it through the Set*
// methods as they yield actions; drivers read it through N, R and MaxN.
type State struct {
	n, r, maxN int
}

// Init fixes the total forward step count of an offline schedule.
func (s *State) Init(maxN int) error {
	if maxN < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxN, maxN)
	}
	s.maxN = maxN

	return nil
}

// N returns the forward step location: after executing all actions
// yielded so far, the forward solver is at the start of this step.
func (s *State) N() int { return s.n }

// R returns the number of adjoint steps completed so far.
func (s *State) R() int { return s.r }

// MaxN returns the total number of forward steps, or 0 while unknown.
func (s *State) MaxN() int { return s.maxN }

// SetN records a new forward position. For use by implementations only.
func (s *State) SetN(n int) { s.n = n }

// SetR records a new adjoint position. For use by implementations only.
func (s *State) SetR(r int) { s.r = r }

// Finalize fixes the number of forward steps of an online schedule.
//
// The forward may have overshot n (online schedules advance in fixed
// increments); in that case the position is clamped back to n. Calling
// Finalize before the forward has reached n, or with a conflicting
// count after max_n is already fixed, is an error.
func (s *State) Finalize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxN, n)
	}
	if s.maxN == 0 {
		if s.n < n {
			return fmt.Errorf("%w: finalize(%d) before forward reached step %d", ErrInvalidState, n, n)
		}
		s.n = n
		s.maxN = n

		return nil
	}
	if s.n != n || s.maxN != n {
		return fmt.Errorf("%w: finalize(%d) conflicts with max_n=%d", ErrNotOnline, n, s.maxN)
	}

	return nil
}

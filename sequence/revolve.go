package sequence

import "github.com/katalvlaran/revolve/binomial"

// GetT returns the largest t with β(cm, t) <= l, the rerun depth of the
// binomial schedule for l steps over cm memory slots.
func GetT(l, cm int) int {
	t := 0
	for binomial.BetaAtMost(cm, t, l) {
		t++
	}

	return t - 1
}

// Opt0ClosedFormula evaluates opt0[cm][l] directly from the binomial
// closed form, without tabulating. Useful as a cross-check of Opt0Table.
func Opt0ClosedFormula(l, cm int, uf, ub float64) float64 {
	if l == 0 {
		return ub
	}
	t := GetT(l, cm)

	return (float64((l+1)*(t+1))-binomial.BetaFloat(cm+1, t))*uf + float64(l+1)*ub
}

// Revolve builds the memory-only binomial schedule of Griewank–Walther
// Algorithm 799 for l forward steps and cm memory slots.
//
// The schedule writes the front of the range to memory, advances to the
// split point jmin minimising j·uf + opt0[cm-1][l-j] + opt0[cm][j-1],
// recurses on the tail with one slot fewer, reloads the front, and
// recurses on the head (whose leading write is dropped - the checkpoint
// is already in place).
//
// opt0 may be nil, in which case the table is computed for (l, cm).
func Revolve(l, cm int, p *Params, opt0 [][]float64) (*Sequence, error) {
	if l < 0 {
		return nil, ErrBadLength
	}
	if opt0 == nil {
		opt0 = Opt0Table(l, cm, p.UF, p.UB)
	}
	seq := &Sequence{}

	// 1) Base cases.
	if l == 0 {
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})
		seq.insert(p, Operation{Type: OpDiscard, N0: 0})

		return seq, nil
	}
	if cm == 0 {
		return nil, ErrNoMemory
	}
	if l == 1 {
		seq.insert(p, Operation{Type: OpWrite, N0: 0})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpWriteForward, N0: 2})
		seq.insert(p, Operation{Type: OpForward, N0: 1, N1: 2})
		seq.insert(p, Operation{Type: OpBackward, N0: 1, N1: 2})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 2})
		seq.insert(p, Operation{Type: OpRead, N0: 0})
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})
		seq.insert(p, Operation{Type: OpDiscard, N0: 0})

		return seq, nil
	}

	// 2) One slot: the linear walk - recompute the prefix for every
	//    adjoint step.
	if cm == 1 {
		seq.insert(p, Operation{Type: OpWrite, N0: 0})
		for index := l - 1; index >= 0; index-- {
			if index != l-1 {
				seq.insert(p, Operation{Type: OpRead, N0: 0})
			}
			seq.insert(p, Operation{Type: OpForward, N0: 0, N1: index + 1})
			seq.insert(p, Operation{Type: OpWriteForward, N0: index + 2})
			seq.insert(p, Operation{Type: OpForward, N0: index + 1, N1: index + 2})
			seq.insert(p, Operation{Type: OpBackward, N0: index + 1, N1: index + 2})
			seq.insert(p, Operation{Type: OpDiscardForward, N0: index + 2})
		}
		seq.insert(p, Operation{Type: OpRead, N0: 0})
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})
		seq.insert(p, Operation{Type: OpDiscard, N0: 0})

		return seq, nil
	}

	// 3) General case: split at the (last) argmin.
	listMem := make([]float64, 0, l-1)
	for j := 1; j < l; j++ {
		listMem = append(listMem, float64(j)*p.UF+opt0[cm-1][l-j]+opt0[cm][j-1])
	}
	jmin := argmin(listMem)

	seq.insert(p, Operation{Type: OpWrite, N0: 0})
	seq.insert(p, Operation{Type: OpForward, N0: 0, N1: jmin})
	tail, err := Revolve(l-jmin, cm-1, p, opt0)
	if err != nil {
		return nil, err
	}
	seq.insertSequence(tail.Shift(jmin))
	seq.insert(p, Operation{Type: OpRead, N0: 0})
	head, err := Revolve(jmin-1, cm, p, opt0)
	if err != nil {
		return nil, err
	}
	seq.insertSequence(head.removeUselessWM(p))

	return seq, nil
}

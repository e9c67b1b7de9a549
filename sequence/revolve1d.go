package sequence

import "math"

// Revolve1D builds the 1D-Revolve schedule for l forward steps with cm
// memory slots, assuming the data of step 0 is already stored on disk.
//
// It is the inner subroutine of DiskRevolve and PeriodicDiskRevolve:
// whenever reloading the disk front and re-splitting beats the pure
// memory schedule, the head of the split is solved by a further
// 1D-Revolve (or, with OneReadDisk, by plain Revolve, since the disk
// copy may not be read twice).
//
// Reference: Aupy, Herrmann, Hovland, Robert, "Optimal multistage
// algorithm for adjoint computation", SIAM J. Sci. Comput. 38(3), 2016,
// Theorem 3.15.
func Revolve1D(l, cm int, p *Params, opt0 [][]float64, opt1d []float64) (*Sequence, error) {
	if l < 0 {
		return nil, ErrBadLength
	}
	if opt0 == nil {
		opt0 = Opt0Table(l, cm, p.UF, p.UB)
	}
	if opt1d == nil {
		opt1d = Opt1DTable(l, cm, p, opt0)
	}
	seq := &Sequence{}

	// 1) Base cases; with no memory slot the single step restarts from
	//    the disk copy.
	if l == 0 {
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})

		return seq, nil
	}
	if l == 1 {
		if cm == 0 {
			seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
			seq.insert(p, Operation{Type: OpWriteForward, N0: 2})
			seq.insert(p, Operation{Type: OpForward, N0: 1, N1: 2})
			seq.insert(p, Operation{Type: OpBackward, N0: 1, N1: 2})
			seq.insert(p, Operation{Type: OpDiscardForward, N0: 2})
			seq.insert(p, Operation{Type: OpRead, Level: 1, N0: 0})
			seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
			seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
			seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
			seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})

			return seq, nil
		}
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

	// 2) Choose between re-reading the disk front and the pure memory
	//    schedule; ties prefer the latter (strict < comparison).
	listMem := make([]float64, 0, l-1)
	for j := 1; j < l; j++ {
		head := opt1d[j-1]
		if p.OneReadDisk {
			head = opt0[cm][j-1]
		}
		listMem = append(listMem, float64(j)*p.UF+opt0[cm][l-j]+p.rd()+head)
	}
	if minOf(listMem) < opt0[cm][l] {
		jmin := argmin(listMem)
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: jmin})
		tail, err := Revolve(l-jmin, cm, p, opt0)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(tail.Shift(jmin))
		seq.insert(p, Operation{Type: OpRead, Level: 1, N0: 0})
		var head *Sequence
		if p.OneReadDisk {
			head, err = Revolve(jmin-1, cm, p, opt0)
		} else {
			head, err = Revolve1D(jmin-1, cm, p, opt0, opt1d)
		}
		if err != nil {
			return nil, err
		}
		seq.insertSequence(head)

		return seq, nil
	}

	sub, err := Revolve(l, cm, p, opt0)
	if err != nil {
		return nil, err
	}
	seq.insertSequence(sub)

	return seq, nil
}

// minOf returns the minimum of a non-empty slice.
func minOf(xs []float64) float64 {
	m := math.Inf(1)
	for _, v := range xs {
		if v < m {
			m = v
		}
	}

	return m
}

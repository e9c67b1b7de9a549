package sequence

// HRevolve builds the hierarchical H-Revolve schedule for l forward
// steps on a K-level storage architecture.
//
//   - cvect: number of checkpoint slots per level (level 0 cheapest).
//   - wvect, rvect: per-level write and read costs.
//
// Two mutually recursive builders implement the algorithm of Herrmann &
// Pallez (ACM TOMS 46(2), 2020): hrevolveRecurse decides whether to
// spill the front to the current level or descend a level, and
// hrevolveAux schedules the fine-grained splits once a level is chosen.
func HRevolve(l int, cvect []int, wvect, rvect []float64, uf, ub float64) (*Sequence, error) {
	if l < 0 {
		return nil, ErrBadLength
	}
	if len(cvect) == 0 || len(cvect) != len(wvect) || len(cvect) != len(rvect) {
		return nil, ErrBadHierarchy
	}
	p := &Params{UF: uf, UB: ub, Wvect: wvect, Rvect: rvect}
	hoptp, hopt := HOptTables(l, cvect, wvect, rvect, uf, ub)

	return hrevolveRecurse(l, len(cvect)-1, cvect[len(cvect)-1], cvect, p, hoptp, hopt)
}

// hrevolveRecurse schedules l steps with the front live at level <= K
// and cmem slots free at level K.
func hrevolveRecurse(l, K, cmem int, cvect []int, p *Params, hoptp, hopt [][][]float64) (*Sequence, error) {
	seq := &Sequence{}
	if l == 0 {
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})

		return seq, nil
	}
	if K == 0 && cmem == 0 {
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
	if K == 0 {
		seq.insert(p, Operation{Type: OpWrite, N0: 0})
		sub, err := hrevolveAux(l, 0, cmem, cvect, p, hoptp, hopt)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(sub)

		return seq, nil
	}

	// Spill the front to level K only when it strictly beats staying at
	// level K-1 with all of its slots.
	if p.Wvect[K]+hoptp[K][l][cmem] < hopt[K-1][l][cvect[K-1]] {
		seq.insert(p, Operation{Type: OpWrite, Level: K, N0: 0})
		sub, err := hrevolveAux(l, K, cmem, cvect, p, hoptp, hopt)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(sub)

		return seq, nil
	}

	return hrevolveRecurse(l, K-1, cvect[K-1], cvect, p, hoptp, hopt)
}

// hrevolveAux schedules l steps once the front checkpoint is committed
// to level K with cmem free slots there.
func hrevolveAux(l, K, cmem int, cvect []int, p *Params, hoptp, hopt [][][]float64) (*Sequence, error) {
	if cmem == 0 {
		return nil, ErrNoMemory
	}
	seq := &Sequence{}
	if l == 0 {
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})

		return seq, nil
	}
	if l == 1 {
		// A level-0 round trip may still be cheaper than re-reading the
		// level-K front.
		useMem := p.Wvect[0]+p.Rvect[0] < p.Rvect[K]
		if useMem {
			seq.insert(p, Operation{Type: OpWrite, N0: 0})
		}
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpWriteForward, N0: 2})
		seq.insert(p, Operation{Type: OpForward, N0: 1, N1: 2})
		seq.insert(p, Operation{Type: OpBackward, N0: 1, N1: 2})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 2})
		if useMem {
			seq.insert(p, Operation{Type: OpRead, N0: 0})
		} else {
			seq.insert(p, Operation{Type: OpRead, Level: K, N0: 0})
		}
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})
		if useMem {
			seq.insert(p, Operation{Type: OpDiscard, N0: 0})
		}

		return seq, nil
	}
	if K == 0 && cmem == 1 {
		// Linear walk over the level-0 front, as in the single-slot
		// Revolve.
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
	if K == 0 {
		listMem := make([]float64, 0, l-1)
		for j := 1; j < l; j++ {
			listMem = append(listMem, float64(j)*p.UF+hopt[0][l-j][cmem-1]+p.Rvect[0]+hoptp[0][j-1][cmem])
		}
		if minOf(listMem) < hoptp[0][l][1] {
			jmin := argmin(listMem)
			seq.insert(p, Operation{Type: OpForward, N0: 0, N1: jmin})
			tail, err := hrevolveRecurse(l-jmin, 0, cmem-1, cvect, p, hoptp, hopt)
			if err != nil {
				return nil, err
			}
			seq.insertSequence(tail.Shift(jmin))
			seq.insert(p, Operation{Type: OpRead, N0: 0})
			head, err := hrevolveAux(jmin-1, 0, cmem, cvect, p, hoptp, hopt)
			if err != nil {
				return nil, err
			}
			seq.insertSequence(head)
			if last, ok := seq.lastOp(); ok && last.Type != OpDiscard {
				seq.insert(p, Operation{Type: OpDiscard, N0: 0})
			}

			return seq, nil
		}
		sub, err := hrevolveAux(l, 0, 1, cvect, p, hoptp, hopt)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(sub)

		return seq, nil
	}

	listMem := make([]float64, 0, l-1)
	for j := 1; j < l; j++ {
		listMem = append(listMem, float64(j)*p.UF+hopt[K][l-j][cmem-1]+p.Rvect[K]+hoptp[K][j-1][cmem])
	}
	if minOf(listMem) < hopt[K-1][l][cvect[K-1]] {
		jmin := argmin(listMem)
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: jmin})
		tail, err := hrevolveRecurse(l-jmin, K, cmem-1, cvect, p, hoptp, hopt)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(tail.Shift(jmin))
		seq.insert(p, Operation{Type: OpRead, Level: K, N0: 0})
		head, err := hrevolveAux(jmin-1, K, cmem, cvect, p, hoptp, hopt)
		if err != nil {
			return nil, err
		}
		seq.insertSequence(head)

		return seq, nil
	}

	return hrevolveRecurse(l, K-1, cvect[K-1], cvect, p, hoptp, hopt)
}

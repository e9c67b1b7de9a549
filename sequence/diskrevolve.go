package sequence

// DiskRevolve builds the Disk-Revolve schedule for l forward steps with
// cm memory slots and an unlimited number of disk slots.
//
// Whenever spilling the current front to disk, advancing, and solving
// the tail recursively beats the pure memory schedule, the front is
// written to disk and read back once the tail is adjoined; the head is
// then finished by Revolve (OneReadDisk) or Revolve1D.
func DiskRevolve(l, cm int, p *Params, opt0 [][]float64, opt1d, optInf []float64) (*Sequence, error) {
	if l < 0 {
		return nil, ErrBadLength
	}
	if opt0 == nil {
		opt0 = Opt0Table(l, cm, p.UF, p.UB)
	}
	if opt1d == nil && !p.OneReadDisk {
		opt1d = Opt1DTable(l, cm, p, opt0)
	}
	if optInf == nil {
		optInf = OptInfTable(l, cm, p, opt0, opt1d)
	}
	seq := &Sequence{}

	// 1) Base cases; with no memory slot the single step uses a disk
	//    round trip.
	if l == 0 {
		seq.insert(p, Operation{Type: OpWriteForward, N0: 1})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpBackward, N0: 0, N1: 1})
		seq.insert(p, Operation{Type: OpDiscardForward, N0: 1})

		return seq, nil
	}
	if l == 1 {
		if cm == 0 {
			seq.insert(p, Operation{Type: OpWrite, Level: 1, N0: 0})
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
			seq.insert(p, Operation{Type: OpDiscard, Level: 1, N0: 0})

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

	// 2) Spill to disk only when it strictly beats the memory schedule.
	listMem := make([]float64, 0, l-1)
	for j := 1; j < l; j++ {
		head := float64(0)
		if p.OneReadDisk {
			head = opt0[cm][j-1]
		} else {
			head = opt1d[j-1]
		}
		listMem = append(listMem, p.wd()+float64(j)*p.UF+optInf[l-j]+p.rd()+head)
	}
	if minOf(listMem) < opt0[cm][l] {
		jmin := argmin(listMem)
		seq.insert(p, Operation{Type: OpWrite, Level: 1, N0: 0})
		seq.insert(p, Operation{Type: OpForward, N0: 0, N1: jmin})
		tail, err := DiskRevolve(l-jmin, cm, p, opt0, opt1d, optInf)
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

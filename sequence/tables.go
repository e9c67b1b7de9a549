package sequence

import "math"

// Opt0Table tabulates opt0[m][l]: the minimal makespan to adjoin l steps
// with m memory slots and no disk, for m = 0..mmax and l = 0..lmax.
// Entries that are combinatorially impossible (l >= 1 with m = 0) hold
// +Inf.
//
// Recurrence: opt0[m][l] = min over 1<=j<l of
// j·uf + opt0[m-1][l-j] + opt0[m][j-1].
//
// Complexity: O(mmax·lmax²) time, O(mmax·lmax) memory.
func Opt0Table(lmax, mmax int, uf, ub float64) [][]float64 {
	inf := math.Inf(1)
	opt := make([][]float64, mmax+1)
	for m := range opt {
		opt[m] = make([]float64, lmax+1)
		for l := range opt[m] {
			opt[m][l] = inf
		}
	}

	// 1) Borders: adjoining zero further steps costs one backward; a
	//    single step costs one forward plus two backwards.
	for m := 0; m <= mmax; m++ {
		opt[m][0] = ub
	}
	for m := 1; m <= mmax && lmax >= 1; m++ {
		opt[m][1] = uf + 2*ub
	}

	// 2) Single slot: the closed triangular formula.
	if mmax >= 1 {
		for l := 2; l <= lmax; l++ {
			opt[1][l] = float64(l+1)*ub + float64(l*(l+1))/2*uf
		}
	}

	// 3) General case, bottom-up over slots then lengths.
	for m := 2; m <= mmax; m++ {
		for l := 2; l <= lmax; l++ {
			best := inf
			for j := 1; j < l; j++ {
				if v := float64(j)*uf + opt[m-1][l-j] + opt[m][j-1]; v < best {
					best = v
				}
			}
			opt[m][l] = best
		}
	}

	return opt
}

// Opt1DTable tabulates opt1d[l] for l = 0..lmax: the minimal makespan to
// adjoin l steps with cm memory slots when step 0 is already stored on
// disk. With OneReadDisk the disk copy may be reloaded only once, so the
// head of each split falls back to the memory-only table.
func Opt1DTable(lmax, cm int, p *Params, opt0 [][]float64) []float64 {
	if opt0 == nil {
		opt0 = Opt0Table(lmax, cm, p.UF, p.UB)
	}
	opt1d := make([]float64, lmax+1)
	opt1d[0] = p.UB
	if lmax >= 1 {
		opt1d[1] = p.UF + 2*p.UB
		if cm == 0 {
			opt1d[1] += p.rd()
		}
	}
	for l := 2; l <= lmax; l++ {
		m := math.Inf(1)
		for j := 1; j < l; j++ {
			head := opt1d[j-1]
			if p.OneReadDisk {
				head = opt0[cm][j-1]
			}
			if v := float64(j)*p.UF + opt0[cm][l-j] + p.rd() + head; v < m {
				m = v
			}
		}
		opt1d[l] = math.Min(opt0[cm][l], m)
	}

	return opt1d
}

// OptInfTable tabulates optInf[l] for l = 0..lmax: the minimal makespan
// to adjoin l steps with cm memory slots and unlimited disk slots, each
// disk write paid explicitly.
func OptInfTable(lmax, cm int, p *Params, opt0 [][]float64, opt1d []float64) []float64 {
	if opt0 == nil {
		opt0 = Opt0Table(lmax, cm, p.UF, p.UB)
	}
	if opt1d == nil && !p.OneReadDisk {
		opt1d = Opt1DTable(lmax, cm, p, opt0)
	}
	optInf := make([]float64, lmax+1)
	optInf[0] = p.UB
	if lmax >= 1 {
		if cm == 0 {
			optInf[1] = p.wd() + p.UF + 2*p.UB + p.rd()
		} else {
			optInf[1] = p.UF + 2*p.UB
		}
	}
	for l := 2; l <= lmax; l++ {
		m := math.Inf(1)
		for j := 1; j < l; j++ {
			head := float64(0)
			if p.OneReadDisk {
				head = opt0[cm][j-1]
			} else {
				head = opt1d[j-1]
			}
			if v := p.wd() + float64(j)*p.UF + optInf[l-j] + p.rd() + head; v < m {
				m = v
			}
		}
		optInf[l] = math.Min(opt0[cm][l], m)
	}

	return optInf
}

// HOptTables tabulates the hierarchical DP of Herrmann & Pallez (2020),
// section 3.1, for a K-level architecture described by cvect (slots per
// level), wvect and rvect (per-level write/read costs).
//
// hopt[k][l][m] is the optimal makespan to adjoin l steps when the data
// of step 0 is live and at most m slots of level k (plus all slots of
// the levels below) may be used; hoptp[k][l][m] assumes step 0 is
// already stored at level k.
//
// Complexity: O(K·lmax²·max(cvect)) time.
func HOptTables(lmax int, cvect []int, wvect, rvect []float64, uf, ub float64) (hoptp, hopt [][][]float64) {
	inf := math.Inf(1)
	levels := len(cvect)
	alloc := func() [][][]float64 {
		t := make([][][]float64, levels)
		for k := 0; k < levels; k++ {
			t[k] = make([][]float64, lmax+1)
			for l := 0; l <= lmax; l++ {
				t[k][l] = make([]float64, cvect[k]+1)
				for m := range t[k][l] {
					t[k][l][m] = inf
				}
			}
		}

		return t
	}
	hopt = alloc()
	hoptp = alloc()

	// 1) Borders: l = 0 costs one backward everywhere; l = 1 costs one
	//    forward, two backwards and a level-0 round trip.
	for k := 0; k < levels; k++ {
		for m := 0; m <= cvect[k]; m++ {
			hopt[k][0][m] = ub
			hoptp[k][0][m] = ub
		}
		if lmax < 1 {
			continue
		}
		for m := 0; m <= cvect[k]; m++ {
			if m == 0 && k == 0 {
				continue
			}
			hoptp[k][1][m] = uf + 2*ub + rvect[0]
			hopt[k][1][m] = wvect[0] + hoptp[k][1][m]
		}
	}

	// 2) Level 0: single-slot closed formula, then the split recurrence.
	for l := 2; l <= lmax; l++ {
		if cvect[0] >= 1 {
			hoptp[0][l][1] = float64(l+1)*ub + float64(l*(l+1))/2*uf + float64(l)*rvect[0]
			hopt[0][l][1] = wvect[0] + hoptp[0][l][1]
		}
	}
	for m := 2; m <= cvect[0]; m++ {
		for l := 2; l <= lmax; l++ {
			best := hoptp[0][l][1]
			for j := 1; j < l; j++ {
				if v := float64(j)*uf + hopt[0][l-j][m-1] + rvect[0] + hoptp[0][j-1][m]; v < best {
					best = v
				}
			}
			hoptp[0][l][m] = best
			hopt[0][l][m] = wvect[0] + hoptp[0][l][m]
		}
	}

	// 3) Levels k > 0: either stay below (level k-1 with all its slots)
	//    or spill to level k and recurse on the split.
	for k := 1; k < levels; k++ {
		for l := 2; l <= lmax; l++ {
			hopt[k][l][0] = hopt[k-1][l][cvect[k-1]]
		}
		for m := 1; m <= cvect[k]; m++ {
			for l := 1; l <= lmax; l++ {
				best := hopt[k-1][l][cvect[k-1]]
				for j := 1; j < l; j++ {
					if v := float64(j)*uf + hopt[k][l-j][m-1] + rvect[k] + hoptp[k][j-1][m]; v < best {
						best = v
					}
				}
				hoptp[k][l][m] = best
				hopt[k][l][m] = math.Min(hopt[k-1][l][cvect[k-1]], wvect[k]+hoptp[k][l][m])
			}
		}
	}

	return hoptp, hopt
}

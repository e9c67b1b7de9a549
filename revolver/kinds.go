package revolver

import (
	"fmt"

	"github.com/katalvlaran/revolve/sequence"
)

// NewRevolve returns the memory-only binomial schedule for maxN forward
// steps and snapRAM memory slots (Griewank–Walther Algorithm 799).
func NewRevolve(maxN, snapRAM int, opts *Options) (*Schedule, error) {
	p, err := buildParams(maxN, snapRAM, opts)
	if err != nil {
		return nil, err
	}
	seq, err := sequence.Revolve(maxN-1, snapRAM, p, nil)
	if err != nil {
		return nil, err
	}

	return newSchedule(maxN, snapRAM, 0, seq)
}

// NewDiskRevolve returns the Disk-Revolve schedule: snapRAM memory
// slots plus an unbounded pool of disk slots.
func NewDiskRevolve(maxN, snapRAM int, opts *Options) (*Schedule, error) {
	p, err := buildParams(maxN, snapRAM, opts)
	if err != nil {
		return nil, err
	}
	seq, err := sequence.DiskRevolve(maxN-1, snapRAM, p, nil, nil, nil)
	if err != nil {
		return nil, err
	}

	return newSchedule(maxN, snapRAM, maxN-snapRAM, seq)
}

// NewPeriodicDiskRevolve returns the periodic disk schedule: a disk
// checkpoint every mX steps, each period adjoined as an inner binomial
// problem over snapRAM memory slots. The period comes from
// opts.Period, or is chosen optimally when zero.
func NewPeriodicDiskRevolve(maxN, snapRAM int, opts *Options) (*Schedule, error) {
	p, err := buildParams(maxN, snapRAM, opts)
	if err != nil {
		return nil, err
	}
	seq, err := sequence.PeriodicDiskRevolve(maxN-1, snapRAM, p)
	if err != nil {
		return nil, err
	}

	return newSchedule(maxN, snapRAM, maxN-snapRAM, seq)
}

// NewHRevolve returns the two-level hierarchical H-Revolve schedule
// over snapRAM memory slots and snapDisk disk slots. Memory traffic is
// free; disk write/read costs come from the options.
func NewHRevolve(maxN, snapRAM, snapDisk int, opts *Options) (*Schedule, error) {
	p, err := buildParams(maxN, snapRAM, opts)
	if err != nil {
		return nil, err
	}
	if snapDisk < 0 {
		return nil, fmt.Errorf("%w: snap_disk=%d", ErrInvalidSnapshots, snapDisk)
	}
	if snapRAM < 1 && maxN > 1 {
		return nil, fmt.Errorf("%w: H-Revolve needs at least one memory slot", ErrInvalidSnapshots)
	}
	cvect := []int{snapRAM, snapDisk}
	seq, err := sequence.HRevolve(maxN-1, cvect, p.Wvect, p.Rvect, p.UF, p.UB)
	if err != nil {
		return nil, err
	}

	return newSchedule(maxN, snapRAM, snapDisk, seq)
}

// buildParams validates the common constructor arguments and assembles
// the sequence-builder cost model.
func buildParams(maxN, snapRAM int, opts *Options) (*sequence.Params, error) {
	if maxN < 1 {
		return nil, fmt.Errorf("%w: max_n=%d", ErrInvalidMaxN, maxN)
	}
	if snapRAM < 0 {
		return nil, fmt.Errorf("%w: snap_ram=%d", ErrInvalidSnapshots, snapRAM)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	p := sequence.DefaultParams(o.WCost, o.RCost, o.FwdCost, o.BwdCost)
	p.OneReadDisk = o.OneReadDisk
	p.Fast = o.Fast
	p.Period = o.Period
	p.Verbose = o.Verbose

	return &p, nil
}

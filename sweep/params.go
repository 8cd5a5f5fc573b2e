// Package sweep searches the tilings of a GEMV and measures each of them with
// and without the dataflow optimization.
package sweep

import (
	"errors"
	"fmt"

	"github.com/LeeHayun/PIM-Code-Test/txgen"
)

// Params describe the GEMV and the device shape that a sweep explores.
type Params struct {
	X, Y uint64

	IsInputVector   bool
	IsRegisterReuse bool

	// IsDataflowOpt limits the sweep to the register shapes that the
	// input-stationary order benefits from.
	IsDataflowOpt bool

	RI, RO uint64

	// Channels is the number of channels to split the matrix over.
	Channels uint64

	// YP is the number of output elements that one channel computes in
	// parallel.
	YP uint64
}

// DefaultParams returns a 4096x4096 GEMV on 16 channels.
func DefaultParams() Params {
	return Params{
		X:             4096,
		Y:             4096,
		IsInputVector: true,
		RI:            8,
		RO:            8,
		Channels:      16,
		YP:            16,
	}
}

// Validate rejects parameters that cannot be enumerated.
func (p Params) Validate() error {
	var errs []error

	for _, f := range []struct {
		name  string
		value uint64
	}{
		{"ri", p.RI}, {"ro", p.RO}, {"ch", p.Channels}, {"yp", p.YP},
	} {
		if f.value == 0 {
			errs = append(errs, fmt.Errorf("%s must not be 0", f.name))
		}
	}

	return errors.Join(errs...)
}

// Enumerate lists the tilings of the sweep. Every factor is a power of 2: the
// channels are split between x and y, the register rows per tile range up to
// the register file size, and the remaining tiles are split between an outer
// and an inner loop. Tilings that leave no tile are skipped.
//
// The returned tilings have the dataflow optimization disabled.
func Enumerate(p Params) []txgen.TilingConfig {
	var configs []txgen.TilingConfig

	probe := txgen.TilingConfig{IsInputVector: p.IsInputVector}
	ci, co := probe.FanIn(), probe.FanOut()

	for xch := uint64(1); xch <= p.Channels; xch *= 2 {
		ych := p.Channels / xch

		for ki := uint64(1); ki <= p.RI; ki *= 2 {
			for ko := uint64(1); ko <= p.RO; ko *= 2 {
				if p.IsDataflowOpt && p.RI*ko <= p.RO*ki {
					continue
				}

				xo := p.X / xch / (ki * ci)
				yo := p.Y / ych / (ko * co) / p.YP

				if xo == 0 || yo == 0 {
					continue
				}

				for xoo := uint64(1); xoo <= xo; xoo *= 2 {
					for yoo := uint64(1); yoo <= yo; yoo *= 2 {
						configs = append(configs, txgen.TilingConfig{
							X: p.X, Y: p.Y,
							XCh: xch, YCh: ych,
							XOO: xoo, YOO: yoo,
							XOI: xo / xoo, YOI: yo / yoo,
							RI: p.RI, RO: p.RO,
							KI: ki, KO: ko,
							IsInputVector:   p.IsInputVector,
							IsRegisterReuse: p.IsRegisterReuse,
						})
					}
				}
			}
		}
	}

	return configs
}

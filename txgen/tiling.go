package txgen

import (
	"errors"
	"fmt"
)

// TilingConfig describes how a GEMV of an X-by-Y matrix is tiled over the PIM
// registers.
type TilingConfig struct {
	// Matrix rows and columns.
	X, Y uint64

	// Channel split.
	XCh, YCh uint64

	// Outer and inner tile counts.
	XOO, YOO, XOI, YOI uint64

	// Input and output register rows.
	RI, RO uint64

	// Input and output rows that one tile uses.
	KI, KO uint64

	IsInputVector   bool
	IsRegisterReuse bool
	IsDataflowOpt   bool
}

// FanIn returns the number of elements that one input register row covers.
func (c TilingConfig) FanIn() uint64 {
	if c.IsInputVector {
		return 16
	}

	return 1
}

// FanOut returns the number of elements that one output register row covers.
func (c TilingConfig) FanOut() uint64 {
	if c.IsInputVector {
		return 1
	}

	return 16
}

// IsOutputStationary tells which reduction order the tiles use. The
// input-stationary order is only chosen with the dataflow optimization, and
// only if keeping inputs resident reloads fewer accumulators, that is, if
// RI*KO > RO*KI.
func (c TilingConfig) IsOutputStationary() bool {
	return !(c.IsDataflowOpt && c.RI*c.KO > c.RO*c.KI)
}

// NumTiles returns the number of tiles the schedule visits.
func (c TilingConfig) NumTiles() uint64 {
	return c.XOO * c.YOO * c.XOI * c.YOI
}

// Validate reports the configurations that would produce an empty schedule or
// divide by zero. The generator does not call it; callers that accept
// arbitrary configurations should.
func (c TilingConfig) Validate() error {
	var errs []error

	fields := []struct {
		name  string
		value uint64
	}{
		{"xoo", c.XOO}, {"yoo", c.YOO}, {"xoi", c.XOI}, {"yoi", c.YOI},
		{"ri", c.RI}, {"ro", c.RO}, {"ki", c.KI}, {"ko", c.KO},
	}

	for _, f := range fields {
		if f.value == 0 {
			errs = append(errs, fmt.Errorf("%s must not be 0", f.name))
		}
	}

	return errors.Join(errs...)
}

func (c TilingConfig) String() string {
	return fmt.Sprintf(
		"x=%d y=%d xch=%d ych=%d xoo=%d yoo=%d xoi=%d yoi=%d "+
			"ri=%d ro=%d ki=%d ko=%d vector=%t reuse=%t dataflow_opt=%t",
		c.X, c.Y, c.XCh, c.YCh, c.XOO, c.YOO, c.XOI, c.YOI,
		c.RI, c.RO, c.KI, c.KO,
		c.IsInputVector, c.IsRegisterReuse, c.IsDataflowOpt)
}

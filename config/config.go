// Package config loads the description of the simulated PIM device.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"
	"gopkg.in/yaml.v3"
)

// Timing holds the device timing parameters, in memory clock cycles.
type Timing struct {
	CL   int `yaml:"tCL"`
	CWL  int `yaml:"tCWL"`
	RCD  int `yaml:"tRCD"`
	RP   int `yaml:"tRP"`
	RAS  int `yaml:"tRAS"`
	CCDL int `yaml:"tCCD_L"`

	// MRD is the latency of a register access.
	MRD int `yaml:"tMRD"`

	// PIMOp is the number of cycles that one all-bank compute operation keeps
	// the banks of a channel busy.
	PIMOp int `yaml:"tPIMOp"`
}

// Device describes the organization and timing of the simulated device.
type Device struct {
	Protocol       string `yaml:"protocol"`
	NumChannel     int    `yaml:"channels"`
	NumRank        int    `yaml:"ranks"`
	NumBankGroup   int    `yaml:"bankgroups"`
	NumBank        int    `yaml:"banks_per_group"`
	NumRow         int    `yaml:"rows"`
	NumCol         int    `yaml:"columns"`
	BusWidth       int    `yaml:"bus_width"`
	BurstLength    int    `yaml:"BL"`
	AddressMapping string `yaml:"address_mapping"`

	TransQueueSize       int `yaml:"trans_queue_size"`
	WriteBufferThreshold int `yaml:"write_buffer_threshold"`

	Timing Timing `yaml:"timing"`
}

// Default returns an HBM2-like PIM device with 16 channels.
func Default() *Device {
	return &Device{
		Protocol:             "HBM2",
		NumChannel:           16,
		NumRank:              1,
		NumBankGroup:         4,
		NumBank:              4,
		NumRow:               16384,
		NumCol:               128,
		BusWidth:             64,
		BurstLength:          4,
		AddressMapping:       "rochrababgco",
		TransQueueSize:       32,
		WriteBufferThreshold: 8,
		Timing: Timing{
			CL:    14,
			CWL:   4,
			RCD:   14,
			RP:    14,
			RAS:   34,
			CCDL:  4,
			MRD:   2,
			PIMOp: 8,
		},
	}
}

// Load reads a YAML device description. Fields that the file omits keep the
// values of Default.
func Load(path string) (*Device, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading device config: %w", err)
	}

	d := Default()

	err = yaml.Unmarshal(data, d)
	if err != nil {
		return nil, fmt.Errorf("parsing device config %s: %w", path, err)
	}

	err = d.Validate()
	if err != nil {
		return nil, fmt.Errorf("device config %s: %w", path, err)
	}

	return d, nil
}

// Validate checks that the organization can be addressed with bit fields.
func (d *Device) Validate() error {
	var errs []error

	counts := []struct {
		name  string
		value int
	}{
		{"channels", d.NumChannel},
		{"ranks", d.NumRank},
		{"bankgroups", d.NumBankGroup},
		{"banks_per_group", d.NumBank},
		{"rows", d.NumRow},
		{"columns", d.NumCol},
		{"bus_width", d.BusWidth},
		{"BL", d.BurstLength},
	}

	for _, c := range counts {
		if c.value <= 0 || c.value&(c.value-1) != 0 {
			errs = append(errs,
				fmt.Errorf("%s must be a power of 2, got %d", c.name, c.value))
		}
	}

	if d.BurstLength > 0 && d.NumCol < d.BurstLength {
		errs = append(errs, errors.New("columns must not be less than BL"))
	}

	if len(d.AddressMapping) != 12 {
		errs = append(errs,
			fmt.Errorf("address_mapping %q must name 6 fields", d.AddressMapping))
	}

	if d.TransQueueSize <= 0 {
		errs = append(errs, errors.New("trans_queue_size must be positive"))
	}

	if d.WriteBufferThreshold < 0 {
		errs = append(errs, errors.New("write_buffer_threshold must not be negative"))
	}

	errs = append(errs, d.Timing.validate())

	return errors.Join(errs...)
}

func (t Timing) validate() error {
	var errs []error

	for _, p := range []struct {
		name  string
		value int
	}{
		{"tCL", t.CL}, {"tCWL", t.CWL}, {"tRCD", t.RCD}, {"tRP", t.RP},
		{"tRAS", t.RAS}, {"tCCD_L", t.CCDL}, {"tMRD", t.MRD},
		{"tPIMOp", t.PIMOp},
	} {
		if p.value < 0 {
			errs = append(errs,
				fmt.Errorf("timing %s must not be negative, got %d",
					p.name, p.value))
		}
	}

	return errors.Join(errs...)
}

// BurstCycle returns the number of cycles the data bus is busy for one burst.
func (d *Device) BurstCycle() int {
	switch strings.ToUpper(d.Protocol) {
	case "GDDR5":
		return d.BurstLength / 4
	case "GDDR5X":
		return d.BurstLength / 8
	case "GDDR6":
		return d.BurstLength / 16
	default:
		return d.BurstLength / 2
	}
}

// NumBanksPerChannel returns the number of banks that share a channel.
func (d *Device) NumBanksPerChannel() int {
	return d.NumRank * d.NumBankGroup * d.NumBank
}

// AddressMapper builds the address mapper of the device.
func (d *Device) AddressMapper() addressmapping.BitFieldMapper {
	return addressmapping.MakeBuilder().
		WithNumChannel(d.NumChannel).
		WithNumRank(d.NumRank).
		WithNumBankGroup(d.NumBankGroup).
		WithNumBank(d.NumBank).
		WithNumRow(d.NumRow).
		WithNumCol(d.NumCol).
		WithBusWidth(d.BusWidth).
		WithBurstLength(d.BurstLength).
		WithMappingOrder(d.AddressMapping).
		Build()
}

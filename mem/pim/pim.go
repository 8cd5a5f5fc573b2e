// Package pim describes the register layout of the PIM-enabled DRAM device.
//
// The device exposes its registers through reserved row addresses. A
// transaction whose row equals one of the Row* values below reaches a register
// instead of a DRAM cell, and the column selects the register entry.
package pim

import (
	"fmt"

	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"
)

// Reserved rows.
const (
	RowSBMR      = 0x3fff
	RowABMR      = 0x3ffe
	RowPIMOpMode = 0x3ffd
	RowCRF       = 0x3ffc
	RowGRF       = 0x3ffb
	RowSRF       = 0x3ffa
)

// Data layout of the device.
const (
	// WordSize is the number of bytes moved by one column access.
	WordSize = 32

	NumWordPerRow  = 32
	NumUnitPerWord = 16
	RowSize        = WordSize * NumWordPerRow

	// GRFOutputBase is the first GRF entry of the output (accumulator) half
	// of the general register file. Entries below it hold inputs.
	GRFOutputBase = 8
)

// Register identifies a register reachable through a reserved row.
type Register int

// A list of all the registers.
const (
	RegisterNone Register = iota
	RegisterSBMR
	RegisterABMR
	RegisterPIMOpMode
	RegisterCRF
	RegisterGRF
	RegisterSRF
)

var registerRows = map[uint64]Register{
	RowSBMR:      RegisterSBMR,
	RowABMR:      RegisterABMR,
	RowPIMOpMode: RegisterPIMOpMode,
	RowCRF:       RegisterCRF,
	RowGRF:       RegisterGRF,
	RowSRF:       RegisterSRF,
}

// RegisterOf returns the register that a row selects. The second return value
// is false for ordinary rows.
func RegisterOf(row uint64) (Register, bool) {
	r, ok := registerRows[row]
	return r, ok
}

// Row returns the reserved row of the register.
func (r Register) Row() uint64 {
	for row, reg := range registerRows {
		if reg == r {
			return row
		}
	}

	panic(fmt.Sprintf("register %d has no row", r))
}

// IsModeRegister tells if accessing the register switches the device mode.
func (r Register) IsModeRegister() bool {
	return r == RegisterSBMR || r == RegisterABMR || r == RegisterPIMOpMode
}

func (r Register) String() string {
	switch r {
	case RegisterSBMR:
		return "SBMR"
	case RegisterABMR:
		return "ABMR"
	case RegisterPIMOpMode:
		return "PIM_OP_MODE"
	case RegisterCRF:
		return "CRF"
	case RegisterGRF:
		return "GRF"
	case RegisterSRF:
		return "SRF"
	default:
		return "NONE"
	}
}

// ControlAddress returns the structured address of a register entry. Registers
// are always addressed through channel, rank, bank group and bank 0.
func ControlAddress(r Register, column uint64) addressmapping.Address {
	return addressmapping.Address{
		Row:    r.Row(),
		Column: column,
	}
}

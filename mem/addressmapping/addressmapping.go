// Package addressmapping converts between structured DRAM addresses and the
// linear addresses that a memory controller receives.
package addressmapping

import "fmt"

// Address is a location in the DRAM organization.
type Address struct {
	Channel   uint64
	Rank      uint64
	BankGroup uint64
	Bank      uint64
	Row       uint64
	Column    uint64
}

func (a Address) String() string {
	return fmt.Sprintf("ch%d.ra%d.bg%d.ba%d.ro%#x.co%d",
		a.Channel, a.Rank, a.BankGroup, a.Bank, a.Row, a.Column)
}

// A Mapper packs a structured address into a linear address.
type Mapper interface {
	Map(addr Address) uint64
}

// A Decoder splits a linear address into its structured fields.
type Decoder interface {
	Decode(addr uint64) Address
}

// BitFieldMapper places every field at a fixed bit position and shifts the
// result by the access granularity. Fields are not range checked. A value that
// is wider than its field overlaps its neighbours.
type BitFieldMapper struct {
	ChannelPos   uint64
	RankPos      uint64
	BankGroupPos uint64
	BankPos      uint64
	RowPos       uint64
	ColumnPos    uint64

	ChannelMask   uint64
	RankMask      uint64
	BankGroupMask uint64
	BankMask      uint64
	RowMask       uint64
	ColumnMask    uint64

	ShiftBits uint64
}

// Map returns the linear address of a structured address.
func (m BitFieldMapper) Map(addr Address) uint64 {
	linear := uint64(0)
	linear += addr.Channel << m.ChannelPos
	linear += addr.Rank << m.RankPos
	linear += addr.BankGroup << m.BankGroupPos
	linear += addr.Bank << m.BankPos
	linear += addr.Row << m.RowPos
	linear += addr.Column << m.ColumnPos

	return linear << m.ShiftBits
}

// Decode returns the structured address of a linear address. The bits below
// the access granularity are dropped.
func (m BitFieldMapper) Decode(addr uint64) Address {
	a := addr >> m.ShiftBits

	return Address{
		Channel:   (a >> m.ChannelPos) & m.ChannelMask,
		Rank:      (a >> m.RankPos) & m.RankMask,
		BankGroup: (a >> m.BankGroupPos) & m.BankGroupMask,
		Bank:      (a >> m.BankPos) & m.BankMask,
		Row:       (a >> m.RowPos) & m.RowMask,
		Column:    (a >> m.ColumnPos) & m.ColumnMask,
	}
}

package addressmapping

import (
	"fmt"
	"strings"
)

// Builder can build BitFieldMappers from the organization of a DRAM device.
type Builder struct {
	numChannel   int
	numRank      int
	numBankGroup int
	numBank      int
	numRow       int
	numCol       int
	busWidth     int
	burstLength  int
	mappingOrder string

	explicitPositions *BitFieldMapper
}

// MakeBuilder creates a builder with default configuration.
func MakeBuilder() Builder {
	return Builder{
		numChannel:   1,
		numRank:      2,
		numBankGroup: 1,
		numBank:      8,
		numRow:       32768,
		numCol:       1024,
		busWidth:     64,
		burstLength:  8,
		mappingOrder: "rochrababgco",
	}
}

// WithNumChannel sets the number of channels.
func (b Builder) WithNumChannel(n int) Builder {
	b.numChannel = n
	return b
}

// WithNumRank sets the number of ranks in each channel.
func (b Builder) WithNumRank(n int) Builder {
	b.numRank = n
	return b
}

// WithNumBankGroup sets the number of bank groups in each rank.
func (b Builder) WithNumBankGroup(n int) Builder {
	b.numBankGroup = n
	return b
}

// WithNumBank sets the number of banks in each bank group.
func (b Builder) WithNumBank(n int) Builder {
	b.numBank = n
	return b
}

// WithNumRow sets the number of rows in each bank.
func (b Builder) WithNumRow(n int) Builder {
	b.numRow = n
	return b
}

// WithNumCol sets the number of columns in each row. One burst covers
// BurstLength columns, so the column field holds NumCol/BurstLength values.
func (b Builder) WithNumCol(n int) Builder {
	b.numCol = n
	return b
}

// WithBusWidth sets the data bus width in bits.
func (b Builder) WithBusWidth(n int) Builder {
	b.busWidth = n
	return b
}

// WithBurstLength sets the number of bus transfers of one access.
func (b Builder) WithBurstLength(n int) Builder {
	b.burstLength = n
	return b
}

// WithMappingOrder sets the order of the fields from the most significant to
// the least significant, using two letters per field: ch, ra, bg, ba, ro, co.
// For example, "rochrababgco" places the row at the top and the column at the
// bottom.
func (b Builder) WithMappingOrder(order string) Builder {
	b.mappingOrder = order
	return b
}

// WithFieldPositions overrides the positions computed from the mapping order.
// The field masks still follow the device organization.
func (b Builder) WithFieldPositions(
	channel, rank, bankGroup, bank, row, column, shiftBits uint64,
) Builder {
	b.explicitPositions = &BitFieldMapper{
		ChannelPos:   channel,
		RankPos:      rank,
		BankGroupPos: bankGroup,
		BankPos:      bank,
		RowPos:       row,
		ColumnPos:    column,
		ShiftBits:    shiftBits,
	}

	return b
}

// Build creates the mapper.
func (b Builder) Build() BitFieldMapper {
	widths := b.fieldWidths()

	m := BitFieldMapper{
		ChannelMask:   mask(widths["ch"]),
		RankMask:      mask(widths["ra"]),
		BankGroupMask: mask(widths["bg"]),
		BankMask:      mask(widths["ba"]),
		RowMask:       mask(widths["ro"]),
		ColumnMask:    mask(widths["co"]),
		ShiftBits:     mustLog2("access size", b.busWidth/8*b.burstLength),
	}

	if b.explicitPositions != nil {
		m.ChannelPos = b.explicitPositions.ChannelPos
		m.RankPos = b.explicitPositions.RankPos
		m.BankGroupPos = b.explicitPositions.BankGroupPos
		m.BankPos = b.explicitPositions.BankPos
		m.RowPos = b.explicitPositions.RowPos
		m.ColumnPos = b.explicitPositions.ColumnPos
		m.ShiftBits = b.explicitPositions.ShiftBits

		return m
	}

	positions := b.fieldPositions(widths)
	m.ChannelPos = positions["ch"]
	m.RankPos = positions["ra"]
	m.BankGroupPos = positions["bg"]
	m.BankPos = positions["ba"]
	m.RowPos = positions["ro"]
	m.ColumnPos = positions["co"]

	return m
}

func (b Builder) fieldWidths() map[string]uint64 {
	if b.burstLength == 0 {
		panic("burst length cannot be 0")
	}

	return map[string]uint64{
		"ch": mustLog2("channel count", b.numChannel),
		"ra": mustLog2("rank count", b.numRank),
		"bg": mustLog2("bank group count", b.numBankGroup),
		"ba": mustLog2("bank count", b.numBank),
		"ro": mustLog2("row count", b.numRow),
		"co": mustLog2("column count", b.numCol/b.burstLength),
	}
}

func (b Builder) fieldPositions(widths map[string]uint64) map[string]uint64 {
	fields := parseMappingOrder(b.mappingOrder)
	positions := make(map[string]uint64, len(fields))

	pos := uint64(0)
	for i := len(fields) - 1; i >= 0; i-- {
		positions[fields[i]] = pos
		pos += widths[fields[i]]
	}

	return positions
}

func parseMappingOrder(order string) []string {
	order = strings.ToLower(order)
	if len(order) != 12 {
		panic(fmt.Sprintf("invalid address mapping %q", order))
	}

	fields := make([]string, 0, 6)
	seen := make(map[string]bool, 6)

	for i := 0; i < len(order); i += 2 {
		f := order[i : i+2]

		switch f {
		case "ch", "ra", "bg", "ba", "ro", "co":
		default:
			panic(fmt.Sprintf("unknown field %q in address mapping %q", f, order))
		}

		if seen[f] {
			panic(fmt.Sprintf("field %q repeats in address mapping %q", f, order))
		}

		seen[f] = true
		fields = append(fields, f)
	}

	return fields
}

func mask(width uint64) uint64 {
	return (uint64(1) << width) - 1
}

func mustLog2(what string, n int) uint64 {
	if n <= 0 {
		panic(fmt.Sprintf("%s must be positive, got %d", what, n))
	}

	l, ok := log2(uint64(n))
	if !ok {
		panic(fmt.Sprintf("%s must be a power of 2, got %d", what, n))
	}

	return l
}

// log2 returns the log2 of a number. It also returns false if it is not a log2
// number.
func log2(n uint64) (uint64, bool) {
	oneCount := 0
	onePos := uint64(0)

	for i := uint64(0); i < 64; i++ {
		if n&(1<<i) > 0 {
			onePos = i
			oneCount++
		}
	}

	return onePos, oneCount == 1
}

package txgen

import (
	"math"
	"sync/atomic"

	"github.com/LeeHayun/PIM-Code-Test/config"
	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"
	"github.com/LeeHayun/PIM-Code-Test/mem/pim"
	"github.com/LeeHayun/PIM-Code-Test/mem/timing"
	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
)

// HookPosTileStart marks the start of a tile. The item is a Tile.
var HookPosTileStart = &hooking.HookPos{Name: "TileStart"}

// Tile identifies one step of the GEMV schedule.
type Tile struct {
	XOO, YOO, XOI, YOI uint64

	// X and Y are the first input and output register rows of the tile.
	X, Y uint64
}

// GemvGenerator issues the transactions of a tiled GEMV on an all-bank PIM
// device.
//
// Hooks registered on the generator see the tiles it visits, and are also
// passed on to the issuer of every run, where they see the transactions and
// the barriers.
type GemvGenerator struct {
	hooking.HookableBase

	name         string
	device       *config.Device
	outputDir    string
	tiling       TilingConfig
	mapper       addressmapping.Mapper
	modelFactory timing.Factory
	onRead       timing.Callback
	onWrite      timing.Callback

	model timing.Model

	// issuer is published once its hooks are attached, so that a monitor
	// may read the counters of a run in progress.
	issuer atomic.Pointer[Issuer]
}

// Name returns the name of the generator.
func (g *GemvGenerator) Name() string {
	return g.name
}

// Tiling returns the tiling the generator runs.
func (g *GemvGenerator) Tiling() TilingConfig {
	return g.tiling
}

// Initialize does nothing. The GEMV generator only measures timing.
func (g *GemvGenerator) Initialize() {}

// SetData does nothing.
func (g *GemvGenerator) SetData() {}

// GetResult does nothing.
func (g *GemvGenerator) GetResult() {}

// CheckResult does nothing.
func (g *GemvGenerator) CheckResult() {}

// ReadCallBack is the default handler of retired reads.
func (g *GemvGenerator) ReadCallBack(uint64) {}

// WriteCallBack is the default handler of retired writes.
func (g *GemvGenerator) WriteCallBack(uint64) {}

// Execute creates a fresh timing model and issues the whole GEMV into it.
// Every call starts over from cycle 0.
func (g *GemvGenerator) Execute() {
	g.model = g.modelFactory(g.device, g.outputDir, g.onRead, g.onWrite)
	issuer := NewIssuer(g.model)

	for _, h := range g.Hooks() {
		issuer.AcceptHook(h)
	}

	g.issuer.Store(issuer)

	r := &gemvRun{
		generator:          g,
		tiling:             g.tiling,
		issuer:             issuer,
		isOutputStationary: g.tiling.IsOutputStationary(),
		prevX:              math.MaxUint64,
		prevY:              math.MaxUint64,
	}

	r.execute()
}

// GetCycleCount returns the cycles of the last run. While a run is in
// progress, it returns the cycles passed so far.
func (g *GemvGenerator) GetCycleCount() uint64 {
	issuer := g.issuer.Load()
	if issuer == nil {
		return 0
	}

	return issuer.Now()
}

// GetTransactionCount returns the transactions of the last run.
func (g *GemvGenerator) GetTransactionCount() uint64 {
	issuer := g.issuer.Load()
	if issuer == nil {
		return 0
	}

	return issuer.NumTransactions()
}

// PrintStats prints the statistics of the model of the last run.
func (g *GemvGenerator) PrintStats() {
	if g.model == nil {
		return
	}

	g.model.PrintStats()
}

func (g *GemvGenerator) registerAddress(r pim.Register, column uint64) uint64 {
	return g.mapper.Map(pim.ControlAddress(r, column))
}

// gemvRun holds the state that lives for a single Execute.
type gemvRun struct {
	generator *GemvGenerator
	tiling    TilingConfig
	issuer    *Issuer

	isOutputStationary bool

	// prevX and prevY are the input and output rows currently held in the
	// registers. MaxUint64 means nothing is held.
	prevX, prevY uint64

	// isDirty is set once the accumulators hold partial sums that have not
	// been read back.
	isDirty bool

	// idx is the number of results streamed so far.
	idx uint64
}

func (r *gemvRun) execute() {
	t := r.tiling

	r.issueRegister(pim.RegisterABMR, 0, false)

	for xoo := uint64(0); xoo < t.XOO; xoo++ {
		for yoo := uint64(0); yoo < t.YOO; yoo++ {
			for xoi := uint64(0); xoi < t.XOI; xoi++ {
				for yoi := uint64(0); yoi < t.YOI; yoi++ {
					r.runTile(Tile{
						XOO: xoo,
						YOO: yoo,
						XOI: xoi,
						YOI: yoi,
						X:   xoo*t.XOI*t.KI + xoi*t.KI,
						Y:   yoo*t.YOI*t.KO + yoi*t.KO,
					})
				}
			}
		}
	}

	r.readBackAccumulators(r.prevY)
}

func (r *gemvRun) runTile(tile Tile) {
	g := r.generator
	if g.NumHooks() > 0 {
		g.InvokeHook(hooking.HookCtx{
			Domain: g,
			Pos:    HookPosTileStart,
			Item:   tile,
		})
	}

	r.prepareAccumulators(tile.X, tile.Y)
	r.loadInputs(tile.X, tile.Y)

	r.issueRegister(pim.RegisterPIMOpMode, 0, true)
	r.issuer.Barrier()

	r.streamResults()

	r.isDirty = true
}

// prepareAccumulators reads back the accumulators of the previous input rows
// and clears them for x. With register reuse, the accumulators stay as they
// are while x does not change.
func (r *gemvRun) prepareAccumulators(x, y uint64) {
	if r.tiling.IsRegisterReuse && x == r.prevX {
		return
	}

	if r.isDirty {
		r.readBackAccumulators(y)
		r.issueRegister(pim.RegisterABMR, 0, false)
	}

	r.prevX = x

	for _, col := range r.outputColumns(y) {
		r.issueRegister(pim.RegisterGRF, col, true)
	}
}

// loadInputs writes the operands of the tile. With register reuse, the
// operands stay as they are while y does not change.
func (r *gemvRun) loadInputs(x, y uint64) {
	if r.tiling.IsRegisterReuse && y == r.prevY {
		return
	}

	r.prevY = y

	if !r.tiling.IsInputVector {
		r.issueRegister(pim.RegisterSRF, 0, true)
		return
	}

	first := x % r.tiling.RI
	for col := first; col < first+r.tiling.KI; col++ {
		r.issueRegister(pim.RegisterGRF, col, true)
	}
}

// readBackAccumulators switches to single-bank mode and reads the output
// entries of the general register file.
func (r *gemvRun) readBackAccumulators(y uint64) {
	r.issueRegister(pim.RegisterSBMR, 0, false)

	for _, col := range r.outputColumns(y) {
		r.issueRegister(pim.RegisterGRF, col, false)
	}

	r.issuer.Barrier()
}

func (r *gemvRun) outputColumns(y uint64) []uint64 {
	first := pim.GRFOutputBase + y%r.tiling.RO

	cols := make([]uint64, 0, r.tiling.KO)
	for col := first; col < first+r.tiling.KO; col++ {
		cols = append(cols, col)
	}

	return cols
}

// streamResults reads the results of the tile. The output-stationary order
// walks the outputs in the outer loop; the input-stationary order walks the
// inputs in the outer loop.
func (r *gemvRun) streamResults() {
	outer, inner := r.tiling.KO, r.tiling.KI
	if !r.isOutputStationary {
		outer, inner = r.tiling.KI, r.tiling.KO
	}

	for o := uint64(0); o < outer; o++ {
		for i := uint64(0); i < inner; i++ {
			r.issuer.TryIssue(r.resultAddress(r.idx), false)
			r.idx++
		}
	}
}

// resultAddress returns the address of the idx-th result. Results are
// grouped in blocks of RI*RO words; within a block, the input-stationary
// order transposes the position.
func (r *gemvRun) resultAddress(idx uint64) uint64 {
	block := r.tiling.RI * r.tiling.RO
	offset := idx % block
	base := flooring(idx, block)

	var pos uint64
	if r.isOutputStationary {
		i := offset % r.tiling.RI
		o := offset / r.tiling.RI
		pos = o*r.tiling.RI + i
	} else {
		i := offset % r.tiling.RO
		o := offset / r.tiling.RO
		pos = i*r.tiling.RO + o
	}

	return (base + pos) * pim.WordSize
}

func (r *gemvRun) issueRegister(reg pim.Register, column uint64, isWrite bool) {
	r.issuer.TryIssue(r.generator.registerAddress(reg, column), isWrite)
}

// flooring rounds n down to a multiple of m.
func flooring(n, m uint64) uint64 {
	return n / m * m
}

package txgen

import (
	"github.com/LeeHayun/PIM-Code-Test/config"
	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"
	"github.com/LeeHayun/PIM-Code-Test/mem/timing"
	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
)

// A GemvBuilder can build GEMV generators.
type GemvBuilder struct {
	device       *config.Device
	outputDir    string
	tiling       TilingConfig
	mapper       addressmapping.Mapper
	modelFactory timing.Factory
	onRead       timing.Callback
	onWrite      timing.Callback
	hooks        []hooking.Hook
}

// MakeGemvBuilder returns a builder with the default device and a single
// one-row tile.
func MakeGemvBuilder() GemvBuilder {
	return GemvBuilder{
		device:    config.Default(),
		outputDir: ".",
		tiling: TilingConfig{
			XCh: 1, YCh: 1,
			XOO: 1, YOO: 1, XOI: 1, YOI: 1,
			RI: 8, RO: 8,
			KI: 1, KO: 1,
			IsInputVector: true,
		},
	}
}

// WithDeviceConfig sets the device that the timing model simulates.
func (b GemvBuilder) WithDeviceConfig(device *config.Device) GemvBuilder {
	b.device = device
	return b
}

// WithOutputDir sets the directory where the timing model writes its
// statistics.
func (b GemvBuilder) WithOutputDir(dir string) GemvBuilder {
	b.outputDir = dir
	return b
}

// WithTilingConfig sets the tiling to run.
func (b GemvBuilder) WithTilingConfig(tiling TilingConfig) GemvBuilder {
	b.tiling = tiling
	return b
}

// WithAddressMapper overrides the mapper derived from the device.
func (b GemvBuilder) WithAddressMapper(mapper addressmapping.Mapper) GemvBuilder {
	b.mapper = mapper
	return b
}

// WithModelFactory sets how the generator creates the timing model of a run.
func (b GemvBuilder) WithModelFactory(factory timing.Factory) GemvBuilder {
	b.modelFactory = factory
	return b
}

// WithReadCallback sets the handler of retired reads.
func (b GemvBuilder) WithReadCallback(cb timing.Callback) GemvBuilder {
	b.onRead = cb
	return b
}

// WithWriteCallback sets the handler of retired writes.
func (b GemvBuilder) WithWriteCallback(cb timing.Callback) GemvBuilder {
	b.onWrite = cb
	return b
}

// WithHook registers a hook on the generator.
func (b GemvBuilder) WithHook(hook hooking.Hook) GemvBuilder {
	b.hooks = append(b.hooks, hook)
	return b
}

// Build creates a GEMV generator.
func (b GemvBuilder) Build(name string) *GemvGenerator {
	if b.modelFactory == nil {
		panic("a model factory is required")
	}

	if b.device == nil {
		panic("a device config is required")
	}

	g := &GemvGenerator{
		name:         name,
		device:       b.device,
		outputDir:    b.outputDir,
		tiling:       b.tiling,
		mapper:       b.mapper,
		modelFactory: b.modelFactory,
		onRead:       b.onRead,
		onWrite:      b.onWrite,
	}

	if g.mapper == nil {
		g.mapper = b.device.AddressMapper()
	}

	if g.onRead == nil {
		g.onRead = g.ReadCallBack
	}

	if g.onWrite == nil {
		g.onWrite = g.WriteCallBack
	}

	for _, h := range b.hooks {
		g.AcceptHook(h)
	}

	return g
}

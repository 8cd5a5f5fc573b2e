package pimdram

import (
	"fmt"

	"github.com/LeeHayun/PIM-Code-Test/config"
	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"
	"github.com/LeeHayun/PIM-Code-Test/mem/timing"
	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
	"github.com/LeeHayun/PIM-Code-Test/sim/queueing"
)

// Builder can build timing models.
type Builder struct {
	device    *config.Device
	decoder   addressmapping.Decoder
	outputDir string
	onRead    timing.Callback
	onWrite   timing.Callback
	hooks     []hooking.Hook
}

// MakeBuilder creates a builder for the default device.
func MakeBuilder() Builder {
	return Builder{
		device:  config.Default(),
		onRead:  timing.NoOpCallback,
		onWrite: timing.NoOpCallback,
	}
}

// WithDeviceConfig sets the device to model.
func (b Builder) WithDeviceConfig(device *config.Device) Builder {
	b.device = device
	return b
}

// WithAddressDecoder overrides the decoder derived from the device.
func (b Builder) WithAddressDecoder(decoder addressmapping.Decoder) Builder {
	b.decoder = decoder
	return b
}

// WithOutputDir sets where PrintStats writes. An empty directory makes it
// write to the standard output.
func (b Builder) WithOutputDir(dir string) Builder {
	b.outputDir = dir
	return b
}

// WithReadCallback sets the function called when a read is served.
func (b Builder) WithReadCallback(cb timing.Callback) Builder {
	b.onRead = cb
	return b
}

// WithWriteCallback sets the function called when a write is served.
func (b Builder) WithWriteCallback(cb timing.Callback) Builder {
	b.onWrite = cb
	return b
}

// WithHook registers a hook on the model.
func (b Builder) WithHook(hook hooking.Hook) Builder {
	b.hooks = append(b.hooks, hook)
	return b
}

// Build creates a timing model.
func (b Builder) Build(name string) *Model {
	if err := b.device.Validate(); err != nil {
		panic(fmt.Sprintf("pimdram %s: %v", name, err))
	}

	m := &Model{
		name:                 name,
		outputDir:            b.outputDir,
		device:               b.device,
		decoder:              b.decoder,
		onRead:               b.onRead,
		onWrite:              b.onWrite,
		writeBufferThreshold: b.device.WriteBufferThreshold,
	}

	if m.decoder == nil {
		m.decoder = b.device.AddressMapper()
	}

	if m.onRead == nil {
		m.onRead = timing.NoOpCallback
	}

	if m.onWrite == nil {
		m.onWrite = timing.NoOpCallback
	}

	for i := 0; i < b.device.NumChannel; i++ {
		m.channels = append(m.channels, b.buildChannel(m, i))
	}

	for _, h := range b.hooks {
		m.AcceptHook(h)
	}

	return m
}

func (b Builder) buildChannel(m *Model, index int) *channel {
	d := b.device
	name := fmt.Sprintf("%s.Channel[%d]", m.name, index)

	c := &channel{
		model:       m,
		transQueue:  queueing.NewBuffer(name+".TransQueue", d.TransQueueSize),
		writeBuffer: queueing.NewBuffer(name+".WriteBuffer", d.TransQueueSize),
		modePostBuf: queueing.NewBuffer(name+".ModePostBuf", d.TransQueueSize),
	}

	c.modePipeline = queueing.MakePipelineBuilder().
		WithNumStage(d.Timing.MRD).
		WithPostPipelineBuffer(c.modePostBuf).
		Build(name + ".ModePipeline")

	readDelay := d.Timing.CL + d.BurstCycle()
	writeDelay := d.Timing.CWL + d.BurstCycle()

	for i := 0; i < d.NumBanksPerChannel(); i++ {
		c.banks = append(c.banks, newBank(
			fmt.Sprintf("%s.Bank[%d]", name, i),
			readDelay, writeDelay, d.TransQueueSize))
	}

	return c
}

// Factory creates a model for a generator run. The model is named after the
// device protocol.
func Factory(
	device *config.Device,
	outputDir string,
	onRead, onWrite timing.Callback,
) timing.Model {
	return MakeBuilder().
		WithDeviceConfig(device).
		WithOutputDir(outputDir).
		WithReadCallback(onRead).
		WithWriteCallback(onWrite).
		Build(device.Protocol)
}

var _ timing.Factory = Factory

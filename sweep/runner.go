package sweep

import (
	"context"
	"fmt"

	"github.com/LeeHayun/PIM-Code-Test/config"
	"github.com/LeeHayun/PIM-Code-Test/mem/timing"
	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
	"github.com/LeeHayun/PIM-Code-Test/txgen"
)

// An Observer follows the progress of a sweep.
type Observer interface {
	// SweepStarted reports the number of runs that the sweep will execute.
	SweepStarted(numRun int)

	// RunStarted is called before a generator executes.
	RunStarted(g *txgen.GemvGenerator)

	// RunFinished is called after a generator executes.
	RunFinished(g *txgen.GemvGenerator)
}

// Result is the measurement of one run.
type Result struct {
	NumTrans uint64
	Cycles   uint64
}

// Runner executes tilings on fresh timing models.
type Runner struct {
	device    *config.Device
	outputDir string
	factory   timing.Factory
	hooks     []hooking.Hook
	sinks     []RowSink
	observers []Observer
}

// Run executes every tiling of the parameters twice, without and with the
// dataflow optimization, and writes one row per tiling into the sinks. It
// stops at the first sink error or when the context is done.
func (r *Runner) Run(ctx context.Context, p Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("invalid sweep parameters: %w", err)
	}

	configs := Enumerate(p)

	for _, o := range r.observers {
		o.SweepStarted(2 * len(configs))
	}

	for _, c := range configs {
		if err := ctx.Err(); err != nil {
			return err
		}

		plain := r.Execute(c)

		c.IsDataflowOpt = true
		opt := r.Execute(c)

		row := Row{
			XCh: c.XCh, YCh: c.YCh,
			XOO: c.XOO, YOO: c.YOO,
			XOI: c.XOI, YOI: c.YOI,
			KI: c.KI, KO: c.KO,
			NumTrans:    plain.NumTrans,
			Cycles:      plain.Cycles,
			NumTransOpt: opt.NumTrans,
			CyclesOpt:   opt.Cycles,
		}

		for _, s := range r.sinks {
			if err := s.Write(row); err != nil {
				return fmt.Errorf("failed to write sweep row: %w", err)
			}
		}
	}

	return nil
}

// Execute runs a single tiling.
func (r *Runner) Execute(c txgen.TilingConfig) Result {
	g := r.newGenerator(c)

	for _, o := range r.observers {
		o.RunStarted(g)
	}

	g.Execute()

	for _, o := range r.observers {
		o.RunFinished(g)
	}

	return Result{
		NumTrans: g.GetTransactionCount(),
		Cycles:   g.GetCycleCount(),
	}
}

func (r *Runner) newGenerator(c txgen.TilingConfig) *txgen.GemvGenerator {
	b := txgen.MakeGemvBuilder().
		WithDeviceConfig(r.device).
		WithOutputDir(r.outputDir).
		WithTilingConfig(c).
		WithModelFactory(r.factory)

	for _, h := range r.hooks {
		b = b.WithHook(h)
	}

	return b.Build("GEMV")
}

// A RunnerBuilder can build runners.
type RunnerBuilder struct {
	device    *config.Device
	outputDir string
	factory   timing.Factory
	hooks     []hooking.Hook
	sinks     []RowSink
	observers []Observer
}

// MakeRunnerBuilder returns a builder with the default device.
func MakeRunnerBuilder() RunnerBuilder {
	return RunnerBuilder{
		device:    config.Default(),
		outputDir: ".",
	}
}

// WithDeviceConfig sets the device to simulate.
func (b RunnerBuilder) WithDeviceConfig(device *config.Device) RunnerBuilder {
	b.device = device
	return b
}

// WithOutputDir sets the output directory of the timing models.
func (b RunnerBuilder) WithOutputDir(dir string) RunnerBuilder {
	b.outputDir = dir
	return b
}

// WithModelFactory sets how timing models are created.
func (b RunnerBuilder) WithModelFactory(factory timing.Factory) RunnerBuilder {
	b.factory = factory
	return b
}

// WithHook registers a hook on every generator.
func (b RunnerBuilder) WithHook(hook hooking.Hook) RunnerBuilder {
	b.hooks = append(b.hooks, hook)
	return b
}

// WithSink adds a destination of the rows.
func (b RunnerBuilder) WithSink(sink RowSink) RunnerBuilder {
	b.sinks = append(b.sinks, sink)
	return b
}

// WithObserver adds an observer.
func (b RunnerBuilder) WithObserver(o Observer) RunnerBuilder {
	b.observers = append(b.observers, o)
	return b
}

// Build creates a runner.
func (b RunnerBuilder) Build() *Runner {
	if b.factory == nil {
		panic("sweep: a model factory is required")
	}

	return &Runner{
		device:    b.device,
		outputDir: b.outputDir,
		factory:   b.factory,
		hooks:     b.hooks,
		sinks:     b.sinks,
		observers: b.observers,
	}
}

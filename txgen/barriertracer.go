package txgen

import (
	"sync"

	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
)

// BarrierTracer collects the number of barriers and the cycles the issuer
// spends draining the model at them. Overlapping is impossible since an
// issuer only drains at one barrier at a time.
type BarrierTracer struct {
	lock        sync.Mutex
	count       uint64
	totalCycles uint64
	maxCycles   uint64
}

// NewBarrierTracer creates a new BarrierTracer.
func NewBarrierTracer() *BarrierTracer {
	return &BarrierTracer{}
}

// Func records a completed barrier.
func (t *BarrierTracer) Func(ctx hooking.HookCtx) {
	if ctx.Pos != HookPosBarrier {
		return
	}

	info := ctx.Item.(BarrierInfo)
	cycles := info.End - info.Start

	t.lock.Lock()
	defer t.lock.Unlock()

	t.count++
	t.totalCycles += cycles

	if cycles > t.maxCycles {
		t.maxCycles = cycles
	}
}

// Count returns the number of barriers.
func (t *BarrierTracer) Count() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.count
}

// TotalCycles returns the cycles spent at all the barriers.
func (t *BarrierTracer) TotalCycles() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.totalCycles
}

// MaxCycles returns the cycles of the longest barrier.
func (t *BarrierTracer) MaxCycles() uint64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.maxCycles
}

// AverageCycles returns the average cycles of a barrier, or 0 if there has
// not been any.
func (t *BarrierTracer) AverageCycles() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()

	if t.count == 0 {
		return 0
	}

	return float64(t.totalCycles) / float64(t.count)
}

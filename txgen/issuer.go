package txgen

import (
	"fmt"
	"sync/atomic"

	"github.com/LeeHayun/PIM-Code-Test/mem/timing"
	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
)

// HookPosIssue marks a transaction accepted by the timing model. The item is a
// Transaction.
var HookPosIssue = &hooking.HookPos{Name: "Issue"}

// HookPosBarrier marks a completed barrier. The item is a BarrierInfo.
var HookPosBarrier = &hooking.HookPos{Name: "Barrier"}

// Transaction is a request that the issuer handed to the timing model.
type Transaction struct {
	Addr    uint64
	IsWrite bool

	// Cycle is the cycle in which the model accepted the request.
	Cycle uint64
}

func (t Transaction) String() string {
	kind := "RD"
	if t.IsWrite {
		kind = "WR"
	}

	return fmt.Sprintf("%d, %s, %#x", t.Cycle, kind, t.Addr)
}

// BarrierInfo describes the cycles that a barrier spent draining the model.
type BarrierInfo struct {
	Start uint64
	End   uint64
}

func (b BarrierInfo) String() string {
	return fmt.Sprintf("%d, barrier, %d cycles", b.Start, b.End-b.Start)
}

// An Issuer feeds transactions into a timing model in program order. It owns
// the logical clock of the run: every model cycle passes through the issuer.
//
// The counters are atomic so that a monitor may read them while a run is in
// progress. All the other methods must be called from a single goroutine.
type Issuer struct {
	hooking.HookableBase

	model    timing.Model
	clk      atomic.Uint64
	numTrans atomic.Uint64
}

// NewIssuer creates an issuer that drives the given model.
func NewIssuer(model timing.Model) *Issuer {
	return &Issuer{model: model}
}

// TryIssue waits, cycle by cycle, until the model admits the transaction, then
// adds it. The cycle of the admission itself is also consumed. If the model
// never admits the transaction, TryIssue never returns.
func (i *Issuer) TryIssue(addr uint64, isWrite bool) {
	for !i.model.WillAcceptTransaction(addr, isWrite) {
		i.tick()
	}

	i.model.AddTransaction(addr, isWrite)
	i.numTrans.Add(1)

	if i.NumHooks() > 0 {
		i.InvokeHook(hooking.HookCtx{
			Domain: i,
			Pos:    HookPosIssue,
			Item: Transaction{
				Addr:    addr,
				IsWrite: isWrite,
				Cycle:   i.clk.Load(),
			},
		})
	}

	i.tick()
}

// Barrier returns after every transaction issued so far has retired. Write
// coalescing is disabled while draining so that buffered writes cannot hold
// the barrier.
func (i *Issuer) Barrier() {
	start := i.clk.Load()

	i.model.SetWriteBufferThreshold(timing.WriteBufferThresholdDisabled)

	for i.model.IsPendingTransaction() {
		i.tick()
	}

	i.model.SetWriteBufferThreshold(timing.WriteBufferThresholdDefault)

	if i.NumHooks() > 0 {
		i.InvokeHook(hooking.HookCtx{
			Domain: i,
			Pos:    HookPosBarrier,
			Item:   BarrierInfo{Start: start, End: i.clk.Load()},
		})
	}
}

func (i *Issuer) tick() {
	i.model.ClockTick()
	i.clk.Add(1)
}

// Now returns the number of cycles that have passed.
func (i *Issuer) Now() uint64 {
	return i.clk.Load()
}

// NumTransactions returns the number of transactions added to the model.
func (i *Issuer) NumTransactions() uint64 {
	return i.numTrans.Load()
}

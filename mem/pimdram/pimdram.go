// Package pimdram provides a cycle-driven timing model of a PIM-enabled HBM
// device.
//
// The model tracks an open row per bank, a transaction queue and a write
// buffer per channel, and the all-bank operations that the mode registers
// trigger. It does not model refresh or power states.
package pimdram

import (
	"github.com/LeeHayun/PIM-Code-Test/config"
	"github.com/LeeHayun/PIM-Code-Test/mem/addressmapping"
	"github.com/LeeHayun/PIM-Code-Test/mem/pim"
	"github.com/LeeHayun/PIM-Code-Test/mem/timing"
	"github.com/LeeHayun/PIM-Code-Test/sim/hooking"
)

// HookPosRetire marks a transaction that has been served. The item is a
// Retirement.
var HookPosRetire = &hooking.HookPos{Name: "Retire"}

// Retirement describes a served transaction.
type Retirement struct {
	Addr    uint64
	IsWrite bool
	Cycle   uint64
}

// Model is the timing model of one device.
type Model struct {
	hooking.HookableBase

	name      string
	outputDir string
	device    *config.Device
	decoder   addressmapping.Decoder
	onRead    timing.Callback
	onWrite   timing.Callback

	channels             []*channel
	writeBufferThreshold int
	cycle                uint64
	nextID               uint64
	numPending           int

	stats Stats
}

// Name returns the name of the model.
func (m *Model) Name() string {
	return m.name
}

// WillAcceptTransaction checks the queue that the transaction would enter.
func (m *Model) WillAcceptTransaction(addr uint64, isWrite bool) bool {
	return m.channelOf(addr).canAccept(isWrite)
}

// AddTransaction enqueues a transaction. It panics if the queue is full.
func (m *Model) AddTransaction(addr uint64, isWrite bool) {
	loc := m.decoder.Decode(addr)
	reg, isReg := pim.RegisterOf(loc.Row)

	t := &transaction{
		id:       m.nextID,
		addr:     addr,
		isWrite:  isWrite,
		location: loc,
		register: reg,
		isReg:    isReg,
	}
	m.nextID++

	m.channelOf(addr).add(t)
	m.numPending++
}

// ClockTick advances every channel by one cycle.
func (m *Model) ClockTick() {
	for _, c := range m.channels {
		c.tick()
	}

	m.cycle++
	m.stats.NumCycle = m.cycle
}

// SetWriteBufferThreshold sets how many writes a channel buffers before it
// drains them. timing.WriteBufferThresholdDefault restores the device
// configuration and timing.WriteBufferThresholdDisabled drains writes as
// soon as they arrive.
func (m *Model) SetWriteBufferThreshold(threshold int) {
	if threshold < 0 {
		threshold = m.device.WriteBufferThreshold
	}

	m.writeBufferThreshold = threshold
}

// IsPendingTransaction returns true if any added transaction has not been
// served.
func (m *Model) IsPendingTransaction() bool {
	return m.numPending > 0
}

// NumInFlight returns the number of transactions in the queues and the
// pipelines of the model.
func (m *Model) NumInFlight() int {
	n := 0
	for _, c := range m.channels {
		n += c.numInFlight()
	}

	return n
}

// Stats returns a copy of the statistics collected so far.
func (m *Model) Stats() Stats {
	return m.stats
}

func (m *Model) retire(t *transaction) {
	m.numPending--

	if m.NumHooks() > 0 {
		m.InvokeHook(hooking.HookCtx{
			Domain: m,
			Pos:    HookPosRetire,
			Item: Retirement{
				Addr:    t.addr,
				IsWrite: t.isWrite,
				Cycle:   m.cycle,
			},
		})
	}

	if t.isWrite {
		m.stats.NumWrite++
		m.onWrite(t.addr)
	} else {
		m.stats.NumRead++
		m.onRead(t.addr)
	}
}

func (m *Model) channelOf(addr uint64) *channel {
	ch := m.decoder.Decode(addr).Channel
	return m.channels[ch%uint64(len(m.channels))]
}

// Package timing defines how a transaction generator drives a cycle-accurate
// memory timing model.
package timing

import "github.com/LeeHayun/PIM-Code-Test/config"

// Write-buffer threshold values with a special meaning.
const (
	// WriteBufferThresholdDisabled makes the model issue writes as soon as
	// possible instead of coalescing them.
	WriteBufferThresholdDisabled = 0

	// WriteBufferThresholdDefault restores the configured threshold.
	WriteBufferThresholdDefault = -1
)

// Callback is invoked by a model when a transaction retires.
type Callback func(addr uint64)

// NoOpCallback ignores retirements.
func NoOpCallback(uint64) {}

// Model is a memory timing model that advances one cycle at a time.
type Model interface {
	// WillAcceptTransaction tells if AddTransaction would accept the request
	// in the current cycle. It must not change the state of the model.
	WillAcceptTransaction(addr uint64, isWrite bool) bool

	// AddTransaction enqueues a request that WillAcceptTransaction admitted.
	AddTransaction(addr uint64, isWrite bool)

	// ClockTick advances the model by one cycle.
	ClockTick()

	// SetWriteBufferThreshold changes how many writes the model buffers
	// before issuing them.
	SetWriteBufferThreshold(threshold int)

	// IsPendingTransaction returns true while any added transaction has not
	// retired.
	IsPendingTransaction() bool

	// PrintStats reports the statistics that the model collected.
	PrintStats()
}

// Factory creates a model for one simulation run. The model calls onRead and
// onWrite when reads and writes retire.
type Factory func(
	device *config.Device,
	outputDir string,
	onRead, onWrite Callback,
) Model

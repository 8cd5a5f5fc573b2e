package pimdram

import (
	"fmt"

	"github.com/LeeHayun/PIM-Code-Test/sim/queueing"
)

// bank keeps the row buffer of a bank. The channel issues at most one column
// command per cycle and a bank takes one per tCCD, so the pipelines have a
// single lane.
type bank struct {
	openRow    uint64
	hasOpenRow bool
	activateAt uint64

	// cycleLeft is the number of cycles before the bank accepts the next
	// command.
	cycleLeft int

	readPipeline    queueing.Pipeline
	writePipeline   queueing.Pipeline
	postPipelineBuf queueing.Buffer
}

func newBank(name string, readDelay, writeDelay, bufSize int) *bank {
	b := &bank{
		postPipelineBuf: queueing.NewBuffer(name+".PostPipelineBuf", bufSize),
	}

	b.readPipeline = queueing.MakePipelineBuilder().
		WithNumStage(readDelay).
		WithPostPipelineBuffer(b.postPipelineBuf).
		Build(fmt.Sprintf("%s.ReadPipeline", name))

	b.writePipeline = queueing.MakePipelineBuilder().
		WithNumStage(writeDelay).
		WithPostPipelineBuffer(b.postPipelineBuf).
		Build(fmt.Sprintf("%s.WritePipeline", name))

	return b
}

func (b *bank) tick() {
	b.tickTimer()

	b.readPipeline.Tick()
	b.writePipeline.Tick()
}

func (b *bank) tickTimer() {
	if b.cycleLeft > 0 {
		b.cycleLeft--
	}
}

func (b *bank) isIdle() bool {
	return b.cycleLeft == 0 &&
		b.readPipeline.NumInFlight() == 0 &&
		b.writePipeline.NumInFlight() == 0
}

func (b *bank) canStartColumn(isWrite bool) bool {
	if b.cycleLeft > 0 {
		return false
	}

	if isWrite {
		return b.writePipeline.CanAccept()
	}

	return b.readPipeline.CanAccept()
}

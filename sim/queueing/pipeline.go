package queueing

// PipelineItem is an item that can pass through a pipeline.
type PipelineItem interface {
	TaskID() string
}

// Pipeline moves items through a number of stages, each taking a fixed number
// of cycles, and delivers them into a post-pipeline buffer.
type Pipeline interface {
	Name() string

	// Tick moves elements in the pipeline forward by one cycle.
	Tick() (madeProgress bool)

	// CanAccept checks if the pipeline can accept a new element.
	CanAccept() bool

	// Accept adds an element to the pipeline. If the first pipeline stage is
	// currently occupied, this function panics.
	Accept(elem PipelineItem)

	// NumInFlight returns the number of items in the stages.
	NumInFlight() int

	// Clear discards all the items that are currently in the pipeline.
	Clear()
}

type pipelineStageInfo struct {
	elem      PipelineItem
	cycleLeft int
}

type pipelineImpl struct {
	name            string
	width           int
	numStage        int
	cyclePerStage   int
	postPipelineBuf Buffer
	stages          [][]pipelineStageInfo
	numInFlight     int
}

func (p *pipelineImpl) Name() string {
	return p.name
}

// Clear discards all the items in the pipeline.
func (p *pipelineImpl) Clear() {
	p.stages = make([][]pipelineStageInfo, p.width)
	for i := 0; i < p.width; i++ {
		p.stages[i] = make([]pipelineStageInfo, p.numStage)
	}

	p.numInFlight = 0
}

// Tick moves elements in the pipeline forward.
func (p *pipelineImpl) Tick() (madeProgress bool) {
	if p.numInFlight == 0 {
		return false
	}

	for lane := 0; lane < p.width; lane++ {
		for i := p.numStage - 1; i >= 0; i-- {
			stage := &p.stages[lane][i]

			if stage.elem == nil {
				continue
			}

			if stage.cycleLeft > 0 {
				stage.cycleLeft--
				madeProgress = true

				continue
			}

			if i == p.numStage-1 {
				madeProgress =
					p.tryMoveToPostPipelineBuffer(stage) || madeProgress
			} else {
				madeProgress = p.tryMoveToNextStage(lane, i) || madeProgress
			}
		}
	}

	return madeProgress
}

func (p *pipelineImpl) tryMoveToPostPipelineBuffer(
	stage *pipelineStageInfo,
) (succeed bool) {
	if !p.postPipelineBuf.CanPush() {
		return false
	}

	p.postPipelineBuf.Push(stage.elem)
	stage.elem = nil
	p.numInFlight--

	return true
}

func (p *pipelineImpl) tryMoveToNextStage(
	lane int,
	stageNum int,
) (succeed bool) {
	stage := &p.stages[lane][stageNum]
	nextStage := &p.stages[lane][stageNum+1]

	if nextStage.elem != nil {
		return false
	}

	nextStage.elem = stage.elem
	nextStage.cycleLeft = p.cyclePerStage - 1
	stage.elem = nil

	return true
}

// CanAccept checks if the pipeline can accept a new element.
func (p *pipelineImpl) CanAccept() bool {
	if p.numStage == 0 {
		return p.postPipelineBuf.CanPush()
	}

	for lane := 0; lane < p.width; lane++ {
		if p.stages[lane][0].elem == nil {
			return true
		}
	}

	return false
}

// Accept adds an element to the pipeline.
func (p *pipelineImpl) Accept(elem PipelineItem) {
	if p.numStage == 0 {
		p.postPipelineBuf.Push(elem)
		return
	}

	for lane := 0; lane < p.width; lane++ {
		if p.stages[lane][0].elem != nil {
			continue
		}

		p.stages[lane][0].elem = elem
		p.stages[lane][0].cycleLeft = p.cyclePerStage - 1
		p.numInFlight++

		return
	}

	panic("pipeline is not free. Use can push before pushing.")
}

func (p *pipelineImpl) NumInFlight() int {
	return p.numInFlight
}

// A PipelineBuilder can build pipelines.
type PipelineBuilder struct {
	width           int
	numStage        int
	cyclePerStage   int
	postPipelineBuf Buffer
}

// MakePipelineBuilder creates a default builder
func MakePipelineBuilder() PipelineBuilder {
	return PipelineBuilder{
		width:         1,
		numStage:      5,
		cyclePerStage: 1,
	}
}

// WithPipelineWidth sets the number of lanes in the pipeline. If width=4,
// 4 elements can be in the same stage at the same time.
func (b PipelineBuilder) WithPipelineWidth(n int) PipelineBuilder {
	b.width = n
	return b
}

// WithNumStage sets the number of pipeline stages
func (b PipelineBuilder) WithNumStage(n int) PipelineBuilder {
	b.numStage = n
	return b
}

// WithCyclePerStage sets the the number of cycles that each element needs to
// stage in each stage.
func (b PipelineBuilder) WithCyclePerStage(n int) PipelineBuilder {
	b.cyclePerStage = n
	return b
}

// WithPostPipelineBuffer sets the buffer that the elements can be pushed to
// after passing through the pipeline.
func (b PipelineBuilder) WithPostPipelineBuffer(buf Buffer) PipelineBuilder {
	b.postPipelineBuf = buf
	return b
}

// Build builds a pipeline.
func (b PipelineBuilder) Build(name string) Pipeline {
	if b.postPipelineBuf == nil {
		panic("pipeline " + name + ": post pipeline buffer is not set")
	}

	if b.width <= 0 || b.cyclePerStage <= 0 || b.numStage < 0 {
		panic("pipeline " + name + ": invalid shape")
	}

	p := &pipelineImpl{
		name:            name,
		width:           b.width,
		numStage:        b.numStage,
		cyclePerStage:   b.cyclePerStage,
		postPipelineBuf: b.postPipelineBuf,
	}

	p.Clear()

	return p
}

package pimdram

import (
	"github.com/LeeHayun/PIM-Code-Test/mem/pim"
	"github.com/LeeHayun/PIM-Code-Test/sim/queueing"
)

// channel schedules the transactions of one channel, one command per cycle, in
// arrival order. Reads wait in the transaction queue. Writes wait in the write
// buffer until it fills up to the threshold, and then drain until it is empty.
type channel struct {
	model *Model

	transQueue  queueing.Buffer
	writeBuffer queueing.Buffer
	banks       []*bank

	// Mode-register accesses and compute operations complete through a
	// channel-wide pipeline.
	modePipeline    queueing.Pipeline
	modePostBuf     queueing.Buffer
	isDrainingWrite bool

	// pimOp is the all-bank compute operation in progress. It completes
	// after pimCycleLeft cycles.
	pimOp        *transaction
	pimCycleLeft int

	// numPending counts the transactions added and not yet retired.
	numPending int
}

func (c *channel) canAccept(isWrite bool) bool {
	if isWrite {
		return c.writeBuffer.CanPush()
	}

	return c.transQueue.CanPush()
}

func (c *channel) add(t *transaction) {
	c.numPending++

	if t.isWrite {
		c.writeBuffer.Push(t)
		return
	}

	c.transQueue.Push(t)
}

func (c *channel) tick() {
	if c.numPending == 0 {
		for _, b := range c.banks {
			b.tickTimer()
		}

		return
	}

	c.retire()

	for _, b := range c.banks {
		b.tick()
	}

	c.modePipeline.Tick()

	if c.pimCycleLeft > 0 {
		c.pimCycleLeft--
		if c.pimCycleLeft == 0 {
			c.complete(c.pimOp)
			c.pimOp = nil
		}

		return
	}

	c.schedule()
}

func (c *channel) retire() {
	for _, b := range c.banks {
		c.retireFrom(b.postPipelineBuf)
	}

	c.retireFrom(c.modePostBuf)
}

func (c *channel) retireFrom(buf queueing.Buffer) {
	for {
		item := buf.Pop()
		if item == nil {
			return
		}

		c.complete(item.(*transaction))
	}
}

func (c *channel) complete(t *transaction) {
	c.numPending--
	c.model.retire(t)
}

func (c *channel) schedule() {
	queue := c.selectQueue()
	if queue == nil {
		return
	}

	t := queue.Peek().(*transaction)
	if !c.issue(t) {
		return
	}

	queue.Pop()

	if c.writeBuffer.Size() == 0 {
		c.isDrainingWrite = false
	}
}

func (c *channel) selectQueue() queueing.Buffer {
	threshold := c.model.writeBufferThreshold
	numWrite := c.writeBuffer.Size()

	if numWrite > 0 &&
		(threshold == 0 || numWrite >= threshold || !c.writeBuffer.CanPush()) {
		c.isDrainingWrite = true
	}

	if c.isDrainingWrite && numWrite > 0 {
		return c.writeBuffer
	}

	if c.transQueue.Size() > 0 {
		return c.transQueue
	}

	return nil
}

func (c *channel) issue(t *transaction) bool {
	if t.isReg && t.register.IsModeRegister() {
		return c.issueModeAccess(t)
	}

	b := c.bankOf(t)

	if !t.isReg && (!b.hasOpenRow || b.openRow != t.location.Row) {
		if c.activate(b, t.location.Row) {
			t.needActivate = true
		}

		return false
	}

	if !b.canStartColumn(t.isWrite) {
		return false
	}

	if t.isWrite {
		b.writePipeline.Accept(t)
	} else {
		b.readPipeline.Accept(t)
	}

	b.cycleLeft = c.model.device.Timing.CCDL

	switch {
	case t.isReg:
		c.model.stats.NumRegisterAccess++
	case !t.needActivate:
		c.model.stats.NumRowHit++
	}

	return true
}

// issueModeAccess switches the mode of all the banks, so it waits until every
// bank is idle.
func (c *channel) issueModeAccess(t *transaction) bool {
	for _, b := range c.banks {
		if !b.isIdle() {
			return false
		}
	}

	if t.register == pim.RegisterPIMOpMode {
		c.model.stats.NumPIMOp++

		if c.model.device.Timing.PIMOp > 0 {
			c.pimOp = t
			c.pimCycleLeft = c.model.device.Timing.PIMOp

			return true
		}
	}

	if !c.modePipeline.CanAccept() {
		return false
	}

	c.modePipeline.Accept(t)
	c.model.stats.NumRegisterAccess++

	return true
}

// activate opens a row. A precharge is needed if another row is open, and it
// must wait for tRAS since the last activation.
func (c *channel) activate(b *bank, row uint64) bool {
	if b.cycleLeft > 0 {
		return false
	}

	tm := c.model.device.Timing
	now := c.model.cycle

	cycles := tm.RCD

	if b.hasOpenRow {
		cycles += tm.RP

		rasDone := b.activateAt + uint64(tm.RAS)
		if rasDone > now {
			cycles += int(rasDone - now)
		}

		c.model.stats.NumRowMiss++
	}

	b.openRow = row
	b.hasOpenRow = true
	b.activateAt = now
	b.cycleLeft = cycles

	c.model.stats.NumActivate++

	return true
}

func (c *channel) bankOf(t *transaction) *bank {
	d := c.model.device
	loc := t.location

	id := (loc.Rank*uint64(d.NumBankGroup)+loc.BankGroup)*uint64(d.NumBank) +
		loc.Bank

	return c.banks[id%uint64(len(c.banks))]
}

func (c *channel) numInFlight() int {
	n := c.transQueue.Size() + c.writeBuffer.Size() +
		c.modePipeline.NumInFlight() + c.modePostBuf.Size()

	if c.pimOp != nil {
		n++
	}

	for _, b := range c.banks {
		n += b.readPipeline.NumInFlight() + b.writePipeline.NumInFlight() +
			b.postPipelineBuf.Size()
	}

	return n
}

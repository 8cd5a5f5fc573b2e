package hooking

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type countingHook struct {
	count int
}

func (h *countingHook) Func(_ HookCtx) {
	h.count++
}

type stringItem struct{}

func (stringItem) String() string {
	return "item"
}

var _ = Describe("HookableBase", func() {
	var (
		base *HookableBase
		pos  *HookPos
	)

	BeforeEach(func() {
		base = &HookableBase{}
		pos = &HookPos{Name: "Pos"}
	})

	It("should invoke hooks in order", func() {
		var order []int

		base.AcceptHook(HookFunc(func(_ HookCtx) { order = append(order, 1) }))
		base.AcceptHook(HookFunc(func(_ HookCtx) { order = append(order, 2) }))

		base.InvokeHook(HookCtx{Pos: pos})

		Expect(base.NumHooks()).To(Equal(2))
		Expect(order).To(Equal([]int{1, 2}))
	})

	It("should panic on duplicated hooks", func() {
		h := &countingHook{}
		base.AcceptHook(h)

		Expect(func() { base.AcceptHook(h) }).To(Panic())
	})

	It("should log items", func() {
		buf := new(bytes.Buffer)
		logger := log.New(buf, "", 0)
		h := NewLogHook(logger)
		base.AcceptHook(h)

		base.InvokeHook(HookCtx{Pos: pos, Item: stringItem{}})

		Expect(buf.String()).To(Equal("Pos, item\n"))
	})

	It("should skip filtered contexts", func() {
		buf := new(bytes.Buffer)
		h := NewLogHook(log.New(buf, "", 0)).
			WithFilter(func(ctx HookCtx) bool { return ctx.Pos != pos })
		base.AcceptHook(h)

		base.InvokeHook(HookCtx{Pos: pos, Item: 1})

		Expect(buf.Len()).To(Equal(0))
	})
})

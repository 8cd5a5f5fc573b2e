package hooking

import (
	"fmt"
	"log"
)

// LogHook writes every hook invocation it sees into a logger.
type LogHook struct {
	logger *log.Logger
	filter func(ctx HookCtx) bool
}

// NewLogHook creates a LogHook that writes into the given logger.
func NewLogHook(logger *log.Logger) *LogHook {
	return &LogHook{logger: logger}
}

// WithFilter limits the hook to the contexts that the filter accepts.
func (h *LogHook) WithFilter(filter func(ctx HookCtx) bool) *LogHook {
	h.filter = filter
	return h
}

// Func writes the position and the item of the context.
func (h *LogHook) Func(ctx HookCtx) {
	if h.filter != nil && !h.filter(ctx) {
		return
	}

	if s, ok := ctx.Item.(fmt.Stringer); ok {
		h.logger.Printf("%s, %s", ctx.Pos.Name, s.String())
		return
	}

	h.logger.Printf("%s, %+v", ctx.Pos.Name, ctx.Item)
}

package tool

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lucasferreyra/astroexplorer/internal/domain/catalog"
	"github.com/lucasferreyra/astroexplorer/internal/infra/eventbus"
)

// TopicExecuted is the eventbus topic carrying one event per tool
// invocation.
const TopicExecuted = "tool.executed"

// ExecutionEvent is the payload published after each invocation.
type ExecutionEvent struct {
	Tool    string
	Status  string
	Elapsed time.Duration
}

type instrumented struct {
	def  Definition
	bus  eventbus.EventBus
	next Executor
}

// Instrument wraps an executor with schema validation and eventbus
// instrumentation. Publishing is fire-and-forget; a nil bus disables it.
func Instrument(def Definition, bus eventbus.EventBus, next Executor) Executor {
	return &instrumented{def: def, bus: bus, next: next}
}

func (e *instrumented) Execute(ctx context.Context, params json.RawMessage) string {
	start := time.Now()

	var out string
	if err := ValidateParams(e.def, params); err != nil {
		out = catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	} else {
		out = e.next.Execute(ctx, params)
	}

	if e.bus != nil {
		e.bus.Publish(TopicExecuted, ExecutionEvent{
			Tool:    e.def.Name,
			Status:  envelopeStatus(out),
			Elapsed: time.Since(start),
		})
	}
	return out
}

// envelopeStatus peeks at the serialized envelope for its status tag.
func envelopeStatus(out string) string {
	var env struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal([]byte(out), &env); err != nil || env.Status == "" {
		return "unknown"
	}
	return env.Status
}

package tool

import (
	"context"
	"encoding/json"
)

// Executor is the runtime contract for a callable tool. The return value
// is always a serialized result envelope: every failure is converted
// inside Execute, nothing escapes as a raw fault to the caller.
type Executor interface {
	Execute(ctx context.Context, params json.RawMessage) string
}

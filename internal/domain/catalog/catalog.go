// Package catalog defines the tabular rows returned by the archive and the
// uniform result envelope every tool serializes back to its caller.
package catalog

import "encoding/json"

// Row is one catalog record keyed by column name. Values come straight
// from JSON decoding: float64 for numbers, string, or nil for SQL NULL.
type Row map[string]any

// Float64 returns the numeric value for key. The second return is false
// when the column is absent, null, or not a number.
func (r Row) Float64(key string) (float64, bool) {
	v, ok := r[key].(float64)
	return v, ok
}

// String returns the string value for key; false when absent or null.
func (r Row) String(key string) (string, bool) {
	v, ok := r[key].(string)
	return v, ok
}

// Envelope statuses. Exactly one applies per result; empty is a valid
// terminal status, not an error.
const (
	StatusSuccess = "success"
	StatusEmpty   = "empty"
	StatusError   = "error"
)

// Error type tags carried on error envelopes. Validation and derivation
// failures carry a message only.
const (
	ErrTypeService = "service_error"
	ErrTypeUnknown = "unknown"
)

// Envelope is the single output shape of every tool.
type Envelope struct {
	Status    string `json:"status"`
	Count     int    `json:"count,omitempty"`
	Data      any    `json:"data,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
	Message   string `json:"message,omitempty"`
}

// Normalize converts a result set into a success or empty envelope.
// description names the query in the empty message.
func Normalize(rows []Row, description string) Envelope {
	if len(rows) == 0 {
		return Empty("No se encontraron resultados para " + description)
	}
	return Success(rows)
}

// Success wraps rows in a success envelope.
func Success(rows []Row) Envelope {
	return Envelope{Status: StatusSuccess, Count: len(rows), Data: rows}
}

// Empty builds an empty envelope. It always carries an explicit empty data
// array.
func Empty(message string) Envelope {
	return Envelope{Status: StatusEmpty, Message: message, Data: []Row{}}
}

// ErrorEnvelope builds an error envelope. errType may be empty: validation
// and derivation failures are untagged, matching the archive-facing
// classification (service_error, unknown) only where a call was attempted.
func ErrorEnvelope(errType, message string) Envelope {
	return Envelope{Status: StatusError, ErrorType: errType, Message: message}
}

// Encode serializes the envelope; this string is the tool's return value.
func Encode(env Envelope) string {
	out, err := json.Marshal(env)
	if err != nil {
		// Envelope fields are plain JSON types, so this path is
		// unreachable in practice; keep the contract anyway.
		return `{"status":"error","error_type":"unknown","message":"error serializando la respuesta"}`
	}
	return string(out)
}

// Package adql builds the ADQL statements submitted to the exoplanet
// archive's TAP service.
//
// The target query language has no parameter binding, so every
// user-supplied string is escaped through Literal before it can reach query
// text. The row-limited template nests an ordered subquery because the
// archive's ROWNUM pseudo-column must be applied after ordering is
// resolved, not alongside the filter predicates.
package adql

import "strings"

// Literal is an ADQL string literal with embedded single quotes already
// doubled. Template functions interpolate Literal values only, never raw
// strings, so an unescaped value cannot reach query text.
type Literal string

// EscapeLiteral doubles every single quote in raw. This is the sole
// injection defense available against the archive.
func EscapeLiteral(raw string) Literal {
	return Literal(strings.ReplaceAll(raw, "'", "''"))
}

// UnescapeLiteral restores the raw string from an escaped literal.
func UnescapeLiteral(lit Literal) string {
	return strings.ReplaceAll(string(lit), "''", "'")
}

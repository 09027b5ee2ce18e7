// Package astro derives Earth-relative metrics from a single catalog row:
// the orbital comparison with Earth and the escape velocity pipeline. All
// computed values are rounded to two decimal places before packaging, and
// nothing is persisted: metrics are recomputed on every call.
package astro

import (
	"errors"
	"math"
)

// Physical constants for the escape velocity derivation. Mass and radius
// arrive in Earth-relative units and are converted before computing
// v = sqrt(2GM/R).
const (
	G            = 6.674e-11 // m³/(kg·s²)
	EarthMassKg  = 5.972e24
	EarthRadiusM = 6.371e6

	// EarthEscapeKms is the reference escape velocity every result is
	// compared against (km/s).
	EarthEscapeKms = 11.2

	// EarthYearDays converts orbital periods in days to Earth years.
	EarthYearDays = 365.25
)

// ErrMissingData marks a derivation whose preconditions (non-null mass and
// radius) are unmet. It surfaces as a tool-level error, never as a silent
// skip or a NaN.
var ErrMissingData = errors.New("missing mass or radius data")

// missingDataError carries the exact user-facing message while staying
// matchable with errors.Is(err, ErrMissingData).
type missingDataError struct{ msg string }

func (e *missingDataError) Error() string { return e.msg }
func (e *missingDataError) Unwrap() error { return ErrMissingData }

// Round2 rounds to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

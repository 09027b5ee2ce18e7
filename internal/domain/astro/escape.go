package astro

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasferreyra/astroexplorer/internal/domain/catalog"
)

// ReferenceEscapeVelocities is attached to every escape velocity result
// for context (km/s).
func ReferenceEscapeVelocities() map[string]float64 {
	return map[string]float64{
		"luna":    2.4,
		"marte":   5.0,
		"tierra":  11.2,
		"jupiter": 59.5,
		"sol":     617.5,
	}
}

// EscapeVelocity computes v = sqrt(2GM/R) for the planet in row and builds
// the derived one-row result. Mass and radius must both be present; a
// missing value is ErrMissingData.
func EscapeVelocity(row catalog.Row) (catalog.Row, error) {
	name, _ := row.String("pl_name")
	mass, okMass := row.Float64("pl_masse")
	radius, okRadius := row.Float64("pl_rade")
	if !okMass || !okRadius {
		return nil, &missingDataError{msg: fmt.Sprintf(
			"El exoplaneta '%s' no tiene datos de masa o radio necesarios para calcular velocidad de escape", name)}
	}

	massKg := mass * EarthMassKg
	radiusM := radius * EarthRadiusM
	velocityKms := math.Sqrt(2*G*massKg/radiusM) / 1000.0

	note, difficulty := classifyEscape(velocityKms)
	interpretation := strings.Join([]string{note, rocketNote(velocityKms)}, "; ")

	return catalog.Row{
		"pl_name":                 row["pl_name"],
		"pl_masse":                mass,
		"pl_rade":                 radius,
		"velocidad_escape_kms":    Round2(velocityKms),
		"velocidad_escape_tierra": EarthEscapeKms,
		"ratio_vs_tierra":         Round2(velocityKms / EarthEscapeKms),
		"dificultad_escape":       difficulty,
		"interpretacion":          interpretation,
		"contexto":                ReferenceEscapeVelocities(),
	}, nil
}

// classifyEscape returns the interpretive note and difficulty label for a
// velocity in km/s. Tiers are lower-inclusive, upper-exclusive.
func classifyEscape(v float64) (note, difficulty string) {
	switch {
	case v < 5:
		return "Muy baja - atmósfera ligera o inexistente", "Muy fácil de escapar"
	case v < 11:
		return "Similar a la Tierra - puede retener atmósfera", "Moderadamente difícil"
	case v < 30:
		return "Alta - gravedad superficial significativa", "Difícil de escapar"
	case v < 60:
		return "Muy alta - gigante gaseoso pequeño", "Muy difícil de escapar"
	default:
		return "Extremadamente alta - gigante gaseoso masivo", "Extremadamente difícil de escapar"
	}
}

// rocketNote compares the velocity against historical launcher capability.
func rocketNote(v float64) string {
	if v < 20 {
		return "Un cohete tipo Saturn V podría escapar"
	}
	return "Requeriría cohetes más potentes que los actuales"
}

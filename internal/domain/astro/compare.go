package astro

import (
	"strings"

	"github.com/lucasferreyra/astroexplorer/internal/domain/catalog"
)

// CompareWithEarth annotates row with años_terrestres (orbital period in
// Earth years, 365.25 days each) and interpretacion (mass classification).
// Missing source values yield null derived fields, never an error.
func CompareWithEarth(row catalog.Row) catalog.Row {
	out := make(catalog.Row, len(row)+2)
	for k, v := range row {
		out[k] = v
	}

	if period, ok := row.Float64("pl_orbper"); ok {
		out["años_terrestres"] = Round2(period / EarthYearDays)
	} else {
		out["años_terrestres"] = nil
	}

	var notes []string
	if mass, ok := row.Float64("pl_masse"); ok {
		notes = append(notes, classifyMass(mass))
	}
	if len(notes) > 0 {
		out["interpretacion"] = strings.Join(notes, "; ")
	} else {
		out["interpretacion"] = nil
	}
	return out
}

// classifyMass places an Earth-relative mass into one of four bins. The
// bins are exhaustive; 2.0 and 10.0 belong to the lower bin, 0.5 to the
// super-Earth bin.
func classifyMass(mass float64) string {
	switch {
	case mass < 0.5:
		return "Planeta muy ligero (posiblemente rocoso pequeño)"
	case mass <= 2.0:
		return "Masa similar a la Tierra (super-Tierra)"
	case mass <= 10.0:
		return "Mini-Neptuno"
	default:
		return "Gigante gaseoso"
	}
}

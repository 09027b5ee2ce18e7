package adql

// Fixed column projections per tool. Each tool always selects the same
// columns in the same order.
var (
	planetDetailColumns = []string{
		"pl_name", "pl_masse", "pl_rade", "pl_orbper", "pl_orbsmax", "pl_eqt",
		"discoverymethod", "disc_year", "disc_refname", "disc_pubdate",
		"disc_locale", "disc_facility", "disc_telescope", "disc_instrument",
		"sy_dist",
	}
	massiveColumns = []string{
		"pl_name", "pl_masse", "pl_orbper", "disc_locale", "disc_year",
	}
	habitableColumns = []string{
		"pl_name", "pl_masse", "pl_rade", "pl_orbper", "pl_eqt", "sy_dist",
		"disc_year",
	}
	methodColumns = []string{
		"pl_name", "pl_masse", "pl_rade", "pl_orbper", "discoverymethod",
		"disc_year", "disc_facility", "disc_locale",
	}
	nearestColumns = []string{
		"pl_name", "sy_dist", "pl_masse", "pl_rade", "pl_orbper", "pl_eqt",
		"disc_year", "disc_locale",
	}
	advancedColumns = []string{
		"pl_name", "pl_masse", "pl_rade", "pl_orbper", "sy_dist", "pl_eqt",
		"discoverymethod", "disc_year", "disc_locale", "disc_facility",
	}
	comparisonColumns = []string{
		"pl_name", "pl_masse", "pl_rade", "pl_orbper", "pl_eqt", "sy_dist",
		"discoverymethod", "disc_year", "disc_locale",
	}
	escapeVelocityColumns = []string{
		"pl_name", "pl_masse", "pl_rade", "pl_eqt", "sy_dist",
	}
)

// PlanetByName looks up the full detail projection for one planet.
func PlanetByName(name string) string {
	return SelectQuery{
		Columns: planetDetailColumns,
		Filters: []Filter{Equals("pl_name", EscapeLiteral(name))},
	}.Render()
}

// MostMassive lists the n most massive planets.
func MostMassive(n int) string {
	return RowLimitedQuery{
		Columns: massiveColumns,
		Filters: []Filter{NotNull("pl_masse")},
		OrderBy: "pl_masse",
		Desc:    true,
		Limit:   n,
	}.Render()
}

// Habitable selects Goldilocks-zone candidates: rocky-range mass, Sun-like
// habitable-zone period, equilibrium temperature allowing liquid water.
// Ordered by how close the mass is to one Earth mass.
func Habitable(n int) string {
	return RowLimitedQuery{
		Columns: habitableColumns,
		Filters: []Filter{
			NotNull("pl_masse"), NotNull("pl_orbper"), NotNull("pl_eqt"),
			Compare("pl_masse", ">", 0.5), Compare("pl_masse", "<", 10.0),
			Compare("pl_orbper", ">", 200.0), Compare("pl_orbper", "<", 500.0),
			Compare("pl_eqt", ">", 200), Compare("pl_eqt", "<", 320),
		},
		OrderBy: "ABS(pl_masse - 1.0)",
		Limit:   n,
	}.Render()
}

// ByDiscoveryMethod filters by exact method match, most recent discoveries
// first.
func ByDiscoveryMethod(method string, limit int) string {
	return RowLimitedQuery{
		Columns: methodColumns,
		Filters: []Filter{Equals("discoverymethod", EscapeLiteral(method))},
		OrderBy: "disc_year",
		Desc:    true,
		Limit:   limit,
	}.Render()
}

// DiscoveryTimeline groups discoveries by year, counting rows, distinct
// methods and distinct facilities. Nil year bounds impose no constraint.
func DiscoveryTimeline(startYear, endYear *int) string {
	var filters []Filter
	if startYear != nil {
		filters = append(filters, CompareInt("disc_year", ">=", *startYear))
	}
	if endYear != nil {
		filters = append(filters, CompareInt("disc_year", "<=", *endYear))
	}
	return GroupedQuery{
		Columns: []string{
			"disc_year",
			"COUNT(*) AS num_descubrimientos",
			"COUNT(DISTINCT discoverymethod) AS num_metodos",
			"COUNT(DISTINCT disc_facility) AS num_facilities",
		},
		Filters: filters,
		GroupBy: "disc_year",
		OrderBy: "disc_year",
	}.Render()
}

// Nearest lists the planets closest to Earth by system distance.
func Nearest(n int) string {
	return RowLimitedQuery{
		Columns: nearestColumns,
		Filters: []Filter{NotNull("sy_dist")},
		OrderBy: "sy_dist",
		Limit:   n,
	}.Render()
}

// AdvancedFilters holds the optional predicates of the advanced search.
// Nil or empty fields impose no constraint.
type AdvancedFilters struct {
	MassMin     *float64
	MassMax     *float64
	PeriodMin   *float64
	PeriodMax   *float64
	DistanceMax *float64
	YearMin     *int
	Method      string
	Locale      string
}

func (f AdvancedFilters) filters() []Filter {
	var out []Filter
	if f.MassMin != nil {
		out = append(out, Compare("pl_masse", ">=", *f.MassMin))
	}
	if f.MassMax != nil {
		out = append(out, Compare("pl_masse", "<=", *f.MassMax))
	}
	if f.PeriodMin != nil {
		out = append(out, Compare("pl_orbper", ">=", *f.PeriodMin))
	}
	if f.PeriodMax != nil {
		out = append(out, Compare("pl_orbper", "<=", *f.PeriodMax))
	}
	if f.DistanceMax != nil {
		out = append(out, Compare("sy_dist", "<=", *f.DistanceMax))
	}
	if f.YearMin != nil {
		out = append(out, CompareInt("disc_year", ">=", *f.YearMin))
	}
	if f.Method != "" {
		out = append(out, Equals("discoverymethod", EscapeLiteral(f.Method)))
	}
	if f.Locale != "" {
		out = append(out, Equals("disc_locale", EscapeLiteral(f.Locale)))
	}
	return out
}

// AdvancedSearch combines every present filter with AND, most recent
// discoveries first.
func AdvancedSearch(f AdvancedFilters, limit int) string {
	return RowLimitedQuery{
		Columns: advancedColumns,
		Filters: f.filters(),
		OrderBy: "disc_year",
		Desc:    true,
		Limit:   limit,
	}.Render()
}

// MethodStats groups by discovery method with per-group counts and the
// percentage of the total computed by the service's window function.
func MethodStats() string {
	return GroupedQuery{
		Columns: []string{
			"discoverymethod",
			"COUNT(*) AS num_descubrimientos",
			"ROUND(COUNT(*) * 100.0 / SUM(COUNT(*)) OVER (), 2) AS porcentaje",
		},
		Filters: []Filter{NotNull("discoverymethod")},
		GroupBy: "discoverymethod",
		OrderBy: "num_descubrimientos",
		Desc:    true,
	}.Render()
}

// ComparisonRow selects the projection consumed by the Earth comparison
// derivation.
func ComparisonRow(name string) string {
	return SelectQuery{
		Columns: comparisonColumns,
		Filters: []Filter{Equals("pl_name", EscapeLiteral(name))},
	}.Render()
}

// EscapeVelocityRow selects the projection consumed by the escape velocity
// derivation.
func EscapeVelocityRow(name string) string {
	return SelectQuery{
		Columns: escapeVelocityColumns,
		Filters: []Filter{Equals("pl_name", EscapeLiteral(name))},
	}.Render()
}

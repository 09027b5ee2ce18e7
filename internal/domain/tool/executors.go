package tool

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lucasferreyra/astroexplorer/internal/domain/adql"
	"github.com/lucasferreyra/astroexplorer/internal/domain/astro"
	"github.com/lucasferreyra/astroexplorer/internal/domain/catalog"
	"github.com/lucasferreyra/astroexplorer/internal/infra/tap"
)

// Submitter is the slice of the TAP service the executors need. Narrowed
// so tests can stub the archive without HTTP.
type Submitter interface {
	Submit(ctx context.Context, query string) ([]catalog.Row, error)
}

// runQuery submits a query and normalizes the outcome into an encoded
// envelope. description names the query in the empty-result message.
func runQuery(ctx context.Context, svc Submitter, query, description string) string {
	rows, err := svc.Submit(ctx, query)
	if err != nil {
		return classifyError(err)
	}
	return catalog.Encode(catalog.Normalize(rows, description))
}

// classifyError maps an archive failure to its tagged error envelope.
func classifyError(err error) string {
	if errors.Is(err, tap.ErrService) {
		return catalog.Encode(catalog.ErrorEnvelope(catalog.ErrTypeService, "Error en el servicio TAP: "+err.Error()))
	}
	return catalog.Encode(catalog.ErrorEnvelope(catalog.ErrTypeUnknown, "Error inesperado: "+err.Error()))
}

func argumentEnvelope(err error) string {
	return catalog.Encode(catalog.ErrorEnvelope("", err.Error()))
}

func decode(params json.RawMessage, v any) error {
	if len(params) == 0 {
		return nil
	}
	return json.Unmarshal(params, v)
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

type planetByName struct{ svc Submitter }

func (e *planetByName) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		Nombre string `json:"nombre"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	if err := adql.NonEmptyName(p.Nombre); err != nil {
		return argumentEnvelope(err)
	}
	return runQuery(ctx, e.svc, adql.PlanetByName(p.Nombre),
		fmt.Sprintf("exoplaneta '%s'", p.Nombre))
}

type mostMassive struct{ svc Submitter }

func (e *mostMassive) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		NumeroPlanetas *int `json:"numero_planetas"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	n := intOr(p.NumeroPlanetas, 0)
	if err := adql.PositiveBounded(n, "numero_planetas", 500); err != nil {
		return argumentEnvelope(err)
	}
	return runQuery(ctx, e.svc, adql.MostMassive(n),
		fmt.Sprintf("top %d exoplanetas más masivos", n))
}

type habitable struct{ svc Submitter }

func (e *habitable) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		NumeroPlanetas *int `json:"numero_planetas"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	n := intOr(p.NumeroPlanetas, 10)
	if err := adql.PositiveBounded(n, "numero_planetas", 100); err != nil {
		return argumentEnvelope(err)
	}
	return runQuery(ctx, e.svc, adql.Habitable(n), "planetas potencialmente habitables")
}

type byMethod struct{ svc Submitter }

func (e *byMethod) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		Metodo string `json:"metodo"`
		Limite *int   `json:"limite"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	if err := adql.NonEmptyMethod(p.Metodo); err != nil {
		return argumentEnvelope(err)
	}
	n := intOr(p.Limite, 20)
	if err := adql.PositiveBounded(n, "limite", 200); err != nil {
		return argumentEnvelope(err)
	}
	return runQuery(ctx, e.svc, adql.ByDiscoveryMethod(p.Metodo, n),
		fmt.Sprintf("exoplanetas descubiertos por %s", p.Metodo))
}

type timeline struct{ svc Submitter }

func (e *timeline) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		AnioInicio *int `json:"año_inicio"`
		AnioFin    *int `json:"año_fin"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	return runQuery(ctx, e.svc, adql.DiscoveryTimeline(p.AnioInicio, p.AnioFin),
		"timeline de descubrimientos")
}

type nearest struct{ svc Submitter }

func (e *nearest) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		NumeroPlanetas *int `json:"numero_planetas"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	n := intOr(p.NumeroPlanetas, 10)
	if err := adql.PositiveBounded(n, "numero_planetas", 100); err != nil {
		return argumentEnvelope(err)
	}
	return runQuery(ctx, e.svc, adql.Nearest(n),
		fmt.Sprintf("top %d exoplanetas más cercanos", n))
}

type advancedSearch struct{ svc Submitter }

func (e *advancedSearch) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		MasaMin      *float64 `json:"masa_min"`
		MasaMax      *float64 `json:"masa_max"`
		PeriodoMin   *float64 `json:"periodo_min"`
		PeriodoMax   *float64 `json:"periodo_max"`
		DistanciaMax *float64 `json:"distancia_max"`
		AnioMin      *int     `json:"año_descubrimiento_min"`
		Metodo       string   `json:"metodo"`
		Locale       string   `json:"locale"`
		Limite       *int     `json:"limite"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	n := intOr(p.Limite, 50)
	if err := adql.PositiveBounded(n, "limite", 200); err != nil {
		return argumentEnvelope(err)
	}
	f := adql.AdvancedFilters{
		MassMin:     p.MasaMin,
		MassMax:     p.MasaMax,
		PeriodMin:   p.PeriodoMin,
		PeriodMax:   p.PeriodoMax,
		DistanceMax: p.DistanciaMax,
		YearMin:     p.AnioMin,
		Method:      p.Metodo,
		Locale:      p.Locale,
	}
	return runQuery(ctx, e.svc, adql.AdvancedSearch(f, n), "búsqueda avanzada personalizada")
}

type methodStats struct{ svc Submitter }

func (e *methodStats) Execute(ctx context.Context, params json.RawMessage) string {
	return runQuery(ctx, e.svc, adql.MethodStats(),
		"estadísticas de métodos de descubrimiento")
}

type compareEarth struct{ svc Submitter }

func (e *compareEarth) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		Nombre string `json:"nombre_exoplaneta"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	if err := adql.NonEmptyName(p.Nombre); err != nil {
		return argumentEnvelope(err)
	}
	rows, err := e.svc.Submit(ctx, adql.ComparisonRow(p.Nombre))
	if err != nil {
		return classifyError(err)
	}
	if len(rows) == 0 {
		return catalog.Encode(catalog.Empty(fmt.Sprintf("No se encontró el exoplaneta '%s'", p.Nombre)))
	}
	return catalog.Encode(catalog.Success([]catalog.Row{astro.CompareWithEarth(rows[0])}))
}

type escapeVelocity struct{ svc Submitter }

func (e *escapeVelocity) Execute(ctx context.Context, params json.RawMessage) string {
	var p struct {
		Nombre string `json:"nombre_exoplaneta"`
	}
	if err := decode(params, &p); err != nil {
		return catalog.Encode(catalog.ErrorEnvelope("", "Parámetros inválidos: "+err.Error()))
	}
	if err := adql.NonEmptyName(p.Nombre); err != nil {
		return argumentEnvelope(err)
	}
	rows, err := e.svc.Submit(ctx, adql.EscapeVelocityRow(p.Nombre))
	if err != nil {
		return classifyError(err)
	}
	if len(rows) == 0 {
		return catalog.Encode(catalog.Empty(fmt.Sprintf("No se encontró el exoplaneta '%s'", p.Nombre)))
	}
	result, err := astro.EscapeVelocity(rows[0])
	if err != nil {
		return argumentEnvelope(err)
	}
	return catalog.Encode(catalog.Success([]catalog.Row{result}))
}

package tool

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/lucasferreyra/astroexplorer/internal/domain/catalog"
	"github.com/lucasferreyra/astroexplorer/internal/infra/eventbus"
	"github.com/lucasferreyra/astroexplorer/internal/infra/tap"
)

// fakeTAP records the submitted query and returns canned rows or an
// error.
type fakeTAP struct {
	rows  []catalog.Row
	err   error
	query string
}

func (f *fakeTAP) Submit(_ context.Context, query string) ([]catalog.Row, error) {
	f.query = query
	return f.rows, f.err
}

// failTAP fails the test if any query reaches it.
type failTAP struct{ t *testing.T }

func (f *failTAP) Submit(_ context.Context, query string) ([]catalog.Row, error) {
	f.t.Errorf("unexpected network call with query: %s", query)
	return nil, nil
}

func decodeEnvelope(t *testing.T, out string) catalog.Envelope {
	t.Helper()
	var env catalog.Envelope
	if err := json.Unmarshal([]byte(out), &env); err != nil {
		t.Fatalf("invalid envelope %q: %v", out, err)
	}
	return env
}

func call(t *testing.T, r *Registry, name, params string) catalog.Envelope {
	t.Helper()
	executor, err := r.Get(name)
	if err != nil {
		t.Fatalf("Get(%s): %v", name, err)
	}
	return decodeEnvelope(t, executor.Execute(context.Background(), json.RawMessage(params)))
}

func newTestRegistry(t *testing.T, svc Submitter) *Registry {
	t.Helper()
	r, err := NewBuiltinRegistry(svc, nil)
	if err != nil {
		t.Fatalf("NewBuiltinRegistry: %v", err)
	}
	return r
}

func TestNewBuiltinRegistry_RegistersAllTools(t *testing.T) {
	t.Parallel()

	r := newTestRegistry(t, &fakeTAP{})
	want := []string{
		ToolPlanetByName, ToolMostMassive, ToolHabitable, ToolByMethod,
		ToolTimeline, ToolNearest, ToolAdvanced, ToolMethodStats,
		ToolCompareEarth, ToolEscapeVelocity,
	}
	defs := r.Definitions()
	if len(defs) != len(want) {
		t.Fatalf("got %d definitions, want %d", len(defs), len(want))
	}
	for i, name := range want {
		if defs[i].Name != name {
			t.Errorf("definition %d = %s, want %s", i, defs[i].Name, name)
		}
	}
}

func TestPlanetByName_Success(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "Kepler-452 b", "pl_masse": 5.0}}}
	env := call(t, newTestRegistry(t, svc), ToolPlanetByName, `{"nombre":"Kepler-452 b"}`)

	if env.Status != catalog.StatusSuccess || env.Count != 1 {
		t.Errorf("envelope = %+v, want success count 1", env)
	}
	if !strings.Contains(svc.query, "pl_name = 'Kepler-452 b'") {
		t.Errorf("query missing name filter: %s", svc.query)
	}
}

func TestPlanetByName_EmptyNameNoNetworkCall(t *testing.T) {
	t.Parallel()

	env := call(t, newTestRegistry(t, &failTAP{t: t}), ToolPlanetByName, `{"nombre":"   "}`)
	if env.Status != catalog.StatusError {
		t.Fatalf("status = %s, want error", env.Status)
	}
	if env.Message != "El nombre no puede estar vacío" {
		t.Errorf("message = %q", env.Message)
	}
	if env.ErrorType != "" {
		t.Errorf("validation error carries error_type %q", env.ErrorType)
	}
}

func TestPlanetByName_MissingParamRejectedBySchema(t *testing.T) {
	t.Parallel()

	env := call(t, newTestRegistry(t, &failTAP{t: t}), ToolPlanetByName, `{}`)
	if env.Status != catalog.StatusError {
		t.Fatalf("status = %s, want error", env.Status)
	}
	if !strings.Contains(env.Message, "Parámetros inválidos") {
		t.Errorf("message = %q", env.Message)
	}
}

func TestMostMassive_RequiredAndBounds(t *testing.T) {
	t.Parallel()

	t.Run("explicit count", func(t *testing.T) {
		t.Parallel()
		svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "HD 100546 b"}}}
		env := call(t, newTestRegistry(t, svc), ToolMostMassive, `{"numero_planetas":5}`)
		if env.Status != catalog.StatusSuccess {
			t.Fatalf("status = %s", env.Status)
		}
		if !strings.Contains(svc.query, "ROWNUM <= 5") {
			t.Errorf("limit not applied: %s", svc.query)
		}
	})

	t.Run("missing count rejected", func(t *testing.T) {
		t.Parallel()
		env := call(t, newTestRegistry(t, &failTAP{t: t}), ToolMostMassive, `{}`)
		if env.Status != catalog.StatusError {
			t.Fatalf("status = %s, want error", env.Status)
		}
		if !strings.Contains(env.Message, "numero_planetas") {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		t.Parallel()
		env := call(t, newTestRegistry(t, &failTAP{t: t}), ToolMostMassive, `{"numero_planetas":501}`)
		if env.Status != catalog.StatusError {
			t.Fatalf("status = %s, want error", env.Status)
		}
		if !strings.Contains(env.Message, "501") {
			t.Errorf("message does not name the offending value: %q", env.Message)
		}
	})

	t.Run("zero", func(t *testing.T) {
		t.Parallel()
		env := call(t, newTestRegistry(t, &failTAP{t: t}), ToolMostMassive, `{"numero_planetas":0}`)
		if env.Status != catalog.StatusError {
			t.Fatalf("status = %s, want error", env.Status)
		}
		if !strings.Contains(env.Message, "mayor a 0") {
			t.Errorf("message = %q", env.Message)
		}
	})
}

func TestCountParameterName(t *testing.T) {
	t.Parallel()

	// habitables and cercanos take numero_planetas, like mas_masivos; only
	// the method and advanced searches use limite.
	tests := []struct {
		tool     string
		params   string
		fragment string
	}{
		{tool: ToolHabitable, params: `{"numero_planetas":20}`, fragment: "ROWNUM <= 20"},
		{tool: ToolNearest, params: `{"numero_planetas":3}`, fragment: "ROWNUM <= 3"},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			t.Parallel()
			svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "x"}}}
			env := call(t, newTestRegistry(t, svc), tt.tool, tt.params)
			if env.Status != catalog.StatusSuccess {
				t.Fatalf("status = %s, message = %q", env.Status, env.Message)
			}
			if !strings.Contains(svc.query, tt.fragment) {
				t.Errorf("query missing %q: %s", tt.fragment, svc.query)
			}
		})
	}

	t.Run("validation message names the parameter", func(t *testing.T) {
		t.Parallel()
		env := call(t, newTestRegistry(t, &failTAP{t: t}), ToolHabitable, `{"numero_planetas":0}`)
		if env.Status != catalog.StatusError {
			t.Fatalf("status = %s, want error", env.Status)
		}
		if !strings.Contains(env.Message, "numero_planetas debe ser mayor a 0") {
			t.Errorf("message = %q", env.Message)
		}
	})
}

func TestNearest_DefaultCount(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "Proxima Cen b"}}}
	env := call(t, newTestRegistry(t, svc), ToolNearest, `{}`)
	if env.Status != catalog.StatusSuccess {
		t.Fatalf("status = %s", env.Status)
	}
	if !strings.Contains(svc.query, "ROWNUM <= 10") {
		t.Errorf("default count not applied: %s", svc.query)
	}
}

func TestPlanetByName_EmptyResultMessage(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{}}
	env := call(t, newTestRegistry(t, svc), ToolPlanetByName, `{"nombre":"Nibiru"}`)
	if env.Status != catalog.StatusEmpty {
		t.Fatalf("status = %s, want empty", env.Status)
	}
	if env.Message != "No se encontraron resultados para exoplaneta 'Nibiru'" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestByMethod_DefaultLimit(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "OGLE-2005-BLG-390L b"}}}
	env := call(t, newTestRegistry(t, svc), ToolByMethod, `{"metodo":"Microlensing"}`)
	if env.Status != catalog.StatusSuccess {
		t.Fatalf("status = %s", env.Status)
	}
	if !strings.Contains(svc.query, "discoverymethod = 'Microlensing'") {
		t.Errorf("query missing method filter: %s", svc.query)
	}
	if !strings.Contains(svc.query, "ROWNUM <= 20") {
		t.Errorf("default limit not applied: %s", svc.query)
	}
}

func TestTimeline_EmptyResult(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{}}
	env := call(t, newTestRegistry(t, svc), ToolTimeline, `{"año_inicio":3000}`)
	if env.Status != catalog.StatusEmpty {
		t.Fatalf("status = %s, want empty", env.Status)
	}
	if !strings.Contains(env.Message, "timeline de descubrimientos") {
		t.Errorf("message = %q", env.Message)
	}
	if !strings.Contains(svc.query, "disc_year >= 3000") {
		t.Errorf("year bound missing: %s", svc.query)
	}
}

func TestAdvancedSearch_FiltersAndDefaultLimit(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "x"}}}
	params := `{"masa_min":1.5,"metodo":"Transit","locale":"Space"}`
	env := call(t, newTestRegistry(t, svc), ToolAdvanced, params)
	if env.Status != catalog.StatusSuccess {
		t.Fatalf("status = %s", env.Status)
	}
	for _, fragment := range []string{
		"pl_masse >= 1.5",
		"discoverymethod = 'Transit'",
		"disc_locale = 'Space'",
		"ROWNUM <= 50",
	} {
		if !strings.Contains(svc.query, fragment) {
			t.Errorf("query missing %q: %s", fragment, svc.query)
		}
	}
}

func TestMethodStats_ServiceError(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{err: tap.ErrService}
	env := call(t, newTestRegistry(t, svc), ToolMethodStats, `{}`)
	if env.Status != catalog.StatusError {
		t.Fatalf("status = %s, want error", env.Status)
	}
	if env.ErrorType != catalog.ErrTypeService {
		t.Errorf("error_type = %q, want %q", env.ErrorType, catalog.ErrTypeService)
	}
	if !strings.Contains(env.Message, "Error en el servicio TAP") {
		t.Errorf("message = %q", env.Message)
	}
}

func TestCompareEarth_AttachesDerivation(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{{
		"pl_name": "Kepler-16 b", "pl_masse": 0.3, "pl_orbper": 730.5,
	}}}
	env := call(t, newTestRegistry(t, svc), ToolCompareEarth, `{"nombre_exoplaneta":"Kepler-16 b"}`)
	if env.Status != catalog.StatusSuccess || env.Count != 1 {
		t.Fatalf("envelope = %+v", env)
	}

	rows, ok := env.Data.([]any)
	if !ok || len(rows) != 1 {
		t.Fatalf("data = %#v", env.Data)
	}
	row := rows[0].(map[string]any)
	if row["años_terrestres"] != 2.00 {
		t.Errorf("años_terrestres = %v, want 2", row["años_terrestres"])
	}
	if s, _ := row["interpretacion"].(string); !strings.Contains(s, "ligero") {
		t.Errorf("interpretacion = %v", row["interpretacion"])
	}
}

func TestCompareEarth_NotFound(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{}}
	env := call(t, newTestRegistry(t, svc), ToolCompareEarth, `{"nombre_exoplaneta":"Nibiru"}`)
	if env.Status != catalog.StatusEmpty {
		t.Fatalf("status = %s, want empty", env.Status)
	}
	if env.Message != "No se encontró el exoplaneta 'Nibiru'" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestEscapeVelocity_EarthIdentity(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{{
		"pl_name": "Tierra II", "pl_masse": 1.0, "pl_rade": 1.0,
	}}}
	env := call(t, newTestRegistry(t, svc), ToolEscapeVelocity, `{"nombre_exoplaneta":"Tierra II"}`)
	if env.Status != catalog.StatusSuccess {
		t.Fatalf("envelope = %+v", env)
	}

	rows := env.Data.([]any)
	row := rows[0].(map[string]any)
	if v := row["velocidad_escape_kms"].(float64); v < 11.18 || v > 11.20 {
		t.Errorf("velocidad_escape_kms = %v", v)
	}
	if ratio := row["ratio_vs_tierra"].(float64); ratio != 1.00 {
		t.Errorf("ratio_vs_tierra = %v", ratio)
	}
	if row["dificultad_escape"] != "Difícil de escapar" {
		t.Errorf("dificultad_escape = %v", row["dificultad_escape"])
	}
}

func TestEscapeVelocity_MissingData(t *testing.T) {
	t.Parallel()

	svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "Kepler-37 b", "pl_rade": 0.3}}}
	env := call(t, newTestRegistry(t, svc), ToolEscapeVelocity, `{"nombre_exoplaneta":"Kepler-37 b"}`)
	if env.Status != catalog.StatusError {
		t.Fatalf("status = %s, want error", env.Status)
	}
	if !strings.Contains(env.Message, "masa o radio") {
		t.Errorf("message = %q", env.Message)
	}
	if env.ErrorType != "" {
		t.Errorf("derivation error carries error_type %q", env.ErrorType)
	}
}

func TestInstrument_PublishesExecutionEvent(t *testing.T) {
	t.Parallel()

	bus := eventbus.New()
	ch := bus.Subscribe(TopicExecuted)

	svc := &fakeTAP{rows: []catalog.Row{{"pl_name": "x"}}}
	r, err := NewBuiltinRegistry(svc, bus)
	if err != nil {
		t.Fatalf("NewBuiltinRegistry: %v", err)
	}
	executor, err := r.Get(ToolNearest)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	executor.Execute(context.Background(), json.RawMessage(`{}`))

	select {
	case evt := <-ch:
		payload, ok := evt.Payload.(ExecutionEvent)
		if !ok {
			t.Fatalf("payload type %T", evt.Payload)
		}
		if payload.Tool != ToolNearest || payload.Status != catalog.StatusSuccess {
			t.Errorf("event = %+v", payload)
		}
	case <-time.After(time.Second):
		t.Fatal("no execution event published")
	}
}

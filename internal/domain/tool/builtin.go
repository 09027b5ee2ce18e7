package tool

import (
	"encoding/json"

	"github.com/lucasferreyra/astroexplorer/internal/infra/eventbus"
)

// Tool names. These are the wire contract consumed by callers and must
// not change.
const (
	ToolPlanetByName   = "buscar_datos_exoplaneta"
	ToolMostMassive    = "listar_exoplanetas_mas_masivos"
	ToolHabitable      = "buscar_planetas_habitables"
	ToolByMethod       = "buscar_por_metodo_descubrimiento"
	ToolTimeline       = "timeline_descubrimientos"
	ToolNearest        = "exoplanetas_mas_cercanos"
	ToolAdvanced       = "busqueda_avanzada"
	ToolMethodStats    = "estadisticas_metodos_descubrimiento"
	ToolCompareEarth   = "comparar_con_tierra"
	ToolEscapeVelocity = "calcular_velocidad_escape"
)

type builtin struct {
	def      Definition
	executor Executor
}

func builtinTools(svc Submitter) []builtin {
	return []builtin{
		{
			def: Definition{
				Name:        ToolPlanetByName,
				Description: "Busca los datos completos de un exoplaneta por su nombre exacto en el NASA Exoplanet Archive.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"nombre": {"type": "string", "description": "Nombre exacto del exoplaneta, por ejemplo 'Kepler-452 b'"}
					},
					"required": ["nombre"],
					"additionalProperties": false
				}`),
			},
			executor: &planetByName{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolMostMassive,
				Description: "Lista los exoplanetas más masivos conocidos, ordenados por masa descendente.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"numero_planetas": {"type": "integer", "description": "Cantidad de planetas a listar (1-500)"}
					},
					"required": ["numero_planetas"],
					"additionalProperties": false
				}`),
			},
			executor: &mostMassive{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolHabitable,
				Description: "Busca exoplanetas potencialmente habitables: masa rocosa, período orbital de zona habitable y temperatura de equilibrio compatible con agua líquida.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"numero_planetas": {"type": "integer", "description": "Cantidad máxima de resultados (1-100, por defecto 10)"}
					},
					"additionalProperties": false
				}`),
			},
			executor: &habitable{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolByMethod,
				Description: "Busca exoplanetas descubiertos con un método específico (Transit, Radial Velocity, Microlensing, Imaging, etc.), los más recientes primero.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"metodo": {"type": "string", "description": "Método de descubrimiento, por ejemplo 'Transit'"},
						"limite": {"type": "integer", "description": "Cantidad máxima de resultados (1-200, por defecto 20)"}
					},
					"required": ["metodo"],
					"additionalProperties": false
				}`),
			},
			executor: &byMethod{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolTimeline,
				Description: "Muestra la línea de tiempo de descubrimientos por año: cantidad de planetas, métodos y observatorios involucrados.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"año_inicio": {"type": "integer", "description": "Año inicial del rango (opcional)"},
						"año_fin": {"type": "integer", "description": "Año final del rango (opcional)"}
					},
					"additionalProperties": false
				}`),
			},
			executor: &timeline{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolNearest,
				Description: "Lista los exoplanetas más cercanos a la Tierra, ordenados por distancia del sistema.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"numero_planetas": {"type": "integer", "description": "Cantidad máxima de resultados (1-100, por defecto 10)"}
					},
					"additionalProperties": false
				}`),
			},
			executor: &nearest{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolAdvanced,
				Description: "Búsqueda avanzada combinando filtros opcionales de masa, período orbital, distancia, año, método y lugar de descubrimiento.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"masa_min": {"type": "number", "description": "Masa mínima en masas terrestres (opcional)"},
						"masa_max": {"type": "number", "description": "Masa máxima en masas terrestres (opcional)"},
						"periodo_min": {"type": "number", "description": "Período orbital mínimo en días (opcional)"},
						"periodo_max": {"type": "number", "description": "Período orbital máximo en días (opcional)"},
						"distancia_max": {"type": "number", "description": "Distancia máxima en parsecs (opcional)"},
						"año_descubrimiento_min": {"type": "integer", "description": "Año de descubrimiento mínimo (opcional)"},
						"metodo": {"type": "string", "description": "Método de descubrimiento exacto (opcional)"},
						"locale": {"type": "string", "description": "Lugar de descubrimiento: 'Ground' o 'Space' (opcional)"},
						"limite": {"type": "integer", "description": "Cantidad máxima de resultados (1-200, por defecto 50)"}
					},
					"additionalProperties": false
				}`),
			},
			executor: &advancedSearch{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolMethodStats,
				Description: "Estadísticas de métodos de descubrimiento: cantidad de planetas y porcentaje del total por método.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {},
					"additionalProperties": false
				}`),
			},
			executor: &methodStats{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolCompareEarth,
				Description: "Compara un exoplaneta con la Tierra: período orbital en años terrestres e interpretación de su masa.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"nombre_exoplaneta": {"type": "string", "description": "Nombre exacto del exoplaneta a comparar"}
					},
					"required": ["nombre_exoplaneta"],
					"additionalProperties": false
				}`),
			},
			executor: &compareEarth{svc: svc},
		},
		{
			def: Definition{
				Name:        ToolEscapeVelocity,
				Description: "Calcula la velocidad de escape de un exoplaneta a partir de su masa y radio, con contexto respecto a la Tierra y otros cuerpos.",
				InputSchema: json.RawMessage(`{
					"type": "object",
					"properties": {
						"nombre_exoplaneta": {"type": "string", "description": "Nombre exacto del exoplaneta"}
					},
					"required": ["nombre_exoplaneta"],
					"additionalProperties": false
				}`),
			},
			executor: &escapeVelocity{svc: svc},
		},
	}
}

// NewBuiltinRegistry builds the registry with the ten catalog tools, each
// wrapped with schema validation and eventbus instrumentation.
func NewBuiltinRegistry(svc Submitter, bus eventbus.EventBus) (*Registry, error) {
	registry := NewRegistry()
	for _, b := range builtinTools(svc) {
		if err := registry.Register(b.def, Instrument(b.def, bus, b.executor)); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// adqlpreview renders the ADQL for saved advanced-search presets without
// touching the network. Useful for eyeballing the queries a preset file
// will send to the archive.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lucasferreyra/astroexplorer/internal/domain/adql"
)

// preset is one named advanced search saved in the YAML file.
type preset struct {
	Name        string   `yaml:"name"`
	MassMin     *float64 `yaml:"masa_min"`
	MassMax     *float64 `yaml:"masa_max"`
	PeriodMin   *float64 `yaml:"periodo_min"`
	PeriodMax   *float64 `yaml:"periodo_max"`
	DistanceMax *float64 `yaml:"distancia_max"`
	YearMin     *int     `yaml:"año_descubrimiento_min"`
	Method      string   `yaml:"metodo"`
	Locale      string   `yaml:"locale"`
	Limit       int      `yaml:"limite"`
}

const defaultLimit = 50

func main() {
	presetsPath := flag.String("presets", "presets.yml", "Path to the YAML preset file")
	flag.Parse()

	report, err := renderPresets(*presetsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(report)
}

func renderPresets(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	var presets []preset
	if err := yaml.Unmarshal(data, &presets); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(presets) == 0 {
		return "", fmt.Errorf("%s contains no presets", path)
	}

	var b strings.Builder
	b.WriteString("=== ADQL Preset Report ===\n")
	fmt.Fprintf(&b, "Presets loaded: %d\n\n", len(presets))
	for i, p := range presets {
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("preset-%d", i+1)
		}
		limit := p.Limit
		if limit <= 0 {
			limit = defaultLimit
		}
		if err := adql.PositiveBounded(limit, "limite", 200); err != nil {
			return "", fmt.Errorf("preset %s: %w", name, err)
		}
		query := adql.AdvancedSearch(adql.AdvancedFilters{
			MassMin:     p.MassMin,
			MassMax:     p.MassMax,
			PeriodMin:   p.PeriodMin,
			PeriodMax:   p.PeriodMax,
			DistanceMax: p.DistanceMax,
			YearMin:     p.YearMin,
			Method:      p.Method,
			Locale:      p.Locale,
		}, limit)
		fmt.Fprintf(&b, "[%s]\n%s\n\n", name, query)
	}
	return b.String(), nil
}

package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sandeepkv93/regform/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

var ErrEmptyCatalog = errors.New("catalog: no activities defined")

// Catalog is the static content of the form. It is loaded once and never
// changes at runtime.
type Catalog struct {
	Designs    []model.ShirtDesign
	Colors     []model.ShirtColor
	Activities []model.ActivityEntry
}

type document struct {
	Designs    []designDoc   `yaml:"designs"`
	Colors     []colorDoc    `yaml:"colors"`
	Activities []activityDoc `yaml:"activities"`
}

type designDoc struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type colorDoc struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Theme string `yaml:"theme"`
}

type activityDoc struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Cost       string `yaml:"cost"`
	DayAndTime string `yaml:"day_and_time"`
}

func Default() (Catalog, error) {
	return Parse(defaultCatalog)
}

func LoadFile(path string) (Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Catalog{}, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(raw)
}

// Load reads path when set and falls back to the embedded catalog.
func Load(path string) (Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

// Parse decodes a YAML catalog. Costs are converted here so that a bad cost
// is a load failure rather than a wrong total later on.
func Parse(raw []byte) (Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return Catalog{}, fmt.Errorf("decode catalog: %w", err)
	}
	if len(doc.Activities) == 0 {
		return Catalog{}, ErrEmptyCatalog
	}

	out := Catalog{
		Designs:    make([]model.ShirtDesign, 0, len(doc.Designs)),
		Colors:     make([]model.ShirtColor, 0, len(doc.Colors)),
		Activities: make([]model.ActivityEntry, 0, len(doc.Activities)),
	}
	for _, d := range doc.Designs {
		out.Designs = append(out.Designs, model.ShirtDesign{Value: d.Value, Label: d.Label})
	}
	for _, c := range doc.Colors {
		out.Colors = append(out.Colors, model.ShirtColor{Value: c.Value, Label: c.Label, Theme: c.Theme})
	}

	seen := make(map[string]bool, len(doc.Activities))
	for i, a := range doc.Activities {
		id := strings.TrimSpace(a.ID)
		if id == "" {
			return Catalog{}, fmt.Errorf("activity %d: id is required", i)
		}
		if seen[id] {
			return Catalog{}, fmt.Errorf("%w: %q", model.ErrDuplicateActivity, id)
		}
		seen[id] = true
		cost, err := model.ParseCost(a.Cost)
		if err != nil {
			return Catalog{}, fmt.Errorf("activity %q: %w", id, err)
		}
		out.Activities = append(out.Activities, model.ActivityEntry{
			ID:       id,
			Name:     strings.TrimSpace(a.Name),
			Cost:     cost,
			TimeSlot: strings.TrimSpace(a.DayAndTime),
		})
	}
	return out, nil
}

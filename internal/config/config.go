// Package config loads noise field definitions from YAML.
//
// A field file is validated twice: structurally against the embedded JSON
// Schema (field.schema.json), then semantically by perlin.Params.Validate
// and grid checks that the schema cannot express (axis lengths must match
// the dimension).
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvnoise/internal/sample"
	"github.com/katalvlaran/lvnoise/perlin"
)

// ErrInvalidField indicates a field file that fails schema or semantic checks.
var ErrInvalidField = errors.New("config: invalid field definition")

//go:embed field.schema.json
var schemaJSON string

const schemaURL = "https://github.com/katalvlaran/lvnoise/field.schema.json"

var fieldSchema = compileSchema()

func compileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("config: add schema: %v", err))
	}
	s, err := c.Compile(schemaURL)
	if err != nil {
		panic(fmt.Sprintf("config: compile schema: %v", err))
	}
	return s
}

// Field is a decoded field file. Knobs left out of the file keep the
// perlin defaults; Seed stays nil so a random seed is drawn.
type Field struct {
	Dimension   int      `yaml:"dimension"`
	Seed        *int64   `yaml:"seed"`
	Scale       float64  `yaml:"scale"`
	Octaves     int      `yaml:"octaves"`
	Lacunarity  float64  `yaml:"lacunarity"`
	Persistence float64  `yaml:"persistence"`
	Grid        GridSpec `yaml:"grid"`
}

// GridSpec is the sampling lattice. Origin defaults to zeros and Step to
// ones when omitted.
type GridSpec struct {
	Origin []float64 `yaml:"origin"`
	Step   []float64 `yaml:"step"`
	Count  []int     `yaml:"count"`
}

// Load reads and parses a field file.
func Load(path string) (Field, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Field{}, err
	}
	f, err := Parse(raw)
	if err != nil {
		return Field{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse validates raw YAML against the schema and decodes it.
func Parse(raw []byte) (Field, error) {
	if err := validateSchema(raw); err != nil {
		return Field{}, err
	}

	p := perlin.DefaultParams()
	f := Field{
		Scale:       p.Scale,
		Octaves:     p.Octaves,
		Lacunarity:  p.Lacunarity,
		Persistence: p.Persistence,
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Field{}, fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	if err := f.Params().Validate(); err != nil {
		return Field{}, fmt.Errorf("%w: %w", ErrInvalidField, err)
	}
	if n := len(f.Grid.Count); n > 0 {
		if n != f.Dimension {
			return Field{}, fmt.Errorf("%w: grid has %d axes, dimension is %d", ErrInvalidField, n, f.Dimension)
		}
		f.Grid.fill(f.Dimension)
		if err := f.SampleGrid().Validate(); err != nil {
			return Field{}, fmt.Errorf("%w: %w", ErrInvalidField, err)
		}
	}
	return f, nil
}

// validateSchema re-encodes the YAML document as JSON so the schema sees
// the same value types it would for a JSON file.
func validateSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	js, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}

	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var inst any
	if err := dec.Decode(&inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	if err := fieldSchema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidField, err)
	}
	return nil
}

// Params returns the fractal knobs of the field.
func (f Field) Params() perlin.Params {
	return perlin.Params{
		Scale:       f.Scale,
		Octaves:     f.Octaves,
		Lacunarity:  f.Lacunarity,
		Persistence: f.Persistence,
	}
}

// Options turns the field into constructor options.
func (f Field) Options() []perlin.Option {
	opts := []perlin.Option{perlin.WithParams(f.Params())}
	if f.Seed != nil {
		opts = append(opts, perlin.WithSeed(*f.Seed))
	}
	return opts
}

// SampleGrid converts the grid spec for sample.Write.
func (f Field) SampleGrid() sample.Grid {
	return sample.Grid{Origin: f.Grid.Origin, Step: f.Grid.Step, Count: f.Grid.Count}
}

// fill supplies the default origin and step for a grid with counts.
func (g *GridSpec) fill(dim int) {
	if g.Origin == nil {
		g.Origin = make([]float64, dim)
	}
	if g.Step == nil {
		g.Step = make([]float64, dim)
		for i := range g.Step {
			g.Step[i] = 1
		}
	}
}

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvnoise/internal/config"
	"github.com/katalvlaran/lvnoise/perlin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullField = `
dimension: 3
seed: 42
scale: 0.05
octaves: 3
lacunarity: 2
persistence: 0.5
grid:
  origin: [10, 20, 30]
  step: [1, 1, 1]
  count: [2, 2, 2]
`

// TestParse_Full decodes every key and checks the resulting generator.
func TestParse_Full(t *testing.T) {
	f, err := config.Parse([]byte(fullField))
	require.NoError(t, err)

	assert.Equal(t, 3, f.Dimension)
	require.NotNil(t, f.Seed)
	assert.Equal(t, int64(42), *f.Seed)
	assert.Equal(t, perlin.Params{Scale: 0.05, Octaves: 3, Lacunarity: 2, Persistence: 0.5}, f.Params())
	assert.Equal(t, []int{2, 2, 2}, f.SampleGrid().Count)

	n, err := perlin.New3D(f.Options()...)
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.Seed())
	assert.InDelta(t, 0.101015254, n.Noise(10, 20, 30), 1e-9)
}

// TestParse_Defaults leaves everything optional out.
func TestParse_Defaults(t *testing.T) {
	f, err := config.Parse([]byte("dimension: 1\n"))
	require.NoError(t, err)
	assert.Nil(t, f.Seed)
	assert.Equal(t, perlin.DefaultParams(), f.Params())
	assert.Empty(t, f.Grid.Count)
	assert.Len(t, f.Options(), 1, "no seed option when seed is omitted")
}

// TestParse_GridDefaults fills origin with zeros and step with ones.
func TestParse_GridDefaults(t *testing.T) {
	f, err := config.Parse([]byte("dimension: 2\ngrid:\n  count: [4, 3]\n"))
	require.NoError(t, err)
	g := f.SampleGrid()
	assert.Equal(t, []float64{0, 0}, g.Origin)
	assert.Equal(t, []float64{1, 1}, g.Step)
	assert.Equal(t, 12, g.Points())
}

// TestParse_Rejects covers schema and semantic failures.
func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty document":      "",
		"missing dimension":   "seed: 1\n",
		"dimension 4":         "dimension: 4\n",
		"unknown key":         "dimension: 2\ncolour: red\n",
		"octaves 0":           "dimension: 2\noctaves: 0\n",
		"octaves float":       "dimension: 2\noctaves: 2.5\n",
		"negative scale":      "dimension: 2\nscale: -1\n",
		"lacunarity below 1":  "dimension: 2\nlacunarity: 0.5\n",
		"persistence above 1": "dimension: 2\npersistence: 1.5\n",
		"seed not integer":    "dimension: 2\nseed: abc\n",
		"grid axes mismatch":  "dimension: 3\ngrid:\n  count: [4, 4]\n",
		"grid zero count":     "dimension: 1\ngrid:\n  count: [0]\n",
		"grid origin short":   "dimension: 2\ngrid:\n  origin: [1]\n  count: [2, 2]\n",
		"grid missing count":  "dimension: 2\ngrid:\n  origin: [1, 2]\n",
		"malformed yaml":      "dimension: [2\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidField)
		})
	}
}

// TestLoad_File reads from disk and reports missing files.
func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "field.yaml")
	require.NoError(t, os.WriteFile(p, []byte(fullField), 0o644))

	f, err := config.Load(p)
	require.NoError(t, err)
	assert.Equal(t, 3, f.Dimension)

	_, err = config.Load(filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("dimension: 9\n"), 0o644))
	_, err = config.Load(bad)
	assert.ErrorIs(t, err, config.ErrInvalidField)
	assert.Contains(t, err.Error(), "bad.yaml")
}

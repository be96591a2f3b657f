package sample_test

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvnoise/internal/sample"
	"github.com/katalvlaran/lvnoise/perlin"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sum is a trivial field used to check row layout.
func sum(c []float64) float64 {
	s := 0.0
	for _, v := range c {
		s += v
	}
	return s
}

// TestWrite_OrderAndFormat checks x-fastest ordering and the row format.
func TestWrite_OrderAndFormat(t *testing.T) {
	g := sample.Grid{Origin: []float64{0, 10}, Step: []float64{0.5, 1}, Count: []int{3, 2}}
	var buf bytes.Buffer
	require.NoError(t, sample.Write(&buf, sum, g))

	want := "0\t10\t10\n" +
		"0.5\t10\t10.5\n" +
		"1\t10\t11\n" +
		"0\t11\t11\n" +
		"0.5\t11\t11.5\n" +
		"1\t11\t12\n"
	assert.Equal(t, want, buf.String())
}

// TestWrite_PointCount checks a 3D grid emits Count0·Count1·Count2 rows.
func TestWrite_PointCount(t *testing.T) {
	g := sample.Grid{Origin: []float64{0, 0, 0}, Step: []float64{1, 1, 1}, Count: []int{4, 3, 2}}
	var buf bytes.Buffer
	require.NoError(t, sample.Write(&buf, sum, g))
	assert.Equal(t, 24, strings.Count(buf.String(), "\n"))
	assert.Equal(t, 24, g.Points())
}

// TestGrid_Validate covers the rejected shapes.
func TestGrid_Validate(t *testing.T) {
	bad := []struct {
		name string
		g    sample.Grid
		want error
	}{
		{"no axes", sample.Grid{}, sample.ErrBadDimension},
		{"four axes", sample.Grid{Origin: make([]float64, 4), Step: make([]float64, 4), Count: []int{1, 1, 1, 1}}, sample.ErrBadDimension},
		{"short origin", sample.Grid{Origin: []float64{0}, Step: []float64{1, 1}, Count: []int{1, 1}}, sample.ErrBadGrid},
		{"zero count", sample.Grid{Origin: []float64{0}, Step: []float64{1}, Count: []int{0}}, sample.ErrBadGrid},
	}
	for _, tc := range bad {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.g.Validate(), tc.want)
			assert.ErrorIs(t, sample.Write(io.Discard, sum, tc.g), tc.want)
		})
	}
}

// TestNew_Dimensions builds every engine through the adapter and compares
// it with the direct generator.
func TestNew_Dimensions(t *testing.T) {
	f1, seed, err := sample.New(1, perlin.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, int64(42), seed)
	assert.InDelta(t, 0.010717, f1([]float64{0.5}), 5e-7)

	f2, _, err := sample.New(2, perlin.WithSeed(42))
	require.NoError(t, err)
	assert.InDelta(t, -0.01513, f2([]float64{0.5, 0.5}), 5e-7)

	f3, _, err := sample.New(3, perlin.WithSeed(42))
	require.NoError(t, err)
	assert.InDelta(t, -0.015006, f3([]float64{0.5, 0.5, 0.5}), 5e-7)

	_, _, err = sample.New(4)
	assert.ErrorIs(t, err, sample.ErrBadDimension)

	_, _, err = sample.New(2, perlin.WithOctaves(0))
	assert.ErrorIs(t, err, perlin.ErrInvalidParameter)
}

// TestCreate_Stdout writes through the "-" destination.
func TestCreate_Stdout(t *testing.T) {
	var buf bytes.Buffer
	w, err := sample.Create("-", &buf)
	require.NoError(t, err)
	_, err = io.WriteString(w, "hello\n")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.Equal(t, "hello\n", buf.String())
}

// TestCreate_PlainAndZstd writes the same grid to a plain and a compressed
// file and compares the decoded contents.
func TestCreate_PlainAndZstd(t *testing.T) {
	dir := t.TempDir()
	f, _, err := sample.New(2, perlin.WithSeed(7))
	require.NoError(t, err)
	g := sample.Grid{Origin: []float64{-3, 5}, Step: []float64{0.25, 2}, Count: []int{16, 8}}

	write := func(name string) string {
		p := filepath.Join(dir, name)
		w, err := sample.Create(p, nil)
		require.NoError(t, err)
		require.NoError(t, sample.Write(w, f, g))
		require.NoError(t, w.Close())
		return p
	}

	plainPath := write("grid.tsv")
	zstPath := write("grid.tsv.zst")

	plain, err := os.ReadFile(plainPath)
	require.NoError(t, err)
	assert.Equal(t, 128, bytes.Count(plain, []byte("\n")))

	raw, err := os.ReadFile(zstPath)
	require.NoError(t, err)
	dec, err := zstd.NewReader(nil)
	require.NoError(t, err)
	defer dec.Close()
	decoded, err := dec.DecodeAll(raw, nil)
	require.NoError(t, err)
	assert.Equal(t, plain, decoded)
}

// TestCreate_BadPath surfaces the os error.
func TestCreate_BadPath(t *testing.T) {
	_, err := sample.Create(filepath.Join(t.TempDir(), "missing", "out.zst"), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

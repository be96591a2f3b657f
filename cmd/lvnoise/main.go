// Command lvnoise evaluates Perlin noise from the command line.
//
// Point mode prints the value at one coordinate:
//
//	lvnoise -dim 2 -seed 42 0.5 0.5
//
// Grid mode samples the lattice described by a YAML field file and writes
// tab-separated rows (coordinates, then value); outputs ending in .zst are
// zstd-compressed:
//
//	lvnoise -config field.yaml -out grid.tsv.zst
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/katalvlaran/lvnoise/internal/config"
	"github.com/katalvlaran/lvnoise/internal/sample"
	"github.com/katalvlaran/lvnoise/perlin"
)

// errUsage marks command-line mistakes (exit status 2).
var errUsage = errors.New("usage")

func main() {
	logger := log.New(os.Stderr, "[lvnoise] ", log.LstdFlags)
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
			if !errors.Is(err, flag.ErrHelp) {
				logger.Println(err)
			}
			os.Exit(2)
		}
		logger.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, logger *log.Logger) error {
	fs := flag.NewFlagSet("lvnoise", flag.ContinueOnError)
	fs.SetOutput(logger.Writer())
	var (
		configPath  = fs.String("config", "", "YAML field file; enables grid mode")
		outPath     = fs.String("out", "-", "grid output path (- for stdout, *.zst for zstd)")
		dim         = fs.Int("dim", 2, "dimension for point mode (1, 2 or 3)")
		seed        = fs.Int64("seed", 0, "permutation seed (random when not set)")
		scale       = fs.Float64("scale", perlin.DefaultScale, "coordinate scale")
		octaves     = fs.Int("octaves", perlin.DefaultOctaves, "number of octaves")
		lacunarity  = fs.Float64("lacunarity", perlin.DefaultLacunarity, "frequency multiplier per octave")
		persistence = fs.Float64("persistence", perlin.DefaultPersistence, "amplitude multiplier per octave")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if *configPath != "" {
		return runGrid(*configPath, *outPath, stdout, logger)
	}

	opts := []perlin.Option{perlin.WithParams(perlin.Params{
		Scale:       *scale,
		Octaves:     *octaves,
		Lacunarity:  *lacunarity,
		Persistence: *persistence,
	})}
	if set["seed"] {
		opts = append(opts, perlin.WithSeed(*seed))
	}
	return runPoint(*dim, fs.Args(), opts, stdout, logger)
}

func runPoint(dim int, args []string, opts []perlin.Option, stdout io.Writer, logger *log.Logger) error {
	if len(args) != dim {
		return fmt.Errorf("%w: point mode needs %d coordinates, got %d", errUsage, dim, len(args))
	}
	coords := make([]float64, dim)
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return fmt.Errorf("%w: coordinate %q: %v", errUsage, a, err)
		}
		coords[i] = v
	}

	f, seed, err := sample.New(dim, opts...)
	if err != nil {
		if errors.Is(err, sample.ErrBadDimension) {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		return err
	}
	logger.Printf("dim=%d seed=%d", dim, seed)

	_, err = fmt.Fprintln(stdout, strconv.FormatFloat(f(coords), 'g', -1, 64))
	return err
}

func runGrid(configPath, outPath string, stdout io.Writer, logger *log.Logger) error {
	field, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if len(field.Grid.Count) == 0 {
		return fmt.Errorf("%w: %s has no grid", errUsage, configPath)
	}

	f, seed, err := sample.New(field.Dimension, field.Options()...)
	if err != nil {
		return err
	}
	g := field.SampleGrid()
	logger.Printf("dim=%d seed=%d points=%d out=%s", field.Dimension, seed, g.Points(), outPath)

	w, err := sample.Create(outPath, stdout)
	if err != nil {
		return err
	}
	if err := sample.Write(w, f, g); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// landscape generates Diamond-Square terrain and reports on the resulting mesh.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/fractal-landscape/internal/config"
	"github.com/Faultbox/fractal-landscape/internal/landscape"
	"github.com/Faultbox/fractal-landscape/internal/logger"
	"github.com/Faultbox/fractal-landscape/internal/terrain"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg)

	args := config.Args()
	if len(args) == 0 {
		args = []string{"generate"}
	}

	command, rest := args[0], args[1:]
	switch command {
	case "generate", "gen":
		err = cmdGenerate(os.Stdout, cfg, rest)
	case "classify":
		err = cmdClassify(os.Stdout, rest)
	case "config":
		err = cmdConfig(os.Stdout, cfg, rest)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		var inputErr *landscape.InputError
		if !errors.As(err, &inputErr) {
			logger.Error("command failed", zap.String("command", command), zap.Error(err))
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `landscape - Diamond-Square terrain generator

Usage:
  landscape [global flags] <command> [options]

Commands:
  generate [-depth D] [-randomness R]   Generate a terrain and print a summary
  classify <height>...                  Print the surface class of each height
  config [path|-]                       Write the effective config as YAML
  help                                  Show this help

Global flags:
  -config <file>     Config file (default ./landscape.yaml or user config dir)
  -seed <n>          Fixed random seed (0 = new seed per generation)
  -footprint <size>  World-space edge length of the terrain
  -max-depth <n>     Largest accepted recursion depth
  -log-file <file>   Also write logs to a rotating file
  -debug             Enable debug logging

Examples:
  landscape generate
  landscape -seed 42 generate -depth 7 -randomness 0,6
  landscape classify 0.1 0.35 0.5 0.9
  landscape config ./landscape.yaml`)
}

func cmdGenerate(w io.Writer, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	depth := fs.String("depth", strconv.Itoa(cfg.Terrain.Depth), "Recursion depth (grid side is 2^depth+1)")
	randomness := fs.String("randomness", strconv.FormatFloat(cfg.Terrain.Randomness, 'f', -1, 64),
		"Initial displacement magnitude ('.' or ',' decimal separator)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	land, err := landscape.New(cfg)
	if err != nil {
		return err
	}

	terr, err := land.Regenerate(context.Background(), *depth, *randomness)
	if err != nil {
		return err
	}

	printSummary(w, terr)
	return nil
}

func printSummary(w io.Writer, terr *landscape.Terrain) {
	mesh := terr.Mesh
	b := mesh.Bounds

	fmt.Fprintf(w, "Terrain:    %s\n", terr.ID)
	fmt.Fprintf(w, "Seed:       %d\n", terr.Seed)
	fmt.Fprintf(w, "Depth:      %d (%dx%d grid)\n", terr.Params.Depth, terr.Side, terr.Side)
	fmt.Fprintf(w, "Randomness: %g\n", terr.Params.Randomness)
	fmt.Fprintf(w, "Footprint:  %g\n", terr.Params.FootprintSize)
	fmt.Fprintf(w, "Heights:    %.4f .. %.4f\n", terr.MinHeight, terr.MaxHeight)
	fmt.Fprintf(w, "Triangles:  %d (%d cell, %d perimeter)\n", mesh.Len(), len(mesh.Triangles), len(mesh.Perimeter))
	fmt.Fprintf(w, "Bounds:     (%.2f, %.2f, %.4f) .. (%.2f, %.2f, %.4f)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Surface:")
	counts := mesh.ColorCounts()
	total := mesh.Len()
	for _, c := range terrain.Colors {
		rgba := c.RGBA()
		pct := 0.0
		if total > 0 {
			pct = float64(counts[c]) * 100 / float64(total)
		}
		fmt.Fprintf(w, "  %-6s #%02x%02x%02x  %6d  %5.1f%%\n", c, rgba.R, rgba.G, rgba.B, counts[c], pct)
	}
	fmt.Fprintln(w)

	lights := terr.Lights
	d := lights.Directional
	fmt.Fprintf(w, "Lights:     directional #%02x%02x%02x along (%.3f, %.3f, %.3f), ambient #%02x%02x%02x\n",
		d.Color.R, d.Color.G, d.Color.B, d.Direction.X, d.Direction.Y, d.Direction.Z,
		lights.Ambient.Color.R, lights.Ambient.Color.G, lights.Ambient.Color.B)
}

func cmdClassify(w io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.New("classify needs at least one height")
	}

	for _, arg := range args {
		h, err := terrain.ParseDecimal(arg)
		if err != nil {
			return fmt.Errorf("invalid height %q", arg)
		}
		fmt.Fprintf(w, "%-10s %s\n", arg, terrain.Classify(h))
	}
	return nil
}

func cmdConfig(w io.Writer, cfg *config.Config, args []string) error {
	if len(args) > 0 && args[0] == "-" {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	}

	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(w, "Wrote %s\n", args[0])
		return nil
	}

	path, err := cfg.Save()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Wrote %s\n", path)
	return nil
}

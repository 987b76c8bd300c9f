// Command pathplot draws the results file of the pathfinding tool:
// agent paths with their start (red) and target (blue), the world
// boundary and the obstacles.
//
// Usage:
//
//	pathplot [input] [-o out.png|out.pdf|out.svg] [-W width] [-H height] [-e encoding] [--log-level level]
//
// Without an output file, the figure is shown in a window.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/akamensky/argparse"
	"github.com/benoitkugler/pathplot/logging"
	"github.com/benoitkugler/pathplot/plot"
	"github.com/benoitkugler/pathplot/plotpdf"
	"github.com/benoitkugler/pathplot/plotraster"
	"github.com/benoitkugler/pathplot/plotsvg"
	"github.com/benoitkugler/pathplot/render"
	"github.com/benoitkugler/pathplot/results"
)

const maxSize = 20000

// show displays the figure and blocks until the window is closed
var show = showWindow

// writers by output file extension
var writers = map[string]func(io.Writer, *plot.Figure) error{
	".png": plotraster.WritePNG,
	".pdf": plotpdf.Write,
	".svg": plotsvg.Write,
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	parser := argparse.NewParser("pathplot", "Draws the pathfinding results file")

	input := parser.StringPositional(&argparse.Options{Default: results.DefaultFile, Help: "results file"})
	output := parser.String("o", "output", &argparse.Options{Help: "write the figure to this .png, .pdf or .svg file instead of showing it"})
	width := parser.Int("W", "width", &argparse.Options{Default: plot.DefaultWidth, Help: "figure width, in pixels"})
	height := parser.Int("H", "height", &argparse.Options{Default: plot.DefaultHeight, Help: "figure height, in pixels"})
	encoding := parser.String("e", "encoding", &argparse.Options{Help: "charset of the results file (default utf-8)"})
	logLevel := parser.Selector("", "log-level", []string{"debug", "info", "warn", "error"},
		&argparse.Options{Default: "warn", Help: "log verbosity"})

	if err := parser.Parse(args); err != nil {
		fmt.Fprint(stderr, parser.Usage(err))
		return 1
	}

	logging.SetOutput(stderr)
	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	logging.SetLevel(level)

	if *width < 1 || *width > maxSize || *height < 1 || *height > maxSize {
		fmt.Fprintf(stderr, "Error: invalid figure size %dx%d, must be in [1, %d]\n", *width, *height, maxSize)
		return 1
	}
	var write func(io.Writer, *plot.Figure) error
	if *output != "" {
		ext := strings.ToLower(filepath.Ext(*output))
		if write = writers[ext]; write == nil {
			fmt.Fprintf(stderr, "Error: unsupported output format %q (expected .png, .pdf or .svg)\n", ext)
			return 1
		}
	}

	fig := plot.NewFigure(*width, *height)
	if err := render.RenderFile(fig, *input, render.Options{Summary: stdout, Encoding: *encoding}); err != nil {
		logging.Errorf("%s", err)
		return 1
	}

	if write == nil {
		if err := show(fig); err != nil {
			logging.Errorf("showing figure: %s", err)
			return 1
		}
		return 0
	}
	if err := writeFile(*output, fig, write); err != nil {
		logging.Errorf("%s", err)
		return 1
	}
	logging.Infof("figure written to %s", *output)
	return 0
}

func writeFile(path string, fig *plot.Figure, write func(io.Writer, *plot.Figure) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f, fig); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}

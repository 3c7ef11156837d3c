// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Command r2voronoi triangulates a set of planar points and prints the
// resulting index buffer. Points are read as "x y" lines, or generated at
// random. The triangulation and its dual graph can be drawn to SVG or PNG.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/2dChan/r2voronoi"
	"github.com/2dChan/r2voronoi/internal/render"
	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/2dChan/r2voronoi/utils"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(stdin io.Reader, stdout io.Writer) *cli.App {
	return &cli.App{
		Name:      "r2voronoi",
		Usage:     "Delaunay triangulation and its Voronoi dual for planar points",
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: io.Discard,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Value: "-", Usage: "file with one \"x y\" point per line, - for stdin"},
			&cli.IntFlag{Name: "random", Aliases: []string{"n"}, Usage: "generate `N` random points instead of reading input"},
			&cli.Int64Flag{Name: "seed", Usage: "seed for --random"},
			&cli.Float64Flag{Name: "size", Value: 100, Usage: "side of the square random points are generated in"},
			&cli.Float64Flag{Name: "eps", Value: r2delaunay.DefaultEps, Usage: "degenerate triangle threshold, relative to the longest edge squared"},
			&cli.Float64Flag{Name: "scale", Value: r2delaunay.DefaultSuperTriangleScale, Usage: "super-triangle scale"},
			&cli.BoolFlag{Name: "adjacency", Usage: "print the triangles sharing an edge with each triangle"},
			&cli.StringFlag{Name: "svg", Usage: "write an SVG drawing to `FILE`"},
			&cli.StringFlag{Name: "png", Usage: "write a PNG drawing to `FILE`"},
			&cli.IntFlag{Name: "width", Value: 1000, Usage: "drawing width in pixels"},
			&cli.IntFlag{Name: "height", Value: 1000, Usage: "drawing height in pixels"},
			&cli.BoolFlag{Name: "circles", Usage: "draw circumcircles"},
			&cli.BoolFlag{Name: "dual", Usage: "draw the dual graph"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log every insertion"},
		},
		Action: run,
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	return cfg.Build()
}

func run(c *cli.Context) error {
	logger, err := newLogger(c.Bool("verbose"))
	if err != nil {
		return errors.Wrap(err, "creating logger")
	}
	defer func() { _ = logger.Sync() }()

	points, err := loadPoints(c)
	if err != nil {
		return err
	}

	vd, err := r2voronoi.NewDiagram(points,
		r2voronoi.WithLogger(logger),
		r2voronoi.WithTriangulationOptions(
			r2delaunay.WithEps(c.Float64("eps")),
			r2delaunay.WithSuperTriangleScale(c.Float64("scale")),
		),
	)
	if err != nil {
		return err
	}
	logger.Info("triangulated",
		zap.Int("points", len(points)),
		zap.Int("triangles", vd.NumNodes()),
		zap.Int("dualEdges", len(vd.Edges())),
	)

	if err := printTriangles(c.App.Writer, vd, c.Bool("adjacency")); err != nil {
		return err
	}

	sc := render.Scene{Points: points, Triangles: vd.Triangles, Segments: vd.Segments()}
	opts := render.Options{
		Width:   c.Int("width"),
		Height:  c.Int("height"),
		Circles: c.Bool("circles"),
		Dual:    c.Bool("dual"),
	}
	if path := c.String("svg"); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return render.WriteSVG(w, sc, opts) }); err != nil {
			return err
		}
		logger.Info("wrote svg", zap.String("path", path))
	}
	if path := c.String("png"); path != "" {
		if err := writeFile(path, func(w io.Writer) error { return render.WritePNG(w, sc, opts) }); err != nil {
			return err
		}
		logger.Info("wrote png", zap.String("path", path))
	}
	return nil
}

func loadPoints(c *cli.Context) ([]r2.Point, error) {
	if n := c.Int("random"); n > 0 {
		size := c.Float64("size")
		bounds := r2.RectFromPoints(r2.Point{X: 0, Y: 0}, r2.Point{X: size, Y: size})
		return utils.GenerateRandomPoints(n, bounds, c.Int64("seed")), nil
	}

	path := c.String("input")
	if path == "-" {
		return readPoints(c.App.Reader)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return readPoints(f)
}

// readPoints parses one "x y" pair per line. Blank lines and lines starting
// with # are skipped.
func readPoints(r io.Reader) ([]r2.Point, error) {
	var points []r2.Point
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.Errorf("line %d: want 2 coordinates, got %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		points = append(points, r2.Point{X: x, Y: y})
	}
	return points, errors.Wrap(scanner.Err(), "reading points")
}

func printTriangles(w io.Writer, vd *r2voronoi.Diagram, adjacency bool) error {
	bw := bufio.NewWriter(w)
	for i, t := range vd.Triangles {
		idx := t.Indices()
		fmt.Fprintf(bw, "%d %d %d", idx[0], idx[1], idx[2])
		if adjacency {
			n, err := vd.Node(i)
			if err != nil {
				return err
			}
			fmt.Fprintf(bw, " :")
			for _, j := range n.NeighborIndices() {
				fmt.Fprintf(bw, " %d", j)
			}
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

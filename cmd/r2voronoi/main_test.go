// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/2dChan/r2voronoi/r2delaunay"
	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const squareInput = `# unit square
0 0
1 0

1 1
0 1
`

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(strings.NewReader(stdin), &out)
	err := app.Run(append([]string{"r2voronoi"}, args...))
	return out.String(), err
}

func TestReadPoints(t *testing.T) {
	points, err := readPoints(strings.NewReader(squareInput))
	require.NoError(t, err)
	assert.Equal(t, []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, points)
}

func TestReadPoints_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"one coordinate", "0 0\n1\n"},
		{"three coordinates", "0 0 0\n"},
		{"not a number", "0 0\nx 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readPoints(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestRun_Stdin(t *testing.T) {
	out, err := runApp(t, squareInput)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 1 2", "0 2 3"}, sortedTriples(t, out))
}

func TestRun_Adjacency(t *testing.T) {
	out, err := runApp(t, squareInput, "--adjacency")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], ": 1"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], ": 0"), lines[1])
}

func TestRun_InputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "points.txt")
	require.NoError(t, os.WriteFile(path, []byte("0 0\n4 0\n0 4\n"), 0o600))

	out, err := runApp(t, "", "--input", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"0 1 2"}, sortedTriples(t, out))
}

func TestRun_TooFewPoints(t *testing.T) {
	_, err := runApp(t, "0 0\n1 1\n")
	require.Error(t, err)
	assert.True(t, errors.Is(err, r2delaunay.ErrInvalidInput), err.Error())
}

func TestRun_InvalidScale(t *testing.T) {
	_, err := runApp(t, squareInput, "--scale", "1")
	assert.Error(t, err)
}

func TestNewApp_TriangulationDefaults(t *testing.T) {
	tr, err := r2delaunay.NewTriangulator()
	require.NoError(t, err)
	opts := tr.Options()

	defaults := map[string]float64{}
	for _, f := range newApp(nil, nil).Flags {
		if ff, ok := f.(*cli.Float64Flag); ok {
			defaults[ff.Name] = ff.Value
		}
	}
	assert.Equal(t, opts.Eps, defaults["eps"])
	assert.Equal(t, opts.SuperTriangleScale, defaults["scale"])
}

func TestRun_TinyCoordinates(t *testing.T) {
	out, err := runApp(t, "0 0\n4e-7 0\n0 4e-7\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"0 1 2"}, sortedTriples(t, out))
}

func TestRun_RandomWithDrawings(t *testing.T) {
	dir := t.TempDir()
	svgPath := filepath.Join(dir, "out.svg")
	pngPath := filepath.Join(dir, "out.png")

	out, err := runApp(t, "", "--random", "50", "--seed", "3",
		"--svg", svgPath, "--png", pngPath, "--width", "100", "--height", "100", "--circles", "--dual")
	require.NoError(t, err)
	assert.NotEmpty(t, out)

	svgData, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.Contains(t, string(svgData), "<polygon")

	pngData, err := os.ReadFile(pngPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pngData, []byte("\x89PNG")))
}

func sortedTriples(t *testing.T, out string) []string {
	t.Helper()
	var triples []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Fields(line)
		require.Len(t, fields, 3)
		slices.Sort(fields)
		triples = append(triples, strings.Join(fields, " "))
	}
	slices.Sort(triples)
	return triples
}

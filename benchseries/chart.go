// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

type ChartOptions struct {
	Title  string // first title line; the group's key is the second
	XLabel string
	YLabel string

	Width, Height vg.Length
	DPI           int

	LegendLeft     bool      // place the legend top left instead of top right
	LegendFontSize vg.Length // 0 keeps the plot default
}

// DefaultChartOptions returns a 6.4×4.8 inch, 100 dpi chart with a
// time axis.
func DefaultChartOptions() *ChartOptions {
	return &ChartOptions{
		YLabel: "Time (ms)",
		Width:  6.4 * vg.Inch,
		Height: 4.8 * vg.Inch,
		DPI:    100,
	}
}

// ChartOptions returns the chart options matching bo's variant.
func (bo *BuilderOptions) ChartOptions() *ChartOptions {
	co := DefaultChartOptions()
	co.Title = bo.Title
	co.XLabel = bo.XLabel
	if bo.ByThreads {
		// Nine series need a small legend out of the way of the
		// fastest lines.
		co.DPI = 300
		co.LegendLeft = true
		co.LegendFontSize = vg.Points(7)
	}
	return co
}

// Chart writes one PNG chart per group into dir, creating dir if
// needed, and returns the paths written. Each file is complete and
// closed before the next group is drawn.
//
// If two groups would be written to the same file, Chart returns an
// error before creating anything.
func Chart(groups []*Group, dir string, opts *ChartOptions) ([]string, error) {
	seen := make(map[string]GroupKey)
	for _, g := range groups {
		name := g.Key.FileName()
		if prev, ok := seen[name]; ok {
			return nil, fmt.Errorf("charts for %s and %s both named %s", prev, g.Key, name)
		}
		seen[name] = g.Key
	}

	if err := os.MkdirAll(dir, 0777); err != nil {
		return nil, err
	}
	var files []string
	for _, g := range groups {
		file := filepath.Join(dir, g.Key.FileName())
		if err := writeChartFile(file, g, opts); err != nil {
			return files, err
		}
		files = append(files, file)
	}
	return files, nil
}

func writeChartFile(file string, g *Group, opts *ChartOptions) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := WriteChart(f, g, opts); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

// WriteChart draws g as a PNG line chart to w: one line per series,
// a legend entry per series, a grid, and X ticks at g.XTicks.
func WriteChart(w io.Writer, g *Group, opts *ChartOptions) error {
	pl, err := newPlot(g, opts)
	if err != nil {
		return err
	}
	c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height),
		vgimg.UseDPI(opts.DPI), vgimg.UseBackgroundColor(color.White))
	pl.Draw(draw.New(c))
	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

func newPlot(g *Group, opts *ChartOptions) (*plot.Plot, error) {
	pl := plot.New()

	pl.Title.Text = g.Key.String()
	if opts.Title != "" {
		pl.Title.Text = opts.Title + "\n" + pl.Title.Text
	}
	pl.X.Label.Text = opts.XLabel
	pl.Y.Label.Text = opts.YLabel

	pl.Add(plotter.NewGrid())

	for i, s := range g.Series {
		xys := make(plotter.XYs, len(s.Points))
		for j, p := range s.Points {
			xys[j].X = p.X
			xys[j].Y = p.Y
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("series %s: %w", s.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Dashes = plotutil.Dashes(0)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)

		pl.Add(line, points)
		pl.Legend.Add(s.Label, line, points)
	}

	pl.X.Tick.Marker = plot.ConstantTicks(xTicks(g.XTicks))

	pl.Legend.Top = true
	pl.Legend.Left = opts.LegendLeft
	if opts.LegendFontSize != 0 {
		pl.Legend.TextStyle.Font.Size = opts.LegendFontSize
	}
	return pl, nil
}

func xTicks(xs []float64) []plot.Tick {
	ticks := make([]plot.Tick, len(xs))
	for i, x := range xs {
		ticks[i] = plot.Tick{Value: x, Label: strconv.FormatFloat(x, 'f', -1, 64)}
	}
	return ticks
}

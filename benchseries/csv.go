// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/aclements/go-gg/table"
	"github.com/imgfilter/benchplot/benchmath"
)

var summaryHeader = []string{"image", "filter", "series", "x", "mean", "min", "max", "n", "±"}

// WriteCSV writes one row per point of every group to out.
func WriteCSV(out io.Writer, groups []*Group) error {
	tab := [][]string{summaryHeader}
	for _, g := range groups {
		for _, s := range g.Series {
			for _, p := range s.Points {
				tab = append(tab, []string{
					g.Key.Image, g.Key.Filter, s.Label,
					strof(p.X), strof(p.Y), strof(p.Lo), strof(p.Hi),
					fmt.Sprint(p.N), p.spread(),
				})
			}
		}
	}
	csvw := csv.NewWriter(out)
	csvw.WriteAll(tab)
	csvw.Flush()
	return csvw.Error()
}

// SummaryTable returns a table with one row per point of every group,
// with the same columns as WriteCSV.
func SummaryTable(groups []*Group) *table.Table {
	var (
		images  = []string{}
		filters = []string{}
		series  = []string{}
		xs      = []float64{}
		means   = []float64{}
		mins    = []float64{}
		maxs    = []float64{}
		ns      = []int{}
		spreads = []string{}
	)
	for _, g := range groups {
		for _, s := range g.Series {
			for _, p := range s.Points {
				images = append(images, g.Key.Image)
				filters = append(filters, g.Key.Filter)
				series = append(series, s.Label)
				xs = append(xs, p.X)
				means = append(means, p.Y)
				mins = append(mins, p.Lo)
				maxs = append(maxs, p.Hi)
				ns = append(ns, p.N)
				spreads = append(spreads, p.spread())
			}
		}
	}
	cols := []interface{}{images, filters, series, xs, means, mins, maxs, ns, spreads}
	b := new(table.Builder)
	for i, name := range summaryHeader {
		b.Add(name, cols[i])
	}
	return b.Done()
}

// SummaryFormats are the table.Fprint column formats for SummaryTable.
var SummaryFormats = []string{"%s", "%s", "%s", "%g", "%.2f", "%.2f", "%.2f", "%d", "%s"}

func (p Point) spread() string {
	return benchmath.Summary{Center: p.Y, Lo: p.Lo, Hi: p.Hi, N: p.N}.PctRangeString()
}

func strof(x float64) string {
	return fmt.Sprintf("%f", x)
}

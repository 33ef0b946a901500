// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package trialfmt reads and writes the semicolon-delimited trial
// format emitted by the image filter benchmark harness.
//
// Each file starts with a header row naming its columns, followed by
// one row per timed run:
//
//	Method;Image;Filter;Image Division Method;Threshold(px);Time(ms)
//	fork-join;./input/turtle.jpg;blur;VERTICAL;121104;412
//
// Which columns are present depends on the harness variant that
// produced the file. Readers state the columns they need and reject
// files that lack any of them.
package trialfmt

import "fmt"

// Column names as written by the harness. They are matched exactly,
// after leading spaces are trimmed.
const (
	ColMethod    = "Method"
	ColImage     = "Image"
	ColFilter    = "Filter"
	ColDivision  = "Image Division Method"
	ColThreads   = "Number of Threads"
	ColThreshold = "Threshold(px)"
	ColTime      = "Time(ms)"
)

// A Trial is a single timed run of one filter over one image.
type Trial struct {
	// Method is the harness implementation that ran the trial,
	// such as "fork-join". It is empty if the input has no Method
	// column.
	Method string

	// Image is the path of the input image.
	Image string

	// Filter is the name of the filter applied.
	Filter string

	// Division is the strategy used to split the image into work
	// units, such as "VERTICAL" or "RECTANGULAR".
	Division string

	// Threads is the number of worker threads, or 0 if the input
	// has no thread column.
	Threads int

	// Threshold is the size in pixels below which work is no
	// longer subdivided, or 0 if the input has no threshold column.
	Threshold int

	// Time is the elapsed time in milliseconds.
	Time float64

	// fileName and line record where this Trial was read from.
	fileName string
	line     int
}

// Pos returns the file name and line number of a Trial that was read
// by a Reader. For Trials that were not read from a file, it returns
// "", 0.
func (t *Trial) Pos() (fileName string, line int) {
	return t.fileName, t.line
}

// Clone makes a copy of Trial t that does not share storage with t.
func (t *Trial) Clone() *Trial {
	t2 := *t
	return &t2
}

// Int returns the value of integer column col. It panics if col is not
// an integer column.
func (t *Trial) Int(col string) int {
	switch col {
	case ColThreads:
		return t.Threads
	case ColThreshold:
		return t.Threshold
	}
	panic(fmt.Sprintf("trialfmt: %q is not an integer column", col))
}

func (t *Trial) field(col string) string {
	switch col {
	case ColMethod:
		return t.Method
	case ColImage:
		return t.Image
	case ColFilter:
		return t.Filter
	case ColDivision:
		return t.Division
	case ColThreads:
		return fmt.Sprint(t.Threads)
	case ColThreshold:
		return fmt.Sprint(t.Threshold)
	case ColTime:
		return fmt.Sprint(t.Time)
	}
	return ""
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchmath summarizes the repeated timings of a benchmark
// configuration.
package benchmath

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/mathx"
	"github.com/aclements/go-moremath/stats"
)

// A Sample is a set of repeated measurements of one benchmark
// configuration.
type Sample struct {
	// Values are the measured values, in ascending order.
	Values []float64
}

// NewSample constructs a Sample from a set of measurements. It does
// not modify values.
func NewSample(values []float64) *Sample {
	vs := make([]float64, len(values))
	copy(vs, values)
	// Sort values for fast order statistics.
	sort.Float64s(vs)
	return &Sample{vs}
}

// A Summary summarizes a Sample.
type Summary struct {
	// Center is the arithmetic mean of the sample.
	Center float64

	// Lo and Hi are the smallest and largest values in the sample.
	Lo, Hi float64

	// N is the number of values in the sample.
	N int
}

// Summary returns the mean and range of s. For an empty sample, all
// fields except N are NaN.
func (s *Sample) Summary() Summary {
	if len(s.Values) == 0 {
		nan := math.NaN()
		return Summary{nan, nan, nan, 0}
	}
	lo, hi := stats.Bounds(s.Values)
	center := stats.Sample{Xs: s.Values, Sorted: true}.Mean()
	// Rounding can push the mean just outside the bounds.
	center = math.Max(lo, math.Min(center, hi))
	return Summary{Center: center, Lo: lo, Hi: hi, N: len(s.Values)}
}

// PctRangeString returns the spread of this Summary's range around
// its center as a percentage.
func (s Summary) PctRangeString() string {
	if math.IsInf(s.Lo, 0) || math.IsInf(s.Hi, 0) {
		return "∞"
	}
	if math.IsNaN(s.Center) {
		return "?"
	}

	// If the signs of the bounds differ from the center, we can't
	// render it as a percent.
	var csign = mathx.Sign(s.Center)
	if csign != mathx.Sign(s.Lo) || csign != mathx.Sign(s.Hi) {
		return "?"
	}

	// Center is 0 only if lo and hi are also 0.
	if s.Center == 0 {
		return "0%"
	}

	v := math.Max(s.Hi/s.Center-1, 1-s.Lo/s.Center)
	return fmt.Sprintf("%.0f%%", 100*v)
}

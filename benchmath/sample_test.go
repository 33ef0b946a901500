// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchmath

import (
	"math"
	"testing"
)

func TestSummary(t *testing.T) {
	check := func(values []float64, center, lo, hi float64) {
		t.Helper()
		s := NewSample(values).Summary()
		if s.Center != center || s.Lo != lo || s.Hi != hi || s.N != len(values) {
			t.Errorf("for %v, got %+v, want center %v range [%v, %v]", values, s, center, lo, hi)
		}
	}
	check([]float64{1, 2, 3}, 2, 1, 3)
	check([]float64{6, 4, 5}, 5, 4, 6)
	check([]float64{7, 8, 9}, 8, 7, 9)
	check([]float64{412}, 412, 412, 412)
	check([]float64{0.1, 0.1, 0.1}, 0.1, 0.1, 0.1)
}

func TestSummaryBounds(t *testing.T) {
	// The mean of any three values lies within their range.
	for _, vs := range [][]float64{
		{0.1, 0.2, 0.3},
		{1e-9, 1e9, 3},
		{0.7, 0.7, 0.7},
		{1.0 / 3, 2.0 / 3, 1},
	} {
		s := NewSample(vs).Summary()
		if s.Center < s.Lo || s.Center > s.Hi {
			t.Errorf("for %v, mean %v outside [%v, %v]", vs, s.Center, s.Lo, s.Hi)
		}
	}
}

func TestSummaryEmpty(t *testing.T) {
	s := NewSample(nil).Summary()
	if !math.IsNaN(s.Center) || !math.IsNaN(s.Lo) || !math.IsNaN(s.Hi) || s.N != 0 {
		t.Errorf("want NaN summary, got %+v", s)
	}
}

func TestNewSampleCopies(t *testing.T) {
	vs := []float64{3, 1, 2}
	s := NewSample(vs)
	if vs[0] != 3 || vs[1] != 1 || vs[2] != 2 {
		t.Errorf("NewSample modified its input: %v", vs)
	}
	if s.Values[0] != 1 || s.Values[2] != 3 {
		t.Errorf("Values not sorted: %v", s.Values)
	}
}

func TestSummaryFormat(t *testing.T) {
	check := func(center, lo, hi float64, want string) {
		t.Helper()
		s := Summary{Center: center, Lo: lo, Hi: hi}
		got := s.PctRangeString()
		if got != want {
			t.Errorf("for %v range [%v, %v], got %s, want %s", center, lo, hi, got, want)
		}
	}
	inf := math.Inf(1)

	check(1, 0.5, 1.1, "50%")
	check(1, 0.9, 1.5, "50%")
	check(1, 1, 1, "0%")
	check(2, 1, 3, "50%")

	check(1, 1, inf, "∞")
	check(1, -1, 1, "?")
	check(math.NaN(), math.NaN(), math.NaN(), "?")

	check(0, 0, 0, "0%")
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"sort"

	"github.com/imgfilter/benchplot/benchmath"
)

// reduceByValue averages the times of all trials with equal X and
// returns one point per distinct X, in ascending X order.
//
// If trials > 0, every X value must have exactly that many trials. If
// points > 0, there must be exactly that many distinct X values.
func reduceByValue(xCol string, xs, ys []float64, trials, points int) ([]Point, error) {
	var order []float64
	buckets := make(map[float64][]float64)
	for i, x := range xs {
		if _, ok := buckets[x]; !ok {
			order = append(order, x)
		}
		buckets[x] = append(buckets[x], ys[i])
	}
	sort.Float64s(order)

	if trials > 0 {
		for _, x := range order {
			if n := len(buckets[x]); n != trials {
				return nil, fmt.Errorf("%d trials at %s=%v, want %d", n, xCol, x, trials)
			}
		}
	}
	if points > 0 && len(order) != points {
		return nil, fmt.Errorf("%d distinct %s values %v, want %d", len(order), xCol, order, points)
	}

	out := make([]Point, len(order))
	for i, x := range order {
		out[i] = point(x, buckets[x])
	}
	return out, nil
}

// reduceStrided splits the trials into points blocks of trials
// consecutive entries each. Each block must share one X value; its
// point takes that X and the mean time of the block. Points keep input
// order.
func reduceStrided(xCol string, xs, ys []float64, trials, points int) ([]Point, error) {
	if want := trials * points; len(xs) != want {
		return nil, fmt.Errorf("%d trials, want %d (%d %s values × %d trials)", len(xs), want, points, xCol, trials)
	}
	out := make([]Point, points)
	for b := range out {
		lo, hi := b*trials, (b+1)*trials
		for i := lo + 1; i < hi; i++ {
			if xs[i] != xs[lo] {
				return nil, fmt.Errorf("trial %d has %s=%v, want %v as in trial %d", i, xCol, xs[i], xs[lo], lo)
			}
		}
		out[b] = point(xs[lo], ys[lo:hi])
	}
	return out, nil
}

func point(x float64, ys []float64) Point {
	s := benchmath.NewSample(ys).Summary()
	return Point{X: x, Y: s.Center, Lo: s.Lo, Hi: s.Hi, N: s.N}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries turns flat lists of timed trials into grouped,
// averaged series and renders them as charts.
//
// Trials are grouped by (image, filter); each group becomes one chart.
// Within a group, trials are split into series by division method and,
// optionally, thread count; each series becomes one line. Repeated
// trials at the same X value are averaged into a single point.
package benchseries

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/imgfilter/benchplot/trialfmt"
)

// A Reduction selects how the trials of one series are reduced to
// points.
type Reduction int

const (
	// ReduceByValue averages all trials that share an X value and
	// orders the resulting points by ascending X.
	ReduceByValue Reduction = iota

	// ReduceStrided averages fixed-size blocks of consecutive
	// trials, taking X from the first trial of each block. Points
	// keep input order.
	ReduceStrided
)

func (r Reduction) String() string {
	switch r {
	case ReduceByValue:
		return "by-value"
	case ReduceStrided:
		return "strided"
	}
	return fmt.Sprintf("Reduction(%d)", int(r))
}

type BuilderOptions struct {
	X               string // the independent-variable column, trialfmt.ColThreshold or trialfmt.ColThreads
	ByThreads       bool   // split series by thread count as well as division method
	Reduce          Reduction
	TrialsPerPoint  int    // trials expected at each X value; 0 accepts any number
	PointsPerSeries int    // distinct X values expected per series; 0 accepts any number
	Title           string // first line of each chart title
	XLabel          string // chart X axis label
	Warn            func(format string, args ...interface{})
}

func stderrWarn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

// ForkJoinOptions returns the options for the fork/join harness:
// time against threshold, one series per division method.
func ForkJoinOptions() *BuilderOptions {
	return &BuilderOptions{
		X:               trialfmt.ColThreshold,
		TrialsPerPoint:  3,
		PointsPerSeries: 3,
		Title:           "Time vs Threshold for Different Division Methods",
		XLabel:          "Threshold (px)",
		Warn:            stderrWarn,
	}
}

// ExecutorOptions returns the options for the executor harness: time
// against threshold, one series per (thread count, division method).
func ExecutorOptions() *BuilderOptions {
	return &BuilderOptions{
		X:               trialfmt.ColThreshold,
		ByThreads:       true,
		TrialsPerPoint:  3,
		PointsPerSeries: 3,
		Title:           "Time vs Threshold for Different Division Methods p/Threads",
		XLabel:          "Threshold (px)",
		Warn:            stderrWarn,
	}
}

// ThreadsOptions returns the options for the multithreading harness:
// time against thread count, one series per division method.
func ThreadsOptions() *BuilderOptions {
	return &BuilderOptions{
		X:               trialfmt.ColThreads,
		TrialsPerPoint:  3,
		PointsPerSeries: 3,
		Title:           "Time vs Number of Threads for Different Division Methods",
		XLabel:          "Number of threads",
		Warn:            stderrWarn,
	}
}

// Required returns the input columns these options need.
func (bo *BuilderOptions) Required() []string {
	cols := []string{trialfmt.ColImage, trialfmt.ColFilter, trialfmt.ColDivision, bo.X}
	if bo.ByThreads {
		cols = append(cols, trialfmt.ColThreads)
	}
	return append(cols, trialfmt.ColTime)
}

func (bo *BuilderOptions) validate() error {
	switch bo.X {
	case trialfmt.ColThreshold, trialfmt.ColThreads:
	default:
		return fmt.Errorf("X column must be %q or %q, not %q", trialfmt.ColThreshold, trialfmt.ColThreads, bo.X)
	}
	if bo.ByThreads && bo.X == trialfmt.ColThreads {
		return fmt.Errorf("cannot split series by %q when it is the X column", trialfmt.ColThreads)
	}
	if bo.TrialsPerPoint < 0 || bo.PointsPerSeries < 0 {
		return fmt.Errorf("negative series shape %d×%d", bo.PointsPerSeries, bo.TrialsPerPoint)
	}
	switch bo.Reduce {
	case ReduceByValue:
	case ReduceStrided:
		if bo.TrialsPerPoint == 0 || bo.PointsPerSeries == 0 {
			return fmt.Errorf("%v reduction needs a fixed series shape", bo.Reduce)
		}
	default:
		return fmt.Errorf("unknown reduction %v", bo.Reduce)
	}
	return nil
}

func (bo *BuilderOptions) warn(format string, args ...interface{}) {
	if bo.Warn != nil {
		bo.Warn(format, args...)
	}
}

// A GroupKey identifies the trials that share a chart.
type GroupKey struct {
	Image, Filter string
}

// String returns the chart subtitle for k, such as "turtle.jpg (blur)".
func (k GroupKey) String() string {
	return fmt.Sprintf("%s (%s)", filepath.Base(k.Image), k.Filter)
}

// FileName returns the name of the chart file for k, such as
// "turtle_blur_plot.png".
func (k GroupKey) FileName() string {
	base := filepath.Base(k.Image)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_" + k.Filter + "_plot.png"
}

// A SeriesKey identifies the trials that share a line within a chart.
type SeriesKey struct {
	Division string
	Threads  int

	byThreads bool
}

// Label returns the legend label for k.
func (k SeriesKey) Label() string {
	if k.byThreads {
		return fmt.Sprintf("%d Threads (%s)", k.Threads, k.Division)
	}
	return k.Division
}

func (k SeriesKey) matches(t *trialfmt.Trial) bool {
	return t.Division == k.Division && (!k.byThreads || t.Threads == k.Threads)
}

// A Point is the reduction of the trials of one series at one X value.
type Point struct {
	X float64
	Y float64 // mean time, in milliseconds

	Lo, Hi float64 // smallest and largest time averaged into Y
	N      int     // number of trials averaged into Y
}

// A Series is one plotted line.
type Series struct {
	Key    SeriesKey
	Label  string
	Points []Point
}

// A Group is the data for one chart.
type Group struct {
	Key GroupKey

	// XTicks is the ascending set of X values of all points in the
	// group.
	XTicks []float64

	Series []*Series
}

// A ShapeError reports a series whose trials do not have the shape the
// builder expects.
type ShapeError struct {
	Group  GroupKey
	Series string
	Msg    string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s, series %s: %s", e.Group, e.Series, e.Msg)
}

// A Builder collects trials and reduces them into chart groups.
type Builder struct {
	opts   *BuilderOptions
	trials []*trialfmt.Trial
}

// NewBuilder creates a new Builder for collecting trials.
func NewBuilder(bo *BuilderOptions) (*Builder, error) {
	if err := bo.validate(); err != nil {
		return nil, err
	}
	return &Builder{opts: bo}, nil
}

// Add adds a copy of t to the Builder. Trials keep the order in which
// they were added.
func (b *Builder) Add(t *trialfmt.Trial) {
	b.trials = append(b.trials, t.Clone())
}

// AddReader adds every trial read by r.
func (b *Builder) AddReader(r *trialfmt.Reader) error {
	for r.Scan() {
		b.Add(r.Result())
	}
	return r.Err()
}

// Groups reduces the trials added so far into chart groups.
func (b *Builder) Groups() ([]*Group, error) {
	return Build(b.trials, b.opts)
}

// Build reduces trials into one Group per distinct (image, filter), in
// the order each pair first appears. It does not modify trials.
//
// If any series does not have the shape bo expects, Build returns a
// *ShapeError and no groups.
func Build(trials []*trialfmt.Trial, bo *BuilderOptions) ([]*Group, error) {
	if err := bo.validate(); err != nil {
		return nil, err
	}
	keys, subsets := splitGroups(trials)
	groups := make([]*Group, 0, len(keys))
	for i, key := range keys {
		g, err := buildGroup(key, subsets[i], bo)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

// splitGroups partitions trials by GroupKey. Keys are in first-seen
// order and each subset preserves input order.
func splitGroups(trials []*trialfmt.Trial) ([]GroupKey, [][]*trialfmt.Trial) {
	var keys []GroupKey
	index := make(map[GroupKey]int)
	var subsets [][]*trialfmt.Trial
	for _, t := range trials {
		k := GroupKey{t.Image, t.Filter}
		i, ok := index[k]
		if !ok {
			i = len(keys)
			index[k] = i
			keys = append(keys, k)
			subsets = append(subsets, nil)
		}
		subsets[i] = append(subsets[i], t)
	}
	return keys, subsets
}

// seriesKeys returns the series of a group in legend order: division
// methods in first-seen order, crossed with ascending thread counts
// when bo.ByThreads is set.
func seriesKeys(trials []*trialfmt.Trial, bo *BuilderOptions) []SeriesKey {
	divisions := make([]string, len(trials))
	threads := make([]int, len(trials))
	for i, t := range trials {
		divisions[i] = t.Division
		threads[i] = t.Threads
	}
	divisions = slice.Nub(divisions).([]string)

	if !bo.ByThreads {
		keys := make([]SeriesKey, len(divisions))
		for i, d := range divisions {
			keys[i] = SeriesKey{Division: d}
		}
		return keys
	}

	threads = slice.Nub(threads).([]int)
	sort.Ints(threads)
	keys := make([]SeriesKey, 0, len(threads)*len(divisions))
	for _, n := range threads {
		for _, d := range divisions {
			keys = append(keys, SeriesKey{Division: d, Threads: n, byThreads: true})
		}
	}
	return keys
}

// splitSeries partitions the trials of one group by SeriesKey. Every
// returned key has a subset; subsets preserve input order. Keys of the
// thread × division cross product that match no trial are returned in
// empty.
func splitSeries(trials []*trialfmt.Trial, bo *BuilderOptions) (keys []SeriesKey, subsets [][]*trialfmt.Trial, empty []SeriesKey) {
	for _, k := range seriesKeys(trials, bo) {
		var subset []*trialfmt.Trial
		for _, t := range trials {
			if k.matches(t) {
				subset = append(subset, t)
			}
		}
		if len(subset) == 0 {
			empty = append(empty, k)
			continue
		}
		keys = append(keys, k)
		subsets = append(subsets, subset)
	}
	return
}

func buildGroup(key GroupKey, trials []*trialfmt.Trial, bo *BuilderOptions) (*Group, error) {
	g := &Group{Key: key}
	keys, subsets, empty := splitSeries(trials, bo)
	for _, k := range empty {
		bo.warn("%s: no trials for series %s, skipping\n", key, k.Label())
	}

	var xs []float64
	for i, k := range keys {
		x, y := unzip(subsets[i], bo.X)
		var points []Point
		var err error
		switch bo.Reduce {
		case ReduceStrided:
			points, err = reduceStrided(bo.X, x, y, bo.TrialsPerPoint, bo.PointsPerSeries)
		default:
			points, err = reduceByValue(bo.X, x, y, bo.TrialsPerPoint, bo.PointsPerSeries)
		}
		if err != nil {
			return nil, &ShapeError{Group: key, Series: k.Label(), Msg: err.Error()}
		}
		for _, p := range points {
			xs = append(xs, p.X)
		}
		g.Series = append(g.Series, &Series{Key: k, Label: k.Label(), Points: points})
	}

	if len(xs) > 0 {
		xs = slice.Nub(xs).([]float64)
		sort.Float64s(xs)
	}
	g.XTicks = xs
	return g, nil
}

// unzip returns the X values (from column xCol) and times of trials.
func unzip(trials []*trialfmt.Trial, xCol string) (xs, ys []float64) {
	xs = make([]float64, len(trials))
	ys = make([]float64, len(trials))
	for i, t := range trials {
		xs[i] = float64(t.Int(xCol))
		ys[i] = t.Time
	}
	return
}

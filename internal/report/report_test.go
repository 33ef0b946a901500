// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/imgfilter/benchplot/benchseries"
	"github.com/imgfilter/benchplot/trialfmt"
)

// writeTrials writes an executor-style trial file holding, for each
// image, three thread counts × two divisions × three thresholds × three
// runs, and returns its path.
func writeTrials(t *testing.T, images []string, runs int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "executor_based.csv")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	w := trialfmt.NewWriter(f, trialfmt.ColMethod, trialfmt.ColImage, trialfmt.ColFilter,
		trialfmt.ColDivision, trialfmt.ColThreads, trialfmt.ColThreshold, trialfmt.ColTime)
	for _, img := range images {
		for _, x := range []int{121104, 90828, 72662} {
			for _, n := range []int{8, 9, 10} {
				for _, d := range []string{"VERTICAL", "HORIZONTAL"} {
					for k := 0; k < runs; k++ {
						tr := &trialfmt.Trial{
							Method: "executor-based", Image: img, Filter: "blur", Division: d,
							Threads: n, Threshold: x, Time: float64(x/1000 + n + k),
						}
						if err := w.Write(tr); err != nil {
							t.Fatal(err)
						}
					}
				}
			}
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	return path
}

func quietExecutor() *benchseries.BuilderOptions {
	bo := benchseries.ExecutorOptions()
	bo.Warn = nil
	return bo
}

func TestRun(t *testing.T) {
	input := writeTrials(t, []string{"./input/turtle.jpg", "./input/bridge.jpg"}, 3)
	out := filepath.Join(t.TempDir(), "output_plots")
	var log bytes.Buffer
	err := Run(&Config{
		Input:     input,
		OutputDir: out,
		Summary:   "summary.csv",
		Options:   quietExecutor(),
		Log:       &log,
	})
	if err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	want := []string{"bridge_blur_plot.png", "summary.csv", "turtle_blur_plot.png"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	summary, err := os.ReadFile(filepath.Join(out, "summary.csv"))
	if err != nil {
		t.Fatal(err)
	}
	// Header plus 2 images × 6 series × 3 points.
	if n := strings.Count(string(summary), "\n"); n != 1+2*6*3 {
		t.Errorf("summary has %d lines, want %d", n, 1+2*6*3)
	}
	// First series, lowest threshold: times 72+8+{0,1,2}.
	if !strings.Contains(string(summary), "./input/turtle.jpg,blur,8 Threads (VERTICAL),72662.000000,81.000000,80.000000,82.000000,3,") {
		t.Errorf("summary lacks first point:\n%s", summary)
	}

	for _, s := range []string{"wrote " + filepath.Join(out, "turtle_blur_plot.png"), "10 Threads (HORIZONTAL)"} {
		if !strings.Contains(log.String(), s) {
			t.Errorf("log lacks %q:\n%s", s, log.String())
		}
	}
}

func TestRunShapeError(t *testing.T) {
	input := writeTrials(t, []string{"./input/turtle.jpg"}, 2)
	out := filepath.Join(t.TempDir(), "output_plots")
	err := Run(&Config{Input: input, OutputDir: out, Options: quietExecutor()})
	var se *benchseries.ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("want *benchseries.ShapeError, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output directory created despite shape error")
	}
}

func TestRunMissingColumn(t *testing.T) {
	input := filepath.Join(t.TempDir(), "fork_join.csv")
	data := "Method;Image;Filter;Division;Threshold(px);Time(ms)\nfork-join;a.png;blur;ROW;10;1\n"
	if err := os.WriteFile(input, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	bo := benchseries.ForkJoinOptions()
	bo.Warn = nil
	err := Run(&Config{Input: input, OutputDir: t.TempDir(), Options: bo})
	var se *trialfmt.SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("want *trialfmt.SyntaxError, got %v", err)
	}
	if se.FileName != input || se.Line != 1 {
		t.Errorf("error at %s:%d, want %s:1", se.FileName, se.Line, input)
	}
}

func TestRunMissingInput(t *testing.T) {
	err := Run(&Config{
		Input:     filepath.Join(t.TempDir(), "nope.csv"),
		OutputDir: t.TempDir(),
		Options:   quietExecutor(),
	})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("want not-exist error, got %v", err)
	}
}

// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Plotforkjoin charts the fork/join benchmark results in
// ./output/fork_join.csv: one chart per image and filter in ./output_plots,
// plotting time against threshold with one line per division method.
package main

import (
	"fmt"
	"os"

	"github.com/imgfilter/benchplot/benchseries"
	"github.com/imgfilter/benchplot/internal/report"
)

const (
	input     = "./output/fork_join.csv"
	outputDir = "./output_plots"
	summary   = "fork_join_summary.csv"
)

func main() {
	bo := benchseries.ForkJoinOptions()
	bo.Warn = warn

	err := report.Run(&report.Config{
		Input:     input,
		OutputDir: outputDir,
		Summary:   summary,
		Options:   bo,
		Log:       os.Stdout,
	})
	if err != nil {
		fail("%v\n", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func warn(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

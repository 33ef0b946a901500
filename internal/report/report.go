// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report runs the one-shot pipeline shared by the plotting
// commands: read a trial file, reduce it into chart groups, and write
// one chart per group.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aclements/go-gg/table"
	"github.com/imgfilter/benchplot/benchseries"
	"github.com/imgfilter/benchplot/trialfmt"
)

type Config struct {
	Input     string // trial file written by the harness
	OutputDir string // created if absent
	Summary   string // CSV summary file name within OutputDir; "" writes none

	Options *benchseries.BuilderOptions
	Chart   *benchseries.ChartOptions // nil means Options.ChartOptions()

	// Log receives progress lines and the summary table. nil
	// discards them.
	Log io.Writer
}

// Run executes the pipeline described by cfg. It stops at the first
// error; charts already written are left in place.
func Run(cfg *Config) error {
	log := cfg.Log
	if log == nil {
		log = io.Discard
	}
	chartOpts := cfg.Chart
	if chartOpts == nil {
		chartOpts = cfg.Options.ChartOptions()
	}

	groups, err := readGroups(cfg.Input, cfg.Options)
	if err != nil {
		return err
	}

	files, err := benchseries.Chart(groups, cfg.OutputDir, chartOpts)
	for _, f := range files {
		fmt.Fprintf(log, "wrote %s\n", f)
	}
	if err != nil {
		return fmt.Errorf("writing charts: %w", err)
	}

	if cfg.Summary != "" {
		file := filepath.Join(cfg.OutputDir, cfg.Summary)
		if err := writeSummary(file, groups); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		fmt.Fprintf(log, "wrote %s\n", file)
	}

	return table.Fprint(log, benchseries.SummaryTable(groups), benchseries.SummaryFormats...)
}

func readGroups(input string, bo *benchseries.BuilderOptions) ([]*benchseries.Group, error) {
	b, err := benchseries.NewBuilder(bo)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := b.AddReader(trialfmt.NewReader(f, input, bo.Required()...)); err != nil {
		return nil, err
	}
	return b.Groups()
}

func writeSummary(file string, groups []*benchseries.Group) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return benchseries.WriteCSV(f, groups)
}

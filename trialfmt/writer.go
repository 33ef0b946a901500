// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialfmt

import (
	"encoding/csv"
	"io"
)

// A Writer writes the harness trial format.
type Writer struct {
	c       *csv.Writer
	columns []string
	first   bool
	row     []string
}

// NewWriter returns a writer that writes trials to w using the given
// columns, in order. If columns is empty, the fork/join harness layout
// is used.
func NewWriter(w io.Writer, columns ...string) *Writer {
	if len(columns) == 0 {
		columns = []string{ColMethod, ColImage, ColFilter, ColDivision, ColThreshold, ColTime}
	}
	c := csv.NewWriter(w)
	c.Comma = ';'
	return &Writer{c: c, columns: columns, first: true, row: make([]string, len(columns))}
}

// Write writes Trial t. The header row is written before the first
// trial.
func (w *Writer) Write(t *Trial) error {
	if w.first {
		if err := w.c.Write(w.columns); err != nil {
			return err
		}
		w.first = false
	}
	for i, col := range w.columns {
		w.row[i] = t.field(col)
	}
	return w.c.Write(w.row)
}

// Flush writes any buffered data to the underlying io.Writer. If no
// trial was written, Flush still emits the header row.
func (w *Writer) Flush() error {
	if w.first {
		if err := w.c.Write(w.columns); err != nil {
			return err
		}
		w.first = false
	}
	w.c.Flush()
	return w.c.Error()
}

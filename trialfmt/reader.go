// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialfmt

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// A Reader reads the harness trial format.
//
// Its API is modeled on bufio.Scanner. A Reader retains ownership of
// the Trial returned by Result; a caller should Clone anything it needs
// to retain past the next call to Scan.
type Reader struct {
	c        *csv.Reader
	fileName string
	required []string

	// cols maps column name to field index. It is nil until the
	// header has been read.
	cols map[string]int

	trial Trial
	err   error
}

// A SyntaxError represents a syntax error on a particular line of a
// trial results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// NewReader constructs a reader to parse the trial format from r.
// fileName is used in error messages; it is purely diagnostic.
//
// required lists the columns the caller needs. If the header lacks any
// of them, Scan fails with a *SyntaxError.
func NewReader(r io.Reader, fileName string, required ...string) *Reader {
	if fileName == "" {
		fileName = "<unknown>"
	}
	c := csv.NewReader(r)
	c.Comma = ';'
	// The multithreading harness separates columns with "; ".
	c.TrimLeadingSpace = true
	return &Reader{c: c, fileName: fileName, required: required}
}

func (r *Reader) newSyntaxError(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, line, fmt.Sprintf(format, args...)}
}

// convertError turns errors from the underlying csv.Reader into
// *SyntaxErrors where it can.
func (r *Reader) convertError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return r.newSyntaxError(pe.Line, "%v", pe.Err)
	}
	return fmt.Errorf("%s: %w", r.fileName, err)
}

func (r *Reader) readHeader() bool {
	rec, err := r.c.Read()
	if err == io.EOF {
		if len(r.required) > 0 {
			r.err = r.newSyntaxError(0, "missing header row")
			return false
		}
		r.cols = map[string]int{}
		return false
	}
	if err != nil {
		r.err = r.convertError(err)
		return false
	}
	line, _ := r.c.FieldPos(0)

	r.cols = make(map[string]int, len(rec))
	for i, name := range rec {
		name = strings.TrimSpace(name)
		if _, ok := r.cols[name]; ok {
			r.err = r.newSyntaxError(line, "duplicate column %q", name)
			return false
		}
		r.cols[name] = i
	}
	for _, name := range r.required {
		if _, ok := r.cols[name]; !ok {
			r.err = r.newSyntaxError(line, "missing column %q", name)
			return false
		}
	}
	return true
}

// Scan advances the reader to the next trial and reports whether a
// trial was read. The caller should use the Result method to get it.
// If Scan reaches EOF or an error occurs, it returns false, in which
// case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if r.cols == nil && !r.readHeader() {
		return false
	}

	rec, err := r.c.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = r.convertError(err)
		return false
	}
	line, _ := r.c.FieldPos(0)

	r.trial = Trial{fileName: r.fileName, line: line}
	get := func(col string) (string, bool) {
		i, ok := r.cols[col]
		if !ok {
			return "", false
		}
		return strings.TrimSpace(rec[i]), true
	}
	atoi := func(col string, dst *int) bool {
		s, ok := get(col)
		if !ok {
			return true
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			r.err = r.newSyntaxError(line, "parsing %s: %v", col, err.(*strconv.NumError).Err)
			return false
		}
		if v < 0 {
			r.err = r.newSyntaxError(line, "negative %s %d", col, v)
			return false
		}
		*dst = v
		return true
	}

	r.trial.Method, _ = get(ColMethod)
	r.trial.Image, _ = get(ColImage)
	r.trial.Filter, _ = get(ColFilter)
	r.trial.Division, _ = get(ColDivision)
	if !atoi(ColThreads, &r.trial.Threads) || !atoi(ColThreshold, &r.trial.Threshold) {
		return false
	}
	if s, ok := get(ColTime); ok {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			r.err = r.newSyntaxError(line, "parsing %s: %v", ColTime, err.(*strconv.NumError).Err)
			return false
		}
		if v < 0 {
			r.err = r.newSyntaxError(line, "negative %s %v", ColTime, v)
			return false
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			r.err = r.newSyntaxError(line, "%s %v is not finite", ColTime, v)
			return false
		}
		r.trial.Time = v
	}
	return true
}

// Result returns the Trial that was just read by Scan. The returned
// Trial is only valid until the next call to Scan.
func (r *Reader) Result() *Trial {
	return &r.trial
}

// Err returns the first error encountered by the Reader. Syntax errors
// are reported as *SyntaxError.
func (r *Reader) Err() error {
	return r.err
}

// Columns returns the column names found in the header, in file order.
// It returns nil before the header has been read.
func (r *Reader) Columns() []string {
	if r.cols == nil {
		return nil
	}
	names := make([]string, len(r.cols))
	for name, i := range r.cols {
		names[i] = name
	}
	return names
}

// ReadAll reads every remaining trial from r, in input order.
func ReadAll(r *Reader) ([]*Trial, error) {
	var trials []*Trial
	for r.Scan() {
		trials = append(trials, r.Result().Clone())
	}
	if err := r.Err(); err != nil {
		return nil, err
	}
	return trials, nil
}

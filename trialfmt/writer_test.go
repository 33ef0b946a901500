// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trialfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, ColImage, ColFilter, ColDivision, ColThreads, ColThreshold, ColTime)
	trials := []*Trial{
		{Image: "./input/turtle.jpg", Filter: "blur", Division: "VERTICAL", Threads: 8, Threshold: 121104, Time: 412},
		{Image: "./input/turtle.jpg", Filter: "blur", Division: "VERTICAL", Threads: 8, Threshold: 121104, Time: 398.5},
	}
	for _, tr := range trials {
		if err := w.Write(tr); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	want := `Image;Filter;Image Division Method;Number of Threads;Threshold(px);Time(ms)
./input/turtle.jpg;blur;VERTICAL;8;121104;412
./input/turtle.jpg;blur;VERTICAL;8;121104;398.5
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	// The output reads back to the same trials.
	got, err := ReadAll(NewReader(strings.NewReader(buf.String()), "test"))
	if err != nil {
		t.Fatal(err)
	}
	for _, tr := range got {
		tr.fileName, tr.line = "", 0
	}
	if diff := cmp.Diff(trials, got, cmp.AllowUnexported(Trial{})); diff != "" {
		t.Errorf("read back mismatch (-want +got):\n%s", diff)
	}
}

func TestWriterHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if want := "Method;Image;Filter;Image Division Method;Threshold(px);Time(ms)\n"; buf.String() != want {
		t.Errorf("want %q, got %q", want, buf.String())
	}
}

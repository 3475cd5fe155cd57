// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io"
	"strings"
	"testing"
)

func TestNewPrefix(t *testing.T) {
	e1 := New("abc")
	got := e1.Error()
	if !strings.HasPrefix(got, "json:") {
		t.Errorf("missing \"json:\" prefix in %q", got)
	}
	if !strings.Contains(got, "abc") {
		t.Errorf("missing text \"abc\" in %q", got)
	}

	e2 := New("%v", e1)
	got = e2.Error()
	if !strings.HasPrefix(got, "json:") {
		t.Errorf("missing \"json:\" prefix in %q", got)
	}
	// Test to make sure prefix is removed from the embedded error.
	if strings.Contains(strings.TrimPrefix(got, "json:"), "json:") {
		t.Errorf("prefix \"json:\" not elided in embedded error: %q", got)
	}
}

func TestUnprefixed(t *testing.T) {
	if got, want := Unprefixed(New("bad %d", 1)), "bad 1"; got != want {
		t.Errorf("Unprefixed() = %q, want %q", got, want)
	}
	if got, want := Unprefixed(io.EOF), io.EOF.Error(); got != want {
		t.Errorf("Unprefixed(io.EOF) = %q, want %q", got, want)
	}
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/golang/jsonvalue/internal/jsongen"
	"github.com/golang/jsonvalue/json"
)

func TestRoundTripValue(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		want := jsongen.Value(r, 5)
		for _, o := range []json.MarshalOptions{{}, {Indent: "\t"}, {SortKeys: true}} {
			b, err := o.Marshal(want)
			if err != nil {
				t.Fatalf("Marshal(): %v", err)
			}
			got, err := json.Unmarshal(b)
			if err != nil {
				t.Fatalf("Unmarshal(%s): %v", b, err)
			}
			if !json.Equal(got, want) {
				t.Fatalf("round trip mismatch:\ngot:  %v\nwant: %v", got, want)
			}
		}
	}
}

func TestRoundTripText(t *testing.T) {
	// Canonical text survives a parse and serialize unchanged.
	for _, in := range []string{
		`null`,
		`true`,
		`[]`,
		`{}`,
		`-0`,
		`0.1`,
		`1e+21`,
		`1e-7`,
		`123456789`,
		`"a\"b\\c\n"`,
		`[1,[2,[3,[]]],{"a":{"b":null}}]`,
		`{"z":1,"a":2,"m":[true,false]}`,
	} {
		v, err := json.Unmarshal([]byte(in))
		if err != nil {
			t.Errorf("Unmarshal(%s): %v", in, err)
			continue
		}
		out, err := json.Marshal(v)
		if err != nil {
			t.Errorf("Marshal(): %v", err)
			continue
		}
		if diff := cmp.Diff(in, string(out)); diff != "" {
			t.Errorf("round trip of %s mismatch (-want +got):\n%s", in, diff)
		}
	}
}

func TestRoundTripRecords(t *testing.T) {
	var buf []byte
	w := writerFunc(func(b []byte) (int, error) {
		buf = append(buf, b...)
		return len(b), nil
	})
	if err := jsongen.WriteRecords(w, rand.New(rand.NewSource(2)), 50); err != nil {
		t.Fatalf("WriteRecords(): %v", err)
	}
	v, err := json.Unmarshal(buf)
	if err != nil {
		t.Fatalf("Unmarshal(): %v", err)
	}
	out, err := json.MarshalOptions{Indent: "\t"}.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal(): %v", err)
	}
	if diff := cmp.Diff(string(buf), string(out), splitLines); diff != "" {
		t.Errorf("re-serialized records mismatch (-want +got):\n%s", diff)
	}
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(b []byte) (int, error) { return f(b) }

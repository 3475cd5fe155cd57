// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors implements functions to manipulate errors.
package errors

import (
	"fmt"
)

// Prefix is prepended to every error message created by New.
const Prefix = "json: "

// New formats a string according to the format specifier and arguments and
// returns an error that has a "json" prefix.
func New(f string, x ...interface{}) error {
	for i := 0; i < len(x); i++ {
		if e, ok := x[i].(*prefixError); ok {
			x[i] = e.s // avoid "json: " prefix when chaining
		}
	}
	return &prefixError{s: fmt.Sprintf(f, x...)}
}

type prefixError struct{ s string }

func (e *prefixError) Error() string { return Prefix + e.s }

// Unprefixed returns the message of err without the "json: " prefix if err
// was created by New. Otherwise it returns err.Error().
func Unprefixed(err error) string {
	if e, ok := err.(*prefixError); ok {
		return e.s
	}
	return err.Error()
}

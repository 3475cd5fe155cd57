// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"fmt"

	"github.com/golang/jsonvalue/internal/errors"
)

var (
	// ErrUnexpectedEnd is wrapped by the *SyntaxError reported when the input
	// ends while a value is still incomplete.
	ErrUnexpectedEnd = errors.New("unexpected end of input")

	// ErrTypeMismatch is matched by every *TypeError.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrKeyNotFound is matched by every *KeyError.
	ErrKeyNotFound = errors.New("key not found")
	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// SyntaxError describes input that does not match the JSON grammar.
type SyntaxError struct {
	// Offset is the byte offset of the offending input.
	Offset int64
	// Line and Column locate the offending input, both starting at 1.
	// Columns count runes rather than bytes.
	Line, Column int

	msg string
	err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%ssyntax error (line %d:%d): %s", errors.Prefix, e.Line, e.Column, e.msg)
}

// Unwrap returns ErrUnexpectedEnd for truncated input and nil otherwise.
func (e *SyntaxError) Unwrap() error { return e.err }

// TypeError is reported when an accessor is used on a value of another type.
type TypeError struct {
	Want, Got Type
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%svalue is %v, not %v", errors.Prefix, e.Got, e.Want)
}

func (e *TypeError) Is(target error) bool { return target == ErrTypeMismatch }

// KeyError is reported when an object has no member with the requested key.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%skey %q not found", errors.Prefix, e.Key)
}

func (e *KeyError) Is(target error) bool { return target == ErrKeyNotFound }

// IndexError is reported when an array index is out of bounds.
type IndexError struct {
	Index, Len int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%sindex %d out of range [0:%d)", errors.Prefix, e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrIndexOutOfRange }

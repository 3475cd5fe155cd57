// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/golang/jsonvalue/internal/errors"
	"github.com/golang/jsonvalue/internal/pragma"
)

// DefaultMaxDepth is the nesting limit used when UnmarshalOptions.MaxDepth
// is zero.
const DefaultMaxDepth = 10000

// Unmarshal parses b as a single JSON value using default options.
// Whitespace may surround the value; any other trailing data is an error.
func Unmarshal(b []byte) (Value, error) {
	return UnmarshalOptions{}.Unmarshal(b)
}

// Parse reads one JSON value from c using default options. Leading
// whitespace is skipped; c is left positioned just past the value.
// A literal or number must end at a delimiter: input such as "1x" or
// "truex" is a syntax error rather than a value followed by "x".
func Parse(c Cursor) (Value, error) {
	return UnmarshalOptions{}.Parse(c)
}

// UnmarshalOptions is a configurable JSON format parser.
type UnmarshalOptions struct {
	pragma.NoUnkeyedLiterals

	// MaxDepth limits the nesting of arrays and objects.
	// If zero, DefaultMaxDepth is used.
	MaxDepth int
}

// Unmarshal parses b as a single JSON value using options in
// UnmarshalOptions.
func (o UnmarshalOptions) Unmarshal(b []byte) (Value, error) {
	c := NewBytesCursor(b)
	d := o.newDecoder(c)
	v, err := d.unmarshalValue()
	if err != nil {
		return Value{}, err
	}
	d.skipSpace()
	if n := len(c.Remaining()); n > 0 {
		return Value{}, errors.New("%d bytes of unconsumed input", n)
	}
	return v, nil
}

// Parse reads one JSON value from c using options in UnmarshalOptions.
func (o UnmarshalOptions) Parse(c Cursor) (Value, error) {
	return o.newDecoder(c).unmarshalValue()
}

func (o UnmarshalOptions) newDecoder(c Cursor) *decoder {
	d := &decoder{in: c, maxDepth: o.MaxDepth, line: 1, col: 1}
	if d.maxDepth <= 0 {
		d.maxDepth = DefaultMaxDepth
	}
	return d
}

// Decoder reads a stream of whitespace-separated JSON values.
type Decoder struct {
	in *ReaderCursor
	d  *decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return UnmarshalOptions{}.NewDecoder(r)
}

// NewDecoder returns a Decoder reading from r using options in
// UnmarshalOptions.
func (o UnmarshalOptions) NewDecoder(r io.Reader) *Decoder {
	c := NewReaderCursor(r)
	return &Decoder{in: c, d: o.newDecoder(c)}
}

// Decode returns the next value in the stream.
// It returns io.EOF when only whitespace remains.
func (d *Decoder) Decode() (Value, error) {
	d.d.skipSpace()
	if _, ok := d.in.Peek(); !ok {
		if err := d.in.Err(); err != nil {
			return Value{}, err
		}
		return Value{}, io.EOF
	}
	return d.d.unmarshalValue()
}

// InputOffset reports the number of bytes consumed from the stream.
func (d *Decoder) InputOffset() int64 {
	return d.in.Offset()
}

type decoder struct {
	in       Cursor
	depth    int
	maxDepth int
	line     int
	col      int
	buf      []byte // scratch space for strings and numbers
}

// peek returns the current byte and whether there is one.
func (d *decoder) peek() (byte, bool) {
	return d.in.Peek()
}

// next consumes the current byte, tracking the line and column.
func (d *decoder) next() {
	c, ok := d.in.Peek()
	if !ok {
		return
	}
	switch {
	case c == '\n':
		d.line++
		d.col = 1
	case !utf8.RuneStart(c):
		// continuation bytes do not start a new column
	default:
		d.col++
	}
	d.in.Advance()
}

// skipSpace consumes any whitespace.
func (d *decoder) skipSpace() {
	for {
		c, ok := d.peek()
		if !ok {
			return
		}
		switch c {
		case ' ', '\n', '\r', '\t':
			d.next()
		default:
			return
		}
	}
}

// position is a location in the input.
type position struct {
	off       int64
	line, col int
}

func (d *decoder) pos() position {
	return position{off: d.in.Offset(), line: d.line, col: d.col}
}

func (d *decoder) newSyntaxError(f string, x ...interface{}) error {
	return syntaxErrorAt(d.pos(), f, x...)
}

func syntaxErrorAt(p position, f string, x ...interface{}) error {
	return &SyntaxError{
		Offset: p.off,
		Line:   p.line,
		Column: p.col,
		msg:    fmt.Sprintf(f, x...),
	}
}

// unexpectedEnd reports a truncated input, or the read error that cut the
// input short if the cursor has one.
func (d *decoder) unexpectedEnd() error {
	if ec, ok := d.in.(interface{ Err() error }); ok {
		if err := ec.Err(); err != nil {
			return err
		}
	}
	return &SyntaxError{
		Offset: d.in.Offset(),
		Line:   d.line,
		Column: d.col,
		msg:    errors.Unprefixed(ErrUnexpectedEnd),
		err:    ErrUnexpectedEnd,
	}
}

func (d *decoder) unmarshalValue() (Value, error) {
	d.skipSpace()
	c, ok := d.peek()
	if !ok {
		return Value{}, d.unexpectedEnd()
	}
	switch c {
	case 'n':
		return d.unmarshalLiteral("null", Value{})
	case 't':
		return d.unmarshalLiteral("true", ValueOfBool(true))
	case 'f':
		return d.unmarshalLiteral("false", ValueOfBool(false))
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return d.unmarshalNumber()
	case '"':
		s, err := d.unmarshalString()
		if err != nil {
			return Value{}, err
		}
		return ValueOfString(s), nil
	case '[':
		return d.unmarshalArray()
	case '{':
		return d.unmarshalObject()
	default:
		p := d.pos()
		return Value{}, syntaxErrorAt(p, "invalid %q as value", d.errToken(nil))
	}
}

func (d *decoder) unmarshalLiteral(lit string, v Value) (Value, error) {
	p := d.pos()
	d.buf = d.buf[:0]
	for i := 0; i < len(lit); i++ {
		c, ok := d.peek()
		if !ok {
			return Value{}, d.unexpectedEnd()
		}
		if c != lit[i] {
			return Value{}, syntaxErrorAt(p, "invalid %q as literal", d.errToken(d.buf))
		}
		d.buf = append(d.buf, c)
		d.next()
	}
	if c, ok := d.peek(); ok && isNotDelim(c) {
		return Value{}, syntaxErrorAt(p, "invalid %q as literal", d.errToken(d.buf))
	}
	return v, nil
}

func (d *decoder) enter() error {
	if d.depth >= d.maxDepth {
		return d.newSyntaxError("exceeded max depth %d", d.maxDepth)
	}
	d.depth++
	return nil
}

func (d *decoder) unmarshalArray() (Value, error) {
	if err := d.enter(); err != nil {
		return Value{}, err
	}
	defer func() { d.depth-- }()

	d.next() // '['
	l := &List{}
	d.skipSpace()
	if c, ok := d.peek(); ok && c == ']' {
		d.next()
		return Value{typ: Array, arr: l}, nil
	}
	for {
		v, err := d.unmarshalValue()
		if err != nil {
			return Value{}, err
		}
		l.elems = append(l.elems, v)
		d.skipSpace()
		c, ok := d.peek()
		if !ok {
			return Value{}, d.unexpectedEnd()
		}
		switch c {
		case ',':
			d.next()
		case ']':
			d.next()
			return Value{typ: Array, arr: l}, nil
		default:
			return Value{}, d.newSyntaxError("invalid character %q, expected ']' at end of array", c)
		}
	}
}

func (d *decoder) unmarshalObject() (Value, error) {
	if err := d.enter(); err != nil {
		return Value{}, err
	}
	defer func() { d.depth-- }()

	d.next() // '{'
	m := &Map{}
	d.skipSpace()
	if c, ok := d.peek(); ok && c == '}' {
		d.next()
		return Value{typ: Object, obj: m}, nil
	}
	for {
		d.skipSpace()
		k, err := d.unmarshalString()
		if err != nil {
			return Value{}, err
		}
		if err := d.consumeChar(':', "in object"); err != nil {
			return Value{}, err
		}
		v, err := d.unmarshalValue()
		if err != nil {
			return Value{}, err
		}
		m.Set(k, v)
		d.skipSpace()
		c, ok := d.peek()
		if !ok {
			return Value{}, d.unexpectedEnd()
		}
		switch c {
		case ',':
			d.next()
		case '}':
			d.next()
			return Value{typ: Object, obj: m}, nil
		default:
			return Value{}, d.newSyntaxError("invalid character %q, expected '}' at end of object", c)
		}
	}
}

// consumeChar skips whitespace and consumes c.
func (d *decoder) consumeChar(c byte, msg string) error {
	d.skipSpace()
	got, ok := d.peek()
	if !ok {
		return d.unexpectedEnd()
	}
	if got != c {
		return d.newSyntaxError("invalid character %q, expected %q %s", got, c, msg)
	}
	d.next()
	return nil
}

// errToken consumes the rest of a token that starts with prefix, for use in
// an error message. It reads at most 32 bytes, or a single byte if the
// input at the cursor is a delimiter.
func (d *decoder) errToken(prefix []byte) string {
	tok := append([]byte(nil), prefix...)
	for len(tok) < 32 {
		c, ok := d.peek()
		if !ok || (len(tok) > 0 && !isNotDelim(c)) {
			break
		}
		tok = append(tok, c)
		if !isNotDelim(c) {
			break
		}
		d.in.Advance()
	}
	return string(tok)
}

// isNotDelim reports whether c may continue a literal or number token
// (e.g., r"[-+._a-zA-Z0-9]").
func isNotDelim(c byte) bool {
	return (c == '-' || c == '+' || c == '.' || c == '_' ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9'))
}

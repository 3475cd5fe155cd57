// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"math/bits"
	"strconv"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

func appendString(out []byte, in string) []byte {
	out = append(out, '"')
	i := indexNeedEscape(in)
	in, out = in[i:], append(out, in[:i]...)
	for len(in) > 0 {
		switch r, n := utf8.DecodeRuneInString(in); {
		case r == utf8.RuneError && n == 1:
			in, out = in[1:], append(out, string(utf8.RuneError)...) // coerce invalid byte
		case r < ' ' || r == '"' || r == '\\':
			out = append(out, '\\')
			switch r {
			case '"', '\\':
				out = append(out, byte(r))
			case '\b':
				out = append(out, 'b')
			case '\f':
				out = append(out, 'f')
			case '\n':
				out = append(out, 'n')
			case '\r':
				out = append(out, 'r')
			case '\t':
				out = append(out, 't')
			default:
				out = append(out, 'u')
				out = append(out, "0000"[1+(bits.Len32(uint32(r))-1)/4:]...)
				out = strconv.AppendUint(out, uint64(r), 16)
			}
			in = in[n:]
		default:
			i := indexNeedEscape(in[n:])
			in, out = in[n+i:], append(out, in[:n+i]...)
		}
	}
	out = append(out, '"')
	return out
}

// indexNeedEscape returns the index of the next character that needs escaping.
// If no characters need escaping, this returns the input length.
func indexNeedEscape(s string) int {
	for i, r := range s {
		if r < ' ' || r == '\\' || r == '"' || r == utf8.RuneError {
			return i
		}
	}
	return len(s)
}

// unmarshalString decodes a quoted string at the cursor.
func (d *decoder) unmarshalString() (string, error) {
	start := d.pos()
	c, ok := d.peek()
	if !ok {
		return "", d.unexpectedEnd()
	}
	if c != '"' {
		return "", d.newSyntaxError("invalid character %q at start of string", c)
	}
	d.next()
	d.buf = d.buf[:0]
	for {
		c, ok := d.peek()
		if !ok {
			return "", d.unexpectedEnd()
		}
		switch {
		case c == '"':
			d.next()
			if !utf8.Valid(d.buf) {
				return "", syntaxErrorAt(start, "invalid UTF-8 in string")
			}
			return string(d.buf), nil
		case c < ' ':
			return "", d.newSyntaxError("invalid character %q in string", c)
		case c == '\\':
			if err := d.unmarshalEscape(); err != nil {
				return "", err
			}
		default:
			d.buf = append(d.buf, c)
			d.next()
		}
	}
}

// unmarshalEscape decodes the escape sequence at the cursor and appends the
// result to d.buf.
func (d *decoder) unmarshalEscape() error {
	p := d.pos()
	d.next() // '\\'
	c, ok := d.peek()
	if !ok {
		return d.unexpectedEnd()
	}
	switch c {
	case '"', '\\', '/':
		d.buf = append(d.buf, c)
	case 'b':
		d.buf = append(d.buf, '\b')
	case 'f':
		d.buf = append(d.buf, '\f')
	case 'n':
		d.buf = append(d.buf, '\n')
	case 'r':
		d.buf = append(d.buf, '\r')
	case 't':
		d.buf = append(d.buf, '\t')
	case 'u':
		d.next()
		var esc [6]byte
		esc[0], esc[1] = '\\', 'u'
		if err := d.readN(esc[2:]); err != nil {
			return err
		}
		v, err := strconv.ParseUint(string(esc[2:]), 16, 16)
		if err != nil {
			return syntaxErrorAt(p, "invalid escape code %q in string", esc[:])
		}
		r := rune(v)
		if utf16.IsSurrogate(r) {
			// The other half must follow as a second escape. Stop at the
			// first byte that does not continue one, so a closing quote is
			// never consumed.
			for _, want := range [...]byte{'\\', 'u'} {
				c, ok := d.peek()
				if !ok {
					return d.unexpectedEnd()
				}
				if c != want {
					return syntaxErrorAt(p, "invalid escape code %q in string", esc[:])
				}
				d.next()
			}
			if err := d.readN(esc[2:]); err != nil {
				return err
			}
			v, err := strconv.ParseUint(string(esc[2:]), 16, 16)
			r = utf16.DecodeRune(r, rune(v))
			if r == unicode.ReplacementChar || err != nil {
				return syntaxErrorAt(p, "invalid escape code %q in string", esc[:])
			}
		}
		d.buf = utf8.AppendRune(d.buf, r)
		return nil
	default:
		return syntaxErrorAt(p, "invalid escape code %q in string", []byte{'\\', c})
	}
	d.next()
	return nil
}

// readN consumes len(b) bytes into b.
func (d *decoder) readN(b []byte) error {
	for i := range b {
		c, ok := d.peek()
		if !ok {
			return d.unexpectedEnd()
		}
		b[i] = c
		d.next()
	}
	return nil
}

// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"math"
	"strconv"
)

// appendFloat formats n in the shortest form that parses back to the same
// float64, and appends it to out.
func appendFloat(out []byte, n float64) []byte {
	// JSON number formatting logic based on encoding/json.
	// See floatEncoder.encode for reference.
	fmt := byte('f')
	if abs := math.Abs(n); abs != 0 {
		if abs < 1e-6 || abs >= 1e21 {
			fmt = 'e'
		}
	}
	out = strconv.AppendFloat(out, n, fmt, -1, 64)
	if fmt == 'e' {
		n := len(out)
		if n >= 4 && out[n-4] == 'e' && out[n-3] == '-' && out[n-2] == '0' {
			out[n-2] = out[n-1]
			out = out[:n-1]
		}
	}
	return out
}

// unmarshalNumber decodes a Number at the cursor. The literal is collected in
// full and converted once, so no precision is lost to partial conversions.
func (d *decoder) unmarshalNumber() (Value, error) {
	p := d.pos()
	d.buf = d.buf[:0]
	ok := d.scanNumber()
	if c, more := d.peek(); !ok || (more && isNotDelim(c)) {
		return Value{}, syntaxErrorAt(p, "invalid %q as number", d.errToken(d.buf))
	}
	n, err := strconv.ParseFloat(string(d.buf), 64)
	if err != nil || math.IsInf(n, 0) {
		return Value{}, syntaxErrorAt(p, "number %s out of range", d.buf)
	}
	return ValueOfNumber(n), nil
}

// scanNumber consumes a number literal into d.buf and reports whether it is
// well formed. Parsing logic follows the definition in
// https://tools.ietf.org/html/rfc7159#section-6.
func (d *decoder) scanNumber() bool {
	// Optional -
	if c, ok := d.peek(); ok && c == '-' {
		d.take(c)
	}

	// Digits
	c, ok := d.peek()
	switch {
	case ok && c == '0':
		d.take(c)
	case ok && '1' <= c && c <= '9':
		d.take(c)
		d.takeDigits()
	default:
		return false
	}

	// . followed by 1 or more digits.
	if c, ok := d.peek(); ok && c == '.' {
		d.take(c)
		if d.takeDigits() == 0 {
			return false
		}
	}

	// e or E followed by an optional - or + and
	// 1 or more digits.
	if c, ok := d.peek(); ok && (c == 'e' || c == 'E') {
		d.take(c)
		if c, ok := d.peek(); ok && (c == '+' || c == '-') {
			d.take(c)
		}
		if d.takeDigits() == 0 {
			return false
		}
	}
	return true
}

// take appends c to d.buf and consumes it.
func (d *decoder) take(c byte) {
	d.buf = append(d.buf, c)
	d.next()
}

// takeDigits consumes a run of decimal digits and returns its length.
func (d *decoder) takeDigits() int {
	var n int
	for {
		c, ok := d.peek()
		if !ok || c < '0' || c > '9' {
			return n
		}
		d.take(c)
		n++
	}
}

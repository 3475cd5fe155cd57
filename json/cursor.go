// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"bufio"
	"io"
)

// Cursor is a forward-only position over a finite sequence of bytes.
// The parser reads its input exclusively through a Cursor and never moves it
// backwards.
type Cursor interface {
	// Peek returns the byte at the current position.
	// It reports false once the end of input has been reached.
	Peek() (byte, bool)
	// Advance moves past the current byte. It is a no-op at end of input.
	Advance()
	// Offset reports the number of bytes consumed so far.
	Offset() int64
}

type text interface {
	~string | ~[]byte
}

// BufferCursor is a Cursor over an in-memory buffer.
type BufferCursor[T text] struct {
	in  T
	pos int
}

// NewBytesCursor returns a Cursor over b. The buffer is not copied and must
// not be modified while the cursor is in use.
func NewBytesCursor(b []byte) *BufferCursor[[]byte] {
	return &BufferCursor[[]byte]{in: b}
}

// NewStringCursor returns a Cursor over s.
func NewStringCursor(s string) *BufferCursor[string] {
	return &BufferCursor[string]{in: s}
}

func (c *BufferCursor[T]) Peek() (byte, bool) {
	if c.pos >= len(c.in) {
		return 0, false
	}
	return c.in[c.pos], true
}

func (c *BufferCursor[T]) Advance() {
	if c.pos < len(c.in) {
		c.pos++
	}
}

func (c *BufferCursor[T]) Offset() int64 { return int64(c.pos) }

// Remaining returns the unconsumed part of the buffer.
func (c *BufferCursor[T]) Remaining() T { return c.in[c.pos:] }

// ReaderCursor is a Cursor over a streaming source.
type ReaderCursor struct {
	r   *bufio.Reader
	off int64
	cur byte
	ok  bool // cur holds the byte at off
	err error
}

// NewReaderCursor returns a Cursor reading from r through a buffer.
// It may read ahead of the consumed position.
func NewReaderCursor(r io.Reader) *ReaderCursor {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &ReaderCursor{r: br}
}

func (c *ReaderCursor) Peek() (byte, bool) {
	if !c.ok && c.err == nil {
		c.cur, c.err = c.r.ReadByte()
		c.ok = c.err == nil
	}
	return c.cur, c.ok
}

func (c *ReaderCursor) Advance() {
	if _, ok := c.Peek(); ok {
		c.ok = false
		c.off++
	}
}

func (c *ReaderCursor) Offset() int64 { return c.off }

// Err returns the first error encountered reading the source, other than
// io.EOF.
func (c *ReaderCursor) Err() error {
	if c.err == io.EOF {
		return nil
	}
	return c.err
}

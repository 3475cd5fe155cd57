// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filemap provides read-only access to the contents of a file as a
// byte slice, memory mapping the file where the platform supports it.
package filemap

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// errUnsupported is returned by mmap when the file cannot be mapped and
// should be read into memory instead.
var errUnsupported = errors.New("memory mapping not supported")

// File is an opened file's contents. The data must not be modified and must
// not be used after Close.
type File struct {
	data   []byte
	mapped bool
}

// Open maps the named file into memory. If mapping is unavailable the file is
// read into a heap buffer instead. An empty file yields an empty File.
func Open(name string) (*File, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open")
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "stat %s", name)
	}
	size64 := fi.Size()
	if size64 == 0 {
		return &File{}, nil
	}
	size := int(size64)
	if int64(size) != size64 {
		return nil, errors.Errorf("%s: file too large", name)
	}

	data, err := openMmap(f, size)
	switch {
	case err == errUnsupported:
		data = make([]byte, size)
		if _, err := io.ReadFull(f, data); err != nil {
			return nil, errors.Wrapf(err, "read %s", name)
		}
		return &File{data: data}, nil
	case err != nil:
		return nil, errors.Wrapf(err, "mmap %s", name)
	}
	return &File{data: data, mapped: true}, nil
}

func openMmap(f *os.File, size int) (data []byte, err error) {
	rawConn, err := f.SyscallConn()
	if err != nil {
		return nil, err
	}
	if cerr := rawConn.Control(func(fd uintptr) {
		data, err = mmap(int(fd), size)
	}); cerr != nil {
		return nil, cerr
	}
	return data, err
}

// Bytes returns the file contents.
func (f *File) Bytes() []byte { return f.data }

// Len reports the size of the file in bytes.
func (f *File) Len() int { return len(f.data) }

// Mapped reports whether the contents are memory mapped.
func (f *File) Mapped() bool { return f.mapped }

// Close releases the mapping. It is safe to call more than once.
func (f *File) Close() error {
	var err error
	if f.mapped {
		f.mapped = false
		err = munmap(f.data)
	}
	f.data = nil
	return errors.Wrap(err, "munmap")
}

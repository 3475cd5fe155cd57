// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package filemap

import "golang.org/x/sys/unix"

func mmap(fd, size int) ([]byte, error) {
	data, err := unix.Mmap(fd, 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err == unix.ENODEV {
		return nil, errUnsupported
	}
	return data, err
}

func munmap(b []byte) error {
	return unix.Munmap(b)
}

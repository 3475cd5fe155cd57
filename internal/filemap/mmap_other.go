// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package filemap

func mmap(fd, size int) ([]byte, error) {
	return nil, errUnsupported
}

func munmap(b []byte) error {
	return nil
}

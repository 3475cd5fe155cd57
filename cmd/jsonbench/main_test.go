// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golang/jsonvalue/internal/log"
	"github.com/golang/jsonvalue/json"
)

func TestGenerateAndTime(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "large.json")
	cfg := config{generate: 20, output: name, seed: 1, jobs: 2, maxDepth: json.DefaultMaxDepth}
	require.NoError(t, run(context.Background(), cfg, nil, nil, nil))

	b, err := os.ReadFile(name)
	require.NoError(t, err)
	v, err := json.Unmarshal(b)
	require.NoError(t, err)
	l, err := v.List()
	require.NoError(t, err)
	require.Equal(t, 20, l.Len())

	small := filepath.Join(dir, "small.json")
	require.NoError(t, os.WriteFile(small, []byte(`{"a": [1, 2]}`), 0o644))

	var out bytes.Buffer
	cfg = config{check: true, jobs: 2, maxDepth: json.DefaultMaxDepth}
	require.NoError(t, run(context.Background(), cfg, []string{name, small}, nil, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], name+": "), lines[0])
	require.True(t, strings.HasPrefix(lines[1], small+": 13 bytes, parse "), lines[1])
}

func TestGenerateStdout(t *testing.T) {
	var a, b bytes.Buffer
	cfg := config{generate: 3, seed: 42}
	require.NoError(t, run(context.Background(), cfg, nil, nil, &a))
	require.NoError(t, run(context.Background(), cfg, nil, nil, &b))
	require.Equal(t, a.String(), b.String())
	_, err := json.Unmarshal(a.Bytes())
	require.NoError(t, err)
}

func TestTimeStream(t *testing.T) {
	var out bytes.Buffer
	cfg := config{check: true, indent: "\t", maxDepth: json.DefaultMaxDepth}
	in := strings.NewReader("{\"a\": 1}\n[true, null]\n  \"s\"  ")
	require.NoError(t, run(context.Background(), cfg, nil, in, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	for i, l := range lines {
		require.True(t, strings.HasPrefix(l, "<stdin>["), "line %d: %s", i, l)
	}
}

func TestErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[1, 2`), 0o644))

	cfg := config{jobs: 1, maxDepth: json.DefaultMaxDepth}
	err := run(context.Background(), cfg, []string{bad}, nil, &bytes.Buffer{})
	require.ErrorIs(t, err, json.ErrUnexpectedEnd)
	require.Contains(t, err.Error(), bad)

	err = run(context.Background(), cfg, []string{filepath.Join(dir, "missing.json")}, nil, &bytes.Buffer{})
	require.ErrorIs(t, err, os.ErrNotExist)

	deep := filepath.Join(dir, "deep.json")
	require.NoError(t, os.WriteFile(deep, []byte(`[[[[1]]]]`), 0o644))
	cfg.maxDepth = 2
	err = run(context.Background(), cfg, []string{deep}, nil, &bytes.Buffer{})
	require.ErrorContains(t, err, "exceeded max depth")

	err = run(context.Background(), cfg, nil, strings.NewReader("1 x"), &bytes.Buffer{})
	require.ErrorContains(t, err, "document 1")
}

func TestLogging(t *testing.T) {
	var logs bytes.Buffer
	old := log.Default
	log.Default = log.New(&logs)
	t.Cleanup(func() { log.Default = old })

	name := filepath.Join(t.TempDir(), "in.json")
	require.NoError(t, os.WriteFile(name, []byte(`[1, 2, 3]`), 0o644))

	cfg := config{jobs: 0, maxDepth: json.DefaultMaxDepth}
	require.NoError(t, run(context.Background(), cfg, []string{name}, nil, &bytes.Buffer{}))
	require.Contains(t, logs.String(), "-j 0 is not positive")
	require.Contains(t, logs.String(), "timed 1 files, 9 bytes")
}

// Copyright 2019 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package log is the process logger used by commands. Library packages
// report failures through returned errors and never log.
package log

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the subset of *zap.SugaredLogger used by commands.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// Default writes console-formatted entries to stderr, keeping stdout free
// for command output.
var Default Logger = New(os.Stderr)

// New returns a Logger writing to w that shares the level set by SetLevel.
func New(w io.Writer) *zap.SugaredLogger {
	return zap.New(
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level),
		zap.AddCaller(),
		zap.AddCallerSkip(1),
	).Sugar()
}

var encoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "lvl",
	CallerKey:      "caller",
	MessageKey:     "message",
	StacktraceKey:  "stacktrace",
	LineEnding:     zapcore.DefaultLineEnding,
	EncodeLevel:    zapcore.CapitalLevelEncoder,
	EncodeTime:     zapcore.RFC3339TimeEncoder,
	EncodeDuration: zapcore.StringDurationEncoder,
	EncodeCaller:   zapcore.ShortCallerEncoder,
}

// SetLevel sets the minimum level logged. Valid levels are "debug", "info",
// "warn", "error" and "fatal".
func SetLevel(s string) error {
	l, err := zapcore.ParseLevel(s)
	if err != nil {
		return errors.Errorf("invalid log level %q", s)
	}
	level.SetLevel(l)
	return nil
}

func Debugf(format string, args ...interface{}) { Default.Debugf(format, args...) }
func Infof(format string, args ...interface{}) { Default.Infof(format, args...) }
func Warnf(format string, args ...interface{}) { Default.Warnf(format, args...) }

// Fatalf logs at fatal level and exits the process.
func Fatalf(format string, args ...interface{}) { Default.Fatalf(format, args...) }

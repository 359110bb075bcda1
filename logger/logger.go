// Copyright (c) Asterna
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a leveled slog logger shared by all services.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/asterna/accounts/pkg/errors"
)

// ErrInvalidLogLevel indicates an unrecognized log level.
var ErrInvalidLogLevel = errors.New("unrecognized log level")

// New returns a JSON slog logger writing to w with the given level.
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	switch strings.ToLower(levelText) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, errors.Wrap(ErrInvalidLogLevel, errors.New(levelText))
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// NewMock returns a logger that discards all records. For tests.
func NewMock() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// ExitWithError terminates the process with the given code. It is meant to
// be deferred first in main so that deferred cleanups still run.
func ExitWithError(exitCode *int) {
	if *exitCode != 0 {
		os.Exit(*exitCode)
	}
}

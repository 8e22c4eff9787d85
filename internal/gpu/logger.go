// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"log/slog"
	"sync/atomic"
)

// pkgLogger is swapped atomically so the root package can reconfigure
// logging while a pipeline is being built on another goroutine.
var pkgLogger atomic.Pointer[slog.Logger]

func init() {
	pkgLogger.Store(slog.New(slog.DiscardHandler))
}

// slogger returns the current package logger.
func slogger() *slog.Logger { return pkgLogger.Load() }

// SetLogger replaces the package logger. ghostcube.SetLogger forwards to
// it; nil discards all records.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	pkgLogger.Store(l)
}

// logBuffer records a buffer allocation at debug level.
func logBuffer(label string, size uint64, usage string) {
	slogger().Debug("gpu: buffer created", "label", label, "size", size, "usage", usage)
}

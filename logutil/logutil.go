// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Environment variables read when configuring logging.
const (
	// EnvDebug enables debug logging when set to "true" or "1".
	EnvDebug = "FINDPATH_DEBUG"
	// EnvLogFormat selects JSON records when set to "json".
	EnvLogFormat = "FINDPATH_LOG_FORMAT"
)

var (
	mu     sync.RWMutex
	global *slog.Logger
	level  = new(slog.LevelVar)
)

func init() {
	SetupLogger(false, false)
}

// DebugFromEnv reports whether EnvDebug asks for debug records.
func DebugFromEnv() bool {
	v := os.Getenv(EnvDebug)
	return v == "1" || strings.EqualFold(v, "true")
}

// StructuredFromEnv reports whether EnvLogFormat asks for JSON records.
func StructuredFromEnv() bool {
	return strings.EqualFold(os.Getenv(EnvLogFormat), "json")
}

// SetupLogger configures the global logger to write to stderr.
//
// Only warnings and errors are written unless debug is true or EnvDebug is
// set. When structured is true records are JSON, otherwise text.
//
// This function is safe for concurrent use.
func SetupLogger(debug, structured bool) {
	SetupLoggerWithWriter(os.Stderr, debug, structured)
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// This function is safe for concurrent use.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	if debug || DebugFromEnv() {
		level.Set(slog.LevelDebug)
	} else {
		level.Set(slog.LevelWarn)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if structured {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	defer mu.Unlock()
	global = slog.New(handler)
	slog.SetDefault(global)
}

// DebugEnabled reports whether debug records are written.
func DebugEnabled() bool {
	return level.Level() <= slog.LevelDebug
}

// Logger returns the configured slog.Logger.
// This function is safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

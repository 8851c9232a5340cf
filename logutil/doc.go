// Package logutil holds the process-wide slog configuration and the
// component loggers the other packages write diagnostics through.
//
// Logging is diagnostic only. The resolved path and user-facing errors are
// written by cliout, never through this package, and a normal run only
// emits warnings and errors so stderr stays clean.
//
//	logutil.SetupLogger(false, logutil.StructuredFromEnv())
//
//	log := logutil.NewLogger("locate").WithOperation("probe")
//	log.Debug("growing path buffer", "capacity", 0, "required", 42)
//
// Set FINDPATH_DEBUG=true for debug records and FINDPATH_LOG_FORMAT=json for
// JSON output:
//
//	{"time":"2024-01-15T10:30:00Z","level":"DEBUG","msg":"probing","component":"locate","file":"notepad"}
package logutil

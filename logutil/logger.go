package logutil

// ComponentLogger writes records tagged with a component name and any
// fields added through WithOperation or WithFields.
//
// The global logger is looked up on every call, so a ComponentLogger held in
// a struct created before SetupLogger still follows the later settings.
type ComponentLogger struct {
	attrs []any
}

// NewLogger returns a ComponentLogger for component.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{attrs: []any{"component", component}}
}

// WithOperation is shorthand for WithFields("operation", name).
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.WithFields("operation", name)
}

// WithFields returns a child logger carrying the extra key-value pairs.
// The receiver is not modified.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	attrs := make([]any, 0, len(l.attrs)+len(fields))
	attrs = append(attrs, l.attrs...)
	attrs = append(attrs, fields...)
	return &ComponentLogger{attrs: attrs}
}

func (l *ComponentLogger) Debug(msg string, args ...any) {
	Logger().With(l.attrs...).Debug(msg, args...)
}

func (l *ComponentLogger) Info(msg string, args ...any) {
	Logger().With(l.attrs...).Info(msg, args...)
}

func (l *ComponentLogger) Warn(msg string, args ...any) {
	Logger().With(l.attrs...).Warn(msg, args...)
}

func (l *ComponentLogger) Error(msg string, args ...any) {
	Logger().With(l.attrs...).Error(msg, args...)
}

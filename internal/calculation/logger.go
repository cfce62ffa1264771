package calculation

import "log"

// Logger is a minimal logging interface for the projection engine.
// Implementations should be fast; the default is a no-op so pure calculation
// paths stay silent.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// StdLogger routes engine logging to the standard library logger. The CLI and
// HTTP server install this; library consumers keep the no-op default.
type StdLogger struct {
	Debug bool
}

func (l StdLogger) Debugf(format string, args ...any) {
	if l.Debug {
		log.Printf("DEBUG "+format, args...)
	}
}
func (l StdLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (l StdLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (l StdLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

package driftline

import (
	"log"
	"os"
)

// Logger receives the client's diagnostics. Tracking methods never return
// errors, so delivery failures surface here and nowhere else.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// stdLogger is the default Logger. It reports failures through the standard
// log package and stays quiet at debug level.
type stdLogger struct {
	l *log.Logger
}

func newStdLogger() *stdLogger {
	return &stdLogger{l: log.New(os.Stderr, "driftline: ", log.LstdFlags)}
}

func (s *stdLogger) Debugf(format string, args ...any) {}

func (s *stdLogger) Errorf(format string, args ...any) {
	s.l.Printf("ERROR "+format, args...)
}

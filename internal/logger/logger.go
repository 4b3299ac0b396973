// Package logger provides the small leveled logging interface used by the hfm
// facade and command line tool.
package logger

import (
	"io"
	"log"
)

// Level is the minimum severity a Logger emits.
type Level uint8

const (
	LevelDebug Level = iota // LevelDebug emits every message.
	LevelInfo               // LevelInfo drops debug messages.
	LevelError              // LevelError emits errors only.
)

// Logger is the logging surface the rest of the module depends on.
type Logger interface {
	Debugf(format string, v ...any)
	Infof(format string, v ...any)
	Errorf(format string, v ...any)
}

type stdLogger struct {
	l     *log.Logger
	level Level
}

// New returns a Logger writing to w, dropping messages below level.
func New(w io.Writer, level Level) Logger {
	return &stdLogger{
		l:     log.New(w, "", log.LstdFlags),
		level: level,
	}
}

func (s *stdLogger) Debugf(format string, v ...any) {
	if s.level <= LevelDebug {
		s.l.Printf("[DEBUG] "+format, v...)
	}
}

func (s *stdLogger) Infof(format string, v ...any) {
	if s.level <= LevelInfo {
		s.l.Printf("[INFO] "+format, v...)
	}
}

func (s *stdLogger) Errorf(format string, v ...any) {
	s.l.Printf("[ERROR] "+format, v...)
}

type nopLogger struct{}

// Nop returns a Logger that discards everything.
func Nop() Logger { return nopLogger{} }

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}

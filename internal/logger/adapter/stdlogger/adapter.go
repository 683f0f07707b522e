// Package stdlogger exposes the global zerolog logger through printf style
// methods for libraries that expect them, such as gorm's logger.Writer.
package stdlogger

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger forwards printf style calls to zerolog.
type Logger struct {
	component string
	level     zerolog.Level // level used by Printf
}

// New returns a Logger tagging every entry with component.
func New(component ...string) *Logger {
	l := &Logger{level: zerolog.InfoLevel}
	if len(component) > 0 {
		l.component = component[0]
	}

	return l
}

// WithPrintfLevel sets the level Printf writes with.
func (l *Logger) WithPrintfLevel(level zerolog.Level) *Logger {
	l.level = level
	return l
}

func (l *Logger) event(level zerolog.Level) *zerolog.Event {
	e := log.WithLevel(level)
	if l.component != "" {
		e = e.Str("component", l.component)
	}

	return e
}

// Printf implements gorm's logger.Writer.
func (l *Logger) Printf(format string, args ...interface{}) {
	// gorm prefixes its messages with the caller file and a newline
	l.event(l.level).Msgf(strings.ReplaceAll(format, "\n", " "), args...)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.event(zerolog.DebugLevel).Msgf(format, args...)
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.event(zerolog.InfoLevel).Msgf(format, args...)
}

// Warningf logs at warn level.
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.event(zerolog.WarnLevel).Msgf(format, args...)
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.event(zerolog.ErrorLevel).Msgf(format, args...)
}

// Package logger provides the coloured, prefixed line logger used across the service.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/sirupsen/logrus"
)

var _ i.Logger = &Logger{}

var (
	ErrEmptyPrefix = errors.New("logger prefix is empty")
	ErrNilWriter   = errors.New("logger writer is nil")
)

// Logger writes "[PREFIX] [LEVEL] message" lines with a coloured prefix.
type Logger struct {
	entry *logrus.Entry
}

// New creates a Logger writing to w. color is an ANSI escape such as config.ColorCyan.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		return nil, ErrNilWriter
	}

	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&PrefixFormatter{Color: color})

	return &Logger{entry: l.WithField(prefixField, prefix)}, nil
}

// Info implements i.Logger.
func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

// Warning implements i.Logger.
func (l *Logger) Warning(msg string) {
	l.entry.Warn(msg)
}

// Error implements i.Logger.
func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

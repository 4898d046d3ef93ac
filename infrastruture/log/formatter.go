package logger

import (
	"bytes"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/sirupsen/logrus"
)

const (
	prefixField     = "prefix"
	timestampFormat = "2006/01/02 15:04:05"
)

var _ logrus.Formatter = &PrefixFormatter{}

// PrefixFormatter renders entries as "time color[PREFIX]reset levelColor[LEVEL]reset message".
type PrefixFormatter struct {
	Color string // ANSI colour of the prefix
}

// Format implements logrus.Formatter.
func (f *PrefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	prefix, _ := entry.Data[prefixField].(string)
	level, levelColor := levelLabel(entry.Level)
	fmt.Fprintf(b, "%s %s[%s]%s %s[%s]%s %s\n",
		entry.Time.Format(timestampFormat),
		f.Color, prefix, config.ColorReset,
		levelColor, level, config.LogColorReset,
		entry.Message,
	)
	return b.Bytes(), nil
}

func levelLabel(level logrus.Level) (string, string) {
	switch level {
	case logrus.WarnLevel:
		return "WARNING", config.LogWarningColor
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR", config.LogErrorColor
	default:
		return "INFO", config.LogInfoColor
	}
}

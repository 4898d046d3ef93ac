package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Rejects bad arguments", func(t *testing.T) {
		_, err := New("", config.ColorCyan, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)

		_, err = New("MAZE", config.ColorCyan, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("Writes prefixed levels", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("MAZE", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("carved")
		l.Warning("retrying")
		l.Error("failed")

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 3)
		assert.Contains(t, lines[0], "[MAZE]")
		assert.Contains(t, lines[0], "[INFO]")
		assert.True(t, strings.HasSuffix(lines[0], " carved"))
		assert.Contains(t, lines[1], "[WARNING]")
		assert.Contains(t, lines[2], "[ERROR]")
		assert.Contains(t, lines[2], config.ColorCyan)
	})

	t.Run("Lines are written by the logrus formatter", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", config.ColorGreen, &buf)
		require.NoError(t, err)
		require.IsType(t, &PrefixFormatter{}, l.entry.Logger.Formatter)
		assert.Equal(t, logrus.InfoLevel, l.entry.Logger.GetLevel())

		l.Info("ready")
		assert.Contains(t, buf.String(), config.ColorGreen+"[APP]"+config.ColorReset)
	})
}

func TestPrefixFormatter(t *testing.T) {
	f := &PrefixFormatter{Color: config.ColorCyan}
	entry := &logrus.Entry{
		Data:    logrus.Fields{prefixField: "MAZE"},
		Time:    time.Date(2025, 2, 8, 10, 30, 0, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "could not cut every path",
	}

	out, err := f.Format(entry)
	require.NoError(t, err)
	want := "2025/02/08 10:30:00 " +
		config.ColorCyan + "[MAZE]" + config.ColorReset + " " +
		config.LogWarningColor + "[WARNING]" + config.LogColorReset + " " +
		"could not cut every path\n"
	assert.Equal(t, want, string(out))

	entry.Level = logrus.ErrorLevel
	out, err = f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), config.LogErrorColor+"[ERROR]")
}

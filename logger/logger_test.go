package logger_test

import (
	"bytes"
	"io"
	"log"
	"regexp"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/waymark/logger"
)

var (
	logLevelRegexp = regexp.MustCompile(`^\[[A-Z]+\]`)
	fpRegexp       = regexp.MustCompile(`logger_test\.go:\d+`)
	msgRegexp      = regexp.MustCompile(`'(.*)'`)
)

func newTestLogger(w io.Writer) *log.Logger {
	return log.New(w, "", 0)
}

func TestNewLogLevel(t *testing.T) {
	// Arrange
	tcs := []struct {
		name     string
		val      string
		expected logger.LogLevel
	}{
		{"Debug", "DEBUG", logger.LogLevelDebug},
		{"Info", "INFO", logger.LogLevelInfo},
		{"Warn", "WARN", logger.LogLevelWarn},
		{"Error", "ERROR", logger.LogLevelError},
		{"Fatal", "FATAL", logger.LogLevelFatal},
		{"Zero", "", logger.LogLevelUnk},
		{"Unknown", "TRACE", logger.LogLevelUnk},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Act + Assert
			require.Equal(t, tc.expected, logger.NewLogLevel(tc.val))
		})
	}
}

func TestWaymarkLoggerLevels(t *testing.T) {
	// Arrange
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)), logger.WithLevel(logger.LogLevelWarn))

	// Act
	l.Debug("such fun!", nil)
	l.Info("such fun!", nil)

	// Assert
	require.Zero(t, b.Len())

	// Act
	l.Warn("watch out", nil)

	// Assert
	require.Regexp(t, logLevelRegexp, b.String())
	require.Contains(t, b.String(), "[WARN]")
	require.Regexp(t, fpRegexp, b.String())
	require.Equal(t, "watch out", msgRegexp.FindStringSubmatch(b.String())[1])

	// Arrange
	b.Reset()

	// Act
	l.Error("oh no", nil)

	// Assert
	require.Contains(t, b.String(), "[ERROR]")

	// Arrange
	b.Reset()

	// Act
	l.Fatal("all done", nil)

	// Assert
	require.Contains(t, b.String(), "[FATAL]")
}

func TestWaymarkLoggerDefaultLevel(t *testing.T) {
	// Arrange
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)))

	// Assert
	require.Equal(t, logger.LogLevelInfo, l.LogLevel())

	// Act
	l.Debug("such fun!", nil)

	// Assert
	require.Zero(t, b.Len())

	// Act
	l.Info("such fun!", nil)

	// Assert
	require.Contains(t, b.String(), "[INFO]")
}

func TestWaymarkLoggerLogContext(t *testing.T) {
	// Arrange
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)))

	// Act
	l.Warn("falling back to default", &logger.LogContext{Data: map[string]any{"path": "braille.tetherTo"}})

	// Assert
	require.Contains(t, b.String(), `log_context: "{\"data\":{\"path\":\"braille.tetherTo\"}}"`)
}

func TestWaymarkLoggerAddSkip(t *testing.T) {
	// Arrange
	color.NoColor = true
	t.Setenv("SENTRY_DSN", "")

	b := new(bytes.Buffer)
	l := logger.NewLogger(logger.WithLogger(newTestLogger(b)))
	sl, ok := l.(logger.SkipLogger)
	require.True(t, ok)

	// Act
	skipped := sl.AddSkip(2)

	// Assert
	require.Equal(t, 2, skipped.Skip())
	require.Equal(t, 0, sl.Skip())

	// Act
	again := skipped.AddSkip(skipped.Skip() + 1)

	// Assert
	require.Equal(t, 3, again.Skip())
	require.Equal(t, 2, skipped.Skip())
}

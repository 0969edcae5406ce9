package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	log = newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, zerolog.InfoLevel)
	// logFile is the file opened by InitLogging, closed when the logger is replaced.
	logFile *os.File
)

func replace(l zerolog.Logger, file *os.File) {
	if logFile != nil && logFile != file {
		logFile.Close()
	}
	log = l
	logFile = file
}

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// InitLogging points the application logger at path (JSON lines, appended)
// or, when path is empty, at a human readable stderr writer.
// Logs never go to stdout.
func InitLogging(path, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if path == "" {
		replace(newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, lvl), nil)
		return
	}

	file, ferr := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if ferr != nil {
		replace(newLogger(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}, lvl), nil)
		log.Warn().Err(ferr).Str("path", path).Msg("cannot open log file, logging to stderr")
		return
	}
	replace(newLogger(file, lvl), file)
}

// SetOutput replaces the logger with a JSON logger writing to w.
func SetOutput(w io.Writer, level zerolog.Level) {
	replace(newLogger(w, level), nil)
}

// WithFields returns a context whose log lines carry the given key/value pairs.
func WithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	l := fromContext(ctx).With().Fields(fields).Logger()
	return l.WithContext(ctx)
}

func fromContext(ctx context.Context) *zerolog.Logger {
	if ctx != nil {
		if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
			return l
		}
	}
	return &log
}

func DebugLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Debug().Msg(fmt.Sprintf(format, args...))
}

func InfoLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Info().Msg(fmt.Sprintf(format, args...))
}

func WarnLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Warn().Msg(fmt.Sprintf(format, args...))
}

func ErrorLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Error().Msg(fmt.Sprintf(format, args...))
}

// FatalLog logs at fatal level and exits the process with status 1.
func FatalLog(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Fatal().Msg(fmt.Sprintf(format, args...))
}

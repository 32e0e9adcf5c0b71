package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the key-value logging surface the rest of the service depends on.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

type zeroLogger struct {
	zlog zerolog.Logger
}

// New builds a zerolog-backed Logger tagged with the service name. Unknown
// or empty levels fall back to info.
func New(serviceName, level string) Logger {
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	z := zerolog.New(output).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("service", serviceName).
		Logger()

	return &zeroLogger{zlog: z}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *zeroLogger) Debug(msg string, keyvals ...any) { l.emit(l.zlog.Debug(), msg, keyvals) }
func (l *zeroLogger) Info(msg string, keyvals ...any)  { l.emit(l.zlog.Info(), msg, keyvals) }
func (l *zeroLogger) Warn(msg string, keyvals ...any)  { l.emit(l.zlog.Warn(), msg, keyvals) }
func (l *zeroLogger) Error(msg string, keyvals ...any) { l.emit(l.zlog.Error(), msg, keyvals) }

func (l *zeroLogger) emit(event *zerolog.Event, msg string, keyvals []any) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			continue
		}
		event = event.Interface(key, keyvals[i+1])
	}
	event.Msg(msg)
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() Logger {
	return &zeroLogger{zlog: zerolog.Nop()}
}

// Package logger builds the JSON line loggers shared by the HTTP layer and startup code.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

func init() {
	zerolog.MessageFieldName = "msg"
}

// New returns a zerolog logger writing one JSON object per line to w.
// Every entry is stamped with a "ts" field formatted as RFC3339Nano in loc.
func New(w io.Writer, loc *time.Location, level string) zerolog.Logger {
	if loc == nil {
		loc = time.UTC
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).Hook(timestampHook(loc))
}

func timestampHook(loc *time.Location) zerolog.HookFunc {
	return func(e *zerolog.Event, _ zerolog.Level, _ string) {
		e.Str("ts", time.Now().In(loc).Format(time.RFC3339Nano))
	}
}

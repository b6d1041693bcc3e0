package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level, unknown names are info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a timestamped console logger writing uncolored lines to w
func New(level string, w io.Writer) zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

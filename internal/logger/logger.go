// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. It is usable before Init with logrus
// defaults.
var Log = logrus.New()

// Init configures Log from the environment and returns a function that
// releases the log destination.
//
//	LOG_LEVEL   logrus level name, default "info"
//	LOG_FORMAT  "json" or "text", default "text"
//	LOG_FILE    append to this file instead of fallback
//
// The terminal front-end owns the tty, so callers running it pass a file
// or io.Discard as fallback.
func Init(fallback io.Writer) (func() error, error) {
	level, err := logrus.ParseLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	closer := func() error { return nil }
	out := fallback
	if path := os.Getenv("LOG_FILE"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closer, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f.Close
	}
	Log.SetOutput(out)
	return closer, nil
}

func envOr(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

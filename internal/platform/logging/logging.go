package logging

import (
	"io"
	"os"

	hclog "github.com/hashicorp/go-hclog"
)

// New builds the process logger. Components receive named sub-loggers via
// logger.Named(...).
func New(level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "focusd",
		Level:  hclog.LevelFromString(level),
		Output: os.Stderr,
	})
}

// Discard is used where a component requires a logger but output is unwanted.
func Discard() hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel})
}

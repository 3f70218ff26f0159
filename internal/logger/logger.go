package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Binaries call Init once in main.
var Log = logrus.New()

// Init sets the level and formatter. An unknown level falls back to info;
// "json" selects the JSON formatter, anything else the text one.
func Init(level, format string) {
	Log = logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	Log.SetLevel(lvl)

	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	Log.SetOutput(os.Stderr)
}

// Discard silences Log, for tests and the terminal frontend, which owns the screen.
func Discard() {
	Log = logrus.New()
	Log.SetOutput(io.Discard)
}

// ToFile redirects Log to path, appending.
func ToFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	Log.SetOutput(f)
	return f, nil
}

package logger

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit_LevelAndFormat(t *testing.T) {
	Init("debug", "json")
	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level=%v, want debug", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("formatter=%T, want JSON", Log.Formatter)
	}

	var buf bytes.Buffer
	Log.SetOutput(&buf)
	Log.WithField("session", "abc").Info("hello")
	if !strings.Contains(buf.String(), `"session":"abc"`) {
		t.Fatalf("missing field in %q", buf.String())
	}
}

func TestInit_UnknownLevelFallsBack(t *testing.T) {
	Init("shouty", "text")
	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level=%v, want info", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("formatter=%T, want text", Log.Formatter)
	}
}

func TestToFile(t *testing.T) {
	Discard()
	path := filepath.Join(t.TempDir(), "tanks.log")
	c, err := ToFile(path)
	if err != nil {
		t.Fatalf("ToFile: %v", err)
	}
	defer c.Close()
	Log.Info("to file")
}

package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Info("hidden")
	logger.Noticef("shown %d", 1)

	SetLevel(Debug)
	logger.Debug("verbose")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info message to be filtered at notice level; got %q", out)
	}
	for _, exp := range []string{"shown 1", "verbose", "[test]"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected output to contain %q; got %q", exp, out)
		}
	}
}

func TestModuleLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	SetLevel(Error)
	SetLevel(Debug, "chatty")

	New("quiet").Info("quiet message")
	New("chatty").Info("chatty message")

	out := buf.String()
	if strings.Contains(out, "quiet message") {
		t.Fatalf("expected quiet logger to be filtered; got %q", out)
	}
	if !strings.Contains(out, "chatty message") {
		t.Fatalf("expected chatty logger output; got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	type spec struct {
		in     string
		exp    Level
		expErr bool
	}

	specs := []spec{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{"warning", Warning, false},
		{"loud", Notice, true},
	}

	for index, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expErr != (err != nil) {
			t.Errorf("[spec %d] expected error to be %t; got %v", index, s.expErr, err)
			continue
		}
		if level != s.exp {
			t.Errorf("[spec %d] expected level %s; got %s", index, s.exp, level)
		}
	}
}

package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(GetLevel())
	SetLevel(LevelWarn)

	Debugf("hidden %d", 1)
	Infof("hidden too")
	Warnf("visible %s", "warning")
	// a message without args is printed as is, % included
	errorf := Errorf
	errorf("100%")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug/info lines leaked: %q", out)
	}
	if !strings.Contains(out, "[WARN] visible warning") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] 100%") || strings.Contains(out, "MISSING") {
		t.Errorf("plain message mangled: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]Level{
		"debug": LevelDebug, " INFO ": LevelInfo, "warning": LevelWarn, "Error": LevelError,
	} {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

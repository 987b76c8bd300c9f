package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/pathplot/logging"
	"github.com/benoitkugler/pathplot/plot"
)

const fixture = `type,node_idx,agent_x,agent_y,target_x,target_y,path,obstacle_x,obstacle_y,obstacle_rad,boundary_x0,boundary_x1,boundary_y0,boundary_y1
2,,,,,,,,,,0,10,0,10
1,0,0,0,5,5,"[(0,0),(2,2),(5,5)]",,,,,,,
3,,,,,,,2,3,1.5,,,,
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	defer logging.SetOutput(os.Stderr)
	var stdout, stderr bytes.Buffer
	code := run(append([]string{"pathplot"}, args...), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestOutputFormats(t *testing.T) {
	input := writeFixture(t, fixture)
	dir := t.TempDir()
	for ext, magic := range map[string]string{
		".png": "\x89PNG",
		".pdf": "%PDF-",
		".svg": "<?xml",
	} {
		out := filepath.Join(dir, "figure"+ext)
		code, stdout, stderr := runCLI(t, input, "-o", out, "-W", "320", "-H", "240")
		if code != 0 {
			t.Fatalf("%s: exit code %d: %s", ext, code, stderr)
		}
		for _, line := range []string{
			"[Boundary] 0.0,0.0 10.0,10.0",
			"[Node 0] 0.0,0.0->5.0,5.0",
			"[Obstacle] 2.0,3.0 with radius 1.5",
		} {
			if !strings.Contains(stdout, line) {
				t.Errorf("%s: missing summary line %q in %q", ext, line, stdout)
			}
		}
		content, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.HasPrefix(content, []byte(magic)) {
			t.Errorf("%s: unexpected file header %q", ext, content[:8])
		}
	}
}

func TestShowWithoutOutput(t *testing.T) {
	defer func(f func(*plot.Figure) error) { show = f }(show)

	var shown *plot.Figure
	show = func(fig *plot.Figure) error {
		shown = fig
		return nil
	}
	code, _, stderr := runCLI(t, writeFixture(t, fixture))
	if code != 0 {
		t.Fatalf("exit code %d: %s", code, stderr)
	}
	if shown == nil || len(shown.Shapes()) != 5 {
		t.Fatalf("expected the figure to be shown")
	}
	if shown.Width != plot.DefaultWidth || shown.Height != plot.DefaultHeight {
		t.Errorf("unexpected default size %dx%d", shown.Width, shown.Height)
	}

	show = func(*plot.Figure) error { return errors.New("no display") }
	if code, _, _ := runCLI(t, writeFixture(t, fixture)); code != 1 {
		t.Errorf("viewer failure: expected exit code 1, got %d", code)
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	good := writeFixture(t, fixture)
	for _, test := range []struct {
		name string
		args []string
	}{
		{"missing file", []string{filepath.Join(dir, "missing.csv"), "-o", filepath.Join(dir, "a.png")}},
		{"parse error", []string{writeFixture(t, "1,0,0,0,5,5,\"oops\"\n"), "-o", filepath.Join(dir, "b.png")}},
		{"unknown format", []string{good, "-o", filepath.Join(dir, "c.bmp")}},
		{"bad size", []string{good, "-W", "0", "-o", filepath.Join(dir, "d.png")}},
		{"bad flag", []string{good, "--no-such-flag"}},
		{"bad log level", []string{good, "--log-level", "loud"}},
		{"unwritable output", []string{good, "-o", filepath.Join(dir, "no", "such", "dir", "e.png")}},
	} {
		if code, _, _ := runCLI(t, test.args...); code != 1 {
			t.Errorf("%s: expected exit code 1, got %d", test.name, code)
		}
	}

	// nothing written on failure
	if _, err := os.Stat(filepath.Join(dir, "a.png")); !os.IsNotExist(err) {
		t.Error("no output expected for a missing input")
	}
}

func TestErrorsLogged(t *testing.T) {
	code, stdout, stderr := runCLI(t, writeFixture(t, "3,,,,,,,2,x,1\n"), "-o", filepath.Join(t.TempDir(), "f.svg"))
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if stdout != "" {
		t.Errorf("no summary expected, got %q", stdout)
	}
	if !strings.Contains(stderr, "[ERROR]") || !strings.Contains(stderr, "obstacle_y") {
		t.Errorf("unexpected error report %q", stderr)
	}
}

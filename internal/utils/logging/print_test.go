package logging

import (
	"bytes"
	"strings"
	"testing"
)

func captureConsole(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevConsole, prevLevel := Console, Level
	Console = &buf
	t.Cleanup(func() {
		Console = prevConsole
		Level = prevLevel
	})
	return &buf
}

func TestLevelGating(t *testing.T) {
	buf := captureConsole(t)
	Level = 0

	if msg := D(1, "hidden %d", 1); msg != "" {
		t.Fatalf("expected debug level 1 to be suppressed at level 0, got %q", msg)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing printed, got %q", buf.String())
	}

	E(0, "failed for %s", "https://example.com/a")
	if !strings.Contains(buf.String(), "failed for https://example.com/a") {
		t.Fatalf("expected error message printed, got %q", buf.String())
	}
}

func TestDebugIncludesCaller(t *testing.T) {
	buf := captureConsole(t)
	Level = 2

	D(2, "checking")
	out := stripAnsiCodes(buf.String())
	if !strings.Contains(out, "File: print_test.go") {
		t.Fatalf("expected caller file in debug output, got %q", out)
	}
}

func TestStripAnsiCodes(t *testing.T) {
	in := "\x1b[92m[Success] \x1b[0mdone"
	if got := stripAnsiCodes(in); got != "[Success] done" {
		t.Fatalf("unexpected stripped output %q", got)
	}
}

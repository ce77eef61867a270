package wires4d

import (
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = old
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured output: %v", err)
	}
	return string(out)
}

func TestDebugLogGatedOnFlag(t *testing.T) {
	if out := captureStdout(t, func() { DebugLog("hidden %d", 1) }); out != "" {
		t.Fatalf("DebugLog printed with Debug off: %q", out)
	}
	Debug = true
	defer func() { Debug = false }()
	if out := captureStdout(t, func() { DebugLog("shown %d", 2) }); out != "[DEBUG] shown 2\n" {
		t.Fatalf("unexpected DebugLog output: %q", out)
	}
}

func TestDebugLogOncePrintsOnce(t *testing.T) {
	Debug = true
	defer func() { Debug = false }()
	out := captureStdout(t, func() {
		DebugLogOnce("first %s", "call")
		DebugLogOnce("second %s", "call")
	})
	if strings.Count(out, "[DEBUG]") != 1 {
		t.Fatalf("want exactly one line, got %q", out)
	}
	if !strings.Contains(out, "first call") {
		t.Fatalf("wrong line survived: %q", out)
	}
}

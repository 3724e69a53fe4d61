package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// captureStdout points os.Stdout at a temp file for the duration of the test
// and returns a func that reads what was written.
func captureStdout(t *testing.T) func() string {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stdout"))
	if err != nil {
		t.Fatal(err)
	}
	orig := os.Stdout
	os.Stdout = f
	t.Cleanup(func() {
		os.Stdout = orig
		f.Close()
	})
	return func() string {
		b, err := os.ReadFile(f.Name())
		if err != nil {
			t.Fatal(err)
		}
		return string(b)
	}
}

func setDefaults(t *testing.T) {
	t.Helper()
	for _, k := range []string{"DJS06_FORMAT", "DJS06_MAX_NAME_LEN", "DJS06_EXTREMES_MODE"} {
		t.Setenv(k, "")
	}
	t.Setenv("DJS06_LOG_MODE", "nop")
}

func TestRunSucceedsWithDefaults(t *testing.T) {
	setDefaults(t)
	stdout := captureStdout(t)

	if code := run(); code != 0 {
		t.Fatalf("run() = %d; want 0", code)
	}
	out := stdout()
	if n := strings.Count(out, "\n"); n != 31 {
		t.Fatalf("stdout has %d lines; want 31", n)
	}
	if !strings.Contains(out, "Total Price: 26\n") {
		t.Fatalf("stdout missing total:\n%s", out)
	}
}

func TestRunJSONFormat(t *testing.T) {
	setDefaults(t)
	t.Setenv("DJS06_FORMAT", "json")
	stdout := captureStdout(t)

	if code := run(); code != 0 {
		t.Fatalf("run() = %d; want 0", code)
	}
	if out := stdout(); !strings.HasPrefix(out, "[") {
		t.Fatalf("json output starts with %q", out[:min(len(out), 10)])
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	cases := map[string]string{
		"DJS06_FORMAT":        "xml",
		"DJS06_MAX_NAME_LEN":  "abc",
		"DJS06_EXTREMES_MODE": "loose",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			setDefaults(t)
			t.Setenv(key, val)
			stdout := captureStdout(t)

			if code := run(); code != 1 {
				t.Fatalf("run() with %s=%s = %d; want 1", key, val, code)
			}
			if out := stdout(); out != "" {
				t.Fatalf("stdout should be empty, got %q", out)
			}
		})
	}
}

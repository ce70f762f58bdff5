// Package testsupport holds helpers shared by tests that drive real
// subprocesses through small shell scripts.
package testsupport

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// WriteExecutable writes script to dir/name with the executable bit set and
// returns its path. Tests are skipped where /bin/sh is unavailable.
func WriteExecutable(t *testing.T, dir, name, script string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skipf("fake %s relies on /bin/sh", name)
	}
	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write fake %s: %v", name, err)
	}
	return path
}

// ReadString reads a file the fake wrote, failing the test when it is missing.
func ReadString(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// Env builds a minimal subprocess environment: the current PATH plus the
// given KEY=VALUE pairs.
func Env(pairs ...string) []string {
	return append([]string{"PATH=" + os.Getenv("PATH")}, pairs...)
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents. Tests can assert
// the renderer returns and writes the same payload without duplicating buffer
// setup.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

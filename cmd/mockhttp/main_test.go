package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// writeFixture writes a fixture file into a temp dir and returns its path.
func writeFixture(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "endpoints.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLintCommand(t *testing.T) {
	t.Run("reports endpoint count", func(t *testing.T) {
		path := writeFixture(t, `
endpoints:
  - method: GET
    url: http://example.com/api/books
    response: '[]'
`)
		out, err := execute(t, "lint", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "1 endpoint(s)") {
			t.Errorf("expected endpoint count in output, got: %s", out)
		}
	})

	t.Run("warns on shadowed duplicates", func(t *testing.T) {
		path := writeFixture(t, `
endpoints:
  - method: GET
    url: http://example.com/api/books
    response: '"first"'
  - method: GET
    url: http://example.com/api/books
    response: '"second"'
`)
		out, err := execute(t, "lint", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "shadowed") {
			t.Errorf("expected shadow warning, got: %s", out)
		}
	})

	t.Run("invalid fixture fails", func(t *testing.T) {
		path := writeFixture(t, `
endpoints:
  - method: FETCH
    url: http://example.com/api/books
`)
		if _, err := execute(t, "lint", path); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("print dumps normalized YAML", func(t *testing.T) {
		path := writeFixture(t, `
endpoints:
  - method: GET
    url: http://example.com/api/books
    response: '[]'
    responseTime: 250
`)
		out, err := execute(t, "lint", "--print", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "responseTime: 250") {
			t.Errorf("expected normalized declarations, got: %s", out)
		}
		// Reset the flag for other subtests sharing the command state
		lintFlags.print = false
	})
}

func TestResolveCommand(t *testing.T) {
	fixturePath := func(t *testing.T) string {
		return writeFixture(t, `
endpoints:
  - method: GET
    url: http://example.com/api/books
    response: '["Book one"]'
    responseTime: 1000
`)
	}

	t.Run("resolves pairs in argument order", func(t *testing.T) {
		out, err := execute(t, "resolve", "--fixture", fixturePath(t),
			"GET", "http://example.com/api/books",
			"GET", "http://example.com/api/missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 2 {
			t.Fatalf("expected 2 result lines, got %d: %s", len(lines), out)
		}
		if !strings.Contains(lines[0], `["Book one"]`) || !strings.Contains(lines[0], "delay 1s") {
			t.Errorf("unexpected first result: %s", lines[0])
		}
		if !strings.Contains(lines[1], "error") {
			t.Errorf("expected bad URL error in second result: %s", lines[1])
		}
	})

	t.Run("rejects odd argument count", func(t *testing.T) {
		if _, err := execute(t, "resolve", "--fixture", fixturePath(t), "GET"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}

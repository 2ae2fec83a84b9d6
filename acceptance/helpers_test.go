package acceptance_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// runPoetic executes the poetic binary in dir and returns stdout, stderr,
// and exit code. POETIC_* variables from the outer environment are dropped.
func runPoetic(t *testing.T, dir string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(poeticBinary, args...)
	cmd.Dir = dir
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "POETIC_") {
			cmd.Env = append(cmd.Env, kv)
		}
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run poetic: %v", err)
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// runPoeticSuccess runs poetic expecting exit code 0 and returns stdout.
func runPoeticSuccess(t *testing.T, dir string, args ...string) string {
	t.Helper()
	stdout, stderr, exitCode := runPoetic(t, dir, args...)
	if exitCode != 0 {
		t.Fatalf("expected exit 0, got %d\nargs: %v\nstdout: %s\nstderr: %s", exitCode, args, stdout, stderr)
	}
	return stdout
}

// runJSON runs poetic with --json and decodes stdout into a generic map.
func runJSON(t *testing.T, dir string, wantCode int, args ...string) map[string]interface{} {
	t.Helper()
	stdout, stderr, exitCode := runPoetic(t, dir, append([]string{"--json"}, args...)...)
	if exitCode != wantCode {
		t.Fatalf("expected exit %d, got %d\nargs: %v\nstderr: %s", wantCode, exitCode, args, stderr)
	}
	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\noutput: %s", err, stdout)
	}
	return result
}

// newPoemsDir creates a temp project dir with an empty poems/ directory.
func newPoemsDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "poems"), 0o755); err != nil {
		t.Fatalf("failed to create poems dir: %v", err)
	}
	return dir
}

// poemFile renders a poem file with the given frontmatter overrides.
func poemFile(id, form, language, body string) string {
	return "---\n" +
		"id: " + id + "\n" +
		"title: " + strings.ReplaceAll(id, "-", " ") + "\n" +
		"author: Ada\n" +
		"date: 2024-01-15T06:30:00Z\n" +
		"form: " + form + "\n" +
		"language: " + language + "\n" +
		"tags: [acceptance]\n" +
		"preview: A short preview.\n" +
		"---\n" + body
}

const haikuBody = "# morning frost settles\n# on the silent pond the stack\n# waits for spring to thaw\n"

// writeFile creates a file with the given content.
func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// fileExists checks if a file exists.
func fileExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// executeCmd runs the root command with the given arguments and returns
// captured stdout and stderr along with any error.
//
// --log-level is always passed so a previous test's flag value never leaks.
func executeCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(append([]string{"--log-level", "info"}, args...))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeDataFile writes content to a temporary data file and returns its path.
func writeDataFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write data file: %v", err)
	}
	return path
}

package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildBinary compiles lc into a temp dir and returns the binary path.
func buildBinary(t *testing.T) string {
	t.Helper()

	binDir := t.TempDir()
	binaryPath := filepath.Join(binDir, "lc_test_bin")

	build := exec.Command("go", "build",
		"-ldflags", "-X github.com/otuschhoff/linecount/cmd/lc/cmd.Version=0.0.1-test",
		"-o", binaryPath, ".")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	require.NoError(t, build.Run(), "build lc")
	return binaryPath
}

// run executes the binary and returns stdout, stderr and the exit code.
func run(t *testing.T, bin, dir string, args ...string) (string, string, int) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		require.True(t, errors.As(err, &exitErr), "run lc: %v", err)
		code = exitErr.ExitCode()
	}
	return stdout.String(), stderr.String(), code
}

// TestCLIEndToEnd builds the lc binary and checks the banner, the counted
// output and the exit status on unreadable and flag-like file names.
func TestCLIEndToEnd(t *testing.T) {
	root := t.TempDir()

	mustWrite := func(rel, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644))
	}
	mustWrite("a.txt", "x\ny\nz\n")
	mustWrite("b.txt", "p\nq\n")
	mustWrite("-n.txt", "dash\n")

	bin := buildBinary(t)

	t.Run("banner", func(t *testing.T) {
		stdout, stderr, code := run(t, bin, root)
		assert.Equal(t, 0, code)
		assert.Empty(t, stderr)
		assert.Regexp(t, `^Line Counter v: 0\.0\.1-test\n`, stdout)
		assert.Contains(t, stdout, "Usage: lc_test_bin [filename(s)]")
	})

	t.Run("two files", func(t *testing.T) {
		stdout, stderr, code := run(t, bin, root, "a.txt", "b.txt")
		assert.Equal(t, 0, code)
		assert.Empty(t, stderr)
		assert.Equal(t, "  3 a.txt\n  2 b.txt\n  5 Total\n", stdout)

		const runs = 5
		for i := 0; i < runs; i++ {
			again, _, _ := run(t, bin, root, "a.txt", "b.txt")
			require.Equal(t, stdout, again, "run %d: output changed", i)
		}
	})

	t.Run("dash-prefixed file", func(t *testing.T) {
		stdout, stderr, code := run(t, bin, root, "-n.txt", "a.txt")
		assert.Equal(t, 0, code)
		assert.Empty(t, stderr)
		assert.Equal(t, "  1 -n.txt\n  3 a.txt\n  4 Total\n", stdout)
	})

	tests := []struct {
		name string
		args []string
		bad  string
	}{
		{"missing file", []string{"a.txt", "missing.txt"}, "missing.txt"},
		{"unknown flag", []string{"-x.txt"}, "-x.txt"},
		{"help flag", []string{"--help"}, "--help"},
		{"version flag", []string{"a.txt", "--version"}, "--version"},
		{"double dash", []string{"--"}, "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, code := run(t, bin, root, tt.args...)
			assert.Equal(t, 0, code)
			assert.Empty(t, stdout)
			assert.Equal(t, "Error reading file "+tt.bad+": no such file or directory\n", stderr)
		})
	}
}

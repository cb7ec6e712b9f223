//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// shimScript stands in for every external tool the scaffolder shells out
// to. It appends its invocation to the log file named by PYBOOT_TEST_LOG
// and mimics the minimal observable behavior the pipeline relies on:
// "poetry init" drops a pyproject.toml in the working directory and
// "pyenv which" prints an interpreter path.
const shimScript = `#!/bin/sh
echo "$(basename "$0") $@" >> "$PYBOOT_TEST_LOG"
case "$(basename "$0") $1" in
"poetry init")
cat > pyproject.toml <<'EOF'
[tool.poetry]
name = "placeholder"
version = "0.0.0"
description = ""
authors = []

[tool.poetry.dependencies]
python = "^3.7"
EOF
;;
"pyenv which")
echo /usr/bin/python3
;;
esac
exit 0
`

// setupShims puts stub pyenv, poetry, git, and pre-commit executables at
// the front of PATH and returns the path of the invocation log they
// write to.
func setupShims(t *testing.T) string {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	binDir := t.TempDir()
	logPath := filepath.Join(t.TempDir(), "commands.log")
	t.Setenv("PYBOOT_TEST_LOG", logPath)

	for _, name := range []string{"pyenv", "poetry", "git", "pre-commit"} {
		shim := filepath.Join(binDir, name)
		if err := os.WriteFile(shim, []byte(shimScript), 0755); err != nil {
			t.Fatalf("writing %s shim: %v", name, err)
		}
	}

	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logPath
}

// loggedCommands returns every shim invocation recorded so far, one
// command line per element.
func loggedCommands(t *testing.T, logPath string) []string {
	t.Helper()

	data, err := os.ReadFile(logPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		t.Fatalf("reading command log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func containsCommand(commands []string, want string) bool {
	for _, c := range commands {
		if c == want {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

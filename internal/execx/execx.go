// Package execx is a thin seam over os/exec. The pipeline components that
// shell out (pyenv, poetry, git, pre-commit) take a Runner so their command
// sequences can be exercised in tests without the binaries installed.
package execx

import (
	"os/exec"
	"strings"
)

// Runner executes an external command in a working directory and returns
// its combined stdout/stderr.
type Runner interface {
	Run(dir, name string, args ...string) (string, error)
}

// System is the Runner backed by the real os/exec.
type System struct{}

// Run executes name with args in dir, capturing combined output.
func (System) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// Which reports whether name resolves to an executable on PATH.
func Which(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// Package toolchain pins the Python runtime for a scaffolded project and
// binds the dependency manager's virtual environment to it. Both steps are
// best-effort: a missing pyenv or a failed binding is logged and the rest
// of the scaffold still gets produced.
package toolchain

import (
	"fmt"
	"strings"

	"github.com/pyboot-labs/pyboot/internal/execx"
	"github.com/pyboot-labs/pyboot/internal/logger"
)

// Binder runs the version-pinning and environment-binding commands for a
// project directory.
type Binder struct {
	Runner execx.Runner
	Log    *logger.Logger
}

// New returns a Binder using the real command runner.
func New(log *logger.Logger) *Binder {
	return &Binder{Runner: execx.System{}, Log: log}
}

// PinPython sets the local Python version for the project directory via
// `pyenv local`. Failure is reported but never fatal.
func (b *Binder) PinPython(dir, version string) {
	out, err := b.Runner.Run(dir, "pyenv", "local", version)
	if err != nil {
		b.Log.Warnf("pyenv setup failed for Python %s: %v: %s", version, err, out)
		return
	}
	b.Log.Infof("pinned Python %s locally for the project", version)
}

// InitPoetry creates the dependency manifest via `poetry init`. This must
// succeed: the manifest editor and installer both assume the file exists.
func (b *Binder) InitPoetry(dir, projectName string) error {
	out, err := b.Runner.Run(dir, "poetry", "init", "--no-interaction", "--name", projectName)
	if err != nil {
		return fmt.Errorf("poetry init failed: %w: %s", err, out)
	}
	b.Log.Infof("initialized poetry manifest for %s", projectName)
	return nil
}

// BindEnv points poetry's virtual environment at the interpreter pyenv
// resolved for the project directory. Failure is reported but never fatal.
func (b *Binder) BindEnv(dir string) {
	interpreter, err := b.Runner.Run(dir, "pyenv", "which", "python")
	if err != nil {
		b.Log.Warnf("could not resolve pyenv interpreter: %v: %s", err, interpreter)
		return
	}
	interpreter = strings.TrimSpace(interpreter)

	out, err := b.Runner.Run(dir, "poetry", "env", "use", interpreter)
	if err != nil {
		b.Log.Warnf("could not bind poetry environment to %s: %v: %s", interpreter, err, out)
		return
	}
	b.Log.Infof("poetry environment set to use Python at %s", interpreter)
}

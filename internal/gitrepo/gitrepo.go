// Package gitrepo puts a scaffolded project under version control:
// repository init, optional remote registration, and the initial commit
// and push. Unlike dependency installation, these commands are
// all-or-nothing: any failure aborts the run.
package gitrepo

import (
	"fmt"

	"github.com/pyboot-labs/pyboot/internal/execx"
	"github.com/pyboot-labs/pyboot/internal/logger"
)

// DefaultBranch is the branch the initial commit is pushed to.
const DefaultBranch = "master"

// Initializer runs the version-control commands for a project directory.
type Initializer struct {
	Runner execx.Runner
	Log    *logger.Logger
}

// New returns an Initializer using the real command runner.
func New(log *logger.Logger) *Initializer {
	return &Initializer{Runner: execx.System{}, Log: log}
}

// Setup initializes a repository at dir. When remoteURL is non-empty it
// also registers the remote as origin, stages everything, creates the
// initial commit, and pushes. Every command failure propagates.
func (g *Initializer) Setup(dir, remoteURL string) error {
	if err := g.run(dir, "init"); err != nil {
		return err
	}
	g.Log.Infof("initialized git repository")

	if remoteURL == "" {
		return nil
	}

	if err := g.run(dir, "remote", "add", "origin", remoteURL); err != nil {
		return err
	}
	if err := g.run(dir, "add", "."); err != nil {
		return err
	}
	if err := g.run(dir, "commit", "-m", "Initial commit"); err != nil {
		return err
	}
	if err := g.run(dir, "push", "-u", "origin", DefaultBranch); err != nil {
		return err
	}

	g.Log.Infof("pushed initial commit to origin/%s", DefaultBranch)
	return nil
}

func (g *Initializer) run(dir string, args ...string) error {
	out, err := g.Runner.Run(dir, "git", args...)
	if err != nil {
		return fmt.Errorf("git %s failed: %w: %s", args[0], err, out)
	}
	return nil
}

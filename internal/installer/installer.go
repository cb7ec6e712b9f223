// Package installer adds the configured dependencies to a scaffolded
// project, one `poetry add` invocation per dependency. Failures are
// collected per dependency rather than aborting the run: a broken entry
// in one group never blocks the rest of the list, and the caller builds
// the end-of-run summary from the returned outcomes.
package installer

import (
	"fmt"
	"sort"

	"github.com/pyboot-labs/pyboot/internal/execx"
	"github.com/pyboot-labs/pyboot/internal/logger"
	"github.com/pyboot-labs/pyboot/internal/projectconfig"
)

// Outcome is the result of one dependency-add attempt.
type Outcome struct {
	Group string
	Name  string
	Err   error
}

// Failed reports whether the attempt failed.
func (o Outcome) Failed() bool { return o.Err != nil }

// Installer drives the dependency manager for a project directory.
type Installer struct {
	Runner execx.Runner
	Log    *logger.Logger
}

// New returns an Installer using the real command runner.
func New(log *logger.Logger) *Installer {
	return &Installer{Runner: execx.System{}, Log: log}
}

// Install adds every dependency from every group. The "main" group is
// installed first as regular dependencies; all other groups follow in
// sorted order as development dependencies. Order within a group is
// preserved. The returned outcomes cover every attempt, failed or not.
func (in *Installer) Install(dir string, groups map[string][]string, sources map[string]string) []Outcome {
	var outcomes []Outcome
	for _, group := range groupOrder(groups) {
		for _, dep := range groups[group] {
			outcomes = append(outcomes, in.add(dir, group, dep, sources[dep]))
		}
	}
	return outcomes
}

// add runs a single `poetry add` for dep, flagging development groups and
// honoring a per-dependency source repository.
func (in *Installer) add(dir, group, dep, source string) Outcome {
	args := []string{"add"}
	if group != projectconfig.MainGroup {
		args = append(args, "--group", "dev")
	}
	if source != "" {
		args = append(args, "--source", source)
	}
	args = append(args, dep)

	out, err := in.Runner.Run(dir, "poetry", args...)
	if err != nil {
		wrapped := fmt.Errorf("failed to add dependency %q: %w: %s", dep, err, out)
		in.Log.Errorf("%v", wrapped)
		return Outcome{Group: group, Name: dep, Err: wrapped}
	}

	in.Log.Infof("added dependency %s (group %s)", dep, group)
	return Outcome{Group: group, Name: dep}
}

// Failures filters outcomes down to the failed attempts.
func Failures(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Failed() {
			failed = append(failed, o)
		}
	}
	return failed
}

// groupOrder returns "main" first, then the remaining groups sorted.
func groupOrder(groups map[string][]string) []string {
	var rest []string
	for g := range groups {
		if g != projectconfig.MainGroup {
			rest = append(rest, g)
		}
	}
	sort.Strings(rest)

	var order []string
	if _, ok := groups[projectconfig.MainGroup]; ok {
		order = append(order, projectconfig.MainGroup)
	}
	return append(order, rest...)
}

package toolchain

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/pyboot-labs/pyboot/internal/logger"
)

// fakeRunner records invoked commands and returns scripted results.
type fakeRunner struct {
	calls   []string
	results map[string]fakeResult
}

type fakeResult struct {
	out string
	err error
}

func (f *fakeRunner) Run(dir, name string, args ...string) (string, error) {
	call := name + " " + strings.Join(args, " ")
	f.calls = append(f.calls, call)
	if r, ok := f.results[call]; ok {
		return r.out, r.err
	}
	return "", nil
}

func newBinder(runner *fakeRunner) *Binder {
	return &Binder{Runner: runner, Log: logger.NewWithWriter(io.Discard, false)}
}

func TestPinPython_InvokesPyenvLocal(t *testing.T) {
	runner := &fakeRunner{}
	newBinder(runner).PinPython("/tmp/proj", "3.11")

	if len(runner.calls) != 1 || runner.calls[0] != "pyenv local 3.11" {
		t.Errorf("calls = %v, want [pyenv local 3.11]", runner.calls)
	}
}

func TestPinPython_FailureIsNotFatal(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"pyenv local 3.11": {out: "version not installed", err: errors.New("exit status 1")},
	}}

	// Must not panic or propagate; the result is only a warning.
	newBinder(runner).PinPython("/tmp/proj", "3.11")
}

func TestInitPoetry_PropagatesFailure(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"poetry init --no-interaction --name demo": {out: "boom", err: errors.New("exit status 1")},
	}}

	err := newBinder(runner).InitPoetry("/tmp/proj", "demo")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error %q does not include command output", err)
	}
}

func TestBindEnv_UsesResolvedInterpreter(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"pyenv which python": {out: "/home/u/.pyenv/versions/3.11.4/bin/python"},
	}}

	newBinder(runner).BindEnv("/tmp/proj")

	want := []string{
		"pyenv which python",
		"poetry env use /home/u/.pyenv/versions/3.11.4/bin/python",
	}
	if fmt.Sprint(runner.calls) != fmt.Sprint(want) {
		t.Errorf("calls = %v, want %v", runner.calls, want)
	}
}

func TestBindEnv_SkipsPoetryWhenPyenvFails(t *testing.T) {
	runner := &fakeRunner{results: map[string]fakeResult{
		"pyenv which python": {err: errors.New("exit status 1")},
	}}

	newBinder(runner).BindEnv("/tmp/proj")

	if len(runner.calls) != 1 {
		t.Errorf("calls = %v, want only the pyenv lookup", runner.calls)
	}
}

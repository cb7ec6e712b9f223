package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"text/template"

	"github.com/pyboot-labs/pyboot/internal/execx"
	"github.com/pyboot-labs/pyboot/internal/logger"
	"github.com/pyboot-labs/pyboot/internal/projectconfig"
)

//go:embed templates
var templatesFS embed.FS

// Paths of the auxiliary files, relative to the project directory.
const (
	GitignoreFile       = ".gitignore"
	PreCommitConfigFile = ".pre-commit-config.yaml"
	LicenseFile         = "LICENSE"
	ReadmeFile          = "README.md"
	DockerfileFile      = "Dockerfile"
	WorkflowFile        = ".github/workflows/ci.yaml"
)

// Writer emits the auxiliary project files: remote-fetched templates
// (ignore rules, pre-commit config, license text) and local ones (readme,
// container build file, CI workflow).
type Writer struct {
	Client *http.Client
	Runner execx.Runner
	Log    *logger.Logger
}

// New returns a Writer using the default HTTP client and the real command
// runner.
func New(log *logger.Logger) *Writer {
	return &Writer{
		Client: http.DefaultClient,
		Runner: execx.System{},
		Log:    log,
	}
}

// WriteAll produces every auxiliary file for the project. Remote template
// retrieval failures are logged and the file is skipped; local writes are
// fatal. The pre-commit hook installer runs only when its config file was
// actually written.
func (w *Writer) WriteAll(dir string, cfg *projectconfig.Config) error {
	w.writeRemote(dir, GitignoreFile, cfg.GitignoreURL)

	if w.writeRemote(dir, PreCommitConfigFile, cfg.PreCommitConfigURL) {
		w.installPreCommitHooks(dir)
	}

	w.writeRemote(dir, LicenseFile, cfg.LicenseURL)

	if err := w.writeReadme(dir, cfg.ProjectName); err != nil {
		return err
	}
	if err := w.writeDockerfile(dir, cfg.PythonVersion); err != nil {
		return err
	}
	return w.writeWorkflow(dir)
}

// writeRemote fetches url and writes the body to name under dir. It
// reports whether the file was written; retrieval failures only log.
func (w *Writer) writeRemote(dir, name, url string) bool {
	body, err := w.fetch(url)
	if err != nil {
		w.Log.Warnf("skipping %s: %v", name, err)
		return false
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, body, 0644); err != nil {
		w.Log.Warnf("skipping %s: writing file: %v", name, err)
		return false
	}

	w.Log.Infof("created %s", name)
	return true
}

// fetch retrieves a template over plain HTTP GET.
func (w *Writer) fetch(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "pyboot")

	resp, err := w.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body from %s: %w", url, err)
	}
	return body, nil
}

// installPreCommitHooks runs the pre-commit installer in the project
// directory. Failure is a warning: the config file is in place either way.
func (w *Writer) installPreCommitHooks(dir string) {
	out, err := w.Runner.Run(dir, "pre-commit", "install")
	if err != nil {
		w.Log.Warnf("pre-commit install failed: %v: %s", err, out)
		return
	}
	w.Log.Infof("set up pre-commit hooks")
}

func (w *Writer) writeReadme(dir, projectName string) error {
	path := filepath.Join(dir, ReadmeFile)
	content := fmt.Sprintf("# Project %s\n", projectName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing readme: %w", err)
	}
	w.Log.Infof("created %s", ReadmeFile)
	return nil
}

// writeDockerfile renders the container build file with the requested
// runtime version substituted into the fixed template.
func (w *Writer) writeDockerfile(dir, pythonVersion string) error {
	tmplBytes, err := fs.ReadFile(templatesFS, "templates/Dockerfile.tmpl")
	if err != nil {
		return fmt.Errorf("reading Dockerfile template: %w", err)
	}

	tmpl, err := template.New("Dockerfile").Parse(string(tmplBytes))
	if err != nil {
		return fmt.Errorf("parsing Dockerfile template: %w", err)
	}

	var buf bytes.Buffer
	data := struct{ PythonVersion string }{PythonVersion: pythonVersion}
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("executing Dockerfile template: %w", err)
	}

	path := filepath.Join(dir, DockerfileFile)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing Dockerfile: %w", err)
	}
	w.Log.Infof("created %s", DockerfileFile)
	return nil
}

// writeWorkflow copies the CI workflow verbatim: its ${{ }} expressions
// collide with Go's text/template syntax, so it is not processed.
func (w *Writer) writeWorkflow(dir string) error {
	content, err := fs.ReadFile(templatesFS, "templates/ci.yaml")
	if err != nil {
		return fmt.Errorf("reading workflow template: %w", err)
	}

	path := filepath.Join(dir, filepath.FromSlash(WorkflowFile))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating workflow directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("writing workflow: %w", err)
	}
	w.Log.Infof("created %s", WorkflowFile)
	return nil
}

// Package branding provides compile-time identity values for the CLI:
// the command name, environment prefix, home directory, and the default
// public URLs the scaffolder fetches templates from. The values live in
// branding.yaml and are baked into the binary with go:embed.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	GoModule           string `yaml:"go_module"`
	GitHubRepo         string `yaml:"github_repo"`
	GitignoreURL       string `yaml:"gitignore_url"`
	PreCommitConfigURL string `yaml:"pre_commit_config_url"`
	LicenseURL         string `yaml:"license_url"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "pyboot",
			DisplayName:        "Pyboot",
			Description:        "Declarative bootstrapper for new Python projects",
			HomeDir:            ".pyboot",
			EnvPrefix:          "PYBOOT",
			GoModule:           "github.com/pyboot-labs/pyboot",
			GitHubRepo:         "pyboot-labs/pyboot",
			GitignoreURL:       "https://raw.githubusercontent.com/github/gitignore/main/Python.gitignore",
			PreCommitConfigURL: "https://raw.githubusercontent.com/pre-commit/pre-commit-hooks/main/.pre-commit-config.yaml",
			LicenseURL:         "https://raw.githubusercontent.com/licenses/license-templates/master/templates/mit.txt",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "pyboot").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Pyboot").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".pyboot").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "PYBOOT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// GitignoreURL returns the default URL for the ignore-rules template.
func GitignoreURL() string { load(); return defaults.GitignoreURL }

// PreCommitConfigURL returns the default URL for the pre-commit config template.
func PreCommitConfigURL() string { load(); return defaults.PreCommitConfigURL }

// LicenseURL returns the default URL for the license text template.
func LicenseURL() string { load(); return defaults.LicenseURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "PYBOOT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

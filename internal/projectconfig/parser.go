package projectconfig

import (
	"fmt"
	"os"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"

	"github.com/pyboot-labs/pyboot/internal/branding"
	"github.com/pyboot-labs/pyboot/internal/config"
)

// Load reads and validates a project configuration document. The document
// is schema-checked before decoding, version fields are verified, and
// defaults are applied for omitted optional fields. Load has no side
// effects, so any error here means nothing was written to disk yet.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading project config %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating project config %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &SchemaError{Issues: result.Issues}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing project config %s: %w", path, err)
	}

	// The schema already requires project_name; keep the check so a
	// schema edit can't silently drop the one invariant the whole
	// pipeline depends on.
	if cfg.ProjectName == "" {
		return nil, fmt.Errorf("project config %s: project_name is required", path)
	}

	applyDefaults(&cfg)

	if _, err := semver.NewVersion(cfg.Version); err != nil {
		return nil, fmt.Errorf("project config %s: invalid version %q: %w", path, cfg.Version, err)
	}
	if _, err := semver.NewVersion(cfg.PythonVersion); err != nil {
		return nil, fmt.Errorf("project config %s: invalid python_version %q: %w", path, cfg.PythonVersion, err)
	}

	return &cfg, nil
}

// applyDefaults fills omitted optional fields. Each default is layered:
// the document wins, then the user config (~/.pyboot/config.yaml or
// PYBOOT_* env), then the built-in branding value.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = DefaultVersion
	}
	if cfg.PythonVersion == "" {
		cfg.PythonVersion = layered(config.KeyPythonVersion, DefaultPythonVersion)
	}
	if cfg.GitignoreURL == "" {
		cfg.GitignoreURL = layered(config.KeyGitignoreURL, branding.GitignoreURL())
	}
	if cfg.PreCommitConfigURL == "" {
		cfg.PreCommitConfigURL = layered(config.KeyPreCommitConfigURL, branding.PreCommitConfigURL())
	}
	if cfg.LicenseURL == "" {
		cfg.LicenseURL = layered(config.KeyLicenseURL, branding.LicenseURL())
	}
}

func layered(key, fallback string) string {
	if v := config.Get(key); v != "" {
		return v
	}
	return fallback
}

// Package pyproject edits the dependency manifest (pyproject.toml) that
// poetry generates during project initialization. Edits are pure field
// updates: the file is decoded into a generic document, the poetry
// metadata fields are rewritten, and everything else round-trips intact.
package pyproject

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/pyboot-labs/pyboot/internal/projectconfig"
)

// FileName is the manifest file poetry writes into the project directory.
const FileName = "pyproject.toml"

// Update rewrites the poetry metadata in dir's manifest: project name,
// version, readme reference, runtime constraint, and a cleared authors
// list. A missing or unreadable manifest is a fatal error: later steps
// assume a valid manifest exists.
func Update(dir string, cfg *projectconfig.Config) error {
	path := filepath.Join(dir, FileName)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	poetry, err := tableAt(doc, "tool", "poetry")
	if err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}

	poetry["name"] = cfg.ProjectName
	poetry["version"] = cfg.Version
	poetry["readme"] = "README.md"
	poetry["authors"] = []string{}

	deps, ok := poetry["dependencies"].(map[string]interface{})
	if !ok {
		deps = map[string]interface{}{}
		poetry["dependencies"] = deps
	}
	deps["python"] = "^" + cfg.PythonVersion

	out, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// tableAt walks nested tables by key, failing with the dotted path of the
// first missing or mistyped level.
func tableAt(doc map[string]interface{}, keys ...string) (map[string]interface{}, error) {
	cur := doc
	for i, key := range keys {
		next, ok := cur[key].(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("missing [%s] table", dotted(keys[:i+1]))
		}
		cur = next
	}
	return cur, nil
}

func dotted(keys []string) string {
	s := keys[0]
	for _, k := range keys[1:] {
		s += "." + k
	}
	return s
}

// Package structure materializes a declarative directory/file description
// on disk. Creation is idempotent: existing directories are reused and
// existing files are left untouched, so re-running a scaffold against the
// same base path produces an identical tree.
package structure

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/pyboot-labs/pyboot/internal/logger"
	"github.com/pyboot-labs/pyboot/internal/projectconfig"
)

// PackageMarker is the empty file ensured inside every directory whose
// project-relative path contains a "src" segment, so scaffolded source
// trees import as Python packages.
const PackageMarker = "__init__.py"

// Build creates every directory and placeholder file described by entries
// under the project base directory. Files are created empty only when
// absent.
func Build(log *logger.Logger, base string, entries []projectconfig.Entry) error {
	return build(log, base, "", entries)
}

// build walks entries rooted at rel (a slash-separated path relative to
// the project base).
func build(log *logger.Logger, base, rel string, entries []projectconfig.Entry) error {
	for _, entry := range entries {
		relPath := path.Join(rel, filepath.ToSlash(entry.Name))
		absPath := filepath.Join(base, filepath.FromSlash(relPath))

		if !entry.IsDir {
			if err := touch(absPath); err != nil {
				return fmt.Errorf("creating file %s: %w", absPath, err)
			}
			log.Debugf("created file %s", absPath)
			continue
		}

		if err := os.MkdirAll(absPath, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", absPath, err)
		}
		log.Debugf("created directory %s", absPath)

		if hasSrcSegment(relPath) {
			marker := filepath.Join(absPath, PackageMarker)
			if err := touch(marker); err != nil {
				return fmt.Errorf("creating package marker %s: %w", marker, err)
			}
			log.Debugf("created package marker %s", marker)
		}

		if err := build(log, base, relPath, entry.Children); err != nil {
			return err
		}
	}
	return nil
}

// touch creates an empty file if none exists, leaving existing content alone.
func touch(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	return f.Close()
}

// hasSrcSegment reports whether any segment of the slash-separated
// project-relative path equals "src".
func hasSrcSegment(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if seg == "src" {
			return true
		}
	}
	return false
}

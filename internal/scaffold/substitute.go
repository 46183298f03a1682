package scaffold

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// substitutePatterns selects which generated files the secondary pass
// rewrites. Matched against the base file name.
var substitutePatterns = []string{
	"*.py", "*.md", "*.toml", "*.yaml", "*.yml", "*.json",
	"Dockerfile", "Makefile", "*.sh",
}

// SubstituteTree re-applies the placeholder substitutions over files already
// written under root. It is a best-effort second pass: per-file failures are
// collected and returned, never aborting the walk. Hidden directories and
// cache directories are not descended into.
func (m Materializer) SubstituteTree(root string) []error {
	var errs []error

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, fmt.Errorf("walking %s: %w", path, err))
			return nil
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), ".") || d.Name() == skipDirName) {
				return fs.SkipDir
			}
			return nil
		}
		if !matchesSubstitutePattern(d.Name()) {
			return nil
		}

		content, readErr := os.ReadFile(path)
		if readErr != nil {
			errs = append(errs, fmt.Errorf("reading %s: %w", path, readErr))
			return nil
		}

		rendered := m.substitute(string(content))
		if rendered == string(content) {
			return nil
		}
		if writeErr := os.WriteFile(path, []byte(rendered), 0o644); writeErr != nil {
			errs = append(errs, fmt.Errorf("rewriting %s: %w", path, writeErr))
		}
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	return errs
}

func matchesSubstitutePattern(name string) bool {
	for _, pattern := range substitutePatterns {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}

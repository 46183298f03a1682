// Package scaffold copies template trees into a destination directory,
// substituting the project-name placeholder and stripping the template-file
// suffix on the way.
//
// This is deliberately not a templating language: substitution is a literal
// string replacement, with no loops or conditionals.
package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// TemplateSuffix marks a file whose content carries placeholders.
	// It is stripped from the destination file name.
	TemplateSuffix = ".tmpl"

	// PlaceholderProjectName is the only placeholder defined today.
	PlaceholderProjectName = "{{project_name}}"
)

// Names skipped during materialization: filesystem metadata sentinels and
// interpreter cache directories that may leak into a template tree.
const (
	skipFileName = ".DS_Store"
	skipDirName  = "__pycache__"
)

// ErrTemplateMissing indicates an absent or unreadable template tree.
var ErrTemplateMissing = errors.New("template directory missing")

// Status is the per-file outcome of a materialization.
type Status string

const (
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Action records what happened to one template file.
type Action struct {
	RelPath     string // destination path relative to the project root
	WasTemplate bool   // true when the template suffix was stripped
	Status      Status
}

// MaterializeError reports the file that aborted a materialization.
type MaterializeError struct {
	Path  string
	Cause error
}

func (e *MaterializeError) Error() string {
	return fmt.Sprintf("materializing %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying read/write error.
func (e *MaterializeError) Unwrap() error {
	return e.Cause
}

// Materializer copies a template tree with literal placeholder substitution.
type Materializer struct {
	// Substitutions maps placeholder tokens to replacement text. Applied to
	// file content only, never to file names. Keys are applied in sorted
	// order so the result is deterministic if placeholders ever overlap.
	Substitutions map[string]string
}

// Materialize reproduces the template tree src under destRoot.
//
// Every file is visited; cache directories are skipped entirely and metadata
// sentinels are recorded as skipped. The output tree is a structural mirror
// of the input modulo the template-suffix stripping. The first read or write
// error aborts the whole operation with a MaterializeError; cleanup of any
// partial output is the caller's responsibility.
func (m Materializer) Materialize(src fs.FS, destRoot string) ([]Action, error) {
	var actions []Action

	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == "." {
				return fmt.Errorf("%w: %v", ErrTemplateMissing, err)
			}
			return &MaterializeError{Path: path, Cause: err}
		}

		if d.IsDir() {
			if d.Name() == skipDirName {
				return fs.SkipDir
			}
			if path == "." {
				return os.MkdirAll(destRoot, 0o755)
			}
			return os.MkdirAll(filepath.Join(destRoot, filepath.FromSlash(path)), 0o755)
		}

		if d.Name() == skipFileName {
			actions = append(actions, Action{RelPath: path, Status: StatusSkipped})
			return nil
		}

		relDest, wasTemplate := destName(path)
		action := Action{RelPath: relDest, WasTemplate: wasTemplate}

		content, readErr := fs.ReadFile(src, path)
		if readErr != nil {
			action.Status = StatusFailed
			actions = append(actions, action)
			return &MaterializeError{Path: path, Cause: readErr}
		}

		destPath := filepath.Join(destRoot, filepath.FromSlash(relDest))
		if mkErr := os.MkdirAll(filepath.Dir(destPath), 0o755); mkErr != nil {
			action.Status = StatusFailed
			actions = append(actions, action)
			return &MaterializeError{Path: relDest, Cause: mkErr}
		}

		rendered := m.substitute(string(content))
		if writeErr := os.WriteFile(destPath, []byte(rendered), 0o644); writeErr != nil {
			action.Status = StatusFailed
			actions = append(actions, action)
			return &MaterializeError{Path: relDest, Cause: writeErr}
		}

		action.Status = StatusCreated
		actions = append(actions, action)
		return nil
	})
	if err != nil {
		return actions, err
	}
	return actions, nil
}

// substitute applies all placeholder replacements to content in a fixed
// deterministic key order.
func (m Materializer) substitute(content string) string {
	if len(m.Substitutions) == 0 {
		return content
	}
	keys := make([]string, 0, len(m.Substitutions))
	for k := range m.Substitutions {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		content = strings.ReplaceAll(content, k, m.Substitutions[k])
	}
	return content
}

// destName strips the template suffix from a tree-relative path.
func destName(path string) (string, bool) {
	if strings.HasSuffix(path, TemplateSuffix) {
		return strings.TrimSuffix(path, TemplateSuffix), true
	}
	return path, false
}

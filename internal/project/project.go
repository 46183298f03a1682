// Package project decides where a generated project lives and whether a
// directory is a valid scaffolding target.
package project

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
)

// CurrentDirSentinel is the reserved project name meaning "scaffold into the
// current directory" (self-target mode). It bypasses name validation and
// relaxes the emptiness check.
const CurrentDirSentinel = "."

// Marker files that identify a directory as a generated project.
const (
	markerManifest = "pyproject.toml"
	markerSrcDir   = "src"
)

var nameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

var (
	// ErrInvalidName indicates a project name that is not a valid identifier.
	ErrInvalidName = errors.New("invalid project name")

	// ErrDirectoryNotEmpty indicates a non-empty target directory.
	ErrDirectoryNotEmpty = errors.New("directory already exists and is not empty")

	// ErrNotAGeneratedProject indicates a path that was not produced by create.
	ErrNotAGeneratedProject = errors.New("not a generated project")
)

// Target is a resolved scaffolding destination.
type Target struct {
	Dir        string // absolute destination directory
	SelfTarget bool   // true when scaffolding into the current directory
	Populated  bool   // true when the destination already contains files
}

// ValidName reports whether name is an acceptable project name: letters,
// digits, underscores or hyphens, starting with a letter. The current-directory
// sentinel always passes.
func ValidName(name string) bool {
	if name == CurrentDirSentinel {
		return true
	}
	return nameRegex.MatchString(name)
}

// ValidateName returns ErrInvalidName for names that ValidName rejects.
func ValidateName(name string) error {
	if !ValidName(name) {
		return fmt.Errorf("%w: %q (must start with a letter and contain only letters, digits, underscores, or hyphens)", ErrInvalidName, name)
	}
	return nil
}

// ResolveDir resolves the destination directory for a new project.
// The sentinel name targets outputDir itself (self-target mode); any other
// name targets outputDir/name. A populated non-self-target destination fails
// with ErrDirectoryNotEmpty; in self-target mode the caller is expected to
// warn and proceed.
func ResolveDir(name, outputDir string) (Target, error) {
	selfTarget := name == CurrentDirSentinel

	dir := outputDir
	if !selfTarget {
		dir = filepath.Join(outputDir, name)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Target{}, fmt.Errorf("resolving target directory %s: %w", dir, err)
	}

	populated, err := dirPopulated(abs)
	if err != nil {
		return Target{}, err
	}
	if populated && !selfTarget {
		return Target{}, fmt.Errorf("%w: %s", ErrDirectoryNotEmpty, abs)
	}

	return Target{Dir: abs, SelfTarget: selfTarget, Populated: populated}, nil
}

// IsGenerated reports whether path looks like a previously generated project:
// both the package manifest and the source subdirectory must exist.
func IsGenerated(path string) bool {
	if info, err := os.Stat(filepath.Join(path, markerManifest)); err != nil || info.IsDir() {
		return false
	}
	if info, err := os.Stat(filepath.Join(path, markerSrcDir)); err != nil || !info.IsDir() {
		return false
	}
	return true
}

// dirPopulated reports whether path exists and contains at least one entry.
func dirPopulated(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("inspecting target directory %s: %w", path, err)
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading target directory %s: %w", path, err)
	}
	return true, nil
}

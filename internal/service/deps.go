package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// AppendRequirements appends the entries missing from the requirements file
// at path, preceded by header. An entry is considered present when an
// existing line starts with the entry's package name, so re-running does not
// duplicate an already-declared dependency. Returns the entries added.
func AppendRequirements(path, header string, entries []string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			data = nil
		} else {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	lines := strings.Split(string(data), "\n")

	var missing []string
	for _, entry := range entries {
		if requirementDeclared(lines, entry) {
			continue
		}
		missing = append(missing, entry)
	}
	if len(missing) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	if len(data) > 0 && !strings.HasSuffix(string(data), "\n") {
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	if header != "" {
		sb.WriteString(header + "\n")
	}
	for _, entry := range missing {
		sb.WriteString(entry + "\n")
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(sb.String()); err != nil {
		return nil, fmt.Errorf("appending to %s: %w", path, err)
	}
	return missing, nil
}

func requirementDeclared(lines []string, entry string) bool {
	prefix := packageName(entry)
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			return true
		}
	}
	return false
}

// AddPyprojectDependencies adds the given dependency declarations to the
// [project].dependencies array of the pyproject.toml at path. A dependency is
// skipped when the array already declares its package name (prefix match on
// the name before any extras or version specifier). Returns the entries
// added. A missing file is not an error: there is nothing to patch.
func AddPyprojectDependencies(path string, deps []string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	projectTable, _ := doc["project"].(map[string]any)
	if projectTable == nil {
		return nil, nil
	}
	existing := dependencyStrings(projectTable["dependencies"])

	var added []string
	for _, dep := range deps {
		if dependencyDeclared(existing, dep) {
			continue
		}
		existing = append(existing, dep)
		added = append(added, dep)
	}
	if len(added) == 0 {
		return nil, nil
	}

	projectTable["dependencies"] = existing
	doc["project"] = projectTable

	out, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}
	return added, nil
}

func dependencyStrings(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func dependencyDeclared(existing []string, dep string) bool {
	name := packageName(dep)
	for _, e := range existing {
		if packageName(e) == name {
			return true
		}
	}
	return false
}

// packageName strips extras and version specifiers from a dependency
// declaration: "python-jose[cryptography]>=3.3.0" → "python-jose".
func packageName(dep string) string {
	name := strings.TrimSpace(dep)
	if i := strings.IndexAny(name, "[<>=~! "); i >= 0 {
		name = name[:i]
	}
	return name
}

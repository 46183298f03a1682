package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fastgen-io/fastgen/internal/manifest"
	"github.com/fastgen-io/fastgen/internal/output"
)

// Vercel is the deployment-configuration overlay: a vercel.json platform
// manifest, a .vercelignore, and the build-time dependency Vercel's Python
// runtime needs.
type Vercel struct{}

// NewVercel returns the Vercel overlay.
func NewVercel() *Vercel {
	return &Vercel{}
}

func (v *Vercel) ID() string { return "vercel" }

func (v *Vercel) Describe() string {
	return "Vercel serverless deployment configuration"
}

// vercelConfig mirrors the vercel.json platform manifest layout.
type vercelConfig struct {
	Version int            `json:"version"`
	Builds  []vercelBuild  `json:"builds"`
	Routes  []vercelRoute  `json:"routes"`
}

type vercelBuild struct {
	Src    string            `json:"src"`
	Use    string            `json:"use"`
	Config map[string]string `json:"config"`
}

type vercelRoute struct {
	Src  string `json:"src"`
	Dest string `json:"dest"`
}

// removePaths is the fixed manifest of files Apply creates. Remove deletes
// exactly these; the requirements entry added by Apply stays behind.
var vercelRemovePaths = []string{"vercel.json", ".vercelignore", ".vercel"}

const vercelIgnore = `# Python
__pycache__/
*.py[cod]

# Virtual environments
venv/
env/
.venv/

# Environment
.env
.env.local

# IDE
.idea/
.vscode/
*.swp

# Local development
*.log

# Testing
.coverage
htmlcov/
.pytest_cache/

# Build
dist/
build/
*.egg-info/

# Project specific
tests/
`

// Apply writes the Vercel deployment files and appends the build-time
// dependency. Steps run in order without cross-step rollback.
func (v *Vercel) Apply(projectRoot string) error {
	cfg := vercelConfig{
		Version: 2,
		Builds: []vercelBuild{{
			Src: "src/index.py",
			Use: "@vercel/python",
			Config: map[string]string{
				"maxLambdaSize": "15mb",
				"pythonVersion": "3.9",
			},
		}},
		Routes: []vercelRoute{{Src: "/(.*)", Dest: "/src/index.py"}},
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling vercel.json: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(projectRoot, "vercel.json"), data, 0o644); err != nil {
		return fmt.Errorf("writing vercel.json: %w", err)
	}

	if err := os.WriteFile(filepath.Join(projectRoot, ".vercelignore"), []byte(vercelIgnore), 0o644); err != nil {
		return fmt.Errorf("writing .vercelignore: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(projectRoot, ".vercel"), 0o755); err != nil {
		return fmt.Errorf("creating .vercel directory: %w", err)
	}

	added, err := AppendRequirements(
		filepath.Join(projectRoot, "requirements.txt"),
		"# Vercel specific",
		[]string{"python-multipart"},
	)
	if err != nil {
		return fmt.Errorf("patching requirements.txt: %w", err)
	}
	for _, dep := range added {
		output.Debug("requirements entry added", "dep", dep)
	}

	return recordService(projectRoot, v.ID(), true)
}

// Remove deletes the Vercel deployment files and clears the record entry.
func (v *Vercel) Remove(projectRoot string) (bool, error) {
	removed := false
	for _, rel := range vercelRemovePaths {
		p := filepath.Join(projectRoot, rel)
		info, err := os.Stat(p)
		if err != nil {
			continue
		}
		if info.IsDir() {
			err = os.RemoveAll(p)
		} else {
			err = os.Remove(p)
		}
		if err != nil {
			return removed, fmt.Errorf("removing %s: %w", rel, err)
		}
		output.Debug("removed", "path", rel)
		removed = true
	}

	if err := recordService(projectRoot, v.ID(), false); err != nil {
		return removed, err
	}
	return removed, nil
}

// recordService toggles id in the project record and persists it.
func recordService(projectRoot, id string, enabled bool) error {
	path := manifest.PathFor(projectRoot)
	rec, err := manifest.Load(path)
	if err != nil {
		return fmt.Errorf("loading project record: %w", err)
	}

	changed := false
	if enabled {
		changed = rec.AddService(id)
	} else {
		changed = rec.RemoveService(id)
	}
	if !changed {
		return nil
	}
	if err := manifest.Save(path, rec); err != nil {
		return fmt.Errorf("saving project record: %w", err)
	}
	return nil
}

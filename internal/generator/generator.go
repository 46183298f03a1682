// Package generator sequences the top-level workflows: create a project,
// add or remove a service overlay, list the available overlays.
package generator

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fastgen-io/fastgen/internal/manifest"
	"github.com/fastgen-io/fastgen/internal/output"
	"github.com/fastgen-io/fastgen/internal/project"
	"github.com/fastgen-io/fastgen/internal/scaffold"
	"github.com/fastgen-io/fastgen/internal/service"
	"github.com/fastgen-io/fastgen/templates"
)

// defaultRequirements seeds requirements.txt when the base template tree does
// not carry one.
const defaultRequirements = `fastapi>=0.68.0
uvicorn>=0.15.0
python-multipart
python-jose[cryptography]
passlib[bcrypt]
python-dotenv
`

// Generator drives project creation and overlay management.
type Generator struct {
	tfs      fs.FS // template tree root (base/ and services/ live under it)
	registry *service.Registry
}

// New returns a generator backed by the embedded templates and the built-in
// overlay registry.
func New() *Generator {
	return &Generator{tfs: templates.FS, registry: service.DefaultRegistry()}
}

// NewWith builds a generator with an explicit template tree and registry.
func NewWith(tfs fs.FS, registry *service.Registry) *Generator {
	return &Generator{tfs: tfs, registry: registry}
}

// CreateOptions names the project and where to put it.
type CreateOptions struct {
	Name      string // project name, or the current-directory sentinel
	OutputDir string // parent directory; defaults to "."
}

// CreateResult reports what Create produced.
type CreateResult struct {
	ProjectName string
	Dir         string
	SelfTarget  bool
	Actions     []scaffold.Action
}

// Create materializes a new project from the base template tree.
//
// On any failure before completion the destination directory is removed
// entirely — except in self-target mode, where partial writes into the
// pre-existing directory are accepted and never rolled back.
func (g *Generator) Create(opts CreateOptions) (result *CreateResult, err error) {
	if err := project.ValidateName(opts.Name); err != nil {
		return nil, err
	}

	outputDir := opts.OutputDir
	if outputDir == "" {
		outputDir = "."
	}

	target, err := project.ResolveDir(opts.Name, outputDir)
	if err != nil {
		return nil, err
	}
	if target.SelfTarget && target.Populated {
		output.Warn("current directory is not empty; existing files may be overwritten")
	}

	projectName := opts.Name
	if target.SelfTarget {
		projectName = filepath.Base(target.Dir)
	}

	// All-or-nothing at the top level: wipe the destination on failure,
	// unless we are writing into a pre-existing directory.
	defer func() {
		if err != nil && !target.SelfTarget {
			os.RemoveAll(target.Dir)
		}
	}()

	if err = os.MkdirAll(target.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating project directory %s: %w", target.Dir, err)
	}

	base, subErr := fs.Sub(g.tfs, "base")
	if subErr != nil {
		err = fmt.Errorf("%w: base: %v", scaffold.ErrTemplateMissing, subErr)
		return nil, err
	}

	m := scaffold.Materializer{
		Substitutions: map[string]string{scaffold.PlaceholderProjectName: projectName},
	}

	output.Step("Copying project files")
	actions, matErr := m.Materialize(base, target.Dir)
	if matErr != nil {
		err = matErr
		return nil, err
	}
	for _, a := range actions {
		if a.Status == scaffold.StatusCreated {
			output.Item("Created: " + a.RelPath)
		}
	}

	if err = seedRequirements(target.Dir); err != nil {
		return nil, err
	}
	if err = copyEnvExample(target.Dir); err != nil {
		return nil, err
	}

	rec := manifest.New(projectName)
	if err = manifest.Save(filepath.Join(target.Dir, manifest.DefaultFileName), rec); err != nil {
		return nil, err
	}

	// Secondary substitution pass. Best-effort: a failure here leaves a
	// usable project, so warn and keep going.
	for _, passErr := range m.SubstituteTree(target.Dir) {
		output.Warn("substitution pass", "error", passErr.Error())
	}

	if !project.IsGenerated(target.Dir) {
		output.Warn("generated project is missing expected structure", "dir", target.Dir)
	}

	return &CreateResult{
		ProjectName: projectName,
		Dir:         target.Dir,
		SelfTarget:  target.SelfTarget,
		Actions:     actions,
	}, nil
}

// AddService applies the named overlay to an existing generated project.
func (g *Generator) AddService(id, projectRoot string) error {
	o, err := g.gate(id, projectRoot)
	if err != nil {
		return err
	}
	return o.Apply(projectRoot)
}

// RemoveService reverts the named overlay. The returned flag reports whether
// any overlay file was actually deleted; "nothing found" is not an error.
func (g *Generator) RemoveService(id, projectRoot string) (bool, error) {
	o, err := g.gate(id, projectRoot)
	if err != nil {
		return false, err
	}
	return o.Remove(projectRoot)
}

// Services returns the registered overlays. Pure registry read, no I/O.
func (g *Generator) Services() []service.Overlay {
	return g.registry.List()
}

// gate validates the target project and resolves the overlay.
func (g *Generator) gate(id, projectRoot string) (service.Overlay, error) {
	if !project.IsGenerated(projectRoot) {
		return nil, fmt.Errorf("%w: %s (missing pyproject.toml or src/)", project.ErrNotAGeneratedProject, projectRoot)
	}
	return g.registry.Lookup(id)
}

func seedRequirements(dir string) error {
	path := filepath.Join(dir, "requirements.txt")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(defaultRequirements), 0o644); err != nil {
		return fmt.Errorf("seeding requirements.txt: %w", err)
	}
	output.Item("Created: requirements.txt")
	return nil
}

// copyEnvExample copies .env.example to .env so the project runs out of the
// box. An existing .env is left alone.
func copyEnvExample(dir string) error {
	src := filepath.Join(dir, ".env.example")
	dst := filepath.Join(dir, ".env")
	if _, err := os.Stat(src); err != nil {
		return nil
	}
	if _, err := os.Stat(dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening .env.example: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating .env: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying .env.example to .env: %w", err)
	}
	output.Item("Created: .env")
	return nil
}

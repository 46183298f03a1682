package service

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fastgen-io/fastgen/internal/output"
	"github.com/fastgen-io/fastgen/internal/scaffold"
	"github.com/fastgen-io/fastgen/templates"
)

// GoogleOAuth is the authentication overlay: OAuth endpoint and service
// source files, the environment keys the flow needs, and the auth
// dependencies in pyproject.toml.
type GoogleOAuth struct {
	// tfs overrides the embedded template tree root in tests.
	tfs fs.FS
}

// NewGoogleOAuth returns the Google OAuth overlay backed by the embedded
// templates.
func NewGoogleOAuth() *GoogleOAuth {
	return &GoogleOAuth{tfs: templates.FS}
}

func (g *GoogleOAuth) ID() string { return "google_oauth" }

func (g *GoogleOAuth) Describe() string {
	return "Google OAuth2 sign-in endpoints with JWT sessions"
}

// googleOAuthEnv is the fixed required-key list Apply ensures in .env.
var googleOAuthEnv = []EnvBlock{
	{
		Comment: "# Google OAuth Configuration",
		Lines: []string{
			"GOOGLE_CLIENT_ID=your_google_client_id_here",
			"GOOGLE_CLIENT_SECRET=your_google_client_secret_here",
			"GOOGLE_REDIRECT_URI=http://localhost:8000/auth/google/callback",
		},
	},
	{
		Comment: "# JWT Configuration",
		Lines: []string{
			"SECRET_KEY=your-secret-key-here",
			"ALGORITHM=HS256",
			"ACCESS_TOKEN_EXPIRE_MINUTES=30",
		},
	},
}

// googleOAuthDeps are appended to [project].dependencies in pyproject.toml.
var googleOAuthDeps = []string{
	"python-jose[cryptography]>=3.3.0",
	"aiohttp>=3.8.0",
	"python-multipart>=0.0.5",
}

// googleOAuthRemovePaths is the fixed manifest of files Remove deletes.
// Environment keys and dependencies added by Apply are left behind.
var googleOAuthRemovePaths = []string{
	"src/infrastructure/services/oauth_utils.py",
	"src/infrastructure/services/auth_service.py",
	"src/infrastructure/api/v1/endpoints/auth.py",
}

// Apply ensures the env keys, copies the overlay template subtree, appends
// the auth dependencies, and records the service. Steps run in order; edits
// made by an earlier step persist when a later step fails.
func (g *GoogleOAuth) Apply(projectRoot string) error {
	added, err := EnsureEnvEntries(filepath.Join(projectRoot, ".env"), googleOAuthEnv)
	if err != nil {
		return fmt.Errorf("patching .env: %w", err)
	}
	for _, key := range added {
		output.Debug("env entry added", "key", key)
	}

	sub, err := fs.Sub(g.tfs, "services/google_oauth")
	if err != nil {
		return fmt.Errorf("%w: services/google_oauth: %v", scaffold.ErrTemplateMissing, err)
	}
	actions, err := scaffold.Materializer{}.Materialize(sub, projectRoot)
	if err != nil {
		return fmt.Errorf("copying oauth templates: %w", err)
	}
	for _, a := range actions {
		if a.Status == scaffold.StatusCreated {
			output.Item("Added: " + a.RelPath)
		}
	}

	deps, err := AddPyprojectDependencies(filepath.Join(projectRoot, "pyproject.toml"), googleOAuthDeps)
	if err != nil {
		return fmt.Errorf("patching pyproject.toml: %w", err)
	}
	for _, dep := range deps {
		output.Debug("pyproject dependency added", "dep", dep)
	}

	return recordService(projectRoot, g.ID(), true)
}

// Remove deletes the overlay's source files and clears the record entry.
// Environment keys added by Apply stay; removing them is the user's call.
func (g *GoogleOAuth) Remove(projectRoot string) (bool, error) {
	removed := false
	for _, rel := range googleOAuthRemovePaths {
		p := filepath.Join(projectRoot, filepath.FromSlash(rel))
		if err := os.Remove(p); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, fmt.Errorf("removing %s: %w", rel, err)
		}
		output.Item("Removed: " + rel)
		removed = true
	}

	if err := recordService(projectRoot, g.ID(), false); err != nil {
		return removed, err
	}
	return removed, nil
}

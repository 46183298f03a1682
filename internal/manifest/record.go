// Package manifest persists the per-project record that tracks which
// services have been layered onto a generated project.
//
// The record lives at the project root as fastgen.json (or fastgen.yaml /
// fastgen.yml); the serialization format follows the file extension.
package manifest

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultFileName is the canonical record file written at project creation.
const DefaultFileName = "fastgen.json"

// recordFileNames are the recognized record files, in lookup order.
var recordFileNames = []string{DefaultFileName, "fastgen.yaml", "fastgen.yml"}

// Record is the persisted project record.
//
// ProjectName and CreatedAt are set once at creation and never mutated.
// Services holds each enabled service identifier at most once; an identifier
// is present exactly when that service's overlay files are present in the
// project (best-effort — the overlay write and the record update are not
// transactional).
type Record struct {
	ProjectName string   `json:"project_name" yaml:"project_name"`
	CreatedAt   string   `json:"created_at" yaml:"created_at"`
	Services    []string `json:"services" yaml:"services"`
}

// New returns a fresh record for a just-created project.
func New(projectName string) *Record {
	return &Record{
		ProjectName: projectName,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		Services:    []string{},
	}
}

// HasService reports whether id is enabled.
func (r *Record) HasService(id string) bool {
	for _, s := range r.Services {
		if s == id {
			return true
		}
	}
	return false
}

// AddService enables id. Returns false when id was already enabled.
func (r *Record) AddService(id string) bool {
	if r.HasService(id) {
		return false
	}
	r.Services = append(r.Services, id)
	return true
}

// RemoveService disables id. Returns false when id was not enabled.
func (r *Record) RemoveService(id string) bool {
	kept := r.Services[:0]
	removed := false
	for _, s := range r.Services {
		if s == id {
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	r.Services = kept
	return removed
}

// PathFor returns the record path inside projectRoot, preferring an existing
// record file in any recognized format and falling back to the default.
func PathFor(projectRoot string) string {
	for _, name := range recordFileNames {
		p := filepath.Join(projectRoot, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return filepath.Join(projectRoot, DefaultFileName)
}

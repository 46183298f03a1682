package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Save serializes the record and writes it to path, creating parent
// directories as needed. Serialization is deterministic (fixed key order) so
// diffs stay readable. The write is a direct overwrite, not an atomic
// temp-file rename: a crash mid-write can corrupt the file.
func Save(path string, rec *Record) error {
	if rec == nil {
		return fmt.Errorf("record cannot be nil")
	}

	var data []byte
	var err error
	if isYAMLPath(path) {
		data, err = yaml.Marshal(rec)
	} else {
		data, err = json.MarshalIndent(rec, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	}
	if err != nil {
		return fmt.Errorf("marshaling project record: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating record directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing project record %s: %w", path, err)
	}
	return nil
}

package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// schemaBytes holds the embedded JSON Schema for the record.
// Set by the schemas package init, or by SetSchema in tests.
// When unset, schema validation is skipped.
var schemaBytes []byte

// SetSchema installs the JSON Schema used to validate loaded records.
func SetSchema(data []byte) {
	schemaBytes = data
}

// CorruptError indicates a record file that exists but cannot be parsed,
// or that fails schema validation.
type CorruptError struct {
	Path  string
	Cause error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt project record %s: %v", e.Path, e.Cause)
}

// Unwrap returns the parse or validation error.
func (e *CorruptError) Unwrap() error {
	return e.Cause
}

// Load reads a record file. A missing file yields an empty record, so callers
// can treat "no record yet" and "record with no services" identically.
// The format follows the file extension: .yaml/.yml is YAML, anything else JSON.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Record{Services: []string{}}, nil
		}
		return nil, fmt.Errorf("reading project record %s: %w", path, err)
	}

	var rec Record
	if isYAMLPath(path) {
		err = yaml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return nil, &CorruptError{Path: path, Cause: err}
	}
	if rec.Services == nil {
		rec.Services = []string{}
	}

	if err := validateRecord(path, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// validateRecord checks the record against the embedded JSON Schema.
// The record is re-marshaled to JSON first so YAML records are held to the
// same shape.
func validateRecord(path string, rec *Record) error {
	if len(schemaBytes) == 0 {
		return nil
	}

	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling record for validation: %w", err)
	}

	result, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaBytes), gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("running record schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return &CorruptError{Path: path, Cause: fmt.Errorf("schema violation: %s", strings.Join(msgs, "; "))}
	}
	return nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Package schemas embeds the project-record JSON Schema and registers it with
// the manifest package on import. CLI entry points should import this package
// with a blank identifier: import _ "github.com/fastgen-io/fastgen/schemas"
package schemas

import (
	"embed"

	"github.com/fastgen-io/fastgen/internal/manifest"
)

//go:embed fastgen.schema.json
var fs embed.FS

func init() {
	data, err := fs.ReadFile("fastgen.schema.json")
	if err != nil {
		panic("schemas: failed to read embedded fastgen.schema.json: " + err.Error())
	}
	manifest.SetSchema(data)
}

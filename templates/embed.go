// Package templates bundles the project template trees consumed by the
// scaffolding engine. The layout is a fixed contract: files ending in .tmpl
// carry the {{project_name}} placeholder and lose the suffix on output.
package templates

import "embed"

// FS contains the base project tree under base/ and one subtree per service
// overlay under services/<id>/.
//
//go:embed all:base all:services
var FS embed.FS

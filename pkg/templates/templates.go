// Package templates provides embedded YAML configuration templates.
package templates

import _ "embed"

// ConfigYAML contains the default config.yaml template for application configuration.
//
//go:embed config.yaml
var ConfigYAML string

// LayoutYAML contains the default layout.yaml template with accepted
// column names of recipe and reference tables.
//
//go:embed layout.yaml
var LayoutYAML string

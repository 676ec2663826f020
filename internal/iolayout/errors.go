package iolayout

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnnutri/pkg/errcode"
)

// LayoutFileError creates an error for when layout.yaml
// cannot be loaded.
func LayoutFileError(path string, err error) error {
	msg := `Cannot load column layout

<em>Layout file:</em> %s

<em>Possible causes:</em>
  - Invalid YAML format
  - Permission denied

<em>How to fix:</em>
  1. Validate YAML syntax
  2. Remove the file, a default one is created on the next run`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.LayoutConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load layout %s: %w", path, err),
	}
}

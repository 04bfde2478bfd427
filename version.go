package bidicaret

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version is the module version without a leading v. caretwalk reports it
// for --version.
func Version() string { return strings.TrimSpace(embeddedVersion) }

//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of zenv embedded at build time.
// It is printed by the CLI when users pass --version.
var Version = strings.TrimSpace(version)

const (
	// Name is the canonical command identifier. It appears in help text,
	// the default config path, and the prefix of environment variables
	// read by the CLI.
	Name = "zenv"
	// Description is a short summary of the project used in help output.
	Description = "Run a command with environment variables loaded from a .env file"
	// EnvPrefix prefixes environment variables that configure zenv itself.
	EnvPrefix = "ZENV_"
)

// AuthorInfo represents an individual author's name and email address.
type AuthorInfo struct {
	// Name is the author's preferred name or handle.
	Name string
	// Email is the author's contact email address.
	Email string
}

// Author lists the primary author(s) of the project for display in metadata.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}

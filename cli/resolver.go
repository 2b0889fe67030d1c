package cli

import (
	"io"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/zenv/dotenv"
)

// resolve is a [kong.ConfigurationLoader] that reads a configuration file
// written in .env syntax.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config")
//
// Each entry names a flag. Flag names with hyphens (e.g., "log-level") may
// use underscores instead (e.g., "log_level"). Values are passed to kong as
// strings, so booleans are written true or false and lists are separated by
// commas. References are not expanded.
//
// Example config file:
//
//	# ~/.config/zenv/config
//	log_level=debug
//	log_format=json
//	log_pretty=false
//	file=.env,.env.local
//
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	doc, err := dotenv.ParseReader(r)
	if err != nil {
		return nil, err
	}

	return config(doc.Map()), nil
}

// config implements [kong.Resolver] for .env configs.
type config map[string]string

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	// No validation needed: unknown keys are ignored.
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	for _, name := range []string{
		flag.Name,
		strings.ReplaceAll(flag.Name, "-", "_"),
	} {
		if value, ok := r[name]; ok {
			return value, nil
		}
	}

	// Not found - return nil to let kong use defaults
	return nil, nil
}

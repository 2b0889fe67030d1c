// Package cmd implements the zenv subcommands.
//
// Every command reads the files named by the global --file flag through the
// [Source] stored in its context with [WithSource]. The kong context, stored
// with [WithContext], supplies the output writers and the variables set by
// package cli.
package cmd

var (
	// ConfigIdentifier is the kong variable identifier containing the path to
	// the user configuration file.
	ConfigIdentifier = "config"

	// FormatsIdentifier is the kong variable identifier listing the names
	// accepted by show --format.
	FormatsIdentifier = "formats"
)

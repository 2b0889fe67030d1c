// Package launch runs a child process with an environment built from a
// resolved [dotenv.Mapping].
//
// The child inherits the standard streams of zenv and its environment, with
// the mapping's variables added or overriding inherited ones. [Run] blocks
// until the child exits and returns its exit code.
package launch

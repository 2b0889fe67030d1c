// Package cli contains the command line interface for zenv.
//
// # Usage
//
//	zenv [flags] [run] [--path DIR]... [--] <binary> [args]...
//	zenv [flags] show [--format FORMAT] [--where EXPR]
//	zenv [flags] get <key>
//	zenv [flags] browse
//	zenv [flags] init [--force]
//	zenv version
//
// run is the default command, so the shortest form is
//
//	zenv ./server --port 8080
//
// which loads .env from the working directory and runs ./server with the
// variables it defines added to the inherited environment. zenv exits with
// the exit code of the program.
//
// # Sources
//
//   - -f, --file: environment file to load (default .env, or $ZENV_FILE).
//     Repeat the flag or separate paths with commas to load several files;
//     later files override earlier ones. "-" reads stdin.
//   - -x, --expand: expand $VAR and ${VAR} in double-quoted values
//     ($ZENV_EXPAND).
//
// # Configuration
//
// Defaults for every global flag may be written to $XDG_CONFIG_HOME/zenv/config
// (see [os.UserConfigDir]) in .env syntax, one flag per line:
//
//	log_level=info
//	expand=true
//
// zenv init writes that file from the current flag values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (text, json)
//   - --log-time-layout: Set timestamp format (RFC3339, Kitchen, none, etc.)
//   - --[no-]log-caller: Include caller information in log output
//   - --[no-]log-pretty: Colorize log output
//
// Logs are written to stderr.
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o zenv .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/zenv/pprof)
package cli

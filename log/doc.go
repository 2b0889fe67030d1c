// Package log provides the structured logger used throughout zenv.
//
// It is a thin layer over [log/slog] that fixes the handler configuration
// at construction time using functional options. Messages go to standard
// error by default because standard output (and input) are handed to the
// child process launched by zenv.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Warn("skipping invalid key", slog.String("key", key))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatJSON),
//		log.WithTimeLayout("RFC3339Nano"),
//		log.WithCaller(true))
//
// The package-level functions ([Debug], [Info], [Warn], [Error], ...) write
// through a default logger that the CLI reconfigures with [Config] while it
// parses flags.
//
// # Levels
//
// Five levels are defined: [LevelTrace], [LevelDebug], [LevelInfo],
// [LevelWarn], and [LevelError]. Messages below the configured level are
// discarded.
//
// # Time Formatting
//
// [WithTimeLayout] accepts any named layout of the [time] package (such as
// "RFC3339" or "Kitchen"), a custom layout string, or an empty string to
// omit timestamps.
package log

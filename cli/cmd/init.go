package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/zenv/dotenv"
	"github.com/ardnew/zenv/log"
	"github.com/ardnew/zenv/profile"
)

// configDirMode is the permission mode of a created configuration directory.
const configDirMode os.FileMode = 0o700

// Init generates a default configuration file with current flag values.
type Init struct {
	Force bool `help:"Overwrite existing configuration file"`
}

// Run executes the init command.
func (i *Init) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	ktx := kongContextFrom(ctx)

	confPath, ok := ktx.Model.Vars()[ConfigIdentifier]
	if !ok {
		panic("internal error: config path undefined")
	}

	// Check if file exists and force not set
	_, err = os.Stat(confPath)
	if err == nil && !i.Force {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			With(slog.Bool("exists", true)).
			Wrap(ErrFileExists)
	}

	err = os.MkdirAll(filepath.Dir(confPath), configDirMode)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	file, err := os.Create(confPath)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}
	defer file.Close()

	conf := flagValues(ktx)

	err = dotenv.Write(file, conf, dotenv.FormatDotenv)
	if err != nil {
		return ErrWriteConfig.
			With(slog.String("file", confPath)).
			Wrap(err)
	}

	log.DebugContext(
		ctx,
		"initialized configuration file",
		slog.String("path", confPath),
		slog.Int("flags", len(conf)),
	)

	return nil
}

// flagValues returns the current value of every top-level flag that can be
// set from the configuration file, keyed by the flag name with hyphens
// replaced by underscores.
func flagValues(ktx *kong.Context) dotenv.Mapping {
	ignore := []string{"help", "version", profile.Tag}

	conf := make(dotenv.Mapping)

	for _, flag := range ktx.Model.Flags {
		if flag.Hidden || slices.ContainsFunc(ignore, func(s string) bool {
			return strings.HasPrefix(flag.Name, s)
		}) {
			continue
		}

		val, ok := flagString(ktx.FlagValue(flag))
		if ok {
			conf[strings.ReplaceAll(flag.Name, "-", "_")] = val
		}
	}

	return conf
}

// flagString formats a flag value the way kong parses it back.
func flagString(val any) (string, bool) {
	switch v := val.(type) {
	case nil:
		return "", false

	case string:
		return v, v != ""

	case []string:
		return strings.Join(v, ","), len(v) > 0

	case fmt.Stringer:
		return v.String(), true

	default:
		return fmt.Sprint(v), true
	}
}

package cmd

import (
	"context"
	"io"
	"log/slog"

	"golang.org/x/term"

	"github.com/ardnew/zenv/cli/cmd/browse"
	"github.com/ardnew/zenv/dotenv"
)

// Browse interactively searches the loaded environment and prints the
// chosen entry.
type Browse struct{}

// Run executes the browse command.
func (Browse) Run(ctx context.Context) error {
	tui := stderr(ctx)
	if !isTerminal(tui) {
		return ErrNotTerminal.With(slog.String("stream", "stderr"))
	}

	env, err := sourceFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	key, ok, err := browse.Run(ctx, env, nil, tui)
	if err != nil || !ok {
		return err
	}

	return dotenv.Write(stdout(ctx), dotenv.Mapping{key: env[key]}, dotenv.FormatDotenv)
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })

	return ok && term.IsTerminal(int(f.Fd()))
}

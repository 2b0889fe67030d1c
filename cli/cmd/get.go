package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions bounds the "did you mean" list of [ErrKeyNotFound].
const maxSuggestions = 3

// Get prints the value of a single variable.
type Get struct {
	Key string `arg:"" help:"Variable name"`
}

// Run executes the get command.
func (g *Get) Run(ctx context.Context) error {
	env, err := sourceFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	value, ok := env.Lookup(g.Key)
	if !ok {
		err := ErrKeyNotFound.With(slog.String("key", g.Key))
		if similar := suggest(g.Key, env.Keys()); len(similar) > 0 {
			err = err.With(slog.Any("similar", similar))
		}

		return err
	}

	_, err = fmt.Fprintln(stdout(ctx), value)

	return err
}

// suggest returns up to [maxSuggestions] keys that fuzzy-match key, best
// match first.
func suggest(key string, keys []string) []string {
	matches := fuzzy.Find(key, keys)
	n := min(len(matches), maxSuggestions)

	similar := make([]string, 0, n)
	for _, m := range matches[:n] {
		similar = append(similar, m.Str)
	}

	return similar
}

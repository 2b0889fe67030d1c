package cmd

import (
	"context"

	"github.com/ardnew/zenv/dotenv"
)

// Show prints the loaded environment.
type Show struct {
	Format dotenv.Format `default:"dotenv" help:"Output format (${formats})" short:"o"`
	Where  string        `help:"Only print entries for which EXPR is true, e.g. 'key startsWith \"AWS_\"'" placeholder:"EXPR" short:"w"`
}

// Run executes the show command.
func (s *Show) Run(ctx context.Context) error {
	filter, err := dotenv.CompileFilter(s.Where)
	if err != nil {
		return err
	}

	env, err := sourceFrom(ctx).Load(ctx)
	if err != nil {
		return err
	}

	env, err = filter.Apply(env)
	if err != nil {
		return err
	}

	return dotenv.Write(stdout(ctx), env, s.Format)
}

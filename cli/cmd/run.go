package cmd

import (
	"context"

	"github.com/ardnew/zenv/launch"
)

// Run launches a program with the loaded environment.
type Run struct {
	Path []string `help:"Prepend directory to the child's PATH" placeholder:"DIR" type:"path"`

	Command []string `arg:"" help:"Program to run, followed by its arguments" passthrough:""`
}

// Run executes the run command.
func (r *Run) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	src := sourceFrom(ctx)

	env, err := src.Load(ctx)
	if err != nil {
		return err
	}

	spec := launch.Spec{
		Env:    env,
		Path:   r.Path,
		Stdin:  src.Stdin,
		Stdout: stdout(ctx),
		Stderr: stderr(ctx),
	}

	if len(r.Command) > 0 {
		spec.Binary, spec.Args = r.Command[0], r.Command[1:]
	}

	code, err := launch.Run(ctx, spec)
	if err != nil {
		return err
	}

	if code != 0 {
		return ExitStatus(code)
	}

	return nil
}

package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/zenv/cli/cmd"
	"github.com/ardnew/zenv/dotenv"
	"github.com/ardnew/zenv/log"
	"github.com/ardnew/zenv/pkg"
	"github.com/ardnew/zenv/profile"
)

// CLI is the top-level command-line interface for zenv.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	File    []string         `default:".env" env:"ZENV_FILE"   help:"Environment file(s) to load, '-' reads stdin" placeholder:"PATH" short:"f"`
	Expand  bool             `env:"ZENV_EXPAND" help:"Expand $VAR and $${VAR} references in double-quoted values" negatable:"" short:"x"`
	Version kong.VersionFlag `help:"Print version and exit" short:"v"`

	Run    cmd.Run     `cmd:"" default:"withargs" help:"Run a program with the environment (default)"`
	Show   cmd.Show    `cmd:""                    help:"Print the environment"`
	Get    cmd.Get     `cmd:""                    help:"Print the value of one variable"`
	Browse cmd.Browse  `cmd:""                    help:"Search the environment interactively"`
	Init   cmd.Init    `cmd:""                    help:"Initialize configuration file"`
	Ver    cmd.Version `cmd:"" name:"version"     help:"Print version"`
}

// stdio groups the standard streams handed to commands.
type stdio struct {
	in       io.Reader
	out, err io.Writer
}

// Run executes the zenv CLI with the given context and arguments.
//
// The exit function is called by kong for --help and --version, and by Run
// with the child's exit code when the run command's program exits non-zero.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	err := run(ctx, exit, stdio{os.Stdin, os.Stdout, os.Stderr}, args...)

	var status cmd.ExitStatus
	if errors.As(err, &status) {
		exit(int(status))

		return nil
	}

	return err
}

func run(
	ctx context.Context,
	exit func(code int),
	std stdio,
	args ...string,
) error {
	var cli CLI

	vars := kong.Vars{
		"version":             pkg.Name + " " + pkg.Version,
		cmd.ConfigIdentifier:  configPath(baseConfig),
		cmd.FormatsIdentifier: strings.Join(slices.Collect(dotenv.Formats()), ", "),
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Configure the logger before kong reports parse errors.
	cli.Log.scan(args)

	groups := []kong.Group{cli.Log.group()}
	if profile.Enabled {
		groups = append(groups, cli.Pprof.group())
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.Writers(std.out, std.err),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(resolve, configPath(baseConfig)),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSource(ctx, cmd.Source{
		Files:  cli.File,
		Expand: cli.Expand,
		Stdin:  std.in,
	})

	cli.Log.start(ctx, std.err)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	log.TraceContext(ctx, "running command", slog.String("command", ktx.Command()))

	return ktx.Run(ctx)
}

package launch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/ardnew/zenv/dotenv"
	"github.com/ardnew/zenv/log"
)

// DefaultWaitDelay is how long a child may run after it has been
// interrupted by a cancelled context before it is killed.
const DefaultWaitDelay = 5 * time.Second

// Spec describes a child process.
type Spec struct {
	// Binary is the program to run. A bare name is searched for in the PATH
	// of the child environment.
	Binary string
	// Args are passed to Binary.
	Args []string
	// Env is merged into the inherited environment.
	Env dotenv.Mapping
	// Path lists directories prepended to PATH.
	Path []string
	// Environ is the inherited environment. Nil means [os.Environ].
	Environ []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// WaitDelay overrides [DefaultWaitDelay] when positive.
	WaitDelay time.Duration
}

// forwarded are the signals passed on to a running child.
// SIGINT is caught but not forwarded: the terminal delivers it to the whole
// foreground process group, so the child already has it.
var forwarded = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}

// Run starts the program described by s, waits for it to exit, and returns
// its exit code.
//
// A non-zero exit code is not an error. The error is non-nil only if the
// program could not be started ([ErrSpawn]), did not report an exit code
// because a signal ended it ([ErrNoExitCode]), or waiting failed
// ([ErrWait]). The returned code is -1 whenever no exit code is known.
//
// Cancelling ctx interrupts the child and kills it if it has not exited
// after the wait delay.
func Run(ctx context.Context, s Spec) (int, error) {
	if s.Binary == "" {
		return -1, ErrNoBinary
	}

	env := s.Environment()
	bin := lookPath(s.Binary, env)

	cmd := exec.CommandContext(ctx, bin, s.Args...)
	cmd.Args[0] = s.Binary
	cmd.Env = env
	cmd.Stdin, cmd.Stdout, cmd.Stderr = os.Stdin, os.Stdout, os.Stderr

	if s.Stdin != nil {
		cmd.Stdin = s.Stdin
	}

	if s.Stdout != nil {
		cmd.Stdout = s.Stdout
	}

	if s.Stderr != nil {
		cmd.Stderr = s.Stderr
	}

	cmd.Cancel = func() error { return cmd.Process.Signal(os.Interrupt) }

	cmd.WaitDelay = DefaultWaitDelay
	if s.WaitDelay > 0 {
		cmd.WaitDelay = s.WaitDelay
	}

	attrs := []slog.Attr{
		slog.String("binary", s.Binary),
		slog.Any("args", s.Args),
	}

	log.DebugContext(ctx, "spawning program", append(attrs, slog.String("path", bin))...)

	if err := cmd.Start(); err != nil {
		return -1, ErrSpawn.Wrap(err).With(attrs...)
	}

	stop := relaySignals(ctx, cmd.Process)
	waitErr := cmd.Wait()

	stop()

	state := cmd.ProcessState
	if state == nil {
		return -1, ErrWait.Wrap(waitErr).With(attrs...)
	}

	code := state.ExitCode()
	if code < 0 {
		return -1, ErrNoExitCode.Wrap(waitErr).With(
			append(attrs, slog.String("state", state.String()))...)
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return code, ErrWait.Wrap(waitErr).With(attrs...)
	}

	log.DebugContext(ctx, "program exited", append(attrs, slog.Int("code", code))...)

	return code, nil
}

// relaySignals forwards signals received by zenv to proc until the returned
// function is called.
func relaySignals(ctx context.Context, proc *os.Process) (stop func()) {
	sigs := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})

	signal.Notify(sigs, forwarded...)

	go func() {
		defer close(exited)

		for {
			select {
			case <-done:
				return

			case sig := <-sigs:
				if sig == os.Interrupt {
					log.DebugContext(ctx, "ignoring interrupt while program runs")

					continue
				}

				log.DebugContext(ctx, "forwarding signal", slog.String("signal", sig.String()))

				if err := proc.Signal(sig); err != nil {
					log.WarnContext(ctx, "failed to forward signal",
						slog.String("signal", sig.String()),
						slog.String("cause", err.Error()))
				}
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
		<-exited
	}
}

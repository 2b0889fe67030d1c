package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"

	"github.com/alecthomas/kong"

	"github.com/ardnew/zenv/dotenv"
	"github.com/ardnew/zenv/log"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stdout returns the writer kong was configured with, or [os.Stdout].
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}

// stderr returns the error writer kong was configured with, or [os.Stderr].
func stderr(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stderr != nil {
		return ktx.Stderr
	}

	return os.Stderr
}

// stdinSource is the special source indicator for reading from stdin.
const stdinSource = "-"

type sourceKey struct{}

// Source describes where the commands read environment variables from.
type Source struct {
	Files  []string
	Expand bool
	Stdin  io.Reader
}

// WithSource returns a new context.Context carrying src.
func WithSource(ctx context.Context, src Source) context.Context {
	return context.WithValue(ctx, sourceKey{}, src)
}

func sourceFrom(ctx context.Context) Source {
	src, _ := ctx.Value(sourceKey{}).(Source)

	return src
}

// Load reads every file of s in order and resolves the combined entries.
// Later files override earlier ones. Duplicate paths, including symlinks to
// the same file, are read once, and stdin is always read last.
func (s Source) Load(ctx context.Context) (dotenv.Mapping, error) {
	files := uniqueFiles(s.Files)
	if len(files) == 0 {
		return nil, ErrNoSource
	}

	opts := []dotenv.Option{
		dotenv.WithLogger(log.Default()),
		dotenv.WithReadFile(s.readFile),
	}

	var doc dotenv.Document

	for _, file := range files {
		d, err := dotenv.LoadDocument(file, opts...)
		if err != nil {
			return nil, err
		}

		doc = append(doc, d...)
	}

	log.DebugContext(ctx, "loaded environment",
		slog.Any("files", files),
		slog.Int("entries", len(doc)),
		slog.Bool("expand", s.Expand),
	)

	if s.Expand {
		return doc.Expand(os.LookupEnv), nil
	}

	return doc.Map(), nil
}

func (s Source) readFile(name string) ([]byte, error) {
	if name != stdinSource {
		return os.ReadFile(name)
	}

	if s.Stdin == nil {
		return io.ReadAll(os.Stdin)
	}

	return io.ReadAll(s.Stdin)
}

// uniqueFiles drops repeated paths from files. Two paths naming the same
// file on disk are repeats. Paths that cannot be stat'ed are kept so the
// loader reports them. "-" is moved to the end.
func uniqueFiles(files []string) []string {
	var (
		unique   = make([]string, 0, len(files))
		seen     = make([]os.FileInfo, 0, len(files))
		hasStdin bool
	)

	for _, file := range files {
		if file == stdinSource {
			hasStdin = true

			continue
		}

		info, err := os.Stat(file)
		if err != nil {
			if !slices.Contains(unique, file) {
				unique = append(unique, file)
			}

			continue
		}

		if sameFileAny(seen, info) {
			continue
		}

		seen = append(seen, info)
		unique = append(unique, file)
	}

	if hasStdin {
		unique = append(unique, stdinSource)
	}

	return unique
}

func sameFileAny(seen []os.FileInfo, info os.FileInfo) bool {
	for _, s := range seen {
		if os.SameFile(s, info) {
			return true
		}
	}

	return false
}

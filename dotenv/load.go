package dotenv

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/ardnew/zenv/log"
)

// ReadFileFunc returns the contents of the named file.
// [os.ReadFile] is a ReadFileFunc.
type ReadFileFunc func(name string) ([]byte, error)

// Option configures [Load], [LoadDocument], and [Configure].
type Option func(loader) loader

type loader struct {
	lookup   Lookup
	readFile ReadFileFunc
	logger   log.Logger
	expand   bool
}

func makeLoader(opts ...Option) loader {
	l := loader{
		lookup:   os.LookupEnv,
		readFile: os.ReadFile,
		logger:   log.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			l = opt(l)
		}
	}

	return l
}

// WithExpand returns an option that controls whether variable references
// in double-quoted values are expanded. Expansion is off by default.
func WithExpand(expand bool) Option {
	return func(l loader) loader {
		l.expand = expand

		return l
	}
}

// WithLookup returns an option that sets the fallback used to resolve
// references that no entry defines. The default is [os.LookupEnv]; nil
// selects [NoLookup].
func WithLookup(lookup Lookup) Option {
	return func(l loader) loader {
		if lookup == nil {
			lookup = NoLookup
		}

		l.lookup = lookup

		return l
	}
}

// WithReadFile returns an option that replaces [os.ReadFile] as the source
// of file contents. A nil fn restores the default.
func WithReadFile(fn ReadFileFunc) Option {
	return func(l loader) loader {
		if fn == nil {
			fn = os.ReadFile
		}

		l.readFile = fn

		return l
	}
}

// WithLogger returns an option that sets the logger used to report
// progress. The default is [log.Default].
func WithLogger(logger log.Logger) Option {
	return func(l loader) loader {
		l.logger = logger

		return l
	}
}

// LoadDocument reads and parses the .env file at path.
//
// A missing file yields an error matching [ErrNotFound] (and
// [fs.ErrNotExist]); any other read failure matches [ErrReadInput].
func LoadDocument(path string, opts ...Option) (Document, error) {
	return makeLoader(opts...).document(path)
}

// Load reads the .env file at path and resolves it into a [Mapping],
// expanding references if [WithExpand] is set.
func Load(path string, opts ...Option) (Mapping, error) {
	l := makeLoader(opts...)

	doc, err := l.document(path)
	if err != nil {
		return nil, err
	}

	return l.resolve(doc), nil
}

// Configure loads the .env file at path like [Load] and sets each resolved
// variable in the environment of the current process.
func Configure(path string, opts ...Option) error {
	m, err := Load(path, opts...)
	if err != nil {
		return err
	}

	for _, k := range m.Keys() {
		if err := os.Setenv(k, m[k]); err != nil {
			return ErrSetenv.Wrap(err).With(slog.String("key", k))
		}
	}

	return nil
}

func (l loader) document(path string) (Document, error) {
	data, err := l.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNotFound.Wrap(err).With(slog.String("path", path))
		}

		return nil, ErrReadInput.Wrap(err).With(slog.String("path", path))
	}

	doc := Parse(string(data))

	l.logger.Debug("parsed env file",
		slog.String("path", path),
		slog.Int("entries", len(doc)))

	return doc, nil
}

func (l loader) resolve(doc Document) Mapping {
	if !l.expand {
		return doc.Map()
	}

	m := doc.Expand(l.lookup)

	l.logger.Trace("expanded env file", slog.Int("variables", len(m)))

	return m
}

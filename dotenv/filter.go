package dotenv

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter selects variables of a [Mapping] with a boolean expression.
//
// The expression sees each variable as key and value, for example:
//
//	key startsWith "AWS_"
//	value matches "^[0-9]+$" && key != "PORT"
//
// The expression language is that of github.com/expr-lang/expr.
type Filter struct {
	src     string
	program *vm.Program
}

// filterEnv declares the variables visible to filter expressions.
type filterEnv struct {
	Key   string `expr:"key"`
	Value string `expr:"value"`
}

// CompileFilter compiles src. An empty or blank src matches everything.
func CompileFilter(src string) (*Filter, error) {
	f := &Filter{src: strings.TrimSpace(src)}

	if f.src == "" {
		return f, nil
	}

	program, err := expr.Compile(f.src, expr.Env(filterEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilter.Wrap(err).With(slog.String("expr", f.src))
	}

	f.program = program

	return f, nil
}

// String returns the source of the expression.
func (f *Filter) String() string { return f.src }

// Match reports whether the variable key=value satisfies f.
func (f *Filter) Match(key, value string) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}

	out, err := expr.Run(f.program, filterEnv{Key: key, Value: value})
	if err != nil {
		return false, ErrFilter.Wrap(err).With(
			slog.String("expr", f.src),
			slog.String("key", key),
		)
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Apply returns the variables of m that satisfy f.
func (f *Filter) Apply(m Mapping) (Mapping, error) {
	out := make(Mapping, len(m))

	for _, k := range m.Keys() {
		ok, err := f.Match(k, m[k])
		if err != nil {
			return nil, err
		}

		if ok {
			out[k] = m[k]
		}
	}

	return out, nil
}

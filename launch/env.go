package launch

import (
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ardnew/mung"

	"github.com/ardnew/zenv/log"
)

// PathKey is the variable that [Spec.Path] directories are prepended to.
const PathKey = "PATH"

// Environment returns the environment of the child described by s.
//
// It starts from s.Environ (or [os.Environ] if nil), replaces or appends
// each variable of s.Env in sorted key order, and finally prepends s.Path
// to [PathKey]. Variables whose name is empty or contains '=' or NUL cannot
// be represented and are skipped with a warning.
func (s Spec) Environment() []string {
	base := s.Environ
	if base == nil {
		base = os.Environ()
	}

	env := newEnviron(slices.Clone(base))

	for _, k := range s.Env.Keys() {
		if !validName(k) {
			log.Warn("skipping variable with invalid name", slog.String("key", k))

			continue
		}

		env.set(k, s.Env[k])
	}

	if len(s.Path) > 0 {
		cur, _ := env.get(PathKey)
		env.set(PathKey, prefixPath(cur, s.Path...))
	}

	return env.list
}

// environ is an ordered "key=value" list indexed by key.
// When a key repeats, the index refers to its last occurrence.
type environ struct {
	list  []string
	index map[string]int
}

func newEnviron(list []string) environ {
	e := environ{list: list, index: make(map[string]int, len(list))}

	for i, kv := range list {
		if k, _, ok := strings.Cut(kv, "="); ok && k != "" {
			e.index[k] = i
		}
	}

	return e
}

func (e *environ) get(key string) (string, bool) {
	i, ok := e.index[key]
	if !ok {
		return "", false
	}

	return strings.TrimPrefix(e.list[i], key+"="), true
}

func (e *environ) set(key, value string) {
	kv := key + "=" + value

	if i, ok := e.index[key]; ok {
		e.list[i] = kv

		return
	}

	e.index[key] = len(e.list)
	e.list = append(e.list, kv)
}

func validName(key string) bool {
	return key != "" && !strings.ContainsAny(key, "=\x00")
}

// prefixPath prepends dirs to the PATH-like list cur.
func prefixPath(cur string, dirs ...string) string {
	return mung.Make(
		mung.WithSubjectItems(cur),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(dirs...),
	).String()
}

// lookPath resolves a bare program name against the PATH of the child
// environment env, so that programs in [Spec.Path] directories are found.
// Names containing a path separator are returned unchanged.
func lookPath(name string, env []string) string {
	if strings.ContainsRune(name, os.PathSeparator) || strings.ContainsRune(name, '/') {
		return name
	}

	e := newEnviron(env)

	path, ok := e.get(PathKey)
	if !ok {
		return name
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			continue
		}

		if found, err := exec.LookPath(dir + string(os.PathSeparator) + name); err == nil {
			return found
		}
	}

	return name
}

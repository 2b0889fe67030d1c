package dotenv

import (
	"bufio"
	"io"
	"maps"
	"slices"
	"strings"
)

// maxLineSize bounds the length of a single line read by [ParseReader].
const maxLineSize = 1 << 20

// Document is the ordered list of entries of a .env file.
// Keys may repeat; later entries override earlier ones when folded.
type Document []KeyVal

// Parse parses the text of a .env file. Lines may end with "\n" or "\r\n".
// Parsing the same text always yields an equal Document.
func Parse(text string) Document {
	var doc Document

	for line := range strings.Lines(text) {
		doc = doc.appendLine(trimEOL(line))
	}

	return doc
}

// ParseReader parses a .env file read from r.
// It fails only if r does, or if a line exceeds 1 MiB.
func ParseReader(r io.Reader) (Document, error) {
	var doc Document

	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)

	for scan.Scan() {
		doc = doc.appendLine(scan.Text())
	}

	if err := scan.Err(); err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return doc, nil
}

func (d Document) appendLine(line string) Document {
	if l := ParseLine(line); !l.Empty() {
		return append(d, l.KeyVal)
	}

	return d
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}

// Map folds d into a [Mapping]. The last entry for each key wins.
func (d Document) Map() Mapping {
	m := make(Mapping, len(d))

	for _, kv := range d {
		m[kv.Key] = kv.Value
	}

	return m
}

// Keys returns the distinct keys of d in order of first appearance.
func (d Document) Keys() []string {
	seen := make(map[string]struct{}, len(d))
	keys := make([]string, 0, len(d))

	for _, kv := range d {
		if _, ok := seen[kv.Key]; !ok {
			seen[kv.Key] = struct{}{}
			keys = append(keys, kv.Key)
		}
	}

	return keys
}

// String formats d as the text of a .env file, one entry per line.
func (d Document) String() string {
	var sb strings.Builder

	for _, kv := range d {
		sb.WriteString(kv.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Mapping is a set of resolved variables with unique keys.
type Mapping map[string]string

// Lookup returns the value of name and whether it is defined in m.
// It satisfies [Lookup].
func (m Mapping) Lookup(name string) (string, bool) {
	v, ok := m[name]

	return v, ok
}

// Keys returns the keys of m in sorted order.
func (m Mapping) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// Environ returns m as "key=value" strings sorted by key, the form used by
// [os/exec.Cmd.Env].
func (m Mapping) Environ() []string {
	env := make([]string, 0, len(m))

	for _, k := range m.Keys() {
		env = append(env, k+string(assignMark)+m[k])
	}

	return env
}

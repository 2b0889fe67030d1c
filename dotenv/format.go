package dotenv

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/zenv/log"
)

// Format selects the output syntax of [Write].
type Format int

const (
	FormatDotenv Format = iota // dotenv
	FormatShell                // shell
	FormatJSON                 // json
	FormatYAML                 // yaml
	FormatTable                // table
)

// Formats returns an iterator over the names of all output formats.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for f := FormatDotenv; f <= FormatTable; f++ {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat returns the [Format] named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))

	for f := FormatDotenv; f <= FormatTable; f++ {
		if f.String() == name {
			return f, nil
		}
	}

	return 0, ErrInvalidFormat.With(slog.String("format", s))
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}

	*f = v

	return nil
}

// Write writes m to w in format f with keys in sorted order.
//
// [FormatDotenv] output parses back to m, except for values that contain a
// '"' together with a newline, and values that contain both kinds of quote
// along with a '#', a carriage return, surrounding blanks, or a leading
// quote character that occurs again later in the value.
func Write(w io.Writer, m Mapping, f Format) error {
	var err error

	switch f {
	case FormatDotenv:
		err = writeDotenv(w, m)
	case FormatShell:
		err = writeShell(w, m)
	case FormatJSON:
		err = writeJSON(w, m)
	case FormatYAML:
		err = writeYAML(w, m)
	case FormatTable:
		err = writeTable(w, m)
	default:
		return ErrInvalidFormat.With(slog.String("format", f.String()))
	}

	if err != nil {
		return ErrWriteOutput.Wrap(err).With(slog.String("format", f.String()))
	}

	return nil
}

func writeDotenv(w io.Writer, m Mapping) error {
	for _, k := range m.Keys() {
		if _, err := fmt.Fprintln(w, formatEntry(k, m[k]).String()); err != nil {
			return err
		}
	}

	return nil
}

// formatEntry picks the simplest quote style that preserves value. Values
// that no style preserves are double-quoted.
func formatEntry(key, value string) KeyVal {
	kv := KeyVal{Key: key, Value: value}

	switch {
	case isBare(value):
		kv.Quote = QuoteNone
	case !strings.ContainsAny(value, "'\n"):
		kv.Quote = QuoteSingle
	default:
		kv.Quote = QuoteDouble
	}

	return kv
}

// isBare reports whether value reads back unchanged when written unquoted.
// A leading quote character is fine as long as it is never closed, since
// [ParseLine] then keeps it literally.
func isBare(value string) bool {
	if value == "" {
		return true
	}

	if q := value[0]; q == '"' || q == '\'' {
		if strings.IndexByte(value[1:], q) >= 0 {
			return false
		}
	}

	return strings.TrimSpace(value) == value &&
		!strings.ContainsAny(value, "#\n\r")
}

// writeShell writes m as export statements. Keys that are not valid shell
// variable names are skipped with a warning.
func writeShell(w io.Writer, m Mapping) error {
	for _, k := range m.Keys() {
		if !isShellName(k) {
			log.Warn("skipping variable with invalid shell name", slog.String("key", k))

			continue
		}

		v := strings.ReplaceAll(m[k], `'`, `'\''`)

		if _, err := fmt.Fprintf(w, "export %s='%s'\n", k, v); err != nil {
			return err
		}
	}

	return nil
}

func isShellName(s string) bool {
	if s == "" || ('0' <= s[0] && s[0] <= '9') {
		return false
	}

	for i := range len(s) {
		switch c := s[i]; {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		default:
			return false
		}
	}

	return true
}

func writeJSON(w io.Writer, m Mapping) error {
	if m == nil {
		m = Mapping{}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func writeYAML(w io.Writer, m Mapping) error {
	ms := make(yaml.MapSlice, 0, len(m))

	for _, k := range m.Keys() {
		ms = append(ms, yaml.MapItem{Key: k, Value: m[k]})
	}

	data, err := yaml.Marshal(ms)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

var (
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func writeTable(w io.Writer, m Mapping) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("KEY", "VALUE").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return tableHeaderStyle
			}

			return tableCellStyle
		})

	for _, k := range m.Keys() {
		t.Row(k, escapeLF(m[k]))
	}

	_, err := fmt.Fprintln(w, t.Render())

	return err
}

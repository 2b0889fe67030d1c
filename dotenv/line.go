package dotenv

import "strings"

const (
	commentMark = '#'
	assignMark  = '='
	escapeMark  = '\\'
)

// LineKind distinguishes lines that carry an entry from those that do not.
type LineKind int

const (
	LineEmpty  LineKind = iota // empty
	LineKeyVal                 // keyval
)

// KeyVal is a single entry of a .env file.
type KeyVal struct {
	Key   string
	Value string
	Quote Quote
}

// String formats kv as a line of a .env file in its original quote style.
func (kv KeyVal) String() string {
	var sb strings.Builder

	sb.WriteString(kv.Key)
	sb.WriteRune(assignMark)

	switch kv.Quote {
	case QuoteDouble:
		sb.WriteString(quoteDouble(kv.Value))
	case QuoteSingle:
		sb.WriteRune('\'')
		sb.WriteString(kv.Value)
		sb.WriteRune('\'')
	default:
		sb.WriteString(kv.Value)
	}

	return sb.String()
}

// Line is the result of parsing one line of text.
// KeyVal is meaningful only when Kind is [LineKeyVal].
type Line struct {
	Kind LineKind
	KeyVal
}

// Empty reports whether l carries no entry.
func (l Line) Empty() bool { return l.Kind == LineEmpty }

// ParseLine parses a single line of a .env file. It never fails: anything
// that is not a recognizable entry yields an empty [Line].
//
// A comment is recognized only when '#' is the very first character, so
// "  # x=1" is an entry with key "# x".
func ParseLine(line string) Line {
	if line == "" || line[0] == commentMark {
		return Line{}
	}

	k, v, ok := strings.Cut(line, string(assignMark))
	if !ok {
		return Line{}
	}

	kv := KeyVal{Key: strings.TrimSpace(k)}

	switch {
	case strings.HasPrefix(v, `"`):
		if body, closed := cutDouble(v[1:]); closed {
			kv.Value, kv.Quote = unescape(body), QuoteDouble
		} else {
			kv.Value = unquoted(v)
		}

	case strings.HasPrefix(v, "'"):
		if body, _, closed := strings.Cut(v[1:], "'"); closed {
			kv.Value, kv.Quote = escapeLF(body), QuoteSingle
		} else {
			kv.Value = unquoted(v)
		}

	default:
		kv.Value = unquoted(v)
	}

	return Line{Kind: LineKeyVal, KeyVal: kv}
}

// cutDouble returns the text of s preceding the first '"' not protected by
// a backslash, and whether such a quote was found.
func cutDouble(s string) (string, bool) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case escapeMark:
			i++
		case '"':
			return s[:i], true
		}
	}

	return s, false
}

// unquoted reads s as an unquoted value: everything before the first '#',
// with raw newlines escaped and surrounding whitespace removed.
func unquoted(s string) string {
	s, _, _ = strings.Cut(s, string(commentMark))

	return strings.TrimSpace(escapeLF(s))
}

// escapeLF replaces each newline in s with the two characters `\n`.
func escapeLF(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

package dotenv

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	refMark  = '$'
	refOpen  = '{'
	refClose = '}'
)

// Expand folds d into a [Mapping] like [Document.Map], then substitutes
// variable references in the values of double-quoted entries.
//
// Entries are expanded in document order. A reference resolves to the value
// of the key in the mapping built so far, else the value from fallback, else
// the empty string. The mapping starts out as [Document.Map], so it holds the
// expanded value of double-quoted entries above and the literal value of
// everything else, including the entry's own key.
//
// Each expanded entry stores its result in the mapping, so a later entry of
// the same key sees it. An entry never replaces the value of a key whose
// last entry is not double-quoted. A nil fallback behaves like [NoLookup].
// d itself is never modified.
func (d Document) Expand(fallback Lookup) Mapping {
	if fallback == nil {
		fallback = NoLookup
	}

	result := d.Map()

	literal := make(map[string]bool, len(result))
	for _, kv := range d {
		literal[kv.Key] = !kv.Quote.Expandable()
	}

	lookup := func(name string) (string, bool) {
		if v, ok := result[name]; ok {
			return v, true
		}

		return fallback(name)
	}

	for _, kv := range d {
		if !kv.Quote.Expandable() || literal[kv.Key] {
			continue
		}

		result[kv.Key] = ExpandString(kv.Value, lookup)
	}

	return result
}

// ExpandString substitutes the variable references in s using lookup.
//
// $NAME names the longest following run of letters, digits and '_'; the
// character that ends the run is kept. ${NAME} names everything up to the
// next '}', or to the end of s if there is none. Undefined variables and
// empty names expand to the empty string. Substituted values are not
// expanded again.
func ExpandString(s string, lookup Lookup) string {
	if !strings.ContainsRune(s, refMark) {
		return s
	}

	if lookup == nil {
		lookup = NoLookup
	}

	var sb strings.Builder

	sb.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] != refMark {
			sb.WriteByte(s[i])
			i++

			continue
		}

		name, n := scanRef(s[i+1:])
		i += 1 + n

		if name == "" {
			continue
		}

		if v, ok := lookup(name); ok {
			sb.WriteString(v)
		}
	}

	return sb.String()
}

// scanRef reads the name of a reference from s, the text following a '$'.
// It returns the name and the number of bytes of s it occupies.
func scanRef(s string) (string, int) {
	if s != "" && s[0] == refOpen {
		end := strings.IndexByte(s[1:], refClose)
		if end < 0 {
			return s[1:], len(s)
		}

		return s[1 : 1+end], end + 2
	}

	n := 0

	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isNameRune(r) {
			break
		}

		n += size
	}

	return s[:n], n
}

func isNameRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

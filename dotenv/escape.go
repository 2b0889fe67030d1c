package dotenv

import "strings"

// unescape resolves the escape sequences of a double-quoted value.
//
// `\n` becomes a newline and `\\` a single backslash. A backslash before any
// other character, or at the end of s, is kept along with that character.
func unescape(s string) string {
	if !strings.ContainsRune(s, escapeMark) {
		return s
	}

	var sb strings.Builder

	sb.Grow(len(s))

	escaped := false

	for i := range len(s) {
		c := s[i]

		if !escaped {
			if c == escapeMark {
				escaped = true
			} else {
				sb.WriteByte(c)
			}

			continue
		}

		escaped = false

		switch c {
		case 'n':
			sb.WriteByte('\n')
		case escapeMark:
			sb.WriteByte(escapeMark)
		default:
			sb.WriteByte(escapeMark)
			sb.WriteByte(c)
		}
	}

	if escaped {
		sb.WriteByte(escapeMark)
	}

	return sb.String()
}

// quoteDouble returns s as a double-quoted value that [unescape] restores.
// A '"' in s cannot be represented and ends the value early when reparsed.
func quoteDouble(s string) string {
	var sb strings.Builder

	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for i := range len(s) {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case escapeMark:
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(c)
		}
	}

	sb.WriteByte('"')

	return sb.String()
}

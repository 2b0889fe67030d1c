// Package dotenv reads .env files.
//
// A .env file is a sequence of lines. Blank lines and lines whose first
// character is '#' are ignored, as are lines without an '='. Every other
// line is an entry: the text before the first '=' is the key (trimmed of
// surrounding whitespace) and the text after it is the value.
//
// The first character of the value selects how it is read:
//
//	KEY="double"   up to the next unescaped '"'; \n is a newline, \\ a backslash
//	KEY='single'   up to the next '\''; taken literally
//	KEY=unquoted   up to the first '#'; surrounding whitespace is trimmed
//
// Text following a closing quote is ignored, so trailing comments vanish. A
// quote that is never closed is kept as a literal character and the value is
// read as if it were unquoted.
//
// [Parse] turns text into a [Document], an ordered list of entries.
// [Document.Map] folds it into a [Mapping] where the last entry for a key
// wins. [Document.Expand] does the same and substitutes $NAME and ${NAME}
// references inside double-quoted values:
//
//	BASIC=basic
//	EXPANDED="$BASIC-expanded"          # basic-expanded
//	EXPANDED_NEW="${BASIC}_expanded"    # basic_expanded
//	BIN="$HOME/bin"                     # HOME comes from the environment
//
// References resolve against the folded entries, where those above are
// already expanded, then against a fallback [Lookup] (normally the process
// environment), and otherwise expand to the empty string. Nothing here is shell expansion:
// there is no command substitution, arithmetic, or default-value syntax.
//
// Malformed lines never produce errors. Only reading the input can fail.
package dotenv

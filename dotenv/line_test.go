package dotenv

import (
	"strings"
	"testing"
)

func TestParseLine_Entries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  KeyVal
	}{
		{
			name:  "basic",
			input: "BASIC=basic",
			want:  KeyVal{"BASIC", "basic", QuoteNone},
		},
		{
			name:  "empty value",
			input: "EMPTY=",
			want:  KeyVal{"EMPTY", "", QuoteNone},
		},
		{
			name:  "single quotes",
			input: "SINGLE_QUOTES='single_quotes'",
			want:  KeyVal{"SINGLE_QUOTES", "single_quotes", QuoteSingle},
		},
		{
			name:  "single quotes spaced",
			input: "SINGLE_QUOTES_SPACED='    single_quotes_spaced    '",
			want:  KeyVal{"SINGLE_QUOTES_SPACED", "    single_quotes_spaced    ", QuoteSingle},
		},
		{
			name:  "double quotes",
			input: `DOUBLE_QUOTES="double_quotes"`,
			want:  KeyVal{"DOUBLE_QUOTES", "double_quotes", QuoteDouble},
		},
		{
			name:  "double quotes spaced",
			input: `DOUBLE_QUOTES_SPACED="    double_quotes_spaced    "`,
			want:  KeyVal{"DOUBLE_QUOTES_SPACED", "    double_quotes_spaced    ", QuoteDouble},
		},
		{
			name:  "expand newlines",
			input: `EXPAND_NEWLINES="expand\nnew\nlines"`,
			want:  KeyVal{"EXPAND_NEWLINES", "expand\nnew\nlines", QuoteDouble},
		},
		{
			name:  "escaped newlines double quoted",
			input: `ESCAPED_NEWLINES_DQUOTE="escaped\\nnew\\nlines"`,
			want:  KeyVal{"ESCAPED_NEWLINES_DQUOTE", `escaped\nnew\nlines`, QuoteDouble},
		},
		{
			name:  "escaped newlines single quoted",
			input: `ESCAPED_NEWLINES_SQUOTE='escaped\nnew\nlines'`,
			want:  KeyVal{"ESCAPED_NEWLINES_SQUOTE", `escaped\nnew\nlines`, QuoteSingle},
		},
		{
			name:  "raw newlines unquoted",
			input: "DONT_EXPAND_UNQUOTED=dont\nexpand\nnew\nlines",
			want:  KeyVal{"DONT_EXPAND_UNQUOTED", `dont\nexpand\nnew\nlines`, QuoteNone},
		},
		{
			name:  "raw newlines single quoted",
			input: "DONT_EXPAND_SQUOTED='dont\nexpand\nnew\nlines'",
			want:  KeyVal{"DONT_EXPAND_SQUOTED", `dont\nexpand\nnew\nlines`, QuoteSingle},
		},
		{
			name:  "equal signs",
			input: "EQUAL_SIGNS=equals==",
			want:  KeyVal{"EQUAL_SIGNS", "equals==", QuoteNone},
		},
		{
			name:  "retain inner quotes",
			input: `RETAIN_INNER_QUOTES={"foo": "bar"}`,
			want:  KeyVal{"RETAIN_INNER_QUOTES", `{"foo": "bar"}`, QuoteNone},
		},
		{
			name:  "retain inner quotes as string",
			input: `RETAIN_INNER_QUOTES_AS_STRING='{"foo": "bar"}'`,
			want:  KeyVal{"RETAIN_INNER_QUOTES_AS_STRING", `{"foo": "bar"}`, QuoteSingle},
		},
		{
			name:  "retain leading double quote",
			input: `RETAIN_LEADING_DQUOTE="retained_dquote`,
			want:  KeyVal{"RETAIN_LEADING_DQUOTE", `"retained_dquote`, QuoteNone},
		},
		{
			name:  "retain leading double quote with comment",
			input: `RETAIN_LEADING_DQUOTE_COMMENT="retained_dquote comment # comment`,
			want:  KeyVal{"RETAIN_LEADING_DQUOTE_COMMENT", `"retained_dquote comment`, QuoteNone},
		},
		{
			name:  "retain leading single quote",
			input: `RETAIN_LEADING_SQUOTE='retained_squote`,
			want:  KeyVal{"RETAIN_LEADING_SQUOTE", `'retained_squote`, QuoteNone},
		},
		{
			name:  "retain leading single quote with comment",
			input: `RETAIN_LEADING_SQUOTE_COMMENT='retained_squote comment # comment`,
			want:  KeyVal{"RETAIN_LEADING_SQUOTE_COMMENT", `'retained_squote comment`, QuoteNone},
		},
		{
			name:  "retain trailing double quote",
			input: `RETAIN_TRAILING_DQUOTE=retained_dquote"`,
			want:  KeyVal{"RETAIN_TRAILING_DQUOTE", `retained_dquote"`, QuoteNone},
		},
		{
			name:  "retain trailing single quote",
			input: `RETAIN_TRAILING_SQUOTE=retained_squote'`,
			want:  KeyVal{"RETAIN_TRAILING_SQUOTE", `retained_squote'`, QuoteNone},
		},
		{
			name:  "trim space from unquoted",
			input: "TRIM_SPACE_FROM_UNQUOTED=    some spaced out string",
			want:  KeyVal{"TRIM_SPACE_FROM_UNQUOTED", "some spaced out string", QuoteNone},
		},
		{
			name:  "spaced key",
			input: "    SPACED_KEY = spaced_key",
			want:  KeyVal{"SPACED_KEY", "spaced_key", QuoteNone},
		},
		{
			name:  "comment at end unquoted",
			input: "COMMENT_AT_END=comment_at_end # this is the comment",
			want:  KeyVal{"COMMENT_AT_END", "comment_at_end", QuoteNone},
		},
		{
			name:  "comment at end single quoted",
			input: "COMMENT_AT_END_SQUOTE='comment_at_##_end_squote_#' # this is the comment",
			want:  KeyVal{"COMMENT_AT_END_SQUOTE", "comment_at_##_end_squote_#", QuoteSingle},
		},
		{
			name:  "comment at end double quoted",
			input: `COMMENT_AT_END_DQUOTE="comment_at_#_end_dquote" # this is the comment`,
			want:  KeyVal{"COMMENT_AT_END_DQUOTE", "comment_at_#_end_dquote", QuoteDouble},
		},
		{
			name:  "escaped double quote does not close",
			input: `QUOTED="say \"hi\"" # trailing`,
			want:  KeyVal{"QUOTED", `say \"hi\"`, QuoteDouble},
		},
		{
			name:  "escaped backslash before closing quote",
			input: `WINDOWS="C:\\"`,
			want:  KeyVal{"WINDOWS", `C:\`, QuoteDouble},
		},
		{
			name:  "space before quote is unquoted",
			input: `SPACED_QUOTE= "value"`,
			want:  KeyVal{"SPACED_QUOTE", `"value"`, QuoteNone},
		},
		{
			name:  "leading whitespace before hash is not a comment",
			input: "  # NOT_A_COMMENT=x",
			want:  KeyVal{"# NOT_A_COMMENT", "x", QuoteNone},
		},
		{
			name:  "empty key",
			input: "=value",
			want:  KeyVal{"", "value", QuoteNone},
		},
		{
			name:  "empty double quotes",
			input: `EMPTY_DOUBLE=""`,
			want:  KeyVal{"EMPTY_DOUBLE", "", QuoteDouble},
		},
		{
			name:  "unicode value",
			input: "GREETING='héllo wörld'",
			want:  KeyVal{"GREETING", "héllo wörld", QuoteSingle},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.input)

			if got.Kind != LineKeyVal {
				t.Fatalf("ParseLine(%q) kind = %v, want %v", tt.input, got.Kind, LineKeyVal)
			}

			if got.KeyVal != tt.want {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.input, got.KeyVal, tt.want)
			}
		})
	}
}

func TestParseLine_Empty(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty line", ""},
		{"just space", "      "},
		{"comment", "# COMMENT=comment"},
		{"comment without equals", "#"},
		{"no equals", "JUST_A_WORD"},
		{"spaces and tabs", " \t \t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.input)

			if !got.Empty() {
				t.Errorf("ParseLine(%q) = %#v, want empty", tt.input, got)
			}

			if got.Kind.String() != "empty" {
				t.Errorf("kind string = %q, want %q", got.Kind.String(), "empty")
			}
		})
	}
}

func TestParseLine_UnquotedProperty(t *testing.T) {
	keys := []string{"K", "  spaced key  ", "lower", "MIXED_case_9", "ünï"}
	values := []string{"", "v", "  padded  ", "a b c", "x # comment", "ends with hash#", "=eq"}

	for _, k := range keys {
		for _, v := range values {
			line := k + "=" + v
			got := ParseLine(line)

			before, _, _ := strings.Cut(v, "#")
			want := KeyVal{strings.TrimSpace(k), strings.TrimSpace(before), QuoteNone}

			if got.KeyVal != want {
				t.Errorf("ParseLine(%q) = %#v, want %#v", line, got.KeyVal, want)
			}
		}
	}
}

func TestKeyVal_String(t *testing.T) {
	tests := []struct {
		kv   KeyVal
		want string
	}{
		{KeyVal{"A", "plain", QuoteNone}, "A=plain"},
		{KeyVal{"B", " spaced ", QuoteSingle}, "B=' spaced '"},
		{KeyVal{"C", "two\nlines", QuoteDouble}, `C="two\nlines"`},
		{KeyVal{"D", `back\slash`, QuoteDouble}, `D="back\\slash"`},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kv.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			if got := ParseLine(tt.want).KeyVal; got != tt.kv {
				t.Errorf("ParseLine(%q) = %#v, want %#v", tt.want, got, tt.kv)
			}
		})
	}
}

func TestQuote_String(t *testing.T) {
	tests := []struct {
		q    Quote
		want string
	}{
		{QuoteNone, "none"},
		{QuoteSingle, "single"},
		{QuoteDouble, "double"},
		{Quote(7), "Quote(7)"},
	}

	for _, tt := range tests {
		if got := tt.q.String(); got != tt.want {
			t.Errorf("Quote(%d).String() = %q, want %q", int(tt.q), got, tt.want)
		}
	}

	if !QuoteDouble.Expandable() || QuoteSingle.Expandable() || QuoteNone.Expandable() {
		t.Error("only double-quoted values should be expandable")
	}
}

func BenchmarkParseLine(b *testing.B) {
	lines := []string{
		"BASIC=basic",
		`EXPAND_NEWLINES="expand\nnew\nlines"`,
		"COMMENT_AT_END_SQUOTE='comment_at_##_end_squote_#' # this is the comment",
		"# comment",
	}

	for b.Loop() {
		for _, line := range lines {
			_ = ParseLine(line)
		}
	}
}

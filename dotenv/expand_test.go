package dotenv

import (
	"maps"
	"reflect"
	"testing"
)

const expandedEnv = `BASIC=basic
EXPANDED="$BASIC-expanded"
DOUBLE_EXPANDED="$BASIC-$EXPANDED"
EXPANDED_NEW="${BASIC}_expanded"
DOUBLE_EXPANDED_NEW="${BASIC}_${DOUBLE_EXPANDED}"
`

func TestDocument_Expand_Chain(t *testing.T) {
	m := Parse(expandedEnv).Expand(NoLookup)

	want := Mapping{
		"BASIC":               "basic",
		"EXPANDED":            "basic-expanded",
		"DOUBLE_EXPANDED":     "basic-basic-expanded",
		"EXPANDED_NEW":        "basic_expanded",
		"DOUBLE_EXPANDED_NEW": "basic_basic-basic-expanded",
	}

	if !maps.Equal(m, want) {
		t.Errorf("Expand() = %v, want %v", m, want)
	}
}

func TestDocument_Expand(t *testing.T) {
	env := LookupMap(map[string]string{
		"HOME": "/home/user",
		"PATH": "/usr/bin",
	})

	tests := []struct {
		name  string
		input string
		key   string
		want  string
	}{
		{
			name:  "braced reference",
			input: "BASIC=basic\nEXPANDED=\"${BASIC}_is_expanded\"",
			key:   "EXPANDED",
			want:  "basic_is_expanded",
		},
		{
			name:  "undefined reference",
			input: `UNDEF="before-$UNDEFINED_NAME-after"`,
			key:   "UNDEF",
			want:  "before--after",
		},
		{
			name:  "fallback to environment",
			input: `BIN="$HOME/bin"`,
			key:   "BIN",
			want:  "/home/user/bin",
		},
		{
			name:  "entry shadows environment",
			input: "HOME=/srv\nBIN=\"$HOME/bin\"",
			key:   "BIN",
			want:  "/srv/bin",
		},
		{
			name:  "self reference sees own literal value",
			input: `PATH="/opt/bin:$PATH"`,
			key:   "PATH",
			want:  "/opt/bin:/opt/bin:$PATH",
		},
		{
			name:  "repeated key sees earlier expansion",
			input: "PATH=/a\nPATH=\"/b:$PATH\"\nPATH=\"/c:$PATH\"",
			key:   "PATH",
			want:  "/c:/b:/c:$PATH",
		},
		{
			name:  "earlier expansion visible to other keys",
			input: "X=\"$HOME\"\nY=\"[$X]\"\nX=\"$HOME/x\"",
			key:   "Y",
			want:  "[/home/user]",
		},
		{
			name:  "single quotes not expanded",
			input: "BASIC=basic\nLITERAL='$BASIC'",
			key:   "LITERAL",
			want:  "$BASIC",
		},
		{
			name:  "unquoted not expanded",
			input: "BASIC=basic\nLITERAL=$BASIC",
			key:   "LITERAL",
			want:  "$BASIC",
		},
		{
			name:  "forward reference sees literal value",
			input: "EARLY=\"[$LATE]\"\nLATE=\"$HOME\"",
			key:   "EARLY",
			want:  "[$HOME]",
		},
		{
			name:  "later entry overrides expanded entry",
			input: "A=a\nX=\"$A\"\nX=plain",
			key:   "X",
			want:  "plain",
		},
		{
			name:  "terminator preserved",
			input: "USER=me\nGREETING=\"hi $USER!\"",
			key:   "GREETING",
			want:  "hi me!",
		},
		{
			name:  "adjacent references",
			input: "A=a\nB=b\nAB=\"$A$B\"",
			key:   "AB",
			want:  "ab",
		},
		{
			name:  "unclosed brace",
			input: "A=a\nX=\"x${A\"",
			key:   "X",
			want:  "xa",
		},
		{
			name:  "lone dollar",
			input: `PRICE="costs $ 5$"`,
			key:   "PRICE",
			want:  "costs  5",
		},
		{
			name:  "expanded newline preserved",
			input: "A=\"one\\ntwo\"\nB=\"[$A]\"",
			key:   "B",
			want:  "[one\ntwo]",
		},
		{
			name:  "substituted value not rescanned",
			input: "A='$B'\nB=b\nC=\"$A\"",
			key:   "C",
			want:  "$B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Parse(tt.input).Expand(env)

			if got := m[tt.key]; got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestDocument_Expand_DoesNotModifyDocument(t *testing.T) {
	doc := Parse(expandedEnv)
	orig := append(Document(nil), doc...)

	_ = doc.Expand(nil)

	if !reflect.DeepEqual(doc, orig) {
		t.Errorf("Expand modified the document: %#v", doc)
	}

	if m := doc.Map(); m["EXPANDED"] != "$BASIC-expanded" {
		t.Errorf("Map() after Expand = %v", m)
	}
}

func TestExpandString(t *testing.T) {
	lookup := LookupMap(map[string]string{
		"NAME":  "zenv",
		"π":     "pi",
		"a b":   "spaced",
		"EMPTY": "",
	})

	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"no references", "no references"},
		{"$NAME", "zenv"},
		{"${NAME}", "zenv"},
		{"[$NAME]", "[zenv]"},
		{"$NAME.exe", "zenv.exe"},
		{"${NAME}_x", "zenv_x"},
		{"$NAME_x", ""},
		{"$π!", "pi!"},
		{"${a b}", "spaced"},
		{"<$EMPTY>", "<>"},
		{"$", ""},
		{"$$NAME", "zenv"},
		{"${}", ""},
		{"${NAME", "zenv"},
		{"100$-", "100-"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExpandString(tt.input, lookup); got != tt.want {
				t.Errorf("ExpandString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	if got := ExpandString("$NAME", nil); got != "" {
		t.Errorf("ExpandString with nil lookup = %q", got)
	}
}

func TestChain(t *testing.T) {
	lookup := Chain(
		nil,
		LookupMap(map[string]string{"A": "first"}),
		LookupMap(map[string]string{"A": "second", "B": "b"}),
	)

	if v, _ := lookup("A"); v != "first" {
		t.Errorf("A = %q, want first", v)
	}

	if v, _ := lookup("B"); v != "b" {
		t.Errorf("B = %q, want b", v)
	}

	if _, ok := lookup("C"); ok {
		t.Error("C reported defined")
	}
}

func BenchmarkExpand(b *testing.B) {
	doc := Parse(expandedEnv)

	for b.Loop() {
		_ = doc.Expand(NoLookup)
	}
}

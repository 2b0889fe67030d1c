package dotenv

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Is(t *testing.T) {
	cause := errors.New("boom")
	err := ErrReadInput.Wrap(cause).With(slog.String("path", ".env"))

	if !errors.Is(err, ErrReadInput) {
		t.Error("derived error does not match its sentinel")
	}

	if errors.Is(err, ErrNotFound) {
		t.Error("derived error matches an unrelated sentinel")
	}

	if !errors.Is(err, cause) {
		t.Error("derived error does not match its cause")
	}

	if got, want := err.Error(), "failed to read input: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	if WrapError(err) != err {
		t.Error("WrapError re-wrapped an *Error")
	}

	if errors.Is(WrapError(cause), ErrReadInput) {
		t.Error("anonymous error matched a sentinel")
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrFilter.Wrap(errors.New("bad")).With(slog.String("expr", "x"))

	attrs := err.LogValue().Group()

	want := map[string]string{"error": "invalid filter expression", "cause": "bad", "expr": "x"}
	if len(attrs) != len(want) {
		t.Fatalf("LogValue() = %v", attrs)
	}

	for _, a := range attrs {
		if want[a.Key] != a.Value.String() {
			t.Errorf("%s = %q, want %q", a.Key, a.Value.String(), want[a.Key])
		}
	}
}

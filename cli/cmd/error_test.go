package cmd

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Is(t *testing.T) {
	err := ErrWriteConfig.With(slog.String("path", "config")).Wrap(ErrFileExists)

	tests := []struct {
		name   string
		target error
		want   bool
	}{
		{"own sentinel", ErrWriteConfig, true},
		{"wrapped sentinel", ErrFileExists, true},
		{"unrelated sentinel", ErrKeyNotFound, false},
		{"empty message", NewError(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(err, tt.target); got != tt.want {
				t.Errorf("errors.Is(%v, %v) = %t, want %t", err, tt.target, got, tt.want)
			}
		})
	}

	cause := errors.New("boom")
	if errors.Is(NewError("").Wrap(cause), NewError("").Wrap(errors.New("other"))) {
		t.Error("errors without a message matched each other")
	}
}

func TestExitStatus(t *testing.T) {
	var err error = ExitStatus(3)

	if got, want := err.Error(), "exit status 3"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var status ExitStatus
	if !errors.As(err, &status) || status != 3 {
		t.Errorf("errors.As(%v) = %d", err, status)
	}
}

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidFormat, "bad format %q", "png")

	if err.Code != ErrCodeInvalidFormat {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidFormat)
	}
	if !strings.Contains(err.Error(), `bad format "png"`) {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Error("New() should have no cause")
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeWrite, cause, "write %s", "out.html")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not found by errors.Is")
	}
	msg := err.Error()
	for _, want := range []string{"WRITE_ERROR", "write out.html", "disk full"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, missing %q", msg, want)
		}
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeFileNotFound, "open input.conllu")

	if !Is(err, ErrCodeFileNotFound) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeWrite) {
		t.Error("Is() = true for mismatched code")
	}
	if Is(stderrors.New("plain"), ErrCodeFileNotFound) {
		t.Error("Is() = true for plain error")
	}
	if Is(nil, ErrCodeFileNotFound) {
		t.Error("Is() = true for nil error")
	}

	// The code survives fmt wrapping.
	wrapped := fmt.Errorf("render: %w", err)
	if !Is(wrapped, ErrCodeFileNotFound) {
		t.Error("Is() = false through fmt.Errorf wrapping")
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"structured", New(ErrCodeInvalidConfig, "x"), ErrCodeInvalidConfig},
		{"wrapped", fmt.Errorf("outer: %w", New(ErrCodeRead, "x")), ErrCodeRead},
		{"plain", stderrors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %q, want %q", got, tt.want)
			}
		})
	}
}

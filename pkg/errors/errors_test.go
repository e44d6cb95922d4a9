package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(ErrCodeNotSquareFree, "repeated factor in %s", "y")
	want := "NOT_SQUAREFREE: repeated factor in y"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(ErrCodeInternal, err, "outer context")
	if got := wrapped.Error(); got != "INTERNAL_ERROR: outer context: "+want {
		t.Errorf("wrapped Error() = %q", got)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeAmbiguousRoot, "two strands, one root")
	if !Is(err, ErrCodeAmbiguousRoot) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// the code is found through wrapping layers
	outer := fmt.Errorf("outer: %w", err)
	if !Is(outer, ErrCodeAmbiguousRoot) {
		t.Error("Is should unwrap to find the code")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodePrecisionExhausted, "cap hit")); got != ErrCodePrecisionExhausted {
		t.Errorf("GetCode = %q", got)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode of a plain error = %q, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "context")
	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match its cause via errors.Is")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "unexpected character at position 3")
	if got := UserMessage(err); got != "unexpected character at position 3" {
		t.Errorf("UserMessage = %q", got)
	}
	if got := UserMessage(stderrors.New("plain")); got != "plain" {
		t.Errorf("UserMessage of a plain error = %q", got)
	}
}

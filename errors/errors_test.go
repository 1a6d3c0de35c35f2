package errors_test

import (
	stderrors "errors"
	"strings"
	"testing"

	wasierrors "github.com/wippyai/wasi-stub/errors"
)

func TestErrorFormat(t *testing.T) {
	err := wasierrors.UnsupportedLayout("env", "log")
	msg := err.Error()

	if !strings.HasPrefix(msg, "[transform] unsupported_layout") {
		t.Errorf("unexpected prefix: %s", msg)
	}
	if !strings.Contains(msg, "env::log") {
		t.Errorf("message should name the import: %s", msg)
	}
}

func TestErrorFormatWithCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := wasierrors.InputNotValid(cause)

	if !strings.Contains(err.Error(), "caused by: boom") {
		t.Errorf("message should include cause: %s", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("Unwrap should expose the cause")
	}
}

func TestSentinelMatching(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{wasierrors.InputNotValid(nil), wasierrors.ErrInputNotValid},
		{wasierrors.UnsupportedLayout("a", "b"), wasierrors.ErrUnsupportedImportLayout},
		{wasierrors.UnsupportedSignature("a", "b", "i64"), wasierrors.ErrUnsupportedSignature},
		{wasierrors.OutputInvalid(nil), wasierrors.ErrOutputNotValid},
	}
	for _, tt := range tests {
		if !stderrors.Is(tt.err, tt.sentinel) {
			t.Errorf("%v should match its sentinel", tt.err)
		}
	}

	// Distinct phase/kind pairs do not match.
	if stderrors.Is(wasierrors.InputNotValid(nil), wasierrors.ErrOutputNotValid) {
		t.Error("input and output validation errors should not match")
	}
}

func TestDecodeFailedPath(t *testing.T) {
	err := wasierrors.DecodeFailed("import", stderrors.New("truncated"))
	if !strings.Contains(err.Error(), "at import") {
		t.Errorf("message should include section path: %s", err.Error())
	}
}

package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseValidate  Phase = "validate"  // structural validation of a buffer
	PhaseDecode    Phase = "decode"    // binary to typed section views
	PhaseTransform Phase = "transform" // import partitioning and stub synthesis
	PhaseEncode    Phase = "encode"    // reassembly to binary
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidInput         Kind = "invalid_input"
	KindInvalidData          Kind = "invalid_data"
	KindUnsupportedLayout    Kind = "unsupported_layout"
	KindUnsupportedSignature Kind = "unsupported_signature"
	KindOutputInvalid        Kind = "output_invalid"
)

// Error is the structured error type used throughout the rewriter
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. Two Errors match when their
// Phase and Kind agree, so sentinel instances work with errors.Is.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is matching of the rewriter's terminal failures.
var (
	// ErrInputNotValid is returned when the input buffer fails structural
	// validation before any transformation begins.
	ErrInputNotValid = &Error{Phase: PhaseValidate, Kind: KindInvalidInput}

	// ErrUnsupportedImportLayout is returned when a pass-through import
	// follows a to-be-stubbed one, so the import run cannot be excised
	// without renumbering call sites.
	ErrUnsupportedImportLayout = &Error{Phase: PhaseTransform, Kind: KindUnsupportedLayout}

	// ErrUnsupportedSignature is returned when a stub body cannot satisfy an
	// import's declared result types.
	ErrUnsupportedSignature = &Error{Phase: PhaseTransform, Kind: KindUnsupportedSignature}

	// ErrOutputNotValid is returned when the assembled module fails
	// structural validation, indicating a synthesis defect.
	ErrOutputNotValid = &Error{Phase: PhaseValidate, Kind: KindOutputInvalid}
)

// Convenience constructors for common error patterns

// InputNotValid creates an input validation failure
func InputNotValid(cause error) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindInvalidInput,
		Detail: "input module failed validation",
		Cause:  cause,
	}
}

// UnsupportedLayout creates an import ordering violation error
func UnsupportedLayout(module, name string) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindUnsupportedLayout,
		Detail: fmt.Sprintf("import %s::%s follows a stubbed import; stubbed imports must come last", module, name),
	}
}

// UnsupportedSignature creates an unsatisfiable stub signature error
func UnsupportedSignature(module, name, results string) *Error {
	return &Error{
		Phase:  PhaseTransform,
		Kind:   KindUnsupportedSignature,
		Detail: fmt.Sprintf("cannot synthesize body for %s::%s with results (%s)", module, name, results),
	}
}

// OutputInvalid creates an output validation failure
func OutputInvalid(cause error) *Error {
	return &Error{
		Phase:  PhaseValidate,
		Kind:   KindOutputInvalid,
		Detail: "rewritten module failed validation",
		Cause:  cause,
	}
}

// DecodeFailed creates a section decoding error
func DecodeFailed(section string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidData,
		Path:   []string{section},
		Detail: fmt.Sprintf("parse %s section", section),
		Cause:  cause,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

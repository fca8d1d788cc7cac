package errs

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred.
type Phase string

const (
	PhaseSchema   Phase = "schema"   // layout composition
	PhaseEncode   Phase = "encode"   // domain to wire
	PhaseDecode   Phase = "decode"   // wire to domain
	PhaseValidate Phase = "validate" // document validation
	PhaseEnvelope Phase = "envelope" // compression envelope
)

// Error is the structured error used throughout the codec.
//
// Kind is one of the sentinel errors of this package. Path is the dotted field path from the
// document root, e.g. elements.3.styles.stroke.0.width.
type Error struct {
	Kind   error
	Cause  error
	Value  any
	Phase  Phase
	Detail string
	Path   []string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("error")
	}

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

// Unwrap exposes both the sentinel kind and the underlying cause to errors.Is/As.
func (e *Error) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}

	return out
}

// PathString returns the dotted field path.
func (e *Error) PathString() string {
	return strings.Join(e.Path, ".")
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New creates a new error builder for the given phase and sentinel kind.
func New(phase Phase, kind error) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path.
func (b *Builder) Path(segments ...string) *Builder {
	b.err.Path = append([]string(nil), segments...)
	return b
}

// Value sets the offending value.
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error.
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message.
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}

	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingField creates a missing required field error.
func MissingField(phase Phase, path []string, field string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   ErrMissingRequiredField,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not present", field),
	}
}

// InvalidEnum creates an out-of-range enum error.
func InvalidEnum(phase Phase, path []string, enumType string, value, maxValid uint8) *Error {
	return &Error{
		Phase:  phase,
		Kind:   ErrInvalidEnum,
		Path:   path,
		Value:  value,
		Detail: fmt.Sprintf("%s code %d out of range (max %d)", enumType, value, maxValid),
	}
}

// UnknownVariant creates an unknown element variant error.
func UnknownVariant(path []string, tag uint8) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   ErrUnknownVariant,
		Path:   path,
		Value:  tag,
		Detail: fmt.Sprintf("no decoder registered for tag %d", tag),
	}
}

// Malformed creates a malformed buffer error.
func Malformed(path []string, detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   ErrMalformedBuffer,
		Path:   path,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// Wrap wraps an existing error with a phase and sentinel kind.
func Wrap(phase Phase, kind error, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Cause:  cause,
		Detail: detail,
	}
}

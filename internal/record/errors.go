package record

import (
	"errors"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrorKind classifies why a document was rejected.
type ErrorKind string

const (
	KindMalformedDocument    ErrorKind = "MalformedDocument"
	KindMissingRequiredField ErrorKind = "MissingRequiredField"
	KindInvalidField         ErrorKind = "InvalidField"
	KindInvalidTimestamp     ErrorKind = "InvalidTimestamp"
	KindInvalidSlug          ErrorKind = "InvalidSlug"
)

var (
	ErrMalformedDocument    = errors.New("content record: malformed document")
	ErrMissingRequiredField = errors.New("content record: missing required field")
	ErrInvalidField         = errors.New("content record: invalid field")
	ErrInvalidTimestamp     = errors.New("content record: invalid timestamp")
	ErrInvalidSlug          = errors.New("content record: invalid slug")
)

var kindSentinels = map[ErrorKind]error{
	KindMalformedDocument:    ErrMalformedDocument,
	KindMissingRequiredField: ErrMissingRequiredField,
	KindInvalidField:         ErrInvalidField,
	KindInvalidTimestamp:     ErrInvalidTimestamp,
	KindInvalidSlug:          ErrInvalidSlug,
}

var kindTextCodes = map[ErrorKind]string{
	KindMalformedDocument:    "CONTENT_MALFORMED_DOCUMENT",
	KindMissingRequiredField: "CONTENT_MISSING_REQUIRED_FIELD",
	KindInvalidField:         "CONTENT_INVALID_FIELD",
	KindInvalidTimestamp:     "CONTENT_INVALID_TIMESTAMP",
	KindInvalidSlug:          "CONTENT_INVALID_SLUG",
}

// TextCode returns the go-errors text code attached to errors of this kind.
func (k ErrorKind) TextCode() string {
	return kindTextCodes[k]
}

// ParseError is returned by the parser for every rejected document. Field
// names the offending front matter key using its canonical name.
type ParseError struct {
	Kind   ErrorKind
	Field  string
	Value  string
	Detail string
	cause  error
}

func newParseError(kind ErrorKind, field, value, detail string) *ParseError {
	err := &ParseError{
		Kind:   kind,
		Field:  field,
		Value:  value,
		Detail: detail,
	}
	err.cause = goerrors.Wrap(kindSentinels[kind], goerrors.CategoryValidation, err.message()).
		WithTextCode(kind.TextCode())
	return err
}

func (e *ParseError) message() string {
	var b strings.Builder
	switch e.Kind {
	case KindMalformedDocument:
		b.WriteString("malformed document")
	case KindMissingRequiredField:
		fmt.Fprintf(&b, "missing required field %q", e.Field)
	case KindInvalidField:
		fmt.Fprintf(&b, "invalid field %q", e.Field)
	case KindInvalidTimestamp:
		fmt.Fprintf(&b, "invalid timestamp %q for %q", e.Value, e.Field)
	case KindInvalidSlug:
		fmt.Fprintf(&b, "invalid slug %q", e.Value)
	default:
		b.WriteString(string(e.Kind))
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *ParseError) Error() string {
	return "content record: " + e.message()
}

// Unwrap exposes the go-errors value so category checks keep working.
func (e *ParseError) Unwrap() error {
	return e.cause
}

// Is matches the sentinel of the error's kind.
func (e *ParseError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

// KindOf returns the ErrorKind of a parse error, or "" when err is not one.
func KindOf(err error) ErrorKind {
	var parseErr *ParseError
	if errors.As(err, &parseErr) && parseErr != nil {
		return parseErr.Kind
	}
	return ""
}

package failures

import (
	"errors"
)

// Kind classifies a domain failure so the HTTP boundary can map it to a
// response without inspecting messages.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAuthorization
	KindConflict
	KindInvalidRequest
	KindUnsupportedModel
	KindGeneration
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuthorization:
		return "authorization"
	case KindConflict:
		return "conflict"
	case KindInvalidRequest:
		return "invalid_request"
	case KindUnsupportedModel:
		return "unsupported_model"
	case KindGeneration:
		return "generation"
	default:
		return "unknown"
	}
}

// Failure is the error type returned past orchestration boundaries. It
// keeps the underlying cause so logs retain the original gateway or
// storage error while callers only branch on Kind.
type Failure struct {
	Kind    Kind
	Message string
	Cause   error
}

// Error returns only the domain message. The cause stays reachable
// through Unwrap so it never leaks into client responses.
func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Unwrap() error {
	return f.Cause
}

func NotFound(message string) *Failure {
	return &Failure{Kind: KindNotFound, Message: message}
}

func Authorization(message string) *Failure {
	return &Failure{Kind: KindAuthorization, Message: message}
}

func Conflict(message string) *Failure {
	return &Failure{Kind: KindConflict, Message: message}
}

func InvalidRequest(message string) *Failure {
	return &Failure{Kind: KindInvalidRequest, Message: message}
}

func UnsupportedModel(message string) *Failure {
	return &Failure{Kind: KindUnsupportedModel, Message: message}
}

func Generation(message string, cause error) *Failure {
	return &Failure{Kind: KindGeneration, Message: message, Cause: cause}
}

// Internal wraps storage or infrastructure errors that have no domain
// meaning of their own.
func Internal(message string, cause error) *Failure {
	return &Failure{Kind: KindUnknown, Message: message, Cause: cause}
}

// KindOf returns the failure kind of err, or KindUnknown for plain errors.
func KindOf(err error) Kind {
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a Failure of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// Package autherr defines the typed error taxonomy for the authentication
// core. Every failure that crosses a component boundary is an *Error with a
// Kind from the fixed set below; raw transport or SDK errors never escape
// the gateway/adapter layer. Callers match with errors.As or KindOf.
package autherr

import "errors"

// Kind classifies an authentication failure.
type Kind string

const (
	KindInvalidCredentials     Kind = "invalid_credentials"
	KindDuplicateAccount       Kind = "duplicate_account"
	KindValidationFailed       Kind = "validation_failed"
	KindTokenExpired           Kind = "token_expired"
	KindSocialProviderRejected Kind = "social_provider_rejected"
	KindNetworkFailure         Kind = "network_failure"
	KindUnknown                Kind = "unknown"
)

// Error is a classified authentication failure. Message is safe to show to
// the user; the wrapped cause (if any) is for logs only.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is makes two *Error values match under errors.Is when their kinds match,
// so sentinel-style comparisons like errors.Is(err, autherr.New(KindTokenExpired, ""))
// are possible. Matching on Kind via KindOf is the common path.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// New returns a classified error without a cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

// KindOf extracts the Kind from err, walking the wrap chain. Errors that
// are not *Error classify as KindUnknown; a nil err has no kind and
// returns "".
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// AsError returns err as an *Error, wrapping foreign errors as KindUnknown
// so callers always have a displayable, classified value.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(KindUnknown, "unexpected error", err)
}

package failure

import (
	"errors"
	"net/http"
)

// Kind names the class of a failure so callers can branch on it without parsing messages.
type Kind string

const (
	KindMalformedPayload    Kind = "MalformedPayload"
	KindMissingOrEmptyField Kind = "MissingOrEmptyField"
	KindInvalidDateFormat   Kind = "InvalidDateFormat"
	KindPastDate            Kind = "PastDate"
	KindInvalidMobile       Kind = "InvalidMobile"
	KindStorageFailure      Kind = "StorageFailure"
	KindMissingField        Kind = "MissingField"
	KindMailNotConfigured   Kind = "MailNotConfigured"
	KindMailDeliveryFailed  Kind = "MailDeliveryFailed"
	KindInvalidDateRange    Kind = "InvalidDateRange"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Detail carries technical text that is only exposed to clients in debug mode.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    Kind   `json:"kind,omitempty"`
	Details any    `json:"details,omitempty"`
	Detail  string `json:"-"`
}

// ForbiddenError is returned when the caller's level is not allowed on a route.
var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the client facing message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Validation returns a client-side Failure of the given kind with field level details.
func Validation(kind Kind, msg string, details any) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    kind,
		Details: details,
	}
}

// Internal returns a server-side Failure of the given kind. The cause is kept as Detail.
func Internal(kind Kind, msg string, cause error) error {
	f := &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg,
		Kind:    kind,
	}

	if cause != nil {
		f.Detail = cause.Error()
	}

	return f
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetKind returns the failure kind of an error interface, empty when it has none.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return ""
}

// Is reports whether err is a Failure of the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}

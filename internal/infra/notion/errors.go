package notion

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode is the machine-readable code the service attaches to error
// responses.
type ErrorCode string

const (
	CodeRateLimited         ErrorCode = "rate_limited"
	CodeInternalServerError ErrorCode = "internal_server_error"
	CodeServiceUnavailable  ErrorCode = "service_unavailable"
	CodeValidationError     ErrorCode = "validation_error"
	CodeInvalidJSON         ErrorCode = "invalid_json"
	CodeInvalidRequestURL   ErrorCode = "invalid_request_url"
	CodeObjectNotFound      ErrorCode = "object_not_found"
	CodeUnauthorized        ErrorCode = "unauthorized"
	CodeRestrictedResource  ErrorCode = "restricted_resource"
	CodeConflictError       ErrorCode = "conflict_error"
)

// Error is a failed API response. It is decoded from the service's error
// shape {object:"error", status, code, message}; when the body cannot be
// decoded the code is synthesized from the HTTP status so transient upstream
// failures (429/5xx behind a proxy) still classify correctly.
type Error struct {
	Status  int       `json:"status"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notion: %s (HTTP %d)", e.Code, e.Status)
	}
	return fmt.Sprintf("notion: %s (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// Retryable reports whether err is a transient service failure worth
// retrying. Only rate_limited, internal_server_error and service_unavailable
// qualify; every other shape, including errors that are not service errors at
// all, is terminal. Unknown means terminal: retrying a permanently broken
// request never converges.
func Retryable(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.Code {
	case CodeRateLimited, CodeInternalServerError, CodeServiceUnavailable:
		return true
	}
	return false
}

func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusTooManyRequests:
		return CodeRateLimited
	case http.StatusInternalServerError:
		return CodeInternalServerError
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return CodeServiceUnavailable
	}
	return ""
}

// KindError reports a response that decoded cleanly but declared a different
// object kind than the caller asked for. Terminal: the transport call
// succeeded, the request itself asked for the wrong thing.
type KindError struct {
	Want ObjectKind
	Got  ObjectKind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("notion: unexpected object kind: want %q, got %q", e.Want, e.Got)
}

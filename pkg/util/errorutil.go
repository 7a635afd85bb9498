package util

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// ErrorKind classifies failures raised at the gateway boundary.
type ErrorKind string

const (
	KindAuthExpired ErrorKind = "AUTH_EXPIRED"
	KindServerError ErrorKind = "SERVER_ERROR"
	KindTimeout     ErrorKind = "TIMEOUT"
	KindValidation  ErrorKind = "VALIDATION"
	KindNetwork     ErrorKind = "NETWORK"
	KindParse       ErrorKind = "PARSE"
)

// APIError standardizes errors surfaced by the remote HR service client.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError constructs an APIError.
func NewAPIError(kind ErrorKind, status int, message string, err error) *APIError {
	return &APIError{Kind: kind, Status: status, Message: message, Err: err}
}

func NewAuthExpired(message string) error {
	return NewAPIError(KindAuthExpired, http.StatusUnauthorized, message, nil)
}

func NewServerError(status int, message string) error {
	return NewAPIError(KindServerError, status, message, nil)
}

func NewTimeout(err error) error {
	return NewAPIError(KindTimeout, 0, "request timeout", err)
}

func NewValidationError(status int, message string) error {
	return NewAPIError(KindValidation, status, message, nil)
}

func NewNetworkError(err error) error {
	return NewAPIError(KindNetwork, 0, "network unreachable", err)
}

func NewParseError(err error) error {
	return NewAPIError(KindParse, 0, "malformed response body", err)
}

// ToAPIError converts generic errors to APIError.
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		if ae, ok := NewTimeout(err).(*APIError); ok {
			return ae
		}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		if ae, ok := NewTimeout(err).(*APIError); ok {
			return ae
		}
	}
	return &APIError{Kind: KindNetwork, Message: "network unreachable", Err: err}
}

// IsKind reports whether err carries the given classification.
func IsKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Kind == kind
}

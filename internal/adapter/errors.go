package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// APIError is a failed remote call.
type APIError struct {
	// StatusCode is the HTTP status of the reply.
	StatusCode int
	// Code is the errorCode field of the reply body, if any.
	Code string
	// Body is the trimmed reply body.
	Body string
}

func (e *APIError) Error() string {
	msg := e.Code
	if msg == "" {
		msg = e.Body
	}
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("http %d: %s", e.StatusCode, msg)
}

// Unwrap returns the sentinel matching the status code, or the error code
// when the remote reported a failure with a 2xx status.
func (e *APIError) Unwrap() error {
	if e.StatusCode >= http.StatusOK && e.StatusCode < http.StatusMultipleChoices {
		return sentinelForCode(e.Code)
	}
	return sentinelForStatus(e.StatusCode)
}

func sentinelForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	case http.StatusInternalServerError:
		return ErrInternalServerError
	default:
		return ErrUnexpectedStatus
	}
}

func sentinelForCode(code string) error {
	switch {
	case code == "unauthorized":
		return ErrUnauthorized
	case code == "forbidden":
		return ErrForbidden
	case strings.HasSuffix(code, "-not-found"):
		return ErrNotFound
	default:
		return ErrBadRequest
	}
}

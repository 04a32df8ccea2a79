package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrSubmissionPending  = errors.New("a previous submission is still in flight")
	ErrStaleResponse      = errors.New("response superseded by a newer request")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrKeyNotFound        = errors.New("storage key not found")
)

// ValidationError is raised before any network call when user input is
// missing or malformed.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return strings.Join(e.Fields, "; ")
}

// NetworkError means the upstream could not be reached (refused, DNS, timeout).
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: upstream unreachable: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ServerError is a non-2xx upstream response.
type ServerError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: upstream returned %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: upstream returned %d: %s", e.Op, e.Status, e.Message)
}

// Is lets a 404 ServerError match ErrNotFound. A 401 matches
// ErrInvalidCredentials only for login calls.
func (e *ServerError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrInvalidCredentials:
		return e.Status == http.StatusUnauthorized && isLoginOp(e.Op)
	}
	return false
}

func isLoginOp(op string) bool {
	return strings.HasPrefix(op, "auth.") && strings.HasSuffix(op, "login")
}

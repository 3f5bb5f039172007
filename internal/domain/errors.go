package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnauthenticated is returned for a missing, malformed or expired credential.
	ErrUnauthenticated = errors.New("Unauthorized")
	// ErrForbidden is returned when the principal does not own the resource.
	ErrForbidden = errors.New("Forbidden")
)

// NotFoundError represents a missing resource. Message, when set, replaces
// the default "<Resource> not found" text.
type NotFoundError struct {
	Resource string
	Message  string
}

func (e NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is enables errors.Is matching on NotFoundError.
func (e NotFoundError) Is(target error) bool {
	_, ok := target.(NotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*NotFoundError)
	return ok
}

// ErrNotFound is the sentinel error for missing resources.
var ErrNotFound = NotFoundError{}

// AuthError is an authentication failure with its own client-facing message.
// It matches ErrUnauthenticated.
type AuthError struct {
	Message string
}

func (e AuthError) Error() string {
	return e.Message
}

func (e AuthError) Is(target error) bool {
	return target == ErrUnauthenticated
}

// ValidationError carries per-field violation messages in declaration order.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+strings.Join(e.Fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Add appends a message for field.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
}

// ConflictError reports a uniqueness violation such as a duplicate email.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	if e.Message == "" {
		return "conflict"
	}
	return e.Message
}

// MalformedRequestError wraps a body that could not be parsed at all.
type MalformedRequestError struct {
	Cause error
}

func (e MalformedRequestError) Error() string {
	return "Invalid JSON"
}

func (e MalformedRequestError) Unwrap() error {
	return e.Cause
}

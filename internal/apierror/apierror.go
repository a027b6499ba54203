// Package apierror provides the standardized error envelope for the API and
// the typed error taxonomy shared by services and repositories. All errors
// returned to clients go through this package to ensure consistency and to
// prevent leaking internal details (stack traces, backend errors, etc.).
package apierror

import "fmt"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// FieldErrors wraps multiple per-field validation errors.
type FieldErrors struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewFields(fields map[string]string) *FieldErrors {
	return &FieldErrors{Detail: "validation failed", Fields: fields}
}

// ── Typed taxonomy ───────────────────────────────────────────────────────────
// Services return these; the handler layer maps each type to an HTTP status.
// No structured codes cross the wire — only the human-readable message.

// AuthError covers bad credentials and identities without a profile record.
type AuthError struct {
	Msg string
}

func (e *AuthError) Error() string { return e.Msg }

func NewAuth(msg string) *AuthError { return &AuthError{Msg: msg} }

// NotFoundError indicates a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s %q not found", e.Entity, e.ID)
}

func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError indicates caller-supplied data is malformed.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidation(msg string) *ValidationError { return &ValidationError{Msg: msg} }

// ConflictError indicates an optimistic-concurrency check failed: the entity
// was modified since the caller last read it.
type ConflictError struct {
	Entity string
	ID     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q was modified concurrently, reload and retry", e.Entity, e.ID)
}

func NewConflict(entity, id string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id}
}

// TransitionError indicates a status change the entity's transition table
// does not allow.
type TransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %q to %q", e.Entity, e.From, e.To)
}

func NewTransition(entity, from, to string) *TransitionError {
	return &TransitionError{Entity: entity, From: from, To: to}
}

// BackendUnavailableError indicates remote mode was selected while the remote
// backend is not configured or not reachable.
type BackendUnavailableError struct {
	Msg string
}

func (e *BackendUnavailableError) Error() string {
	if e.Msg == "" {
		return "remote backend is not available"
	}
	return e.Msg
}

func NewBackendUnavailable(msg string) *BackendUnavailableError {
	return &BackendUnavailableError{Msg: msg}
}

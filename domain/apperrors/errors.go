package apperrors

import "fmt"

// ValidationError signals malformed caller input. Raised before any remote
// call or write is attempted.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Msg)
}

func NewValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UpstreamError signals that Google Drive rejected or failed a listing.
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("upstream: %s", e.Msg)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func NewUpstream(msg string, err error) *UpstreamError {
	return &UpstreamError{Msg: msg, Err: err}
}

// EmptyResultError signals a folder listing that yielded no eligible images.
type EmptyResultError struct {
	Msg string
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("empty result: %s", e.Msg)
}

func NewEmptyResult(format string, args ...interface{}) *EmptyResultError {
	return &EmptyResultError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError signals a failed store write. The store is left untouched.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("persistence: %s", e.Op)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistence(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// InvalidStateError signals an operation rejected by the gallery state
// machine, e.g. toggling likes on a submitted gallery.
type InvalidStateError struct {
	Msg string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("invalid state: %s", e.Msg)
}

func NewInvalidState(format string, args ...interface{}) *InvalidStateError {
	return &InvalidStateError{Msg: fmt.Sprintf(format, args...)}
}

// NotFoundError signals a missing entity.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFound(resource string) *NotFoundError {
	return &NotFoundError{Resource: resource}
}

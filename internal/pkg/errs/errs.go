package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets for the typed errors below.
// Callers classify failures with errors.Is against these values.
var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsOutOfRange = errors.New("value is invalid")
	ErrActionIsForbidden = errors.New("action is forbidden")
	ErrUploadFailed      = errors.New("upload failed")
)

// sanitize strips newlines from values interpolated into error messages
// so a single error always renders on one log line.
func sanitize(v any) string {
	return strings.ReplaceAll(strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError that wraps
// an underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError that wraps
// the validation failure detail.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError that wraps
// an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsOutOfRangeError indicates that a numeric value is outside its
// allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError describing the
// allowed range.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError that
// wraps an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(paramName string, value, minValue, maxValue any, cause error) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, sanitize(e.Value), e.ParamName, e.Min, e.Max)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ActionIsForbiddenError indicates that an authenticated actor is not allowed
// to perform the requested action, either because of its role or because it
// does not own the target object.
type ActionIsForbiddenError struct {
	Action    string
	ActorRole string
	Cause     error
}

// NewActionIsForbiddenError creates an ActionIsForbiddenError for the given
// action and the role of the actor that attempted it.
func NewActionIsForbiddenError(action, actorRole string) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Action: action, ActorRole: actorRole}
}

// NewActionIsForbiddenErrorWithCause creates an ActionIsForbiddenError that
// wraps the denial reason.
func NewActionIsForbiddenErrorWithCause(action, actorRole string, cause error) *ActionIsForbiddenError {
	return &ActionIsForbiddenError{Action: action, ActorRole: actorRole, Cause: cause}
}

func (e *ActionIsForbiddenError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not allowed for %s (cause: %s)",
			ErrActionIsForbidden, e.Action, e.ActorRole, sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s is not allowed for %s", ErrActionIsForbidden, e.Action, e.ActorRole)
}

func (e *ActionIsForbiddenError) Unwrap() error {
	return ErrActionIsForbidden
}

// UploadFailedError indicates that a file in an upload batch could not be
// persisted. Filename identifies the failing file; files stored earlier in
// the same batch are not rolled back.
type UploadFailedError struct {
	Filename string
	Cause    error
}

// NewUploadFailedError creates an UploadFailedError naming the failing file.
func NewUploadFailedError(filename string) *UploadFailedError {
	return &UploadFailedError{Filename: filename}
}

// NewUploadFailedErrorWithCause creates an UploadFailedError that wraps the
// storage-level failure.
func NewUploadFailedErrorWithCause(filename string, cause error) *UploadFailedError {
	return &UploadFailedError{Filename: filename, Cause: cause}
}

func (e *UploadFailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrUploadFailed, sanitize(e.Filename), sanitize(e.Cause))
	}
	return fmt.Sprintf("%s: %s", ErrUploadFailed, sanitize(e.Filename))
}

func (e *UploadFailedError) Unwrap() error {
	return ErrUploadFailed
}

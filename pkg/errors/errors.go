package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Template errors
	ErrUnnamedVariable   ErrorCode = "UNNAMED_VARIABLE"
	ErrUnclosedVariable  ErrorCode = "UNCLOSED_VARIABLE"
	ErrUndefinedVariable ErrorCode = "UNDEFINED_VARIABLE"
	ErrVariableRender    ErrorCode = "VARIABLE_RENDER"
	ErrMissingVariable   ErrorCode = "MISSING_VARIABLE"

	// Variable provider errors
	ErrCanonicalize     ErrorCode = "CANONICALIZE"
	ErrMetadataRead     ErrorCode = "METADATA_READ"
	ErrExifRead         ErrorCode = "EXIF_READ"
	ErrExifNotFound     ErrorCode = "EXIF_NOT_FOUND"
	ErrExifMissingField ErrorCode = "EXIF_MISSING_FIELD"
	ErrDateNotFound     ErrorCode = "DATE_NOT_FOUND"
	ErrDateParse        ErrorCode = "DATE_PARSE"
	ErrNotUTF8          ErrorCode = "NOT_UTF8"
	ErrNoCandidate      ErrorCode = "NO_CANDIDATE"

	// Replicator errors
	ErrUnknownReplicator    ErrorCode = "UNKNOWN_REPLICATOR"
	ErrReplicatorsExhausted ErrorCode = "REPLICATORS_EXHAUSTED"

	// Sort errors, one per pipeline stage
	ErrSortContext   ErrorCode = "SORT_CONTEXT"
	ErrSortRender    ErrorCode = "SORT_RENDER"
	ErrSortResolve   ErrorCode = "SORT_RESOLVE"
	ErrSortOverwrite ErrorCode = "SORT_OVERWRITE"
	ErrSortReplicate ErrorCode = "SORT_REPLICATE"
	ErrSortWalk      ErrorCode = "SORT_WALK"
	ErrSortFailed    ErrorCode = "SORT_FAILED"

	// Watch errors
	ErrWatcherCreate ErrorCode = "WATCHER_CREATE"
	ErrWatch         ErrorCode = "WATCH"
	ErrWatchLocked   ErrorCode = "WATCH_LOCKED"
	ErrEventRetrieve ErrorCode = "EVENT_RETRIEVE"
)

// PhotosortError represents a structured error with code and details
type PhotosortError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PhotosortError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PhotosortError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PhotosortError) Is(target error) bool {
	var targetErr *PhotosortError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PhotosortError with the given code and message
func New(code ErrorCode, message string) *PhotosortError {
	return &PhotosortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PhotosortError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PhotosortError {
	return &PhotosortError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PhotosortError
func Wrap(err error, code ErrorCode, message string) *PhotosortError {
	if err == nil {
		return nil
	}
	return &PhotosortError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PhotosortError {
	if err == nil {
		return nil
	}
	return &PhotosortError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PhotosortError) WithDetail(key string, value interface{}) *PhotosortError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *PhotosortError) WithDetails(details map[string]interface{}) *PhotosortError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if the outermost PhotosortError has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var psErr *PhotosortError
	if errors.As(err, &psErr) {
		return psErr.Code == code
	}
	return false
}

// HasErrorCode reports whether any PhotosortError in the chain carries code.
// Sort errors wrap render errors which wrap provider errors, so the root
// cause of a failed file is usually a few levels down.
func HasErrorCode(err error, code ErrorCode) bool {
	return errors.Is(err, &PhotosortError{Code: code})
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PhotosortError
func GetErrorCode(err error) ErrorCode {
	var psErr *PhotosortError
	if errors.As(err, &psErr) {
		return psErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PhotosortError
func GetErrorDetails(err error) map[string]interface{} {
	var psErr *PhotosortError
	if errors.As(err, &psErr) {
		return psErr.Details
	}
	return nil
}

// GetDetail returns a single detail from the outermost PhotosortError
func GetDetail(err error, key string) (interface{}, bool) {
	details := GetErrorDetails(err)
	if details == nil {
		return nil, false
	}
	v, ok := details[key]
	return v, ok
}

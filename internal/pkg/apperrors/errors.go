package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Persistence errors
	ErrStoreFailure = errors.New("store failure")

	// External service errors
	ErrUpstreamFailure = errors.New("upstream service failure")
)

// Student errors
var (
	ErrStudentNotFound     = errors.New("student not found")
	ErrRollAlreadyExists   = errors.New("roll number already exists")
	ErrAllocationExhausted = errors.New("roll allocation retries exhausted")
	ErrInvalidFeeStatus    = errors.New("fee status must be 'paid' or 'due'")
	ErrInvalidRollFormat   = errors.New("invalid roll number format")
)

// Teacher errors
var (
	ErrTeacherNotFound = errors.New("teacher not found")
	ErrInvalidPIN      = errors.New("invalid PIN")
)

// Announcement errors
var (
	ErrAnnouncementInvalid = errors.New("announcement text and section are required")
)

// Material and timetable errors
var (
	ErrMaterialNotFound  = errors.New("material not found")
	ErrTimetableNotFound = errors.New("timetable entry not found")
)

// Report generation errors
var (
	ErrReportInputMissing     = errors.New("student data and teachers are required")
	ErrReportGenerationFailed = errors.New("failed to generate report")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewUpstreamError creates a new custom error for external service failures with a message
func NewUpstreamError(message string) error {
	return &CustomError{
		Err:     ErrUpstreamFailure,
		Message: message,
	}
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}

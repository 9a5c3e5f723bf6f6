package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Student errors
var (
	ErrStudentNotFound = NewResourceNotFoundError("Student not found")
	ErrResumeNotFound  = NewResourceNotFoundError("Resume not found")
	ErrPhotoNotFound   = NewResourceNotFoundError("Photo not found")
	ErrFileNotFound    = NewResourceNotFoundError("File not found")
)

// Company errors
var (
	ErrCompanyNotFound = NewResourceNotFoundError("Company not found")
)

// Session errors
var (
	ErrSessionNotFound        = NewResourceNotFoundError("Session not found")
	ErrSessionFieldsRequired  = NewValidationError("Company and start time are required")
	ErrSessionStartInvalid    = NewValidationError("Start time must be a valid date")
	ErrNotificationMsgMissing = NewValidationError("Message is required")
)

// Login errors
var (
	ErrInvalidUsername = NewCustomError(ErrInvalidCredentials, "Invalid username")
	ErrWrongPassword   = NewCustomError(ErrInvalidCredentials, "Wrong password")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) *CustomError {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for a failed presence or format check
func NewValidationError(message string) *CustomError {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) *CustomError {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether err matches target or any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Message returns the user-facing message carried by err, or fallback
func Message(err error, fallback string) string {
	var custom *CustomError
	if errors.As(err, &custom) && custom.Message != "" {
		return custom.Message
	}
	return fallback
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

// WithDetails returns a copy of the error carrying context details
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	return &CustomError{Err: e.Err, Message: e.Message, Details: details}
}

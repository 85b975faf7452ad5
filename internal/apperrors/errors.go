package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class across handlers and services.
type ErrorCode string

// AppError is the application error carried from services up to the HTTP layer.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// As unwraps err into an *AppError, or nil if it is not one.
func As(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Predefined errors.
var (
	ErrUnauthenticated = New(CodeUnauthenticated, "Please log in first", http.StatusUnauthorized)
	ErrAuthFailed      = New(CodeAuthFailed, "Incorrect username or password", http.StatusUnauthorized)
	ErrForbidden       = New(CodeForbidden, "Access denied", http.StatusForbidden)

	ErrReviewerRequired = New(CodeForbidden, "Reviewer capability required", http.StatusForbidden)

	ErrUserNotFound    = New(CodeNotFound, "User not found", http.StatusNotFound)
	ErrArtworkNotFound = New(CodeNotFound, "Artwork not found", http.StatusNotFound)
	ErrArtistNotFound  = New(CodeNotFound, "Artist not found", http.StatusNotFound)
)

// ValidationError carries every violated rule at once, not just the first.
func ValidationError(violations []string) *AppError {
	return New(CodeValidationFailed, "Validation failed", http.StatusBadRequest).
		WithDetails(violations)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

func InvalidState(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusBadRequest)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func Internal(err error) *AppError {
	return Wrap(err, CodeInternalError, "Something went wrong, please try again later", http.StatusInternalServerError)
}

package errors

import (
	"fmt"
	"net/http"
)

// ErrorCode represents application-specific error codes
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// Language errors
	ErrCodeUnsupportedLanguage ErrorCode = "UNSUPPORTED_LANGUAGE"
	ErrCodeLanguageNotFound    ErrorCode = "LANGUAGE_NOT_FOUND"
	ErrCodeUnsupportedScript   ErrorCode = "UNSUPPORTED_SCRIPT"

	// Backend errors
	ErrCodeBackendUnavailable ErrorCode = "BACKEND_UNAVAILABLE"
	ErrCodeBackendTimeout     ErrorCode = "BACKEND_TIMEOUT"
	ErrCodeBackendResponse    ErrorCode = "BACKEND_BAD_RESPONSE"

	// Translation errors
	ErrCodeNoRoute           ErrorCode = "NO_TRANSLATION_ROUTE"
	ErrCodeTranslationFailed ErrorCode = "TRANSLATION_FAILED"

	// Rate limiting errors
	ErrCodeRateLimitExceeded ErrorCode = "RATE_LIMIT_EXCEEDED"

	// Internal errors
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
	ErrCodeCache          ErrorCode = "CACHE_ERROR"
	ErrCodeServiceUnavail ErrorCode = "SERVICE_UNAVAILABLE"
)

// AppError represents a structured application error with code, message, and HTTP status
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Details    any       `json:"details,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface, returning a formatted error message
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError with the given code and message
// The status code defaults to 500 Internal Server Error
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// NewWithStatus creates a new AppError with a specific HTTP status code
func NewWithStatus(code ErrorCode, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Wrap wraps an existing error with an AppError, preserving the original error
// The status code defaults to 500 Internal Server Error
func Wrap(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// WrapWithStatus wraps an existing error with an AppError and specific status code
func WrapWithStatus(code ErrorCode, message string, statusCode int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Err:        err,
	}
}

// WithDetails adds additional details to an AppError for debugging
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// Validation errors
func ValidationError(message string) *AppError {
	return NewWithStatus(ErrCodeValidation, message, http.StatusBadRequest)
}

func InvalidInputError(message string) *AppError {
	return NewWithStatus(ErrCodeInvalidInput, message, http.StatusBadRequest)
}

func MissingFieldError(field string) *AppError {
	return NewWithStatus(ErrCodeMissingField, fmt.Sprintf("Missing required field: %s", field), http.StatusBadRequest)
}

// Language errors
func UnsupportedLanguageError(language string) *AppError {
	return NewWithStatus(ErrCodeUnsupportedLanguage, fmt.Sprintf("Unsupported language: %s", language), http.StatusUnprocessableEntity)
}

func LanguageNotFoundError(codeOrName string) *AppError {
	return NewWithStatus(ErrCodeLanguageNotFound, fmt.Sprintf("Language not found: %s", codeOrName), http.StatusNotFound)
}

func UnsupportedScriptError(script string) *AppError {
	return NewWithStatus(ErrCodeUnsupportedScript, fmt.Sprintf("Unsupported script: %s", script), http.StatusUnprocessableEntity)
}

// Backend errors
func BackendUnavailableError(err error) *AppError {
	return WrapWithStatus(ErrCodeBackendUnavailable, "Translation backend unavailable", http.StatusServiceUnavailable, err)
}

func BackendTimeoutError(err error) *AppError {
	return WrapWithStatus(ErrCodeBackendTimeout, "Translation backend timed out", http.StatusGatewayTimeout, err)
}

func BackendResponseError(statusCode int) *AppError {
	return NewWithStatus(ErrCodeBackendResponse, fmt.Sprintf("Translation backend returned status %d", statusCode), http.StatusBadGateway)
}

// Translation errors
func NoRouteError(source, target string) *AppError {
	return NewWithStatus(ErrCodeNoRoute, fmt.Sprintf("No translation route from %s to %s", source, target), http.StatusUnprocessableEntity)
}

func TranslationFailedError(err error) *AppError {
	return WrapWithStatus(ErrCodeTranslationFailed, "Translation failed", http.StatusBadGateway, err)
}

// Rate limiting errors
func RateLimitExceededError() *AppError {
	return NewWithStatus(ErrCodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// Internal errors
func InternalError(message string) *AppError {
	return NewWithStatus(ErrCodeInternal, message, http.StatusInternalServerError)
}

func ServiceUnavailableError(message string) *AppError {
	return NewWithStatus(ErrCodeServiceUnavail, message, http.StatusServiceUnavailable)
}

// IsAppError checks if an error is an AppError type
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetAppError extracts AppError from an error, wrapping non-AppErrors as InternalError
func GetAppError(err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return InternalError(err.Error())
}

package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is the application error carried up to the HTTP layer
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	details := make(map[string]string, len(e.Details)+1)
	for k, v := range e.Details {
		details[k] = v
	}
	details[key] = value
	e.Details = details
	return e
}

func newAppError(raw error, httpCode int, code ErrorCode, message string) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  httpCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// General Errors
func ErrInternal(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error")
}

func ErrInvalidArgument(message string) AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, message)
}

func ErrInvalidPayload() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_PAYLOAD, "Invalid payload")
}

func ErrNotFound(resource string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_NOT_FOUND, fmt.Sprintf("%s not found", resource))
}

func ErrRateLimited() AppError {
	return newAppError(nil, http.StatusTooManyRequests, ErrorCode_RATE_LIMITED, "Too many requests, please try again later")
}

// Meeting Notes Errors

// ErrValidationFailed carries every offending field in Details so callers can
// highlight all of them at once.
func ErrValidationFailed(message string, details map[string]string) AppError {
	e := newAppError(nil, http.StatusUnprocessableEntity, ErrorCode_VALIDATION_FAILED, message)
	for k, v := range details {
		e = e.WithDetail(k, v)
	}
	return e
}

func ErrUnsupportedInput(err error) AppError {
	return newAppError(err, http.StatusBadRequest, ErrorCode_UNSUPPORTED_INPUT, "Unsupported summary input")
}

func ErrMissingText() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_MISSING_TEXT, "No text provided")
}

func ErrMissingFile() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_MISSING_FILE, "No file uploaded")
}

// AI Errors
func ErrAISummaryFailed(err error) AppError {
	return newAppError(err, http.StatusBadGateway, ErrorCode_AI_SUMMARY_FAILED, "Failed to generate summary")
}

func ErrAISuggestionFailed(err error) AppError {
	return newAppError(err, http.StatusBadGateway, ErrorCode_AI_SUGGESTION_FAILED, "Failed to generate suggestions")
}

func ErrAITranscriptionFailed(err error) AppError {
	return newAppError(err, http.StatusBadGateway, ErrorCode_AI_TRANSCRIPTION_FAILED, "Audio transcription failed")
}

func ErrAIServiceUnavailable(service string) AppError {
	return newAppError(nil, http.StatusServiceUnavailable, ErrorCode_AI_SERVICE_UNAVAILABLE, "AI service temporarily unavailable").
		WithDetail("service", service)
}

// Export and Integration Errors
func ErrReportExportFailed(format string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_REPORT_EXPORT_FAILED, "Failed to export report").
		WithDetail("format", format)
}

func ErrCacheFailed(operation string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTEGRATION_CACHE_FAILED, fmt.Sprintf("Cache operation failed: %s", operation))
}

// HTTPStatusOK represents a successful HTTP response.
func HTTPStatusOK(message string) AppError {
	return newAppError(nil, http.StatusOK, ErrorCode_HTTP_OK, message)
}

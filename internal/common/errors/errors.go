// Package errors provides standardized error handling for the API surface.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeMalformedRequest ErrorCode = "MALFORMED_REQUEST"
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingUserID    ErrorCode = "MISSING_USER_ID"

	ErrCodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"
	ErrCodeFileParseFailed     ErrorCode = "FILE_PARSE_FAILED"
	ErrCodeEmptyHeaderSet      ErrorCode = "EMPTY_HEADER_SET"
	ErrCodeFileTooLarge        ErrorCode = "FILE_TOO_LARGE"

	ErrCodeSessionNotFound    ErrorCode = "SESSION_NOT_FOUND"
	ErrCodeSessionStoreFailed ErrorCode = "SESSION_STORE_FAILED"
	ErrCodeUnknownTargetField ErrorCode = "UNKNOWN_TARGET_FIELD"

	ErrCodeDatabaseUpsertFailed ErrorCode = "DATABASE_UPSERT_FAILED"

	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code to the response status it should produce.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeMalformedRequest, ErrCodeValidationFailed, ErrCodeMissingUserID,
		ErrCodeUnsupportedFileType, ErrCodeFileParseFailed, ErrCodeEmptyHeaderSet,
		ErrCodeUnknownTargetField:
		return http.StatusBadRequest
	case ErrCodeFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case ErrCodeSessionNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// Error Constructors
// ==========================

// NewMalformedRequestError creates a non-retryable bad request error.
func NewMalformedRequestError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedRequest,
		Message:   "Request body could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewValidationFailedError creates a non-retryable validation error.
func NewValidationFailedError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeValidationFailed,
		Message:   "Request validation failed",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMissingUserIDError creates the 400 returned when user_id is absent.
func NewMissingUserIDError() *StandardError {
	return &StandardError{
		Code:      ErrCodeMissingUserID,
		Message:   "user_id is required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedFileTypeError creates a non-retryable upload error.
func NewUnsupportedFileTypeError(fileName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedFileType,
		Message:   "Only CSV and XLSX files are supported",
		Details:   fmt.Sprintf("fileName: %s", fileName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileParseFailedError creates a non-retryable upload error.
func NewFileParseFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileParseFailed,
		Message:   "Uploaded file could not be parsed",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmptyHeaderSetError is returned when the file has no header row.
func NewEmptyHeaderSetError() *StandardError {
	return &StandardError{
		Code:      ErrCodeEmptyHeaderSet,
		Message:   "Uploaded file has no column headers",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileTooLargeError is returned when the upload exceeds the size limit.
func NewFileTooLargeError(limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileTooLarge,
		Message:   "Uploaded file exceeds the size limit",
		Details:   fmt.Sprintf("limitBytes: %d", limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionNotFoundError is returned for unknown or expired upload sessions.
func NewSessionNotFoundError(sessionID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionNotFound,
		Message:   "Upload session not found or expired",
		Details:   fmt.Sprintf("sessionId: %s", sessionID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSessionStoreFailedError creates a retryable session storage error.
func NewSessionStoreFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSessionStoreFailed,
		Message:   "Upload session could not be stored",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnknownTargetFieldError is returned for an override to a field the
// mapper does not know.
func NewUnknownTargetFieldError(field string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnknownTargetField,
		Message:   "Unknown mapping target field",
		Details:   fmt.Sprintf("targetField: %s", field),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseUpsertFailedError creates a retryable database error.
func NewDatabaseUpsertFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseUpsertFailed,
		Message:   "Database write failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error into the generic 500 payload.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

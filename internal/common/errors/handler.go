package errors

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorHandler normalizes errors at the API boundary and writes responses.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Error(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// Respond maps any error to an HTTP response. Validation errors keep their
// details; internal errors are reduced to a generic payload so the caller
// never sees stack internals.
func (h *ErrorHandler) Respond(c *gin.Context, err error) {
	stdErr := h.normalizeError(err)
	status := stdErr.HTTPStatus()

	h.logError(c, stdErr, status)

	body := ErrorResponse{
		Error: stdErr.Message,
		Code:  string(stdErr.Code),
	}
	if status < http.StatusInternalServerError {
		body.Details = stdErr.Details
	} else {
		body.Error = "Internal server error"
	}

	c.AbortWithStatusJSON(status, body)
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

func (h *ErrorHandler) logError(c *gin.Context, stdErr *StandardError, status int) {
	fields := map[string]interface{}{
		"path":      c.FullPath(),
		"method":    c.Request.Method,
		"status":    status,
		"errorCode": stdErr.Code,
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", fields)
	} else {
		h.logger.Warn("request rejected", fields)
	}
}

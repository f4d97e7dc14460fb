// internal/common/errors/handler.go
package errors

import (
	"time"
)

// ErrorHandler normalizes and logs pipeline errors with standardized fields.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs err for the given scope (e.g. a surface or solution code name)
// and returns the normalized StandardError so callers can decide whether the
// scope degrades to an empty result or the request fails outright.
func (h *ErrorHandler) Handle(scope string, err error) *StandardError {
	stdErr := h.Normalize(err)

	fields := map[string]interface{}{
		"scope":     scope,
		"errorCode": string(stdErr.Code),
		"category":  string(GetErrorCategory(stdErr.Code)),
		"details":   stdErr.Details,
		"retryable": stdErr.Retryable,
	}

	// Data gaps and cache trouble are expected operating conditions; only
	// validation and computation failures are error-level.
	switch GetErrorCategory(stdErr.Code) {
	case CategoryDataUnavailable, CategoryCache:
		h.logger.Warn(stdErr.Message, fields)
	default:
		h.logger.Error(stdErr.Message, fields)
	}

	return stdErr
}

// Normalize ensures we always have a StandardError.
func (h *ErrorHandler) Normalize(err error) *StandardError {
	if stdErr, ok := err.(*StandardError); ok {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

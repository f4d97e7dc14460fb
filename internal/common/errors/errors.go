// Package errors provides standardized error handling for the recommendation
// pipeline. Callers distinguish validation failures (retry is pointless) from
// data-unavailable conditions (retry after a catalog refresh may help).
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	// Input validation: always surfaced, never silently defaulted.
	ErrCodeInvalidNoiseType  ErrorCode = "INVALID_NOISE_TYPE"
	ErrCodeInvalidIntensity  ErrorCode = "INVALID_NOISE_INTENSITY"
	ErrCodeInvalidDirection  ErrorCode = "INVALID_NOISE_DIRECTION"
	ErrCodeInvalidDimensions ErrorCode = "INVALID_ROOM_DIMENSIONS"
	ErrCodeInvalidCoverage   ErrorCode = "INVALID_MATERIAL_COVERAGE"

	// Data unavailable: recovered locally with an empty result.
	ErrCodeMaterialNotFound ErrorCode = "MATERIAL_NOT_FOUND"
	ErrCodeSolutionNotFound ErrorCode = "SOLUTION_NOT_FOUND"
	ErrCodeNoCandidates     ErrorCode = "NO_CANDIDATES_FOR_SURFACE"
	ErrCodeCatalogQuery     ErrorCode = "CATALOG_QUERY_FAILED"

	// Computation: caught per candidate, the candidate is skipped.
	ErrCodeScoringFailed           ErrorCode = "SCORING_FAILED"
	ErrCodeAcousticSynthesisFailed ErrorCode = "ACOUSTIC_SYNTHESIS_FAILED"
	ErrCodeCostDerivationFailed    ErrorCode = "COST_DERIVATION_FAILED"

	// Cache: never fatal, treated as a miss.
	ErrCodeCacheFailure ErrorCode = "CACHE_FAILURE"
)

// ErrorCategory groups codes by recovery strategy.
type ErrorCategory string

const (
	CategoryValidation      ErrorCategory = "validation"
	CategoryDataUnavailable ErrorCategory = "data_unavailable"
	CategoryComputation     ErrorCategory = "computation"
	CategoryCache           ErrorCategory = "cache"
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

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidNoiseTypeError creates a non-retryable validation error.
func NewInvalidNoiseTypeError(noiseType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidNoiseType,
		Message:   "Unknown noise type",
		Details:   fmt.Sprintf("noiseType: %s", noiseType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidIntensityError creates a non-retryable validation error.
func NewInvalidIntensityError(intensity int) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidIntensity,
		Message:   "Noise intensity must be an integer between 0 and 10",
		Details:   fmt.Sprintf("intensity: %d", intensity),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidDirectionError creates a non-retryable validation error.
func NewInvalidDirectionError(direction string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidDirection,
		Message:   "Unrecognized noise direction",
		Details:   fmt.Sprintf("direction: %s", direction),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidDimensionsError creates a non-retryable validation error.
func NewInvalidDimensionsError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidDimensions,
		Message:   "Room dimensions must all be positive",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCoverageError marks a material with non-positive coverage. The
// surface calculation aborts instead of silently defaulting.
func NewInvalidCoverageError(material string, coverage float64) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCoverage,
		Message:   "Material coverage must be positive",
		Details:   fmt.Sprintf("material: %s, coverage: %v", material, coverage),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMaterialNotFoundError creates a data-unavailable error.
func NewMaterialNotFoundError(name string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMaterialNotFound,
		Message:   "Material not found in catalog",
		Details:   fmt.Sprintf("material: %s", name),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSolutionNotFoundError creates a data-unavailable error.
func NewSolutionNotFoundError(codeName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSolutionNotFound,
		Message:   "Solution not found in catalog",
		Details:   fmt.Sprintf("solution: %s", codeName),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewNoCandidatesError creates a data-unavailable error for an empty
// candidate set on one surface.
func NewNoCandidatesError(surface string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNoCandidates,
		Message:   "No candidate solutions for surface",
		Details:   fmt.Sprintf("surface: %s", surface),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCatalogQueryError creates a retryable store error.
func NewCatalogQueryError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCatalogQuery,
		Message:   "Catalog query failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewScoringFailedError wraps an unexpected failure while scoring a single
// candidate; the candidate is excluded and ranking continues.
func NewScoringFailedError(solution string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeScoringFailed,
		Message:   "Candidate scoring failed",
		Details:   fmt.Sprintf("solution: %s, error: %s", solution, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAcousticSynthesisFailedError wraps an unexpected failure during acoustic
// property synthesis.
func NewAcousticSynthesisFailedError(solution string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAcousticSynthesisFailed,
		Message:   "Acoustic synthesis failed",
		Details:   fmt.Sprintf("solution: %s, error: %s", solution, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCostDerivationFailedError wraps a failure in the quantity/cost pipeline.
func NewCostDerivationFailedError(surface string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCostDerivationFailed,
		Message:   "Cost derivation failed",
		Details:   fmt.Sprintf("surface: %s, error: %s", surface, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheFailureError creates an advisory cache error. Callers treat it as a
// cache miss.
func NewCacheFailureError(op string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheFailure,
		Message:   "Cache operation failed",
		Details:   fmt.Sprintf("op: %s, error: %s", op, err.Error()),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Classification Helpers
// ==========================

var categoryByCode = map[ErrorCode]ErrorCategory{
	ErrCodeInvalidNoiseType:  CategoryValidation,
	ErrCodeInvalidIntensity:  CategoryValidation,
	ErrCodeInvalidDirection:  CategoryValidation,
	ErrCodeInvalidDimensions: CategoryValidation,
	ErrCodeInvalidCoverage:   CategoryValidation,

	ErrCodeMaterialNotFound: CategoryDataUnavailable,
	ErrCodeSolutionNotFound: CategoryDataUnavailable,
	ErrCodeNoCandidates:     CategoryDataUnavailable,
	ErrCodeCatalogQuery:     CategoryDataUnavailable,

	ErrCodeScoringFailed:           CategoryComputation,
	ErrCodeAcousticSynthesisFailed: CategoryComputation,
	ErrCodeCostDerivationFailed:    CategoryComputation,

	ErrCodeCacheFailure: CategoryCache,
}

// GetErrorCategory maps a code to its recovery category. Unknown codes are
// treated as computation failures.
func GetErrorCategory(code ErrorCode) ErrorCategory {
	if cat, ok := categoryByCode[code]; ok {
		return cat
	}
	return CategoryComputation
}

// IsValidation reports whether err is a construction-time input failure.
func IsValidation(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return GetErrorCategory(stdErr.Code) == CategoryValidation
	}
	return false
}

// IsDataUnavailable reports whether err means the catalog lacked data.
func IsDataUnavailable(err error) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return GetErrorCategory(stdErr.Code) == CategoryDataUnavailable
	}
	return false
}

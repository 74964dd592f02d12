package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConversionUnavailable indicates that no sufficiently fresh rate exists for a conversion leg.
var ErrConversionUnavailable = errors.New("conversion unavailable")

// ErrUnsupportedServiceLevel indicates that a zone has no rate for the requested service level.
var ErrUnsupportedServiceLevel = errors.New("unsupported service level")

// ErrNoZoneMatch indicates a catalog without a zone for a country. Catalog validation rules this out.
var ErrNoZoneMatch = errors.New("no shipping zone matches country")

// ErrInvalidCatalog indicates catalog data that violates a startup invariant.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ErrProvider is the root of every exchange-rate provider failure.
var ErrProvider = errors.New("rate provider error")

// ErrAllProvidersFailed indicates that a refresh cycle found no working provider.
var ErrAllProvidersFailed = errors.New("all rate providers failed")

// ErrRefreshInProgress indicates that another refresh currently holds the refresh lock.
var ErrRefreshInProgress = errors.New("rate refresh already in progress")

// AppError carries an HTTP-ish status code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with the given code and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: 400, Message: message, Err: ErrValidation}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// ProviderErrorKind classifies provider failures for logs and metrics.
type ProviderErrorKind string

const (
	ProviderTimeout     ProviderErrorKind = "timeout"
	ProviderMalformed   ProviderErrorKind = "malformed"
	ProviderRateLimited ProviderErrorKind = "rate_limited"
	ProviderHTTP        ProviderErrorKind = "http"
	ProviderUnavailable ProviderErrorKind = "unavailable"
	ProviderCircuitOpen ProviderErrorKind = "circuit_open"
	// ProviderAborted marks a call cut short because its refresh was cancelled.
	ProviderAborted ProviderErrorKind = "aborted"
)

// ProviderError is a recoverable failure of a single rate provider call.
type ProviderError struct {
	Provider string
	Kind     ProviderErrorKind
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{ErrProvider, e.Err}
}

// NewProviderError wraps err as a ProviderError of the given kind.
func NewProviderError(provider string, kind ProviderErrorKind, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: kind, Err: err}
}

// RefreshError reports a refresh cycle that left the rate store untouched.
// Cause is ErrAllProvidersFailed or the context error that aborted the cycle.
type RefreshError struct {
	Attempts []*ProviderError
	Cause    error
}

func (e *RefreshError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("rate refresh failed: %v", e.Cause)
	}
	parts := make([]string, len(e.Attempts))
	for i, a := range e.Attempts {
		parts[i] = a.Error()
	}
	return fmt.Sprintf("rate refresh failed: %v (%s)", e.Cause, strings.Join(parts, "; "))
}

func (e *RefreshError) Unwrap() error {
	return e.Cause
}

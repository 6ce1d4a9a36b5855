package usecases

import "net/http"

// UseCaseError carries the HTTP status a handler should answer with.
// Handlers type-assert on it and fall back to 500 for anything else.
type UseCaseError struct {
	Code    int
	Message string
}

func (e *UseCaseError) Error() string {
	return e.Message
}

func NewValidationError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusBadRequest, Message: message}
}

func NewAuthorizationError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusConflict, Message: message}
}

// NewDataStoreError hides the underlying database failure behind a generic
// message; callers are expected to log the cause before wrapping.
func NewDataStoreError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusInternalServerError, Message: message}
}

func NewUpstreamError(message string) *UseCaseError {
	return &UseCaseError{Code: http.StatusInternalServerError, Message: message}
}

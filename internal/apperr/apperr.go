// Package apperr defines the domain error taxonomy shared by services,
// middleware, and the HTTP error pipeline. Errors carry a machine-readable
// code and the HTTP status they should surface with, so handlers never have
// to inspect error internals.
package apperr

import "net/http"

// Error codes used across the API.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeAuthentication   = "AUTHENTICATION_ERROR"
	CodeAuthorization    = "AUTHORIZATION_ERROR"
	CodeTokenNotFound    = "TOKEN_NOT_FOUND"
	CodeTokenInvalid     = "TOKEN_INVALID"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeRoleNotFound     = "ROLE_NOT_FOUND"
	CodeInsufficientRole = "INSUFFICIENT_ROLE"
	CodeNotFound         = "NOT_FOUND"
	CodeRepository       = "REPOSITORY_ERROR"
	CodeService          = "SERVICE_ERROR"
	CodeUnknown          = "UNKNOWN_ERROR"
)

// Error is a tagged domain error: message, machine-readable code, and the
// HTTP status the error pipeline responds with.
type Error struct {
	Code    string
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an Error with an explicit code and status.
func New(message, code string, status int) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

// Validation is a malformed-input error (400).
func Validation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Status: http.StatusBadRequest}
}

// Authentication is a missing/invalid credential error (401).
func Authentication(message, code string) *Error {
	if code == "" {
		code = CodeAuthentication
	}
	return &Error{Code: code, Message: message, Status: http.StatusUnauthorized}
}

// Authorization is an insufficient-privilege error (403).
func Authorization(message, code string) *Error {
	if code == "" {
		code = CodeAuthorization
	}
	return &Error{Code: code, Message: message, Status: http.StatusForbidden}
}

// NotFound is a missing-entity error (404).
func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message, Status: http.StatusNotFound}
}

// Repository is an underlying-store failure (500 unless overridden).
func Repository(message string) *Error {
	return &Error{Code: CodeRepository, Message: message, Status: http.StatusInternalServerError}
}

// Service is a business-rule violation, e.g. an unresolved cross-reference
// (500 unless overridden).
func Service(message string) *Error {
	return &Error{Code: CodeService, Message: message, Status: http.StatusInternalServerError}
}

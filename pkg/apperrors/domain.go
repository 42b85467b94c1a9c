package apperrors

import "net/http"

// Factories and predefined errors for the marketplace domain.

// NewNotFoundError creates a 404 for a missing entity. A zero-rows-affected
// update is reported through the same factory so callers cannot tell the two
// apart.
func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// NewConflictError creates a 409 for uniqueness violations.
func NewConflictError(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password. One message, one status, so accounts cannot be enumerated.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid credentials.",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"users",
	"User with this email already exists.",
	http.StatusConflict,
)

var ErrInvalidUserRole = New(
	CodeInvalidOperation,
	"users",
	`Invalid role specified. Must be "host" or "performer".`,
	http.StatusBadRequest,
)

var ErrUserNotFound = NewNotFoundError("users", "User not found.")

var ErrGigNotFound = NewNotFoundError("gigs", "Gig not found.")

var ErrPerformerProfileNotFound = NewNotFoundError("performers", "Performer not found.")

var ErrGigRequestNotFound = NewNotFoundError("gig_requests", "Request not found.")

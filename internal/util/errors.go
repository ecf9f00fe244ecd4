package util

import "errors"

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidToken       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")

	ErrNotFound   = errors.New("resource not found")
	ErrImport     = errors.New("import failed")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrChallengeNotFound  error = NotFoundError("challenge not found")
	ErrQuizNotFound       error = NotFoundError("quiz not found")
	ErrSimulationNotFound error = NotFoundError("simulation not found")
)

// NotFoundError names the missing resource and matches ErrNotFound.
type NotFoundError string

func (e NotFoundError) Error() string { return string(e) }

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

// AuthError keeps the user facing reason while still matching ErrUnauthorized.
type AuthError struct {
	Reason error
}

func (e *AuthError) Error() string { return e.Reason.Error() }

func (e *AuthError) Unwrap() []error { return []error{ErrUnauthorized, e.Reason} }

func NewAuthError(reason error) error {
	return &AuthError{Reason: reason}
}

// ImportError wraps a malformed YAML/JSON payload.
type ImportError struct {
	Err error
}

func (e *ImportError) Error() string { return "import failed: " + e.Err.Error() }

func (e *ImportError) Unwrap() []error { return []error{ErrImport, e.Err} }

// ValidationError rejects a request field with a readable message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

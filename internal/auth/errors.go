package auth

import "errors"

// Domain errors for the auth package.
var (
	ErrTokenInvalid = errors.New("auth: invalid token")
	ErrTokenExpired = errors.New("auth: token has expired")
	ErrForbidden    = errors.New("auth: insufficient permissions")

	// ErrWeakSecret is returned when the signing secret is shorter than
	// MinSecretLength.
	ErrWeakSecret = errors.New("auth: signing secret too short")
)

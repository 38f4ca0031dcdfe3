package identity

import "errors"

var (
	// ErrAuthFailure indicates that login/password verification failed.
	ErrAuthFailure = errors.New("authentication failed")

	// ErrInvalidToken indicates that an identity token could not be
	// verified: malformed, bad signature, or expired.
	ErrInvalidToken = errors.New("invalid token")
)

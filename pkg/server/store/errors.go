package store

import (
	"errors"
	"fmt"
)

// Typed failure outcomes shared by every core operation. Callers match
// these with errors.Is; the HTTP layer maps each to a status code.
var (
	// ErrConflict indicates a uniqueness or referential violation on write.
	ErrConflict = errors.New("conflict")

	// ErrForbidden indicates an authorization Deny.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredential indicates that external bot-token verification
	// rejected the submitted credential.
	ErrInvalidCredential = errors.New("invalid credential")

	// ErrNotFound indicates a missing record.
	ErrNotFound = errors.New("not found")
)

// ErrOwnerGrant marks a conflict raised while inserting the creator's owner
// grant during organization creation. It wraps ErrConflict, so callers that
// only care about the conflict class still match.
var ErrOwnerGrant = fmt.Errorf("owner grant failed: %w", ErrConflict)

// Package identity resolves and represents the caller's identity.
//
// It provides the password-hashing capability, the identity-token service
// used for sign-in, and the request-context plumbing that carries the
// authenticated user to handlers. Both capabilities are plain values passed
// explicitly; there is no process-wide hashing or signing state.
package identity

// Package store provides storage abstractions for the smmhub server.
//
// This package defines interfaces for database operations, allowing the
// server endpoints and the organization registry to be decoupled from the
// specific database implementation. This enables easier testing with mocks
// and potential support for different storage backends.
//
// # Available Stores
//
//   - UsersStore: account creation and lookup
//   - OrganizationsStore: organization creation and per-user listing
//   - MembershipsStore: the grant ledger and its authorization predicate
//   - BotsStore: bot credential persistence
//
// # Errors
//
//	org, err := orgs.Create("acme", nil, ownerID)
//	if err != nil {
//	    if errors.Is(err, store.ErrConflict) {
//	        // Handle uniqueness violation
//	    }
//	}
package store

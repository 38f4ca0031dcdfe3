package store

// Organization represents a tenant workspace
type Organization struct {
	ID          int64
	Name        string
	Description *string
}

// OrganizationsStore abstracts organization storage operations
type OrganizationsStore interface {
	// CreateOrganization persists a new organization and grants ownerID the
	// owner permission, both in a single transaction. Returns ErrConflict
	// on a name collision; a failure of the owner grant rolls the
	// organization back and surfaces as a wrapped ErrConflict.
	CreateOrganization(name string, description *string, ownerID int64) (*Organization, error)

	// OrganizationsForUser returns the organizations the user holds at
	// least one grant in. The result is raw: a user with several grants in
	// the same organization produces repeated entries, in grant order.
	// Deduplication is the reader's responsibility.
	OrganizationsForUser(userID int64) ([]Organization, error)
}

package store

// Right is a permission held by a user, tagged with its can-grant flag.
type Right struct {
	Name     string
	CanGrant bool
}

// GrantRow is one raw membership row joined with the user's public profile
// and the permission catalog entry it names.
type GrantRow struct {
	UserID     int64
	UserName   string
	Permission string
	CanGrant   bool
}

// Member is the merged effective-rights view of one user within an
// organization: the distinct set of permission names they hold.
type Member struct {
	User   PublicProfile
	Rights []Right
}

// MembershipsStore abstracts the grant ledger
type MembershipsStore interface {
	// Grant inserts a new grant row. Duplicate grants produce duplicate
	// rows; readers deduplicate. Referential violations surface as
	// ErrConflict.
	Grant(userID, organizationID int64, permission string) error

	// GrantsFor returns all raw grant rows for the pair, joined with the
	// catalog. Order is not meaningful.
	GrantsFor(userID, organizationID int64) ([]Right, error)

	// HasMinimumLevel reports whether at least one grant row for the pair
	// names a permission with level >= minLevel. This is the sole
	// authorization predicate used by every gated operation.
	HasMinimumLevel(userID, organizationID int64, minLevel int) (bool, error)

	// GrantsForOrganization returns all raw grant rows for the
	// organization across users, in insertion order.
	GrantsForOrganization(organizationID int64) ([]GrantRow, error)
}

package store

// BotCredential represents a messaging-bot credential owned by an
// organization. The ID is generated at creation and is never the token.
type BotCredential struct {
	ID             string
	OrganizationID int64
	Token          string
}

// BotsStore abstracts bot credential storage operations
type BotsStore interface {
	// CreateBot persists a credential, generating its ID if unset.
	// Returns ErrConflict on uniqueness or referential violation.
	CreateBot(bot *BotCredential) error

	// BotsForOrganization returns all credentials attached to the
	// organization.
	BotsForOrganization(organizationID int64) ([]BotCredential, error)
}

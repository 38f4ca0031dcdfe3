package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smmhub/pkg/model"
	"smmhub/pkg/server/store"
)

// Ensure BotsStore implements store.BotsStore
var _ store.BotsStore = (*BotsStore)(nil)

// BotsStore implements store.BotsStore using GORM
type BotsStore struct {
	db *gorm.DB
}

// NewBotsStore creates a new BotsStore
func NewBotsStore(db *gorm.DB) *BotsStore {
	return &BotsStore{db: db}
}

// CreateBot persists a credential. The identifier is generated here and is
// never derived from the token.
func (s *BotsStore) CreateBot(bot *store.BotCredential) error {
	if bot.ID == "" {
		bot.ID = uuid.NewString()
	}

	tx := s.db.Exec(`
		INSERT INTO organization_bots (id, organization_id, bot_token)
		VALUES (?, ?, ?)
	`, bot.ID, bot.OrganizationID, bot.Token)
	return translateError(tx.Error)
}

// BotsForOrganization returns all credentials attached to the organization
func (s *BotsStore) BotsForOrganization(organizationID int64) ([]store.BotCredential, error) {
	var rows []model.Bot
	tx := s.db.Raw(`
		SELECT id, organization_id, bot_token
		FROM organization_bots
		WHERE organization_id = ?
		ORDER BY id
	`, organizationID).Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	bots := make([]store.BotCredential, 0, len(rows))
	for _, row := range rows {
		bots = append(bots, store.BotCredential{
			ID:             row.ID,
			OrganizationID: row.OrganizationID,
			Token:          row.Token,
		})
	}
	return bots, nil
}

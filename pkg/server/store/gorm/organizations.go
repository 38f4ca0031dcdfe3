package gorm

import (
	"fmt"

	"gorm.io/gorm"

	"smmhub/pkg/model"
	"smmhub/pkg/rights"
	"smmhub/pkg/server/store"
)

// Ensure OrganizationsStore implements store.OrganizationsStore
var _ store.OrganizationsStore = (*OrganizationsStore)(nil)

// OrganizationsStore implements store.OrganizationsStore using GORM
type OrganizationsStore struct {
	db *gorm.DB
}

// NewOrganizationsStore creates a new OrganizationsStore
func NewOrganizationsStore(db *gorm.DB) *OrganizationsStore {
	return &OrganizationsStore{db: db}
}

// CreateOrganization persists a new organization and grants ownerID the
// owner permission in the same transaction. Either both rows land or
// neither does.
func (s *OrganizationsStore) CreateOrganization(name string, description *string, ownerID int64) (*store.Organization, error) {
	org := &store.Organization{Name: name, Description: description}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Raw(`
			INSERT INTO organizations (name, description)
			VALUES (?, ?)
			RETURNING id
		`, name, description).Scan(&org.ID)
		if res.Error != nil {
			return translateError(res.Error)
		}

		res = tx.Exec(`
			INSERT INTO organization_users (user_id, organization_id, permission)
			VALUES (?, ?, ?)
		`, ownerID, org.ID, rights.Owner)
		if res.Error != nil {
			return fmt.Errorf("%w: %v", store.ErrOwnerGrant, translateError(res.Error))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

// OrganizationsForUser returns the organizations the user holds grants in.
// Repeated grants yield repeated entries; callers deduplicate.
func (s *OrganizationsStore) OrganizationsForUser(userID int64) ([]store.Organization, error) {
	var rows []model.Organization
	tx := s.db.Raw(`
		SELECT o.id, o.name, o.description
		FROM organization_users ou
		JOIN organizations o ON o.id = ou.organization_id
		WHERE ou.user_id = ?
		ORDER BY ou.id
	`, userID).Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	orgs := make([]store.Organization, 0, len(rows))
	for _, row := range rows {
		orgs = append(orgs, store.Organization{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
		})
	}
	return orgs, nil
}

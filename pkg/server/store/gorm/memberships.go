package gorm

import (
	"gorm.io/gorm"

	"smmhub/pkg/model"
	"smmhub/pkg/server/store"
)

// Ensure MembershipsStore implements store.MembershipsStore
var _ store.MembershipsStore = (*MembershipsStore)(nil)

// MembershipsStore implements the grant ledger using GORM
type MembershipsStore struct {
	db *gorm.DB
}

// NewMembershipsStore creates a new MembershipsStore
func NewMembershipsStore(db *gorm.DB) *MembershipsStore {
	return &MembershipsStore{db: db}
}

// Grant inserts a new grant row. No uniqueness is enforced on
// (user, organization, permission); duplicates are folded on read.
func (s *MembershipsStore) Grant(userID, organizationID int64, permission string) error {
	row := model.Membership{
		UserID:         userID,
		OrganizationID: organizationID,
		Permission:     permission,
	}
	return translateError(s.db.Create(&row).Error)
}

// GrantsFor returns all raw grant rows for the pair joined with the catalog
func (s *MembershipsStore) GrantsFor(userID, organizationID int64) ([]store.Right, error) {
	var rows []model.Permission
	tx := s.db.Raw(`
		SELECT p.name, p.can_grant
		FROM organization_users ou
		JOIN permissions p ON p.name = ou.permission
		WHERE ou.user_id = ? AND ou.organization_id = ?
		ORDER BY ou.id
	`, userID, organizationID).Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	out := make([]store.Right, 0, len(rows))
	for _, row := range rows {
		out = append(out, store.Right{Name: row.Name, CanGrant: row.CanGrant})
	}
	return out, nil
}

// HasMinimumLevel reports whether some grant row for the pair reaches
// minLevel. This predicate backs every authorization decision.
func (s *MembershipsStore) HasMinimumLevel(userID, organizationID int64, minLevel int) (bool, error) {
	var ok bool
	tx := s.db.Raw(`
		SELECT EXISTS(
			SELECT 1
			FROM organization_users ou
			JOIN permissions p ON p.name = ou.permission
			WHERE ou.user_id = ? AND ou.organization_id = ? AND p.level >= ?
		)
	`, userID, organizationID, minLevel).Scan(&ok)
	if tx.Error != nil {
		return false, translateError(tx.Error)
	}
	return ok, nil
}

// GrantsForOrganization returns all raw grant rows for the organization in
// insertion order, each joined with the user's public profile and the
// permission's can-grant flag.
func (s *MembershipsStore) GrantsForOrganization(organizationID int64) ([]store.GrantRow, error) {
	type grantRow struct {
		UserId     int64
		UserName   string
		Permission string
		CanGrant   bool
	}

	var rows []grantRow
	tx := s.db.Raw(`
		SELECT ou.user_id, u.name AS user_name, p.name AS permission, p.can_grant
		FROM organization_users ou
		JOIN users u ON u.id = ou.user_id
		JOIN permissions p ON p.name = ou.permission
		WHERE ou.organization_id = ?
		ORDER BY ou.id
	`, organizationID).Scan(&rows)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}

	out := make([]store.GrantRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, store.GrantRow{
			UserID:     row.UserId,
			UserName:   row.UserName,
			Permission: row.Permission,
			CanGrant:   row.CanGrant,
		})
	}
	return out, nil
}

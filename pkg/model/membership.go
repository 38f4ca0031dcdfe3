package model

// Membership represents a single permission grant row.
// Rows are additive: a user may hold several permissions in the same
// organization, and duplicate grants simply produce duplicate rows.
type Membership struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID         int64  `gorm:"column:user_id;not null"`
	OrganizationID int64  `gorm:"column:organization_id;not null"`
	Permission     string `gorm:"column:permission;not null"`
}

func (Membership) TableName() string {
	return "organization_users"
}

package model

// Bot represents a messaging-bot credential attached to an organization
type Bot struct {
	ID             string `gorm:"column:id;primaryKey"`
	OrganizationID int64  `gorm:"column:organization_id;not null"`
	Token          string `gorm:"column:bot_token;uniqueIndex;not null"`
}

func (Bot) TableName() string {
	return "organization_bots"
}

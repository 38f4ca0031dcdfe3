package model

// Permission is one entry of the fixed permission catalog
type Permission struct {
	Name     string `gorm:"column:name;primaryKey"`
	Level    int    `gorm:"column:level;not null"`
	CanGrant bool   `gorm:"column:can_grant;not null;default:false"`
}

func (Permission) TableName() string {
	return "permissions"
}

package model

// Organization represents a tenant workspace
type Organization struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;uniqueIndex;not null"`
	Description *string `gorm:"column:description"`
}

func (Organization) TableName() string {
	return "organizations"
}

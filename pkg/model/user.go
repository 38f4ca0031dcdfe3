package model

// User represents a registered account
type User struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:name;not null"`
	Login    string `gorm:"column:login;uniqueIndex;not null"`
	Password string `gorm:"column:password;not null"`
	IsAdmin  bool   `gorm:"column:is_admin;not null;default:false"`
}

func (User) TableName() string {
	return "users"
}

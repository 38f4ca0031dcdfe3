package gorm

import (
	"gorm.io/gorm"

	"smmhub/pkg/model"
	"smmhub/pkg/server/store"
)

// Ensure UsersStore implements store.UsersStore
var _ store.UsersStore = (*UsersStore)(nil)

// UsersStore implements store.UsersStore using GORM
type UsersStore struct {
	db *gorm.DB
}

// NewUsersStore creates a new UsersStore
func NewUsersStore(db *gorm.DB) *UsersStore {
	return &UsersStore{db: db}
}

// CreateUser inserts a new account and fills in its ID
func (s *UsersStore) CreateUser(user *store.User) error {
	tx := s.db.Raw(`
		INSERT INTO users (name, login, password, is_admin)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`, user.Name, user.Login, user.Password, user.IsAdmin).Scan(&user.ID)
	return translateError(tx.Error)
}

// UserByLogin retrieves an account by its unique login
func (s *UsersStore) UserByLogin(login string) (*store.User, error) {
	return s.fetchUser(`
		SELECT id, name, login, password, is_admin
		FROM users
		WHERE login = ?
	`, login)
}

// UserByID retrieves an account by ID
func (s *UsersStore) UserByID(id int64) (*store.User, error) {
	return s.fetchUser(`
		SELECT id, name, login, password, is_admin
		FROM users
		WHERE id = ?
	`, id)
}

func (s *UsersStore) fetchUser(query string, args ...interface{}) (*store.User, error) {
	var row model.User
	tx := s.db.Raw(query, args...).Scan(&row)
	if tx.Error != nil {
		return nil, translateError(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	return &store.User{
		ID:       row.ID,
		Name:     row.Name,
		Login:    row.Login,
		Password: row.Password,
		IsAdmin:  row.IsAdmin,
	}, nil
}

package store

// User represents a registered account
type User struct {
	ID       int64
	Name     string
	Login    string
	Password string
	IsAdmin  bool
}

// PublicProfile is the subset of User safe to expose to other members.
type PublicProfile struct {
	ID   int64
	Name string
}

// Public returns the user's public profile.
func (u User) Public() PublicProfile {
	return PublicProfile{ID: u.ID, Name: u.Name}
}

// UsersStore abstracts account storage operations
type UsersStore interface {
	// CreateUser inserts a new account and fills in its ID.
	// Returns ErrConflict if the login is already taken.
	CreateUser(user *User) error

	// UserByLogin retrieves an account by its unique login.
	// Returns ErrNotFound if no such account exists.
	UserByLogin(login string) (*User, error)

	// UserByID retrieves an account by ID.
	UserByID(id int64) (*User, error)
}

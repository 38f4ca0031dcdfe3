package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"smmhub/pkg/identity"
	"smmhub/pkg/server"
	"smmhub/pkg/server/store"
)

func newTestServer(t *testing.T, verifyErr error) (*server.Server, sqlmock.Sqlmock) {
	t.Helper()
	s, mock, err := NewMockTestServer(verifyErr)
	require.NoError(t, err)
	RegisterAll(s)
	return s, mock
}

// bearerFor issues a token accepted by the test server and queues the user
// resolution the auth middleware performs.
func bearerFor(t *testing.T, mock sqlmock.Sqlmock, user store.User) string {
	t.Helper()

	tokens := identity.NewTokenService([]byte("test-signing-key"), time.Hour)
	token, err := tokens.Issue(user.Login)
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, name, login, password, is_admin").
		WithArgs(user.Login).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "login", "password", "is_admin"}).
			AddRow(user.ID, user.Name, user.Login, user.Password, user.IsAdmin))

	return "Bearer " + token
}

func doJSON(s *server.Server, method, target, bearer, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)
	return rec
}

func TestPing(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(s, "GET", "/api/ping", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterCreatesAccount(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	rec := doJSON(s, "POST", "/api/auth/register", "",
		`{"login":"alice","password":"s3cret","name":"Alice"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"profile":{"id":7,"name":"Alice","login":"alice","is_admin":false}}`,
		rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateLogin(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_login_key"})

	rec := doJSON(s, "POST", "/api/auth/register", "",
		`{"login":"alice","password":"s3cret","name":"Alice"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterValidation(t *testing.T) {
	s, _ := newTestServer(t, nil)

	long := strings.Repeat("x", 51)
	testCases := []struct {
		name string
		body string
	}{
		{"empty login", `{"login":"","password":"s3cret","name":"Alice"}`},
		{"long login", `{"login":"` + long + `","password":"s3cret","name":"Alice"}`},
		{"empty name", `{"login":"alice","password":"s3cret","name":""}`},
		{"long name", `{"login":"alice","password":"s3cret","name":"` + long + `"}`},
		{"empty password", `{"login":"alice","password":"","name":"Alice"}`},
		{"malformed body", `{`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doJSON(s, "POST", "/api/auth/register", "", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSignIn(t *testing.T) {
	s, mock := newTestServer(t, nil)

	hash, err := identity.NewHasher(bcrypt.MinCost).Hash("s3cret")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, name, login, password, is_admin").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "login", "password", "is_admin"}).
			AddRow(int64(7), "Alice", "alice", hash, false))

	rec := doJSON(s, "POST", "/api/auth/sign-in", "",
		`{"login":"alice","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp SignInResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)

	login, err := identity.NewTokenService([]byte("test-signing-key"), time.Hour).Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSignInWrongPassword(t *testing.T) {
	s, mock := newTestServer(t, nil)

	hash, err := identity.NewHasher(bcrypt.MinCost).Hash("s3cret")
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, name, login, password, is_admin").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "login", "password", "is_admin"}).
			AddRow(int64(7), "Alice", "alice", hash, false))

	rec := doJSON(s, "POST", "/api/auth/sign-in", "",
		`{"login":"alice","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"reason":"user not found"}`, rec.Body.String())
}

func TestSignInUnknownLogin(t *testing.T) {
	s, mock := newTestServer(t, nil)

	mock.ExpectQuery("SELECT id, name, login, password, is_admin").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "login", "password", "is_admin"}))

	rec := doJSON(s, "POST", "/api/auth/sign-in", "",
		`{"login":"nobody","password":"s3cret"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"reason":"user not found"}`, rec.Body.String())
}

func TestAuthCheckRequiresToken(t *testing.T) {
	s, _ := newTestServer(t, nil)

	rec := doJSON(s, "GET", "/api/auth/check", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(s, "GET", "/api/auth/check", "Bearer garbage", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(s, "GET", "/api/auth/check", "NotBearer x", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthCheckAndProfile(t *testing.T) {
	s, mock := newTestServer(t, nil)
	alice := store.User{ID: 7, Name: "Alice", Login: "alice", Password: "hash"}

	bearer := bearerFor(t, mock, alice)
	rec := doJSON(s, "GET", "/api/auth/check", bearer, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	bearer = bearerFor(t, mock, alice)
	rec = doJSON(s, "GET", "/api/auth/profile", bearer, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"profile":{"id":7,"name":"Alice","login":"alice","is_admin":false}}`,
		rec.Body.String())
}

func TestCreateOrganization(t *testing.T) {
	s, mock := newTestServer(t, nil)
	alice := store.User{ID: 7, Name: "Alice", Login: "alice"}

	bearer := bearerFor(t, mock, alice)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO organizations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec("INSERT INTO organization_users").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := doJSON(s, "POST", "/api/organizations", bearer,
		`{"name":"acme","description":"media team"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"organization":{"id":3,"name":"acme","description":"media team"}}`,
		rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateOrganizationNullDescription(t *testing.T) {
	s, mock := newTestServer(t, nil)
	alice := store.User{ID: 7, Name: "Alice", Login: "alice"}

	bearer := bearerFor(t, mock, alice)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO organizations").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectExec("INSERT INTO organization_users").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := doJSON(s, "POST", "/api/organizations", bearer, `{"name":"acme"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t,
		`{"organization":{"id":3,"name":"acme","description":null}}`,
		rec.Body.String())
}

func TestCreateOrganizationDuplicateName(t *testing.T) {
	s, mock := newTestServer(t, nil)
	alice := store.User{ID: 7, Name: "Alice", Login: "alice"}

	bearer := bearerFor(t, mock, alice)
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO organizations").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "organizations_name_key"})
	mock.ExpectRollback()

	rec := doJSON(s, "POST", "/api/organizations", bearer, `{"name":"acme"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListOrganizationsDeduplicates(t *testing.T) {
	s, mock := newTestServer(t, nil)
	alice := store.User{ID: 7, Name: "Alice", Login: "alice"}

	bearer := bearerFor(t, mock, alice)
	mock.ExpectQuery("SELECT o.id, o.name, o.description").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}).
			AddRow(int64(3), "acme", "media team").
			AddRow(int64(3), "acme", "media team").
			AddRow(int64(5), "beta", nil))

	rec := doJSON(s, "GET", "/api/organizations", bearer, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"organizations":[
		{"id":3,"name":"acme","description":"media team"},
		{"id":5,"name":"beta","description":null}
	]}`, rec.Body.String())
}

func TestListMembersForbidden(t *testing.T) {
	s, mock := newTestServer(t, nil)
	bob := store.User{ID: 2, Name: "Bob", Login: "bob"}

	bearer := bearerFor(t, mock, bob)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(2), int64(3), 4).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rec := doJSON(s, "GET", "/api/organizations/3/users", bearer, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"reason":"Don't have required permissions"}`, rec.Body.String())
}

func TestListMembersMergesGrants(t *testing.T) {
	s, mock := newTestServer(t, nil)
	alice := store.User{ID: 7, Name: "Alice", Login: "alice"}

	bearer := bearerFor(t, mock, alice)
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(int64(7), int64(3), 4).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery("SELECT ou.user_id, u.name AS user_name").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "user_name", "permission", "can_grant"}).
			AddRow(int64(7), "Alice", "owner", true).
			AddRow(int64(7), "Alice", "owner", true).
			AddRow(int64(2), "Bob", "editor", false))

	rec := doJSON(s, "GET", "/api/organizations/3/users", bearer, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"users":[
		{"user":{"id":7,"name":"Alice"},"rights":[{"name":"owner","can_grant":true}]},
		{"user":{"id":2,"name":"Bob"},"rights":[{"name":"editor","can_grant":false}]}
	]}`, rec.Body.String())
}

func TestListMembersBadOrganizationID(t *testing.T) {
	s, mock := newTestServer(t, nil)
	alice := store.User{ID: 7, Name: "Alice", Login: "alice"}

	bearer := bearerFor(t, mock, alice)
	rec := doJSON(s, "GET", "/api/organizations/not-a-number/users", bearer, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

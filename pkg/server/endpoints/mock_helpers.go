package endpoints

import (
	"context"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smmhub/pkg/authz"
	"smmhub/pkg/config"
	"smmhub/pkg/identity"
	"smmhub/pkg/registry"
	"smmhub/pkg/server"
	gormstore "smmhub/pkg/server/store/gorm"
)

// StubVerifier is a bot verifier with a fixed outcome, for tests.
type StubVerifier struct {
	Err error
}

// Verify returns the configured outcome.
func (v StubVerifier) Verify(ctx context.Context, token string) error {
	return v.Err
}

// NewMockTestServer creates a server instance with a mocked database for
// unit testing. verifyErr configures the stub bot verifier's outcome.
// Returns the server, the sqlmock instance, and any error.
func NewMockTestServer(verifyErr error) (*server.Server, sqlmock.Sqlmock, error) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{
			Conn:                 mockDB,
			PreferSimpleProtocol: true,
		}),
		&gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		},
	)
	if err != nil {
		_ = mockDB.Close()
		return nil, nil, err
	}

	users := gormstore.NewUsersStore(gormDB)
	orgs := gormstore.NewOrganizationsStore(gormDB)
	ledger := gormstore.NewMembershipsStore(gormDB)
	bots := gormstore.NewBotsStore(gormDB)

	reg := registry.New(orgs, ledger, bots, authz.NewEvaluator(ledger), StubVerifier{Err: verifyErr})
	tokens := identity.NewTokenService([]byte("test-signing-key"), time.Hour)
	hasher := identity.NewHasher(bcrypt.MinCost)

	s := server.NewServer(gormDB, users, reg, tokens, hasher, config.Get(), "127.0.0.1", "0")
	return s, mock, nil
}

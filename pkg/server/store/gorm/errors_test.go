package gorm

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"smmhub/pkg/server/store"
)

func TestTranslateError(t *testing.T) {
	opaque := errors.New("connection reset")

	testCases := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"unique violation", &pgconn.PgError{Code: "23505"}, store.ErrConflict},
		{"foreign key violation", &pgconn.PgError{Code: "23503"}, store.ErrConflict},
		{"record not found", gorm.ErrRecordNotFound, store.ErrNotFound},
		{"other pg error", &pgconn.PgError{Code: "57014"}, nil},
		{"opaque error", opaque, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateError(tc.in)
			if tc.want != nil {
				assert.ErrorIs(t, got, tc.want)
				return
			}
			if tc.in == nil {
				assert.NoError(t, got)
				return
			}
			// Unmapped errors pass through untouched.
			assert.ErrorIs(t, got, tc.in)
			assert.NotErrorIs(t, got, store.ErrConflict)
			assert.NotErrorIs(t, got, store.ErrNotFound)
		})
	}
}

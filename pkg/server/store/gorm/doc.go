// Package gorm provides GORM-based implementations of the store interfaces
// defined in the parent store package.
//
// This package contains concrete implementations that use GORM for database
// operations. The interfaces they implement are defined in pkg/server/store.
// Queries are written as raw SQL; Postgres error codes are translated to
// the store error taxonomy.
package gorm

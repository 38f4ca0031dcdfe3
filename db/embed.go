// Package db embeds the SQL migrations shipped with smmhub.
package db

import "embed"

// Migrations holds the schema migration files.
//
//go:embed migrations
var Migrations embed.FS

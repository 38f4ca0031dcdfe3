// Package model defines the database models for smmhub.
//
// This package contains GORM models that map to the smmhub PostgreSQL
// schema. Models are plain structs; all non-trivial queries live in
// pkg/server/store/gorm.
//
// # Core Models
//
//   - User: registered accounts with a unique login
//   - Organization: tenant workspaces
//   - Permission: the fixed permission catalog (name, level, can_grant)
//   - Membership: a single (user, organization, permission) grant row
//   - Bot: messaging-bot credentials attached to an organization
//
// # Database Schema
//
// The key tables are:
//
//   - users: accounts and password hashes
//   - organizations: tenant records
//   - permissions: seeded permission catalog
//   - organization_users: additive grant rows, duplicates allowed
//   - organization_bots: bot credentials
package model

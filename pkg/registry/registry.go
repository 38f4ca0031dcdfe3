// Package registry coordinates organization-scoped operations.
//
// The Registry is the only mutation path for organizations and their bot
// credentials. Every read or write of organization state passes through an
// authorization check against the grant ledger before it touches storage.
package registry

import (
	"context"
	"fmt"

	"smmhub/pkg/authz"
	"smmhub/pkg/rights"
	"smmhub/pkg/server/store"
)

// BotVerifier validates a bot token with the external platform.
type BotVerifier interface {
	Verify(ctx context.Context, token string) error
}

// Registry gates and executes organization operations.
type Registry struct {
	orgs      store.OrganizationsStore
	ledger    store.MembershipsStore
	bots      store.BotsStore
	evaluator *authz.Evaluator
	verifier  BotVerifier
}

// New creates a Registry.
func New(
	orgs store.OrganizationsStore,
	ledger store.MembershipsStore,
	bots store.BotsStore,
	evaluator *authz.Evaluator,
	verifier BotVerifier,
) *Registry {
	return &Registry{
		orgs:      orgs,
		ledger:    ledger,
		bots:      bots,
		evaluator: evaluator,
		verifier:  verifier,
	}
}

// Create persists a new organization. The creator becomes its first member
// at owner level; both writes land in one transaction.
func (r *Registry) Create(ownerID int64, name string, description *string) (*store.Organization, error) {
	return r.orgs.CreateOrganization(name, description, ownerID)
}

// ListForUser returns the caller's organizations, deduplicated by ID.
func (r *Registry) ListForUser(userID int64) ([]store.Organization, error) {
	orgs, err := r.orgs.OrganizationsForUser(userID)
	if err != nil {
		return nil, err
	}
	return store.DedupOrganizations(orgs), nil
}

// ListMembers returns the merged effective-rights view of the organization:
// one entry per user with the distinct permissions they hold.
func (r *Registry) ListMembers(organizationID, callerID int64) ([]store.Member, error) {
	if err := r.authorize(callerID, organizationID); err != nil {
		return nil, err
	}

	rows, err := r.ledger.GrantsForOrganization(organizationID)
	if err != nil {
		return nil, err
	}
	return store.MergeMembers(rows), nil
}

// AddBot verifies the token with the external platform and persists the
// credential. The generated identifier is never the token itself.
func (r *Registry) AddBot(ctx context.Context, organizationID, callerID int64, token string) (*store.BotCredential, error) {
	if err := r.authorize(callerID, organizationID); err != nil {
		return nil, err
	}

	if err := r.verifier.Verify(ctx, token); err != nil {
		return nil, err
	}

	bot := &store.BotCredential{OrganizationID: organizationID, Token: token}
	if err := r.bots.CreateBot(bot); err != nil {
		return nil, err
	}
	return bot, nil
}

// ListBots returns the organization's bot credentials.
func (r *Registry) ListBots(organizationID, callerID int64) ([]store.BotCredential, error) {
	if err := r.authorize(callerID, organizationID); err != nil {
		return nil, err
	}
	return r.bots.BotsForOrganization(organizationID)
}

// authorize checks the caller against the manage threshold. A Deny is
// always surfaced as ErrForbidden, never as an empty result.
func (r *Registry) authorize(callerID, organizationID int64) error {
	decision, err := r.evaluator.Authorize(callerID, organizationID, rights.ManageLevel)
	if err != nil {
		return err
	}
	if decision != authz.Allow {
		return fmt.Errorf("%w: organization %d", store.ErrForbidden, organizationID)
	}
	return nil
}

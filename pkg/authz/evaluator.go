// Package authz decides allow/deny for organization-scoped operations.
//
// The evaluator is the hinge between callers and the grant ledger: every
// gated operation asks it whether the caller reaches the required
// permission level in the organization.
package authz

import "smmhub/pkg/server/store"

// Decision is the outcome of an authorization check.
type Decision int

const (
	// Deny means the caller lacks the required level.
	Deny Decision = iota
	// Allow means at least one of the caller's grants reaches the level.
	Allow
)

// String returns the decision name.
func (d Decision) String() string {
	if d == Allow {
		return "allow"
	}
	return "deny"
}

// Evaluator answers authorization questions by querying the grant ledger.
type Evaluator struct {
	ledger store.MembershipsStore
}

// NewEvaluator creates an Evaluator over the given ledger.
func NewEvaluator(ledger store.MembershipsStore) *Evaluator {
	return &Evaluator{ledger: ledger}
}

// Authorize returns Allow iff some grant row for (user, organization) names
// a permission with level >= requiredLevel. Raising requiredLevel can only
// turn Allow into Deny, never the reverse.
func (e *Evaluator) Authorize(userID, organizationID int64, requiredLevel int) (Decision, error) {
	ok, err := e.ledger.HasMinimumLevel(userID, organizationID, requiredLevel)
	if err != nil {
		return Deny, err
	}
	if !ok {
		return Deny, nil
	}
	return Allow, nil
}

// Package rights defines the fixed permission catalog.
//
// The catalog is seeded into the permissions table by migration and never
// changes at runtime. Authorization decisions compare integer levels;
// higher means more privilege. Every gated organization operation uses the
// same ManageLevel threshold.
package rights

package rights

import "fmt"

// Permission names in the catalog.
const (
	Viewer = "viewer"
	Editor = "editor"
	Admin  = "admin"
	Owner  = "owner"
)

// ManageLevel is the minimum level required for every gated organization
// operation: listing members, adding bots, listing bots.
const ManageLevel = 4

// Permission describes one catalog entry.
type Permission struct {
	Name     string
	Level    int
	CanGrant bool
}

var catalog = map[string]Permission{
	Viewer: {Name: Viewer, Level: 1, CanGrant: false},
	Editor: {Name: Editor, Level: 2, CanGrant: false},
	Admin:  {Name: Admin, Level: 3, CanGrant: true},
	Owner:  {Name: Owner, Level: 4, CanGrant: true},
}

// LevelOf returns the numeric level of a permission. Querying an unknown
// permission is a caller bug, so it panics rather than returning an error.
func LevelOf(name string) int {
	p, ok := catalog[name]
	if !ok {
		panic(fmt.Sprintf("rights: unknown permission %q", name))
	}
	return p.Level
}

// CanGrant reports whether holders of a permission may grant it to others.
func CanGrant(name string) bool {
	p, ok := catalog[name]
	if !ok {
		panic(fmt.Sprintf("rights: unknown permission %q", name))
	}
	return p.CanGrant
}

// Known reports whether name is part of the catalog.
func Known(name string) bool {
	_, ok := catalog[name]
	return ok
}

// All returns the catalog entries ordered by ascending level.
func All() []Permission {
	return []Permission{
		catalog[Viewer],
		catalog[Editor],
		catalog[Admin],
		catalog[Owner],
	}
}

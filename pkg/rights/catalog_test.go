package rights

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelOf(t *testing.T) {
	assert.Equal(t, 1, LevelOf(Viewer))
	assert.Equal(t, 2, LevelOf(Editor))
	assert.Equal(t, 3, LevelOf(Admin))
	assert.Equal(t, 4, LevelOf(Owner))
}

func TestCanGrant(t *testing.T) {
	assert.False(t, CanGrant(Viewer))
	assert.False(t, CanGrant(Editor))
	assert.True(t, CanGrant(Admin))
	assert.True(t, CanGrant(Owner))
}

func TestUnknownPermissionPanics(t *testing.T) {
	assert.Panics(t, func() { LevelOf("superuser") })
	assert.Panics(t, func() { CanGrant("superuser") })
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(Owner))
	assert.False(t, Known("superuser"))
}

func TestOwnerReachesManageLevel(t *testing.T) {
	// The creator's owner grant must satisfy every gated operation.
	assert.GreaterOrEqual(t, LevelOf(Owner), ManageLevel)
}

func TestAllOrderedByLevel(t *testing.T) {
	all := All()
	assert.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.Greater(t, all[i].Level, all[i-1].Level)
	}
}

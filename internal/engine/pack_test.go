package engine

import (
	"testing"

	"github.com/piwi3910/gridsnap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceAll_LargestFirst(t *testing.T) {
	c := newTestController(model.CollisionNone, inf, inf)

	result := c.PlaceAll([]model.LayoutItem{
		item("a", 0, 0, 1, 1),
		item("b", 0, 0, 2, 1),
	}, fixtureItems())

	require.Len(t, result.Placed, 2)
	assert.Empty(t, result.Unplaced)
	assert.Equal(t, "b", result.Placed[0].ID)
	assert.Equal(t, model.Position{X: 1, Y: 3}, result.Placed[0].Position())
	assert.Equal(t, model.Position{X: 3, Y: 3}, result.Placed[1].Position())
	assert.Len(t, result.Items, 10)
	assert.Empty(t, FindAllCollisions(result.Items))
}

func TestPlaceAll_ReportsUnplaced(t *testing.T) {
	c := newTestController(model.CollisionNone, 5, 5)

	result := c.PlaceAll([]model.LayoutItem{
		item("small", 0, 0, 1, 1),
		item("big", 0, 0, 4, 4),
	}, fixtureItems())

	require.Len(t, result.Unplaced, 1)
	assert.Equal(t, "big", result.Unplaced[0].Item.ID)
	require.Len(t, result.Placed, 1)
	assert.Equal(t, model.Position{X: 4, Y: 0}, result.Placed[0].Position())
	assert.Len(t, result.Items, 9)
}

func TestPlaceAll_Empty(t *testing.T) {
	c := newTestController(model.CollisionNone, inf, inf)
	result := c.PlaceAll(nil, fixtureItems())
	assert.Equal(t, fixtureItems(), result.Items)
	assert.Empty(t, result.Placed)
	assert.Empty(t, result.Unplaced)
}

func TestPlaceAll_KeepsExistingIDs(t *testing.T) {
	c := newTestController(model.CollisionNone, inf, inf)
	layout := []model.LayoutItem{
		item("a", 0, 0, 2, 2),
		item("b", 2, 0, 1, 1),
	}

	result := c.PlaceAll([]model.LayoutItem{
		item("a", 0, 0, 1, 1),
		item("n", 0, 0, 1, 1),
		item("n", 0, 0, 1, 1),
	}, layout)

	require.Len(t, result.Placed, 1)
	assert.Equal(t, "n", result.Placed[0].ID)
	assert.Equal(t, model.Position{X: 2, Y: 1}, result.Placed[0].Position())

	require.Len(t, result.Unplaced, 2)
	assert.Equal(t, "a", result.Unplaced[0].Item.ID)
	assert.ErrorIs(t, result.Unplaced[0].Err, model.ErrDuplicateID)
	assert.Equal(t, "n", result.Unplaced[1].Item.ID)
	assert.ErrorIs(t, result.Unplaced[1].Err, model.ErrDuplicateID)

	require.Len(t, result.Items, 3)
	assert.Equal(t, layout[0], result.Items[model.IndexOf(result.Items, "a")])
	assert.NoError(t, model.ValidateLayout(result.Items))
}

func TestPlaceAll_NoSpaceReason(t *testing.T) {
	c := newTestController(model.CollisionNone, 2, 2)

	result := c.PlaceAll([]model.LayoutItem{item("wide", 0, 0, 3, 1)}, nil)

	require.Len(t, result.Unplaced, 1)
	assert.ErrorIs(t, result.Unplaced[0].Err, ErrNoSpace)
	assert.Empty(t, result.Items)
}

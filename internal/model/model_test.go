package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	a := NewItem("Chart", 1, 2, 3, 4)
	b := NewItem("Chart", 1, 2, 3, 4)

	assert.Len(t, a.ID, 8)
	assert.NotEqual(t, a.ID, b.ID, "ids should be unique")
	assert.Equal(t, "Chart", a.Label)
	assert.Equal(t, 4, a.Right())
	assert.Equal(t, 6, a.Bottom())
	assert.Equal(t, 12, a.Area())
	assert.True(t, a.Movable)
	assert.True(t, a.Resizable)
	assert.NoError(t, a.Validate())
}

func TestAtKeepsSizeAndIdentity(t *testing.T) {
	called := false
	it := LayoutItem{ID: "a", X: 1, Y: 1, W: 2, H: 3, Invalidate: func() { called = true }}

	moved := it.At(Position{X: 5, Y: 6})
	assert.Equal(t, Position{X: 5, Y: 6}, moved.Position())
	assert.Equal(t, "a", moved.ID)
	assert.Equal(t, 2, moved.W)
	assert.Equal(t, 3, moved.H)
	assert.Equal(t, Position{X: 1, Y: 1}, it.Position(), "receiver must not change")
	assert.False(t, called, "invalidate is never called by the model")
}

func TestInvalidateIsNotSerialized(t *testing.T) {
	it := LayoutItem{ID: "a", W: 1, H: 1, Invalidate: func() {}}
	data, err := json.Marshal(it)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "nvalidate")
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{MaxCols: 4, MaxRows: Unbounded}
	assert.True(t, b.Contains(LayoutItem{X: 0, Y: 100, W: 4, H: 1}))
	assert.False(t, b.Contains(LayoutItem{X: 1, Y: 0, W: 4, H: 1}))
	assert.False(t, b.Contains(LayoutItem{X: -1, Y: 0, W: 1, H: 1}))
	assert.True(t, UnboundedGrid().Contains(LayoutItem{X: 1 << 20, Y: 1 << 20, W: 5, H: 5}))
}

func TestBoundFromLimit(t *testing.T) {
	assert.Equal(t, Unbounded, BoundFromLimit(0))
	assert.Equal(t, Unbounded, BoundFromLimit(-3))
	assert.Equal(t, 12, BoundFromLimit(12))
	assert.Equal(t, 0, LimitFromBound(Unbounded))
	assert.Equal(t, 12, LimitFromBound(12))
}

func TestCollisionModeValid(t *testing.T) {
	assert.True(t, CollisionNone.Valid())
	assert.True(t, CollisionPush.Valid())
	assert.True(t, CollisionCompress.Valid())
	assert.False(t, CollisionMode("").Valid())
	assert.False(t, CollisionMode("swap").Valid())
}

func TestCloneItemsAndIndexOf(t *testing.T) {
	items := []LayoutItem{{ID: "a"}, {ID: "b"}}
	clone := CloneItems(items)
	clone[0].X = 9
	assert.Equal(t, 0, items[0].X)
	assert.Equal(t, 1, IndexOf(items, "b"))
	assert.Equal(t, -1, IndexOf(items, "z"))
	assert.NotNil(t, CloneItems(nil))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, LayoutItem{ID: "a", W: 1, H: 1}.Validate())

	err := LayoutItem{ID: "a", X: -1, W: 1, H: 1}.Validate()
	assert.ErrorIs(t, err, ErrNegativePosition)

	err = LayoutItem{ID: "a", W: 0, H: 1}.Validate()
	assert.ErrorIs(t, err, ErrInvalidSize)

	err = LayoutItem{X: -2, W: 0, H: 0}.Validate()
	assert.ErrorIs(t, err, ErrEmptyID)
	assert.ErrorIs(t, err, ErrNegativePosition)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestValidateLayout(t *testing.T) {
	assert.NoError(t, ValidateLayout(nil))

	overlapping := []LayoutItem{
		{ID: "a", W: 2, H: 2},
		{ID: "b", X: 1, Y: 1, W: 2, H: 2},
	}
	assert.NoError(t, ValidateLayout(overlapping), "overlap is not a precondition violation")

	err := ValidateLayout([]LayoutItem{
		{ID: "a", W: 1, H: 1},
		{ID: "a", X: 3, W: 1, H: 1},
		{ID: "c", W: 1, H: 0},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.ErrorIs(t, err, ErrInvalidSize)
	assert.Contains(t, err.Error(), "item #1")
	assert.Contains(t, err.Error(), "item #2")
}

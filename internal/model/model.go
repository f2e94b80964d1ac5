package model

import (
	"math"

	"github.com/google/uuid"
)

// Unbounded marks a grid limit (max columns or max rows) as infinite.
const Unbounded = math.MaxInt

// LayoutItem is a rectangle placed on the integer grid. It occupies the
// half-open cell range [X, X+W) x [Y, Y+H).
//
// Preconditions callers must uphold: X, Y >= 0; W, H >= 1; ID unique and
// non-empty within a collection. The engine does not check them, see Validate.
type LayoutItem struct {
	ID        string `json:"id" yaml:"id" toml:"id"`
	Label     string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
	X         int    `json:"x" yaml:"x" toml:"x"`
	Y         int    `json:"y" yaml:"y" toml:"y"`
	W         int    `json:"w" yaml:"w" toml:"w"`
	H         int    `json:"h" yaml:"h" toml:"h"`
	Movable   bool   `json:"movable" yaml:"movable" toml:"movable"`
	Resizable bool   `json:"resizable" yaml:"resizable" toml:"resizable"`

	// Invalidate is the change-notification hook of the owning UI layer.
	// The engine never calls it.
	Invalidate func() `json:"-" yaml:"-" toml:"-"`
}

func NewItem(label string, x, y, w, h int) LayoutItem {
	return LayoutItem{
		ID:        uuid.New().String()[:8],
		Label:     label,
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Movable:   true,
		Resizable: true,
	}
}

// Right returns the first column past the item.
func (it LayoutItem) Right() int {
	return it.X + it.W
}

// Bottom returns the first row past the item.
func (it LayoutItem) Bottom() int {
	return it.Y + it.H
}

// Area returns the number of cells the item covers.
func (it LayoutItem) Area() int {
	return it.W * it.H
}

// At returns a copy of the item moved to p. Size and identity are kept.
func (it LayoutItem) At(p Position) LayoutItem {
	it.X = p.X
	it.Y = p.Y
	return it
}

// Position returns the item's top-left corner.
func (it LayoutItem) Position() Position {
	return Position{X: it.X, Y: it.Y}
}

// Position is a top-left grid coordinate.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Dimensions is the minimal bounding grid size of a layout, in cells.
type Dimensions struct {
	Cols int `json:"cols"`
	Rows int `json:"rows"`
}

// Bounds limits where items may be placed. Either field may be Unbounded.
type Bounds struct {
	MaxCols int `json:"max_cols"`
	MaxRows int `json:"max_rows"`
}

// UnboundedGrid returns Bounds with no limit on either axis.
func UnboundedGrid() Bounds {
	return Bounds{MaxCols: Unbounded, MaxRows: Unbounded}
}

// Contains reports whether the item fits within the bounds.
func (b Bounds) Contains(it LayoutItem) bool {
	if it.X < 0 || it.Y < 0 {
		return false
	}
	if b.MaxCols != Unbounded && it.Right() > b.MaxCols {
		return false
	}
	if b.MaxRows != Unbounded && it.Bottom() > b.MaxRows {
		return false
	}
	return true
}

// BoundFromLimit converts a configured limit to a grid bound.
// Zero and negative limits mean "no limit".
func BoundFromLimit(n int) int {
	if n <= 0 {
		return Unbounded
	}
	return n
}

// LimitFromBound is the inverse of BoundFromLimit.
func LimitFromBound(b int) int {
	if b == Unbounded {
		return 0
	}
	return b
}

// CollisionMode selects how the controller reacts when a moved or resized
// item lands on other items.
type CollisionMode string

const (
	CollisionNone     CollisionMode = "none"     // Overlaps are left in place
	CollisionPush     CollisionMode = "push"     // Overlapped items are relocated
	CollisionCompress CollisionMode = "compress" // Push, then compact upward
)

func (m CollisionMode) Valid() bool {
	switch m {
	case CollisionNone, CollisionPush, CollisionCompress:
		return true
	}
	return false
}

// GridSettings configures a layout controller.
type GridSettings struct {
	Bounds    Bounds        `json:"bounds"`
	Collision CollisionMode `json:"collision"`
}

func DefaultSettings() GridSettings {
	return GridSettings{
		Bounds:    UnboundedGrid(),
		Collision: CollisionNone,
	}
}

// CloneItems returns a shallow copy of items so callers can change the copy
// without touching the original slice.
func CloneItems(items []LayoutItem) []LayoutItem {
	out := make([]LayoutItem, len(items))
	copy(out, items)
	return out
}

// IndexOf returns the index of the item with the given ID, or -1.
func IndexOf(items []LayoutItem, id string) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/piwi3910/gridsnap/internal/model"
)

// Controller errors.
var (
	ErrNoSpace      = errors.New("no available position within bounds")
	ErrItemNotFound = errors.New("item not found in layout")
	ErrOutOfBounds  = errors.New("item does not fit within grid bounds")
	ErrNotMovable   = errors.New("item is not movable")
	ErrNotResizable = errors.New("item is not resizable")
)

// Controller applies layout edits on top of the pure queries. It holds only
// its settings; every method returns a new slice and leaves the input as is.
type Controller struct {
	Settings model.GridSettings
}

func New(settings model.GridSettings) *Controller {
	if !settings.Collision.Valid() {
		settings.Collision = model.CollisionNone
	}
	return &Controller{Settings: settings}
}

// AvailablePosition runs GetAvailablePosition with the controller's bounds.
func (c *Controller) AvailablePosition(item model.LayoutItem, items []model.LayoutItem) (model.Position, bool) {
	return GetAvailablePosition(item, items, c.Settings.Bounds.MaxCols, c.Settings.Bounds.MaxRows)
}

// FirstAvailablePosition returns where a new w x h item would go.
func (c *Controller) FirstAvailablePosition(w, h int, items []model.LayoutItem) (model.Position, bool) {
	probe := model.LayoutItem{ID: uuid.NewString(), W: w, H: h}
	return c.AvailablePosition(probe, items)
}

// Place returns items with item added at its available position. If an item
// with the same ID is already present it is replaced rather than duplicated.
func (c *Controller) Place(item model.LayoutItem, items []model.LayoutItem) ([]model.LayoutItem, error) {
	pos, ok := c.AvailablePosition(item, items)
	if !ok {
		return nil, fmt.Errorf("place %q (%dx%d): %w", item.ID, item.W, item.H, ErrNoSpace)
	}
	out := model.CloneItems(items)
	if idx := model.IndexOf(out, item.ID); idx >= 0 {
		out[idx] = item.At(pos)
	} else {
		out = append(out, item.At(pos))
	}
	return out, nil
}

// Move returns items with the item identified by id moved to `to`,
// resolving overlaps according to the collision mode.
func (c *Controller) Move(id string, to model.Position, items []model.LayoutItem) ([]model.LayoutItem, error) {
	idx := model.IndexOf(items, id)
	if idx < 0 {
		return nil, fmt.Errorf("move %q: %w", id, ErrItemNotFound)
	}
	if !items[idx].Movable {
		return nil, fmt.Errorf("move %q: %w", id, ErrNotMovable)
	}

	moved := items[idx].At(to)
	if !c.Settings.Bounds.Contains(moved) {
		return nil, fmt.Errorf("move %q to (%d, %d): %w", id, to.X, to.Y, ErrOutOfBounds)
	}

	out := model.CloneItems(items)
	out[idx] = moved
	return c.resolve(moved, out)
}

// Resize returns items with the item identified by id resized to w x h,
// resolving overlaps according to the collision mode.
func (c *Controller) Resize(id string, w, h int, items []model.LayoutItem) ([]model.LayoutItem, error) {
	idx := model.IndexOf(items, id)
	if idx < 0 {
		return nil, fmt.Errorf("resize %q: %w", id, ErrItemNotFound)
	}
	if !items[idx].Resizable {
		return nil, fmt.Errorf("resize %q: %w", id, ErrNotResizable)
	}
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("resize %q to %dx%d: %w", id, w, h, model.ErrInvalidSize)
	}

	resized := items[idx]
	resized.W = w
	resized.H = h
	if !c.Settings.Bounds.Contains(resized) {
		return nil, fmt.Errorf("resize %q to %dx%d: %w", id, w, h, ErrOutOfBounds)
	}

	out := model.CloneItems(items)
	out[idx] = resized
	return c.resolve(resized, out)
}

// resolve relocates whatever the changed item overlaps in out, per mode.
// out is owned by the caller of resolve and is updated in place.
func (c *Controller) resolve(changed model.LayoutItem, out []model.LayoutItem) ([]model.LayoutItem, error) {
	if c.Settings.Collision == model.CollisionNone {
		return out, nil
	}

	for _, hit := range GetCollisions(changed, out) {
		pos, ok := c.AvailablePosition(hit, out)
		if !ok {
			return nil, fmt.Errorf("push %q away from %q: %w", hit.ID, changed.ID, ErrNoSpace)
		}
		out[model.IndexOf(out, hit.ID)] = hit.At(pos)
	}

	if c.Settings.Collision == model.CollisionCompress {
		return c.Compress(out), nil
	}
	return out, nil
}

// Compress returns a copy of items with every item moved up as far as it
// can go without colliding, keeping columns. Items are settled top to
// bottom, so an item only stops under one that was settled before it.
// The result keeps the input order.
func (c *Controller) Compress(items []model.LayoutItem) []model.LayoutItem {
	out := model.CloneItems(items)

	order := make([]int, len(out))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := out[order[i]], out[order[j]]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})

	settled := make([]model.LayoutItem, 0, len(out))
	for _, idx := range order {
		it := out[idx]
		for it.Y > 0 {
			up := it.At(model.Position{X: it.X, Y: it.Y - 1})
			if HasCollisions(up, settled) {
				break
			}
			it = up
		}
		out[idx] = it
		settled = append(settled, it)
	}
	return out
}

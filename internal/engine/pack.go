package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/gridsnap/internal/model"
)

// PackResult is the outcome of placing a batch of new items.
type PackResult struct {
	Items    []model.LayoutItem // the input layout plus every placed item
	Placed   []model.LayoutItem
	Unplaced []Unplaced
}

// Unplaced is a batch item that was left out of the layout and why.
type Unplaced struct {
	Item model.LayoutItem
	Err  error
}

// PlaceAll adds newItems to items one by one, largest area first, each at its
// available position given everything placed before it. Items that find no
// position, or whose ID is already taken by the layout or an earlier item of
// the batch, are reported in Unplaced; the rest of the batch still goes in.
// Existing items are never replaced.
func (c *Controller) PlaceAll(newItems, items []model.LayoutItem) PackResult {
	order := model.CloneItems(newItems)
	// Largest first packs tighter; ties keep their input order
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].Area() > order[j].Area()
	})

	result := PackResult{Items: model.CloneItems(items)}
	for _, it := range order {
		if model.IndexOf(result.Items, it.ID) >= 0 {
			result.Unplaced = append(result.Unplaced, Unplaced{
				Item: it,
				Err:  fmt.Errorf("place %q: %w", it.ID, model.ErrDuplicateID),
			})
			continue
		}
		pos, ok := c.AvailablePosition(it, result.Items)
		if !ok {
			result.Unplaced = append(result.Unplaced, Unplaced{
				Item: it,
				Err:  fmt.Errorf("place %q (%dx%d): %w", it.ID, it.W, it.H, ErrNoSpace),
			})
			continue
		}
		placed := it.At(pos)
		result.Items = append(result.Items, placed)
		result.Placed = append(result.Placed, placed)
	}
	return result
}

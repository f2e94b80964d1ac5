package engine

import "github.com/piwi3910/gridsnap/internal/model"

// GetAvailablePosition finds where item (keeping its size and identity) can
// be placed without colliding with items and without crossing the bounds.
// maxCols and maxRows may be model.Unbounded.
//
// Candidates are scanned row-major: increasing y, then increasing x, so
// existing rows fill left to right before new ones open. The scan covers
// the bounded region, or the current grid dimensions on an unbounded axis.
// If nothing in that region is free, the item goes below the grid when rows
// are unbounded, else right of the grid when columns are unbounded.
// The bool result is false when no valid placement exists.
func GetAvailablePosition(item model.LayoutItem, items []model.LayoutItem, maxCols, maxRows int) (model.Position, bool) {
	dims := GetGridDimensions(items)

	cols := dims.Cols
	if maxCols != model.Unbounded {
		cols = maxCols
	}
	rows := dims.Rows
	if maxRows != model.Unbounded {
		rows = maxRows
	}

	for y := 0; y+item.H <= rows; y++ {
		for x := 0; x+item.W <= cols; x++ {
			candidate := item.At(model.Position{X: x, Y: y})
			if !HasCollisions(candidate, items) {
				return candidate.Position(), true
			}
		}
	}

	// Nothing below dims.Rows or right of dims.Cols is occupied, so these
	// fallbacks are collision-free; only the bounds need checking.
	if maxRows == model.Unbounded {
		if item.W <= maxCols {
			return model.Position{X: 0, Y: dims.Rows}, true
		}
		return model.Position{}, false
	}
	if maxCols == model.Unbounded && item.H <= maxRows {
		return model.Position{X: dims.Cols, Y: 0}, true
	}
	return model.Position{}, false
}

package engine

import "github.com/piwi3910/gridsnap/internal/model"

// GetGridDimensions returns the smallest cols x rows grid containing every
// item. An empty collection has dimensions 0 x 0.
func GetGridDimensions(items []model.LayoutItem) model.Dimensions {
	var dims model.Dimensions
	for _, it := range items {
		if r := it.Right(); r > dims.Cols {
			dims.Cols = r
		}
		if b := it.Bottom(); b > dims.Rows {
			dims.Rows = b
		}
	}
	return dims
}

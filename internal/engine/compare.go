package engine

import (
	"github.com/piwi3910/gridsnap/internal/model"
)

// Scenario is a named set of grid settings to compare.
type Scenario struct {
	Name     string
	Settings model.GridSettings
}

// Edit is a layout change to run under each scenario, e.g. a Move.
type Edit func(c *Controller, items []model.LayoutItem) ([]model.LayoutItem, error)

// LayoutStats summarises a layout.
type LayoutStats struct {
	Items       int
	Cols        int
	Rows        int
	UsedCells   int     // sum of item areas; overlapping cells count once per item
	FillPercent float64 // UsedCells relative to Cols x Rows
	Overlaps    int
}

// ComparisonResult holds the outcome of an edit under one scenario.
type ComparisonResult struct {
	Scenario Scenario
	Items    []model.LayoutItem
	Stats    LayoutStats
	Changed  int // items whose position or size differ from the input
	Err      error
}

// Stats computes LayoutStats for items.
func Stats(items []model.LayoutItem) LayoutStats {
	dims := GetGridDimensions(items)
	s := LayoutStats{
		Items:    len(items),
		Cols:     dims.Cols,
		Rows:     dims.Rows,
		Overlaps: len(FindAllCollisions(items)),
	}
	for _, it := range items {
		s.UsedCells += it.Area()
	}
	if total := dims.Cols * dims.Rows; total > 0 {
		s.FillPercent = float64(s.UsedCells) / float64(total) * 100
	}
	return s
}

// CompareScenarios runs edit once per scenario on the same input and returns
// the results in scenario order. A failing scenario carries its error and no
// items; the others are unaffected.
func CompareScenarios(scenarios []Scenario, edit Edit, items []model.LayoutItem) []ComparisonResult {
	results := make([]ComparisonResult, 0, len(scenarios))

	for _, scenario := range scenarios {
		out, err := edit(New(scenario.Settings), items)
		if err != nil {
			results = append(results, ComparisonResult{Scenario: scenario, Err: err})
			continue
		}
		results = append(results, ComparisonResult{
			Scenario: scenario,
			Items:    out,
			Stats:    Stats(out),
			Changed:  countChanged(items, out),
		})
	}

	return results
}

func countChanged(before, after []model.LayoutItem) int {
	changed := 0
	for _, it := range after {
		idx := model.IndexOf(before, it.ID)
		if idx < 0 {
			changed++
			continue
		}
		old := before[idx]
		if old.X != it.X || old.Y != it.Y || old.W != it.W || old.H != it.H {
			changed++
		}
	}
	return changed
}

// BuildModeScenarios returns one scenario per collision mode with the bounds
// of base, the current mode first. When base limits either axis an extra
// scenario lifts the limits with the current mode.
func BuildModeScenarios(base model.GridSettings) []Scenario {
	current := base.Collision
	if !current.Valid() {
		current = model.CollisionNone
	}
	scenarios := []Scenario{{Name: string(current), Settings: base}}

	for _, mode := range []model.CollisionMode{model.CollisionNone, model.CollisionPush, model.CollisionCompress} {
		if mode == current {
			continue
		}
		alt := base
		alt.Collision = mode
		scenarios = append(scenarios, Scenario{Name: string(mode), Settings: alt})
	}

	if base.Bounds != model.UnboundedGrid() {
		unbounded := base
		unbounded.Collision = current
		unbounded.Bounds = model.UnboundedGrid()
		scenarios = append(scenarios, Scenario{Name: string(current) + " unbounded", Settings: unbounded})
	}

	return scenarios
}

package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/piwi3910/gridsnap/internal/model"
)

// LayoutVersion is written into every saved layout document.
const LayoutVersion = "1.0.0"

// LayoutDocument is the on-disk form of a saved layout. The importer reads
// it back through its "items" key; the other fields describe how it was made.
type LayoutDocument struct {
	Version   string              `json:"version"`
	SavedAt   string              `json:"saved_at"`
	MaxCols   int                 `json:"max_cols"` // 0 = unbounded
	MaxRows   int                 `json:"max_rows"` // 0 = unbounded
	Collision model.CollisionMode `json:"collision"`
	Items     []model.LayoutItem  `json:"items"`
}

// Settings returns the grid settings the layout was saved with.
func (d LayoutDocument) Settings() model.GridSettings {
	collision := d.Collision
	if !collision.Valid() {
		collision = model.CollisionNone
	}
	return model.GridSettings{
		Bounds: model.Bounds{
			MaxCols: model.BoundFromLimit(d.MaxCols),
			MaxRows: model.BoundFromLimit(d.MaxRows),
		},
		Collision: collision,
	}
}

// SaveLayout writes items and the settings that produced them to path as
// JSON, creating parent directories as needed.
func SaveLayout(path string, items []model.LayoutItem, settings model.GridSettings) error {
	if items == nil {
		items = []model.LayoutItem{}
	}
	doc := LayoutDocument{
		Version:   LayoutVersion,
		SavedAt:   time.Now().UTC().Format(time.RFC3339),
		MaxCols:   model.LimitFromBound(settings.Bounds.MaxCols),
		MaxRows:   model.LimitFromBound(settings.Bounds.MaxRows),
		Collision: settings.Collision,
		Items:     items,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

// ReadLayoutDocument reads a layout saved by SaveLayout.
func ReadLayoutDocument(path string) (LayoutDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutDocument{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	var doc LayoutDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return LayoutDocument{}, fmt.Errorf("failed to parse layout file: %w", err)
	}
	if doc.Version == "" {
		return LayoutDocument{}, fmt.Errorf("invalid layout file: missing version field")
	}
	if doc.Items == nil {
		doc.Items = []model.LayoutItem{}
	}
	return doc, nil
}

package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/piwi3910/gridsnap/internal/model"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for layout files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported layout format")

// fileItem is the on-disk form of a layout item. Capability flags are
// pointers so a missing key can default to true.
type fileItem struct {
	ID        string `json:"id" yaml:"id" toml:"id"`
	Label     string `json:"label" yaml:"label" toml:"label"`
	X         int    `json:"x" yaml:"x" toml:"x"`
	Y         int    `json:"y" yaml:"y" toml:"y"`
	W         int    `json:"w" yaml:"w" toml:"w"`
	H         int    `json:"h" yaml:"h" toml:"h"`
	Movable   *bool  `json:"movable" yaml:"movable" toml:"movable"`
	Resizable *bool  `json:"resizable" yaml:"resizable" toml:"resizable"`
}

type fileLayout struct {
	Items []fileItem `json:"items" yaml:"items" toml:"items"`
}

func (f fileItem) toItem() model.LayoutItem {
	it := model.NewItem(f.Label, f.X, f.Y, f.W, f.H)
	if f.ID != "" {
		it.ID = f.ID
	}
	if f.Movable != nil {
		it.Movable = *f.Movable
	}
	if f.Resizable != nil {
		it.Resizable = *f.Resizable
	}
	return it
}

// ParseJSON decodes a layout from either a bare JSON array of items or an
// object with an "items" key.
func ParseJSON(data []byte) ([]model.LayoutItem, error) {
	trimmed := bytes.TrimSpace(data)
	var raw []fileItem
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return nil, fmt.Errorf("decode json layout: %w", err)
		}
	} else {
		var doc fileLayout
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("decode json layout: %w", err)
		}
		raw = doc.Items
	}
	return convert(raw)
}

// ParseYAML decodes a layout document with an "items" sequence.
func ParseYAML(data []byte) ([]model.LayoutItem, error) {
	var doc fileLayout
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode yaml layout: %w", err)
	}
	return convert(doc.Items)
}

// ParseTOML decodes a layout document made of [[items]] tables.
func ParseTOML(data []byte) ([]model.LayoutItem, error) {
	var doc fileLayout
	if _, err := toml.Decode(string(data), &doc); err != nil {
		return nil, fmt.Errorf("decode toml layout: %w", err)
	}
	return convert(doc.Items)
}

func convert(raw []fileItem) ([]model.LayoutItem, error) {
	items := make([]model.LayoutItem, 0, len(raw))
	for _, f := range raw {
		items = append(items, f.toItem())
	}
	if err := model.ValidateLayout(items); err != nil {
		return nil, err
	}
	return items, nil
}

// ImportFile reads a layout from path, choosing the decoder by extension.
// Tabular formats report row problems through ImportResult.Errors; document
// formats fail as a whole.
func ImportFile(path string) (ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv", ".tsv", ".txt":
		return ImportCSV(path), nil
	case ".xlsx":
		return ImportExcel(path), nil
	}

	var parse func([]byte) ([]model.LayoutItem, error)
	switch ext {
	case ".json":
		parse = ParseJSON
	case ".yaml", ".yml":
		parse = ParseYAML
	case ".toml":
		parse = ParseTOML
	default:
		return ImportResult{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("read layout: %w", err)
	}
	items, err := parse(data)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return ImportResult{Items: items}, nil
}

// Err folds the row errors of an import of path into one error, or nil.
func (r ImportResult) Err(path string) error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("%s: %s", filepath.Base(path), strings.Join(r.Errors, "; "))
}

// LoadLayout imports path and fails if any row could not be read.
func LoadLayout(path string) ([]model.LayoutItem, error) {
	result, err := ImportFile(path)
	if err != nil {
		return nil, err
	}
	if err := result.Err(path); err != nil {
		return nil, err
	}
	return result.Items, nil
}

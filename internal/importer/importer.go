// Package importer loads grid layouts from files. Tabular sources (CSV and
// Excel) get automatic delimiter detection, flexible column mapping and
// case-insensitive header recognition; document sources (JSON, YAML, TOML)
// hold an items list.
package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/piwi3910/gridsnap/internal/model"
	"github.com/xuri/excelize/v2"
)

// ImportResult holds the results of an import operation.
type ImportResult struct {
	Items    []model.LayoutItem
	Errors   []string
	Warnings []string
}

// ColumnMapping maps semantic column roles to their indices in the data.
type ColumnMapping struct {
	ID        int
	Label     int
	X         int
	Y         int
	W         int
	H         int
	Movable   int
	Resizable int
}

// headerAliases maps canonical column names to their accepted aliases (all lowercase).
var headerAliases = map[string][]string{
	"id":        {"id", "key", "identifier", "item id"},
	"label":     {"label", "name", "title", "description", "widget"},
	"x":         {"x", "col", "column", "left"},
	"y":         {"y", "row", "top"},
	"w":         {"w", "width", "colspan", "cols"},
	"h":         {"h", "height", "rowspan", "rows"},
	"movable":   {"movable", "draggable", "drag"},
	"resizable": {"resizable", "resize"},
}

// DetectCSVDelimiter reads the file content and determines the most likely CSV delimiter.
// It tries comma, semicolon, tab, and pipe. The delimiter that produces the most
// consistent (non-one) column count across lines wins.
func DetectCSVDelimiter(data []byte) rune {
	candidates := []rune{',', ';', '\t', '|'}
	bestDelimiter := ','
	bestScore := 0

	for _, delim := range candidates {
		reader := csv.NewReader(bytes.NewReader(data))
		reader.Comma = delim
		reader.LazyQuotes = true
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil || len(records) < 1 {
			continue
		}

		firstCols := len(records[0])
		if firstCols < 2 {
			continue
		}

		score := 0
		for _, row := range records {
			if len(row) == firstCols {
				score++
			}
		}

		weighted := score*10 + firstCols
		if weighted > bestScore {
			bestScore = weighted
			bestDelimiter = delim
		}
	}

	return bestDelimiter
}

// positionalMapping is used when the first row is not a header:
// id, x, y, w, h, movable, resizable.
var positionalMapping = ColumnMapping{
	ID:        0,
	Label:     -1,
	X:         1,
	Y:         2,
	W:         3,
	H:         4,
	Movable:   5,
	Resizable: 6,
}

// DetectColumns examines a header row and returns a ColumnMapping.
// It performs case-insensitive matching against known aliases for each column role.
// Returns the mapping and true if a header was detected, or the positional
// mapping and false if no header was found.
func DetectColumns(row []string) (ColumnMapping, bool) {
	mapping := ColumnMapping{
		ID:        -1,
		Label:     -1,
		X:         -1,
		Y:         -1,
		W:         -1,
		H:         -1,
		Movable:   -1,
		Resizable: -1,
	}
	slots := map[string]*int{
		"id":        &mapping.ID,
		"label":     &mapping.Label,
		"x":         &mapping.X,
		"y":         &mapping.Y,
		"w":         &mapping.W,
		"h":         &mapping.H,
		"movable":   &mapping.Movable,
		"resizable": &mapping.Resizable,
	}

	isHeader := false
	for i, cell := range row {
		normalized := strings.ToLower(strings.TrimSpace(cell))
		for role, aliases := range headerAliases {
			for _, alias := range aliases {
				if normalized == alias {
					isHeader = true
					if slot := slots[role]; *slot == -1 {
						*slot = i
					}
				}
			}
		}
	}

	if !isHeader {
		return positionalMapping, false
	}
	return mapping, true
}

// parseFlag converts a capability flag cell to a bool. Empty cells default to true.
func parseFlag(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "true", "yes", "y", "1", "x":
		return true, true
	case "false", "no", "n", "0", "-":
		return false, true
	default:
		return true, false
	}
}

// getCell safely retrieves a cell value from a row by column index.
// Returns empty string if the index is out of range or negative.
func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseInt(row []string, idx int, name, rowLabel string) (int, string) {
	s := getCell(row, idx)
	if s == "" {
		return 0, fmt.Sprintf("%s: Missing %s value", rowLabel, name)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Sprintf("%s: Invalid %s '%s'", rowLabel, name, s)
	}
	return n, ""
}

// parseRow extracts a LayoutItem from a row using the given column mapping.
// Returns the item, any error message, and any warnings.
func parseRow(row []string, mapping ColumnMapping, rowLabel string, itemCount int) (model.LayoutItem, string, []string) {
	x, errMsg := parseInt(row, mapping.X, "x", rowLabel)
	if errMsg != "" {
		return model.LayoutItem{}, errMsg, nil
	}
	y, errMsg := parseInt(row, mapping.Y, "y", rowLabel)
	if errMsg != "" {
		return model.LayoutItem{}, errMsg, nil
	}
	w, errMsg := parseInt(row, mapping.W, "w", rowLabel)
	if errMsg != "" {
		return model.LayoutItem{}, errMsg, nil
	}
	h, errMsg := parseInt(row, mapping.H, "h", rowLabel)
	if errMsg != "" {
		return model.LayoutItem{}, errMsg, nil
	}

	if x < 0 || y < 0 {
		return model.LayoutItem{}, fmt.Sprintf("%s: x and y must not be negative", rowLabel), nil
	}
	if w < 1 || h < 1 {
		return model.LayoutItem{}, fmt.Sprintf("%s: w and h must be at least 1", rowLabel), nil
	}

	label := getCell(row, mapping.Label)
	if label == "" {
		label = fmt.Sprintf("Item %d", itemCount+1)
	}
	it := model.NewItem(label, x, y, w, h)
	if id := getCell(row, mapping.ID); id != "" {
		it.ID = id
	}

	var warnings []string
	if s := getCell(row, mapping.Movable); s != "" {
		v, ok := parseFlag(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown movable value '%s', defaulting to true", rowLabel, s))
		}
		it.Movable = v
	}
	if s := getCell(row, mapping.Resizable); s != "" {
		v, ok := parseFlag(s)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("%s: Unknown resizable value '%s', defaulting to true", rowLabel, s))
		}
		it.Resizable = v
	}

	return it, "", warnings
}

// isEmptyRow returns true if the row has no meaningful content.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// ImportCSV imports layout items from a CSV file.
// It automatically detects the delimiter and maps columns by header names.
// Supports comma, semicolon, tab, and pipe delimiters.
func ImportCSV(path string) ImportResult {
	result := ImportResult{}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open file: %v", err))
		return result
	}

	if len(bytes.TrimSpace(data)) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	delimiter := DetectCSVDelimiter(data)
	if delimiter != ',' {
		delimName := map[rune]string{';': "semicolon", '\t': "tab", '|': "pipe"}[delimiter]
		result.Warnings = append(result.Warnings, fmt.Sprintf("Detected %s delimiter", delimName))
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = delimiter
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	return importFromRows(records, "Line", result.Warnings)
}

// ImportCSVFromReader imports layout items from a CSV reader with a specific delimiter.
func ImportCSVFromReader(reader io.Reader, delimiter rune) ImportResult {
	result := ImportResult{}

	csvReader := csv.NewReader(reader)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read CSV: %v", err))
		return result
	}

	if len(records) == 0 {
		result.Errors = append(result.Errors, "File is empty")
		return result
	}

	return importFromRows(records, "Line", nil)
}

// StdinPath stands for standard input wherever a layout file path is taken.
const StdinPath = "-"

// ImportStdin imports CSV rows read from r, detecting the delimiter the way
// ImportCSV does for files.
func ImportStdin(r io.Reader) ImportResult {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{Errors: []string{fmt.Sprintf("Cannot read input: %v", err)}}
	}
	return ImportCSVFromReader(bytes.NewReader(data), DetectCSVDelimiter(data))
}

// ImportExcel imports layout items from an Excel (.xlsx) file.
// Reads the first sheet and auto-detects column mapping from headers.
func ImportExcel(path string) ImportResult {
	result := ImportResult{}

	f, err := excelize.OpenFile(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open Excel file: %v", err))
		return result
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		result.Errors = append(result.Errors, "Excel file has no sheets")
		return result
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot read Excel data: %v", err))
		return result
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "Sheet is empty")
		return result
	}

	return importFromRows(rows, "Row", nil)
}

// importFromRows is the shared import logic for both CSV and Excel data.
// It detects headers, maps columns, and parses each row into an item.
// Rows repeating an earlier ID are rejected.
func importFromRows(rows [][]string, rowPrefix string, initialWarnings []string) ImportResult {
	result := ImportResult{
		Warnings: initialWarnings,
	}

	if len(rows) == 0 {
		result.Errors = append(result.Errors, "No data rows found")
		return result
	}

	mapping, hasHeader := DetectColumns(rows[0])
	startRow := 0
	if hasHeader {
		startRow = 1
		result.Warnings = append(result.Warnings, "Detected header row, skipping")

		missing := []string{}
		if mapping.X == -1 {
			missing = append(missing, "X")
		}
		if mapping.Y == -1 {
			missing = append(missing, "Y")
		}
		if mapping.W == -1 {
			missing = append(missing, "W")
		}
		if mapping.H == -1 {
			missing = append(missing, "H")
		}
		if len(missing) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Required columns not found in header: %s", strings.Join(missing, ", ")))
			return result
		}
	} else if len(rows[0]) >= 5 {
		// Unrecognised header: positional mapping, but skip the row
		if _, err := strconv.Atoi(strings.TrimSpace(rows[0][1])); err != nil {
			startRow = 1
			result.Warnings = append(result.Warnings, "Detected header row, skipping")
		}
	}

	seen := make(map[string]bool)
	for i := startRow; i < len(rows); i++ {
		row := rows[i]
		if isEmptyRow(row) {
			continue
		}

		rowLabel := fmt.Sprintf("%s %d", rowPrefix, i+1)
		it, errMsg, warnings := parseRow(row, mapping, rowLabel, len(result.Items))
		if errMsg != "" {
			result.Errors = append(result.Errors, errMsg)
			continue
		}
		if seen[it.ID] {
			result.Errors = append(result.Errors, fmt.Sprintf("%s: Duplicate id '%s'", rowLabel, it.ID))
			continue
		}
		seen[it.ID] = true
		result.Warnings = append(result.Warnings, warnings...)
		result.Items = append(result.Items, it)
	}

	return result
}

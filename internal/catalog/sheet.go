package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"missiontracker/internal/engine"
)

// Sheet column order. Rows with fewer than minColumns cells are dropped.
const (
	colID = iota
	colName
	colType
	colCategory
	colImage
	colDescription
	colRenderType
	colSubItems
	colMetadata

	minColumns = colImage + 1
)

// Result is the outcome of an import: usable missions plus per-entry issues.
type Result struct {
	Missions []engine.Mission
	Issues   []Issue
}

// sheetMeta is the metadata column after key:value decoding. Values arrive
// as strings or numbers; mapstructure coerces them.
type sheetMeta struct {
	ResetInterval   string `mapstructure:"resetInterval"`
	StockType       string `mapstructure:"stockType"`
	ActiveDays      string `mapstructure:"activeDays"`
	ActiveTime      string `mapstructure:"activeTime"`
	ActiveTimeRange string `mapstructure:"activeTimeRange"`
	IsLocked        bool   `mapstructure:"isLocked"`
	LockedItems     string `mapstructure:"lockedItems"`
}

// ParseSheet reads a CSV export. The first row is a header.
func ParseSheet(r io.Reader) (Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	var (
		res  Result
		line int
	)
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("read sheet: %w", err)
		}
		line++
		if line == 1 || len(row) < minColumns {
			continue
		}

		rec, err := sheetRecord(row)
		if err != nil {
			res.Issues = append(res.Issues, Issue{Line: line, ID: cell(row, colID), Err: err})
		}
		m, warns, err := rec.mission()
		for _, w := range warns {
			res.Issues = append(res.Issues, Issue{Line: line, ID: rec.ID, Err: w})
		}
		if err != nil {
			res.Issues = append(res.Issues, Issue{Line: line, ID: rec.ID, Err: err, Skipped: true})
			continue
		}
		res.Missions = append(res.Missions, m)
	}
	return res, nil
}

// sheetRecord maps one row. A metadata decode error is returned together
// with the record built from the remaining columns.
func sheetRecord(row []string) (record, error) {
	rec := record{
		ID:          cell(row, colID),
		Name:        cell(row, colName),
		Type:        cell(row, colType),
		Category:    cell(row, colCategory),
		Image:       cell(row, colImage),
		Description: cell(row, colDescription),
		Kind:        cell(row, colRenderType),
		SubItems:    parseSubItems(cell(row, colSubItems)),
	}

	var meta sheetMeta
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &meta,
	})
	if err != nil {
		return rec, err
	}
	if err := dec.Decode(parseMetadata(cell(row, colMetadata))); err != nil {
		return rec, fmt.Errorf("metadata: %w", err)
	}

	rec.ResetInterval = meta.ResetInterval
	rec.StockType = meta.StockType
	rec.ActiveDays = splitList(meta.ActiveDays)
	rec.ActiveTime = meta.ActiveTime
	if rec.ActiveTime == "" {
		rec.ActiveTime = meta.ActiveTimeRange
	}
	rec.Locked = meta.IsLocked
	rec.LockedItems = splitList(meta.LockedItems)
	return rec, nil
}

// parseSubItems decodes "id:name;id:name". A bare entry uses itself for both.
func parseSubItems(s string) []engine.SubItem {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []engine.SubItem
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, name, ok := strings.Cut(item, ":")
		id, name = strings.TrimSpace(id), strings.TrimSpace(name)
		if !ok || name == "" {
			name = item
		}
		if id == "" {
			id = item
		}
		out = append(out, engine.SubItem{ID: id, Name: name})
	}
	return out
}

// parseMetadata decodes "key:value;key:value". Only the first ':' separates
// key from value so clock ranges survive. Numeric values become float64.
func parseMetadata(s string) map[string]any {
	out := map[string]any{}
	for _, pair := range strings.Split(s, ";") {
		k, v, _ := strings.Cut(pair, ":")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			continue
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			out[k] = n
			continue
		}
		out[k] = v
	}
	return out
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// bookkeepingFields are internal record fields that never become columns.
var bookkeepingFields = map[string]bool{
	"_id":        true,
	"__v":        true,
	"properties": true,
}

// Projection maps records of one category onto a uniform tabular shape:
// an ordered column list plus a value lookup per record.
type Projection struct {
	// Columns is the ordered list of attribute names to display.
	Columns []string
}

// ProjectionFor returns the fixed projection for a known category.
// Unknown categories fall back to a generic projection derived from the
// record itself (see GenericProjection).
func ProjectionFor(c Category) Projection {
	switch c {
	case CategoryFilms:
		return Projection{Columns: []string{
			"uid", "title", "director", "producer", "release_date", "episode_id",
		}}
	case CategoryPeople:
		return Projection{Columns: []string{
			"uid", "name", "height", "mass", "gender",
			"hair_color", "skin_color", "eye_color", "birth_year",
		}}
	case CategoryStarships:
		return Projection{Columns: []string{
			"uid", "name", "model", "manufacturer",
			"length", "crew", "passengers", "starship_class",
		}}
	case CategoryVehicles:
		return Projection{Columns: []string{
			"uid", "name", "model", "manufacturer",
			"length", "crew", "passengers", "vehicle_class",
		}}
	default:
		return Projection{}
	}
}

// GenericProjection builds a projection for records of an unknown category
// from the record's own fields, skipping bookkeeping fields. A synthesized
// "name" column is prepended when the property set carries a name, and a
// description column is appended when the record has one.
func GenericProjection(r CatalogRecord) Projection {
	var cols []string
	hasName := false
	if r.Properties != nil {
		if _, ok := r.Properties["name"]; ok {
			cols = append(cols, "name")
			hasName = true
		}
	}
	if r.UID != "" {
		cols = append(cols, "uid")
	}
	if r.Name != "" && !hasName {
		cols = append(cols, "name")
	}
	if r.Title != "" {
		cols = append(cols, "title")
	}
	if r.Description != "" {
		cols = append(cols, "description")
	}
	return Projection{Columns: cols}
}

// IsZero reports whether the projection has no columns.
func (p Projection) IsZero() bool {
	return len(p.Columns) == 0
}

// Labels returns display labels for the columns: underscores become
// spaces, casing is left to the renderer.
func (p Projection) Labels() []string {
	labels := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		labels[i] = strings.ReplaceAll(col, "_", " ")
	}
	return labels
}

// Row projects one record onto the column list. Absent values become
// empty cells; the projection never fails on a sparse record.
func (p Projection) Row(r CatalogRecord) []string {
	row := make([]string, len(p.Columns))
	for i, col := range p.Columns {
		row[i] = cellValue(col, r)
	}
	return row
}

// cellValue resolves one column for one record, preferring the enriched
// property set and falling back to the flat list fields.
func cellValue(col string, r CatalogRecord) string {
	switch col {
	case "uid":
		return r.UID
	case "name":
		if v, ok := r.Properties[col]; ok {
			if s := formatValue(v); s != "" {
				return s
			}
		}
		return r.Name
	case "title":
		if v, ok := r.Properties[col]; ok {
			if s := formatValue(v); s != "" {
				return s
			}
		}
		return r.Title
	case "description":
		if r.Description != "" {
			return r.Description
		}
	}
	if v, ok := r.Properties[col]; ok {
		return formatValue(v)
	}
	return ""
}

// formatValue renders a property value as a table cell. JSON numbers
// arrive as float64; integers must not pick up a decimal point.
func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

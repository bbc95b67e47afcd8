package domain

// Properties is the open attribute mapping carried by a catalog record.
// Keys are the remote API's snake_case attribute names.
type Properties map[string]any

// CatalogRecord is a single catalog entry. List endpoints return the flat
// fields only; Enrich merges in the detail endpoint's full property set.
type CatalogRecord struct {
	// UID is the record's unique identifier within its category.
	UID string `json:"uid"`

	// Name is the flat display name from the list endpoint (people,
	// starships, vehicles).
	Name string `json:"name,omitempty"`

	// Title is the flat display title from the list endpoint (films).
	Title string `json:"title,omitempty"`

	// Description is the blurb returned by the detail endpoint.
	Description string `json:"description,omitempty"`

	// Properties is the full attribute set after enrichment.
	// Never nil once a record has passed through enrichment: a failed
	// detail fetch degrades to an empty mapping, not an absent one.
	Properties Properties `json:"properties,omitempty"`
}

// Enrich returns a copy of the record with the detail property set merged
// in. A nil argument degrades to an empty mapping so that Properties is
// always present afterwards.
func (r CatalogRecord) Enrich(props Properties) CatalogRecord {
	if props == nil {
		if r.Properties == nil {
			r.Properties = Properties{}
		}
		return r
	}
	r.Properties = props
	return r
}

// DisplayName returns the best available human-readable name, preferring
// the enriched property set over the flat list fields.
func (r CatalogRecord) DisplayName() string {
	if r.Properties != nil {
		if s, ok := r.Properties["name"].(string); ok && s != "" {
			return s
		}
		if s, ok := r.Properties["title"].(string); ok && s != "" {
			return s
		}
	}
	if r.Name != "" {
		return r.Name
	}
	return r.Title
}

// PageResult is one page of enriched records. Immutable once produced;
// cached entries are shared, never mutated.
type PageResult struct {
	// Results holds the records in list-endpoint order.
	Results []CatalogRecord

	// TotalPages is the page count reported by the list endpoint.
	TotalPages int
}

// Single wraps one record as a standalone result set (ID lookups).
func Single(r CatalogRecord) *PageResult {
	return &PageResult{Results: []CatalogRecord{r}, TotalPages: 1}
}

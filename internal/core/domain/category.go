package domain

import "strings"

// Category identifies one of the fixed catalog resource types.
type Category string

// Available catalog categories.
const (
	// CategoryPeople lists characters.
	CategoryPeople Category = "people"

	// CategoryFilms lists films.
	CategoryFilms Category = "films"

	// CategoryStarships lists starships.
	CategoryStarships Category = "starships"

	// CategoryVehicles lists ground and atmospheric vehicles.
	CategoryVehicles Category = "vehicles"
)

// IsValid returns true if the category is recognised.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPeople, CategoryFilms, CategoryStarships, CategoryVehicles:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Category) String() string {
	return string(c)
}

// Title returns the category name capitalised for display.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

// AllCategories returns the categories in sidebar order.
func AllCategories() []Category {
	return []Category{
		CategoryPeople,
		CategoryFilms,
		CategoryStarships,
		CategoryVehicles,
	}
}

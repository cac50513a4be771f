package template

import "github.com/goliatone/go-docgen/pkg/records"

// TablesPerCategory is the fixed number of tables every category section
// renders.
const TablesPerCategory = 3

// TableTemplate describes one table slot: its ordered header row and an
// optional bold title paragraph rendered above the table.
type TableTemplate struct {
	Title   string
	Headers []string
}

// CategoryTemplate holds the section title and the three table templates for
// one record category.
type CategoryTemplate struct {
	Title  string
	Tables [TablesPerCategory]TableTemplate
}

// Store is the immutable template mapping a generator run works from.
type Store struct {
	categories map[records.Category]CategoryTemplate
}

// Category returns the template entry for the supplied category tag.
func (s *Store) Category(tag records.Category) (CategoryTemplate, bool) {
	if s == nil {
		return CategoryTemplate{}, false
	}
	entry, ok := s.categories[tag]
	return entry, ok
}

// Len reports how many category entries the store holds.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.categories)
}

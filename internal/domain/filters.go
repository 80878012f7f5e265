package domain

// SearchFilters holds the UI-owned filter criteria. Zero values are the
// "no filter" sentinels: empty query matches everything, empty date
// bounds are unbounded, an empty tag set applies no tag filter.
type SearchFilters struct {
	Query        string    `json:"query"`
	Region       Region    `json:"region"`
	DateStart    string    `json:"dateStart"`
	DateEnd      string    `json:"dateEnd"`
	Organizer    Organizer `json:"organizer"`
	SelectedTags []string  `json:"selectedTags"`
}

// DefaultFilters returns the open filter set with the "Alle" sentinels,
// matching the initial UI state.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Region:    RegionAll,
		Organizer: OrganizerAll,
	}
}

// SortOption selects the catalog sort order.
type SortOption string

const (
	SortDateAsc   SortOption = "date-asc"
	SortDateDesc  SortOption = "date-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
)

// Valid reports whether s is a known sort option.
func (s SortOption) Valid() bool {
	switch s {
	case SortDateAsc, SortDateDesc, SortPriceAsc, SortPriceDesc:
		return true
	}
	return false
}

// Package catalog derives the visible course set from the raw collection
// plus user-chosen criteria. Everything here is pure: no I/O, no shared
// state, deterministic for a given input, safe to recompute per request.
package catalog

import (
	"sort"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/loacademie/academie-server/internal/domain"
)

// Options carries the per-request context that is not part of the
// UI-owned filter set.
type Options struct {
	// Today anchors the past-date suppression rule, in domain.DateLayout
	// form. Zero value means "now" in the local timezone.
	Today string
	// Admin lifts past-date suppression so expired courses stay editable.
	Admin bool
	// FavoritesOnly restricts the result to the favorites set.
	FavoritesOnly bool
}

// Today formats now as a course date for the visibility anchor.
func Today(now time.Time) string {
	return now.Format(domain.DateLayout)
}

// Visible returns the courses passing every filter predicate, preserving
// input order. An empty result is a valid output, not an error.
func Visible(courses []domain.Course, filters domain.SearchFilters, favorites map[string]bool, opts Options) []domain.Course {
	today := opts.Today
	if today == "" {
		today = Today(time.Now())
	}
	query := strings.ToLower(filters.Query)

	result := make([]domain.Course, 0, len(courses))
	for _, c := range courses {
		if !opts.Admin && c.Date < today {
			continue
		}
		if !matchesQuery(&c, query) {
			continue
		}
		if filters.Region != "" && filters.Region != domain.RegionAll && c.Region != filters.Region {
			continue
		}
		if filters.DateStart != "" && c.Date < filters.DateStart {
			continue
		}
		if filters.DateEnd != "" && c.Date > filters.DateEnd {
			continue
		}
		if filters.Organizer != "" && filters.Organizer != domain.OrganizerAll && c.Organizer != filters.Organizer {
			continue
		}
		if !matchesTags(&c, filters.SelectedTags) {
			continue
		}
		if opts.FavoritesOnly && !favorites[c.ID] {
			continue
		}
		result = append(result, c)
	}
	return result
}

// matchesQuery reports whether the lowercased query is empty or occurs in
// the title, description, or any tag. Absent fields are empty strings.
func matchesQuery(c *domain.Course, query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(c.Description), query) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// matchesTags reports whether the selected set is empty or intersects the
// course's tags. Matching is exact; tag casing is preserved from input.
func matchesTags(c *domain.Course, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, have := range c.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

// SortCourses orders courses by the given option. The sort is stable:
// equal keys keep their input order. Date comparison is lexicographic,
// which matches chronology for the YYYY-MM-DD form.
func SortCourses(courses []domain.Course, option domain.SortOption) []domain.Course {
	sorted := make([]domain.Course, len(courses))
	copy(sorted, courses)

	switch option {
	case domain.SortDateAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })
	case domain.SortDateDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })
	case domain.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case domain.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	}
	return sorted
}

// TagVocabulary returns the deduplicated union of tags across the full
// collection, in Dutch collation order so the filter UI renders the same
// list for the same data. It works on the raw collection, independent of
// any active filters.
func TagVocabulary(courses []domain.Course) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, c := range courses {
		for _, tag := range c.Tags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			tags = append(tags, tag)
		}
	}

	collate.New(language.Dutch).SortStrings(tags)
	return tags
}

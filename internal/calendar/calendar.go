// Package calendar builds the month-grid presentation of the course set.
// All functions are pure; navigation helpers never touch the store or
// the other derivation engines.
package calendar

import (
	"sort"
	"time"

	"github.com/loacademie/academie-server/internal/domain"
)

// GridCells is the fixed cell count of a month grid: six Monday-first
// weeks of seven days.
const GridCells = 42

// Cell is one grid position. Padding cells (before day 1 or after the
// last day) have Day == 0 and no courses.
type Cell struct {
	// Day is the day-of-month, or 0 for a padding cell.
	Day int `json:"day"`
	// Date is the cell's calendar day, zero for padding.
	Date time.Time `json:"date,omitzero"`
	// Courses holds the day's bucket, in input order.
	Courses []domain.Course `json:"courses,omitempty"`
}

// Grid is a complete month layout.
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []Cell     `json:"cells"`
}

// BuildMonth lays out the given month as a 42-cell Monday-first grid and
// buckets each course into the cell matching its calendar day. Matching
// is on day identity, not on string equality, so the grid stays correct
// for dates parsed in other rendering timezones.
func BuildMonth(year int, month time.Month, courses []domain.Course, loc *time.Location) Grid {
	if loc == nil {
		loc = time.Local
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	offset := mondayIndex(first.Weekday())

	buckets := make(map[int][]domain.Course)
	for _, c := range courses {
		day := c.Day(loc)
		if day.IsZero() {
			continue // malformed date matches no cell
		}
		if day.Year() == year && day.Month() == month {
			buckets[day.Day()] = append(buckets[day.Day()], c)
		}
	}

	cells := make([]Cell, GridCells)
	for d := 1; d <= daysInMonth; d++ {
		cells[offset+d-1] = Cell{
			Day:     d,
			Date:    time.Date(year, month, d, 0, 0, 0, 0, loc),
			Courses: buckets[d],
		}
	}

	return Grid{Year: year, Month: month, Cells: cells}
}

// mondayIndex converts time.Weekday (Sunday = 0) to a Monday-first
// index (Monday = 0, Sunday = 6).
func mondayIndex(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// InitialFocus picks the month a freshly opened calendar should show:
// the month of the earliest course on or after now, else the month of
// the chronologically last course, else the current month. Computed once
// at view-open time from a stable sort of the full list.
func InitialFocus(courses []domain.Course, now time.Time) (int, time.Month) {
	if len(courses) == 0 {
		return now.Year(), now.Month()
	}

	sorted := make([]domain.Course, len(courses))
	copy(sorted, courses)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	today := now.Format(domain.DateLayout)
	for _, c := range sorted {
		if c.Date >= today {
			if day := c.Day(now.Location()); !day.IsZero() {
				return day.Year(), day.Month()
			}
		}
	}

	// All courses are in the past: show the last one.
	for i := len(sorted) - 1; i >= 0; i-- {
		if day := sorted[i].Day(now.Location()); !day.IsZero() {
			return day.Year(), day.Month()
		}
	}

	return now.Year(), now.Month()
}

// NextMonth advances one month, rolling December into January.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// PrevMonth goes back one month, rolling January into December.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

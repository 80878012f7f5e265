package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loacademie/academie-server/internal/domain"
)

func TestBuildMonthShape(t *testing.T) {
	// Every month of 2026: always 42 cells, real day cells equal the
	// month's length, leading pad matches the Monday-first weekday of
	// day 1.
	for month := time.January; month <= time.December; month++ {
		grid := BuildMonth(2026, month, nil, time.UTC)
		require.Len(t, grid.Cells, GridCells, "month %s", month)

		first := time.Date(2026, month, 1, 0, 0, 0, 0, time.UTC)
		wantOffset := mondayIndex(first.Weekday())
		wantDays := first.AddDate(0, 1, -1).Day()

		realDays := 0
		for i, cell := range grid.Cells {
			if cell.Day == 0 {
				continue
			}
			realDays++
			assert.Equal(t, wantOffset+cell.Day-1, i, "month %s day %d misplaced", month, cell.Day)
		}
		assert.Equal(t, wantDays, realDays, "month %s", month)

		for i := 0; i < wantOffset; i++ {
			assert.Zero(t, grid.Cells[i].Day, "month %s leading pad", month)
		}
	}
}

func TestMondayIndex(t *testing.T) {
	assert.Equal(t, 0, mondayIndex(time.Monday))
	assert.Equal(t, 5, mondayIndex(time.Saturday))
	assert.Equal(t, 6, mondayIndex(time.Sunday))
}

func TestBuildMonthBucketsCourses(t *testing.T) {
	courses := []domain.Course{
		{ID: "award", Date: "2026-03-18"},
		{ID: "inspiratie", Date: "2026-03-18"},
		{ID: "symposium", Date: "2026-03-05"},
		{ID: "elders", Date: "2026-04-01"},
		{ID: "kapot", Date: "not-a-date"},
	}

	grid := BuildMonth(2026, time.March, courses, time.UTC)

	var day18, day5 *Cell
	total := 0
	for i := range grid.Cells {
		cell := &grid.Cells[i]
		total += len(cell.Courses)
		switch cell.Day {
		case 18:
			day18 = cell
		case 5:
			day5 = cell
		}
	}

	require.NotNil(t, day18)
	require.Len(t, day18.Courses, 2)
	assert.Equal(t, "award", day18.Courses[0].ID, "bucket preserves input order")
	assert.Equal(t, "inspiratie", day18.Courses[1].ID)

	require.NotNil(t, day5)
	require.Len(t, day5.Courses, 1)

	// Courses outside the month and malformed dates land nowhere.
	assert.Equal(t, 3, total)
}

func TestInitialFocusUpcoming(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	courses := []domain.Course{
		{ID: "late", Date: "2026-03-05"},
		{ID: "soon", Date: "2026-01-26"},
		{ID: "past", Date: "2025-11-01"},
	}

	year, month := InitialFocus(courses, now)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.January, month)
}

func TestInitialFocusAllPast(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	courses := []domain.Course{
		{ID: "older", Date: "2025-11-01"},
		{ID: "newer", Date: "2026-03-24"},
	}

	year, month := InitialFocus(courses, now)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.March, month)
}

func TestInitialFocusEmpty(t *testing.T) {
	now := time.Date(2026, time.August, 27, 0, 0, 0, 0, time.UTC)
	year, month := InitialFocus(nil, now)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.August, month)
}

func TestMonthNavigationRollsOverYears(t *testing.T) {
	year, month := NextMonth(2026, time.December)
	assert.Equal(t, 2027, year)
	assert.Equal(t, time.January, month)

	year, month = PrevMonth(2027, time.January)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.December, month)

	year, month = NextMonth(2026, time.May)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.June, month)
}

package domain

import (
	"testing"
	"time"
)

func TestOrganizerValid(t *testing.T) {
	tests := []struct {
		value Organizer
		valid bool
	}{
		{OrganizerKVLO, true},
		{OrganizerALO, true},
		{OrganizerJoint, true},
		{OrganizerAll, false}, // filter sentinel, not a stored value
		{Organizer("kvlo"), false},
		{Organizer(""), false},
	}

	for _, tt := range tests {
		if got := tt.value.Valid(); got != tt.valid {
			t.Errorf("Organizer(%q).Valid() = %v, want %v", tt.value, got, tt.valid)
		}
	}
}

func TestRegionValid(t *testing.T) {
	for _, r := range Regions() {
		if !r.Valid() {
			t.Errorf("Region(%q).Valid() = false, want true", r)
		}
	}
	if RegionAll.Valid() {
		t.Error("RegionAll should not be a valid stored region")
	}
	if Region("Midden").Valid() {
		t.Error("unknown region should not validate")
	}
}

func TestCourseDay(t *testing.T) {
	c := Course{Date: "2026-03-18"}
	day := c.Day(time.UTC)
	if day.Year() != 2026 || day.Month() != time.March || day.Day() != 18 {
		t.Errorf("Day() = %v, want 2026-03-18", day)
	}

	bad := Course{Date: "18-03-2026"}
	if !bad.Day(time.UTC).IsZero() {
		t.Error("malformed date should yield the zero time")
	}
}

func TestFallbackImageDeterministic(t *testing.T) {
	for _, c := range SeedCourses() {
		first := FallbackImage(c.ID)
		second := FallbackImage(c.ID)
		if first != second {
			t.Errorf("fallback image for %q not stable: %q vs %q", c.ID, first, second)
		}
	}
}

func TestDisplayImagePrefersOwnImage(t *testing.T) {
	c := Course{ID: "x", ImageURL: "https://example.com/own.jpg"}
	if got := c.DisplayImage(); got != c.ImageURL {
		t.Errorf("DisplayImage() = %q, want course's own image", got)
	}

	c.ImageURL = ""
	if got := c.DisplayImage(); got != FallbackImage("x") {
		t.Errorf("DisplayImage() = %q, want deterministic fallback", got)
	}
}

func TestSeedCoursesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range SeedCourses() {
		if c.ID == "" {
			t.Fatal("seed course with empty id")
		}
		if seen[c.ID] {
			t.Fatalf("duplicate seed id %q", c.ID)
		}
		seen[c.ID] = true

		if !c.Organizer.Valid() {
			t.Errorf("seed %q has invalid organizer %q", c.ID, c.Organizer)
		}
		if !c.Region.Valid() {
			t.Errorf("seed %q has invalid region %q", c.ID, c.Region)
		}
		if _, err := time.Parse(DateLayout, c.Date); err != nil {
			t.Errorf("seed %q has malformed date %q", c.ID, c.Date)
		}
		if c.Price < 0 {
			t.Errorf("seed %q has negative price", c.ID)
		}
	}
}

package domain

import "time"

// Organizer is the issuing body for a course. Closed enumeration —
// payload validation rejects anything outside these values so a typo
// can never silently fall through the organizer filter.
type Organizer string

const (
	OrganizerKVLO  Organizer = "KVLO"
	OrganizerALO   Organizer = "ALO Nederland"
	OrganizerJoint Organizer = "Gezamenlijk"
)

// OrganizerAll is the filter sentinel meaning "any organizer".
// It is never a valid value on a stored course.
const OrganizerAll Organizer = "Alle"

// Valid reports whether o is one of the closed organizer values.
func (o Organizer) Valid() bool {
	switch o {
	case OrganizerKVLO, OrganizerALO, OrganizerJoint:
		return true
	}
	return false
}

// Region is the coarse geographic bucket used for filtering and for the
// map centroid fallback.
type Region string

const (
	RegionNoord     Region = "Noord"
	RegionOost      Region = "Oost"
	RegionZuid      Region = "Zuid"
	RegionWest      Region = "West"
	RegionLandelijk Region = "Landelijk"
	RegionOnline    Region = "Online"
)

// RegionAll is the filter sentinel meaning "any region".
const RegionAll Region = "Alle"

// Regions lists the closed region values in display order.
func Regions() []Region {
	return []Region{RegionNoord, RegionOost, RegionZuid, RegionWest, RegionLandelijk, RegionOnline}
}

// Valid reports whether r is one of the closed region values.
func (r Region) Valid() bool {
	switch r {
	case RegionNoord, RegionOost, RegionZuid, RegionWest, RegionLandelijk, RegionOnline:
		return true
	}
	return false
}

// DateLayout is the canonical course date form. Lexicographic order on
// this layout equals chronological order, which the filter and sort
// engine relies on.
const DateLayout = "2006-01-02"

// NoURL is the placeholder meaning "no registration link provided".
const NoURL = "#"

// Course is a single schedulable training event. Records are immutable
// by convention: edits go through a full-record replace under the same ID.
type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Organizer   Organizer `json:"organizer" validate:"required,organizer"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	Location    string    `json:"location" validate:"required"`
	Region      Region    `json:"region" validate:"required,region"`
	Price       float64   `json:"price" validate:"gte=0"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	URL         string    `json:"url"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	IsNew       bool      `json:"isNew,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Touch updates the UpdatedAt timestamp. The store lists courses
// most-recently-touched first, so a fresh save surfaces at the front.
func (c *Course) Touch() {
	c.UpdatedAt = time.Now()
}

// Free reports whether the course has the zero-price "free" sentinel.
func (c *Course) Free() bool {
	return c.Price == 0
}

// Day parses the course date as a calendar day in loc.
// The zero time is returned for malformed dates; callers treat that as
// "matches no calendar cell" rather than an error.
func (c *Course) Day(loc *time.Location) time.Time {
	t, err := time.ParseInLocation(DateLayout, c.Date, loc)
	if err != nil {
		return time.Time{}
	}
	return t
}

// fallbackImages is the fixed pool used when a course has no image or
// its image fails to load client-side.
var fallbackImages = []string{
	"https://images.unsplash.com/photo-1571260899304-425eee4c7efc?auto=format&fit=crop&q=80&w=400",
	"https://images.unsplash.com/photo-1526676037777-05a232554f77?auto=format&fit=crop&q=80&w=400",
	"https://images.unsplash.com/photo-1461896836934-ffe607ba8211?auto=format&fit=crop&q=80&w=400",
	"https://images.unsplash.com/photo-1589556264800-08ae9e129a8c?auto=format&fit=crop&q=80&w=400",
	"https://images.unsplash.com/photo-1509062522246-3755977927d7?auto=format&fit=crop&q=80&w=400",
	"https://images.unsplash.com/photo-1472224371017-08207f84aaae?auto=format&fit=crop&q=80&w=400",
}

// DisplayImage returns the course image, or a deterministic pick from
// the fallback pool keyed by a byte-sum hash of the ID. The same course
// always gets the same fallback.
func (c *Course) DisplayImage() string {
	if c.ImageURL != "" {
		return c.ImageURL
	}
	return FallbackImage(c.ID)
}

// FallbackImage picks from the fixed image pool by a byte-sum hash of id.
func FallbackImage(id string) string {
	sum := 0
	for _, b := range []byte(id) {
		sum += int(b)
	}
	return fallbackImages[sum%len(fallbackImages)]
}

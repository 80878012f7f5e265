// Package geo maps imprecise location strings to deduplicated map
// coordinates. Placement is a pure pass over the visible course set: the
// caller builds a fresh Registry per pass and discards it afterwards.
package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/loacademie/academie-server/internal/domain"
)

// Point is a WGS84 coordinate.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Registry counts placements per rounded coordinate so stacked markers
// can be spread apart. It is transient bookkeeping for one placement
// pass; reusing it across passes corrupts the spreading.
type Registry map[string]int

// NewRegistry returns an empty placement registry.
func NewRegistry() Registry {
	return make(Registry)
}

// cityMatcher pairs location substrings with a coordinate. The table is
// ordered: the first matching entry wins.
type cityMatcher struct {
	substrings []string
	point      Point
}

// cityTable resolves known Dutch cities and venues. Order matters; more
// specific venue names sit alongside their city.
var cityTable = []cityMatcher{
	{[]string{"nijmegen"}, Point{51.8449, 5.8676}},
	{[]string{"amsterdam"}, Point{52.3676, 4.9041}},
	{[]string{"meppel", "wanneperveen"}, Point{52.6936, 6.1945}},
	{[]string{"alkmaar"}, Point{52.6296, 4.7571}},
	{[]string{"zeist"}, Point{52.0907, 5.2328}},
	{[]string{"houten"}, Point{52.0283, 5.1600}},
	{[]string{"ede"}, Point{52.0305, 5.6664}},
	{[]string{"rotterdam"}, Point{51.9244, 4.4777}},
	{[]string{"leiden", "vlietland"}, Point{52.1601, 4.4970}},
	{[]string{"zwolle"}, Point{52.5168, 6.0830}},
	{[]string{"groningen"}, Point{53.2194, 6.5665}},
	{[]string{"eindhoven", "fontys"}, Point{51.4416, 5.4697}},
	{[]string{"tilburg"}, Point{51.5555, 5.0913}},
	{[]string{"maastricht"}, Point{50.8514, 5.6910}},
	{[]string{"utrecht"}, Point{52.0907, 5.1214}},
	{[]string{"arnhem"}, Point{51.9851, 5.8987}},
	{[]string{"den haag", "s-gravenhage"}, Point{52.0705, 4.3007}},
}

// regionCentroids are the coarse fallbacks when no city matches.
var regionCentroids = map[domain.Region]Point{
	domain.RegionNoord: {53.0, 6.5},
	domain.RegionOost:  {52.2, 6.5},
	domain.RegionZuid:  {51.5, 5.0},
	domain.RegionWest:  {52.1, 4.5},
}

// nationalCentroid is the last-resort placement, roughly the center of
// the Netherlands.
var nationalCentroid = Point{52.1326, 5.2913}

// LocationOnline is the sentinel excluded from placement entirely.
const LocationOnline = "Online"

// Spread geometry for stacked markers. Longitude offsets are scaled up
// because a degree of longitude covers less ground than a degree of
// latitude at Dutch latitudes.
const (
	spreadAngleStep = math.Pi / 3
	spreadRadius    = 0.00015
	lngScale        = 1.5
)

// Resolve places a course location on the map. The bool result is false
// only for the "Online" sentinel, which never occupies a registry slot.
// Every other input resolves to some coordinate: unknown locations
// degrade to the region centroid and then to the national centroid.
//
// Repeated resolutions at the same rounded coordinate are rotated
// outward deterministically, so re-running a pass with the same input
// order reproduces the same layout.
func Resolve(location string, region domain.Region, registry Registry) (Point, bool) {
	if location == LocationOnline {
		return Point{}, false
	}

	base := baseCoordinate(location, region)

	key := roundedKey(base)
	count := registry[key]
	registry[key] = count + 1

	if count == 0 {
		return base, true
	}

	angle := float64(count) * spreadAngleStep
	radius := spreadRadius * float64(count)
	return Point{
		Lat: base.Lat + math.Cos(angle)*radius,
		Lng: base.Lng + math.Sin(angle)*radius*lngScale,
	}, true
}

// baseCoordinate resolves the undisplaced coordinate for a location.
func baseCoordinate(location string, region domain.Region) Point {
	loc := strings.ToLower(location)
	for _, m := range cityTable {
		for _, sub := range m.substrings {
			if strings.Contains(loc, sub) {
				return m.point
			}
		}
	}
	if p, ok := regionCentroids[region]; ok {
		return p
	}
	return nationalCentroid
}

// roundedKey collapses float noise to 4 decimal places (~11m) so that
// coordinates from the same table entry share a registry slot.
func roundedKey(p Point) string {
	return fmt.Sprintf("%.4f,%.4f", p.Lat, p.Lng)
}

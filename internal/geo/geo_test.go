package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loacademie/academie-server/internal/domain"
)

func TestResolveKnownCities(t *testing.T) {
	tests := []struct {
		location string
		want     Point
	}{
		{"Zeist", Point{52.0907, 5.2328}},
		{"ALO Amsterdam", Point{52.3676, 4.9041}},
		{"CALO Windesheim, Zwolle", Point{52.5168, 6.0830}},
		{"Fontys Sport en Bewegen, Eindhoven", Point{51.4416, 5.4697}},
		{"Vlietland College", Point{52.1601, 4.4970}},
		{"Expo Houten", Point{52.0283, 5.1600}},
	}

	for _, tt := range tests {
		p, ok := Resolve(tt.location, domain.RegionLandelijk, NewRegistry())
		require.True(t, ok, "location %q", tt.location)
		assert.Equal(t, tt.want, p, "location %q", tt.location)
	}
}

func TestResolveTableOrderWins(t *testing.T) {
	// "Utrecht" appears after "Zeist" in the table; a string mentioning
	// both resolves to the earlier entry.
	p, ok := Resolve("Sporthal Zeist, regio Utrecht", domain.RegionLandelijk, NewRegistry())
	require.True(t, ok)
	assert.Equal(t, Point{52.0907, 5.2328}, p)
}

func TestResolveRegionFallback(t *testing.T) {
	p, ok := Resolve("Dorpshuis De Brink", domain.RegionNoord, NewRegistry())
	require.True(t, ok)
	assert.Equal(t, Point{53.0, 6.5}, p)
}

func TestResolveNationalFallback(t *testing.T) {
	// Unknown city and a region without a centroid degrade to the
	// national center; garbage input never errors.
	for _, region := range []domain.Region{domain.RegionLandelijk, domain.Region("???"), ""} {
		p, ok := Resolve("!!nergens!!", region, NewRegistry())
		require.True(t, ok)
		assert.Equal(t, nationalCentroid, p)
	}
}

func TestResolveOnlineExcluded(t *testing.T) {
	registry := NewRegistry()
	_, ok := Resolve("Online", domain.RegionOnline, registry)
	assert.False(t, ok)
	assert.Empty(t, registry, "Online must not consume a registry slot")
}

func TestResolveDeterministic(t *testing.T) {
	a, _ := Resolve("Zeist", domain.RegionLandelijk, NewRegistry())
	b, _ := Resolve("Zeist", domain.RegionLandelijk, NewRegistry())
	assert.Equal(t, a, b)
}

func TestResolveSpreadsStackedMarkers(t *testing.T) {
	registry := NewRegistry()

	first, _ := Resolve("Zeist", domain.RegionLandelijk, registry)
	second, _ := Resolve("Zeist", domain.RegionLandelijk, registry)
	third, _ := Resolve("Zeist", domain.RegionLandelijk, registry)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first, third)
	assert.NotEqual(t, second, third)

	// Successive occurrences rotate by a fixed angle around the base.
	angle2 := math.Atan2((second.Lng-first.Lng)/lngScale, second.Lat-first.Lat)
	angle3 := math.Atan2((third.Lng-first.Lng)/lngScale, third.Lat-first.Lat)
	assert.InDelta(t, spreadAngleStep, angle3-angle2, 1e-9)

	// Radius grows with the occurrence count.
	dist2 := math.Hypot(second.Lat-first.Lat, (second.Lng-first.Lng)/lngScale)
	dist3 := math.Hypot(third.Lat-first.Lat, (third.Lng-first.Lng)/lngScale)
	assert.InDelta(t, spreadRadius, dist2, 1e-9)
	assert.InDelta(t, 2*spreadRadius, dist3, 1e-9)
}

func TestResolveFreshRegistryResetsSpreading(t *testing.T) {
	registry := NewRegistry()
	first, _ := Resolve("Zeist", domain.RegionLandelijk, registry)
	_, _ = Resolve("Zeist", domain.RegionLandelijk, registry)

	// A fresh pass starts at the base coordinate again.
	fresh, _ := Resolve("Zeist", domain.RegionLandelijk, NewRegistry())
	assert.Equal(t, first, fresh)
}

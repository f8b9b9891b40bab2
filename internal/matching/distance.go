package matching

import (
	"errors"
	"math"
	"sort"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// DefaultRadiusKm is used when a search does not specify a radius.
const DefaultRadiusKm = 50.0

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate rejects non-finite or out of range values.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return ErrInvalidCoordinates
	}
	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrInvalidCoordinates
	}
	return nil
}

// Distance returns the haversine great-circle distance between a and b in kilometres.
func Distance(a, b Coordinates) float64 {
	lat1 := toRad(a.Latitude)
	lat2 := toRad(b.Latitude)
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Candidate is anything that may or may not have a known position.
type Candidate interface {
	Position() (Coordinates, bool)
}

// Ranked pairs a candidate with its distance from the search origin.
// DistanceKm is nil when the candidate has no position.
type Ranked[T Candidate] struct {
	Item       T
	DistanceKm *float64
}

// FilterByRadius keeps candidates within radiusKm of origin (inclusive) plus every
// candidate without a position, ordered by ascending distance with unknown distances last.
// A non-positive radius falls back to DefaultRadiusKm.
func FilterByRadius[T Candidate](origin Coordinates, candidates []T, radiusKm float64) []Ranked[T] {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	out := make([]Ranked[T], 0, len(candidates))
	for _, c := range candidates {
		pos, ok := c.Position()
		if !ok {
			out = append(out, Ranked[T]{Item: c})
			continue
		}
		d := Distance(origin, pos)
		if d <= radiusKm {
			out = append(out, Ranked[T]{Item: c, DistanceKm: &d})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := out[i].DistanceKm, out[j].DistanceKm
		switch {
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return *di < *dj
		}
	})
	return out
}

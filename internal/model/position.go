package model

import "bloodlink/internal/matching"

// Position implements matching.Candidate. A donor is only positioned when both coordinates are set.
func (d Donor) Position() (matching.Coordinates, bool) {
	if d.Latitude == nil || d.Longitude == nil {
		return matching.Coordinates{}, false
	}
	return matching.Coordinates{Latitude: *d.Latitude, Longitude: *d.Longitude}, true
}

// Severity classifies stock on hand: critical at 5 units or fewer, low at 15 or fewer.
func Severity(units int) string {
	switch {
	case units <= 5:
		return "critical"
	case units <= 15:
		return "low"
	default:
		return "normal"
	}
}

package matching

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type donor struct {
	id  string
	pos *Coordinates
}

func (d donor) Position() (Coordinates, bool) {
	if d.pos == nil {
		return Coordinates{}, false
	}
	return *d.pos, true
}

func at(lat, lon float64) *Coordinates {
	return &Coordinates{Latitude: lat, Longitude: lon}
}

func TestDistance(t *testing.T) {
	hyderabad := Coordinates{Latitude: 17.3850, Longitude: 78.4867}
	bengaluru := Coordinates{Latitude: 12.9716, Longitude: 77.5946}

	t.Run("identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, Distance(hyderabad, hyderabad))
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, Distance(hyderabad, bengaluru), Distance(bengaluru, hyderabad), 1e-9)
	})

	t.Run("known city pair", func(t *testing.T) {
		assert.InDelta(t, 500, Distance(hyderabad, bengaluru), 10)
	})

	t.Run("antipodal", func(t *testing.T) {
		d := Distance(Coordinates{0, 0}, Coordinates{0, 180})
		assert.InEpsilon(t, 20015.0, d, 0.01)
		assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
	})
}

func TestCoordinatesValidate(t *testing.T) {
	assert.NoError(t, Coordinates{Latitude: -90, Longitude: 180}.Validate())
	assert.ErrorIs(t, Coordinates{Latitude: 91}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Longitude: -180.5}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Latitude: math.NaN()}.Validate(), ErrInvalidCoordinates)
	assert.ErrorIs(t, Coordinates{Longitude: math.Inf(1)}.Validate(), ErrInvalidCoordinates)
}

func TestFilterByRadius(t *testing.T) {
	origin := Coordinates{Latitude: 17.3850, Longitude: 78.4867}
	near := donor{id: "near", pos: at(17.40, 78.49)}
	mid := donor{id: "mid", pos: at(17.60, 78.60)}
	far := donor{id: "far", pos: at(12.9716, 77.5946)}
	unknown := donor{id: "unknown"}

	got := FilterByRadius(origin, []donor{unknown, far, mid, near}, 50)

	require.Len(t, got, 3)
	assert.Equal(t, "near", got[0].Item.id)
	assert.Equal(t, "mid", got[1].Item.id)
	assert.Equal(t, "unknown", got[2].Item.id)
	assert.Nil(t, got[2].DistanceKm)
	assert.Less(t, *got[0].DistanceKm, *got[1].DistanceKm)
}

func TestFilterByRadius_BoundaryIsInclusive(t *testing.T) {
	origin := Coordinates{Latitude: 10, Longitude: 10}
	edge := donor{id: "edge", pos: at(10.3, 10.2)}
	radius := Distance(origin, *edge.pos)

	got := FilterByRadius(origin, []donor{edge}, radius)
	require.Len(t, got, 1)
	assert.Equal(t, radius, *got[0].DistanceKm)

	assert.Empty(t, FilterByRadius(origin, []donor{edge}, math.Nextafter(radius, 0)))
}

func TestFilterByRadius_MissingCoordinatesAlwaysKept(t *testing.T) {
	unknown := donor{id: "unknown"}
	for _, origin := range []Coordinates{{0, 0}, {-89, 179}, {45, -120}} {
		got := FilterByRadius(origin, []donor{unknown}, 0.001)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].DistanceKm)
	}
}

func TestFilterByRadius_DefaultRadius(t *testing.T) {
	origin := Coordinates{Latitude: 0, Longitude: 0}
	// roughly 44 km east of origin
	inside := donor{id: "inside", pos: at(0, 0.4)}
	// roughly 67 km east of origin
	outside := donor{id: "outside", pos: at(0, 0.6)}

	got := FilterByRadius(origin, []donor{inside, outside}, 0)
	require.Len(t, got, 1)
	assert.Equal(t, "inside", got[0].Item.id)
}

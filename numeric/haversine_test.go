package numeric_test

import (
	"testing"

	"github.com/katalvlaran/citybike/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHaversine_IdentityIsZero: distance from any valid point to itself
// is exactly zero.
func TestHaversine_IdentityIsZero(t *testing.T) {
	points := []numeric.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 48.8566, Lon: 2.3522},
		{Lat: -90, Lon: 180},
		{Lat: 90, Lon: -180},
	}

	for _, p := range points {
		d, err := numeric.Haversine(p, p)
		require.NoError(t, err)
		assert.Zero(t, d, "distance(%v, %v) to itself", p.Lat, p.Lon)
	}
}

// TestHaversine_Symmetry: distance(A,B) == distance(B,A) within 1e-9
// relative tolerance.
func TestHaversine_Symmetry(t *testing.T) {
	a := numeric.Coordinate{Lat: 48.8566, Lon: 2.3522}  // Paris
	b := numeric.Coordinate{Lat: 51.5074, Lon: -0.1278} // London

	ab, err := numeric.Haversine(a, b)
	require.NoError(t, err)
	ba, err := numeric.Haversine(b, a)
	require.NoError(t, err)

	assert.InEpsilon(t, ab, ba, 1e-9, "haversine must be symmetric")
}

// TestHaversine_KnownDistances pins the formula against reference
// values (mean Earth radius 6371 km).
func TestHaversine_KnownDistances(t *testing.T) {
	// One degree of longitude on the equator.
	d, err := numeric.Haversine(
		numeric.Coordinate{Lat: 0, Lon: 0},
		numeric.Coordinate{Lat: 0, Lon: 1})
	require.NoError(t, err)
	assert.InDelta(t, 111.195, d, 0.01)

	// Paris to London, roughly 343.5 km.
	d, err = numeric.Haversine(
		numeric.Coordinate{Lat: 48.8566, Lon: 2.3522},
		numeric.Coordinate{Lat: 51.5074, Lon: -0.1278})
	require.NoError(t, err)
	assert.InDelta(t, 343.5, d, 1.0)
}

// TestHaversine_InvalidCoordinates: out-of-range latitude or longitude
// fails with ErrInvalidCoordinate.
func TestHaversine_InvalidCoordinates(t *testing.T) {
	valid := numeric.Coordinate{Lat: 10, Lon: 10}
	bad := []numeric.Coordinate{
		{Lat: 91, Lon: 0},
		{Lat: -90.0001, Lon: 0},
		{Lat: 0, Lon: 181},
		{Lat: 0, Lon: -180.5},
	}

	for _, c := range bad {
		_, err := numeric.Haversine(valid, c)
		assert.ErrorIs(t, err, numeric.ErrInvalidCoordinate, "second arg (%v, %v)", c.Lat, c.Lon)

		_, err = numeric.Haversine(c, valid)
		assert.ErrorIs(t, err, numeric.ErrInvalidCoordinate, "first arg (%v, %v)", c.Lat, c.Lon)
	}
}

// TestNewCoordinate validates the constructor's range checks.
func TestNewCoordinate(t *testing.T) {
	c, err := numeric.NewCoordinate(45.5, -73.6)
	require.NoError(t, err)
	assert.Equal(t, numeric.Coordinate{Lat: 45.5, Lon: -73.6}, c)

	_, err = numeric.NewCoordinate(-95, 0)
	assert.ErrorIs(t, err, numeric.ErrInvalidCoordinate)
}

// TestDistanceMatrix checks shape, symmetry and the zero diagonal.
func TestDistanceMatrix(t *testing.T) {
	coords := []numeric.Coordinate{
		{Lat: 48.8566, Lon: 2.3522},
		{Lat: 51.5074, Lon: -0.1278},
		{Lat: 52.5200, Lon: 13.4050},
	}

	m, err := numeric.DistanceMatrix(coords)
	require.NoError(t, err)
	require.Len(t, m, 3)

	for i := range m {
		require.Len(t, m[i], 3)
		assert.Zero(t, m[i][i], "diagonal must be zero")
		for j := range m[i] {
			assert.Equal(t, m[i][j], m[j][i], "matrix must be symmetric at (%d,%d)", i, j)
		}
	}

	// Spot-check one entry against the scalar function.
	d, err := numeric.Haversine(coords[0], coords[1])
	require.NoError(t, err)
	assert.Equal(t, d, m[0][1])

	// Empty input is a valid degenerate case.
	empty, err := numeric.DistanceMatrix(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestDistanceMatrix_InvalidCoordinate rejects any out-of-range point.
func TestDistanceMatrix_InvalidCoordinate(t *testing.T) {
	_, err := numeric.DistanceMatrix([]numeric.Coordinate{
		{Lat: 0, Lon: 0},
		{Lat: 120, Lon: 0},
	})
	assert.ErrorIs(t, err, numeric.ErrInvalidCoordinate)
}

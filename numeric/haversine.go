package numeric

import (
	"fmt"
	"math"
)

// EarthRadiusKM is the mean Earth radius used by Haversine.
const EarthRadiusKM = 6371.0

// Haversine computes the great-circle distance between two coordinates
// in kilometers.
//
// Properties (covered by tests):
//   - Haversine(a, a) == 0 for every valid a.
//   - Haversine(a, b) == Haversine(b, a) within floating-point tolerance.
//
// Errors:
//   - ErrInvalidCoordinate — either input is outside the valid
//     latitude/longitude ranges.
//
// Complexity: O(1).
func Haversine(a, b Coordinate) (float64, error) {
	if !a.Valid() {
		return 0, fmt.Errorf("%w: first point (%v, %v)", ErrInvalidCoordinate, a.Lat, a.Lon)
	}
	if !b.Valid() {
		return 0, fmt.Errorf("%w: second point (%v, %v)", ErrInvalidCoordinate, b.Lat, b.Lon)
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Clamp against rounding drift before Asin.
	if h > 1 {
		h = 1
	}

	return 2 * EarthRadiusKM * math.Asin(math.Sqrt(h)), nil
}

// DistanceMatrix computes the pairwise great-circle distances between all
// coordinates. The result is a symmetric n×n matrix with a zero diagonal;
// entry [i][j] is the distance in kilometers between coords[i] and
// coords[j].
//
// Each pair is computed once and mirrored, so the matrix is symmetric by
// construction, not merely within tolerance.
//
// Errors:
//   - ErrInvalidCoordinate — any input coordinate is out of range.
//
// Complexity: O(n²) time, O(n²) memory.
func DistanceMatrix(coords []Coordinate) ([][]float64, error) {
	for i, c := range coords {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: index %d (%v, %v)", ErrInvalidCoordinate, i, c.Lat, c.Lon)
		}
	}

	n := len(coords)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d, err := Haversine(coords[i], coords[j])
			if err != nil {
				return nil, err
			}
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist, nil
}

package analytics

import (
	"errors"

	"github.com/katalvlaran/citybike/core"
	"github.com/katalvlaran/citybike/ingest"
)

// ErrNoData is returned by statistics methods when the dataset holds no
// trips to aggregate.
var ErrNoData = errors.New("analytics: no data")

// Peak-hour windows used by Revenue: morning and evening commute.
const (
	MorningPeakStart = 7  // inclusive
	MorningPeakEnd   = 10 // exclusive
	EveningPeakStart = 16 // inclusive
	EveningPeakEnd   = 19 // exclusive
)

// Summary is the overall usage picture (total trips, total distance,
// average duration).
type Summary struct {
	TotalTrips         int
	TotalDistanceKM    float64
	AvgDurationMinutes float64
}

// StationCount ranks one station by departing trips.
type StationCount struct {
	StationID string
	Name      string
	Trips     int
}

// MonthCount is one month of the usage trend, Month formatted "2006-01".
type MonthCount struct {
	Month string
	Trips int
}

// UserCount ranks one user by completed trips.
type UserCount struct {
	UserID string
	Trips  int
}

// RouteCount ranks one directed start->end station pair.
type RouteCount struct {
	StartStationID string
	EndStationID   string
	Trips          int
}

// Revenue totals estimated fares per user type.
type Revenue struct {
	ByUserType map[core.UserType]float64
	Total      float64
}

// Analyzer answers business questions over one cleaned dataset.
type Analyzer struct {
	ds *ingest.Dataset
}

// NewAnalyzer wraps ds. The dataset is not copied; it must not be
// mutated while the analyzer is in use.
func NewAnalyzer(ds *ingest.Dataset) *Analyzer {
	return &Analyzer{ds: ds}
}

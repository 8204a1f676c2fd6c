package analytics

import (
	"fmt"

	"github.com/katalvlaran/citybike/core"
	"github.com/katalvlaran/citybike/numeric"
	"github.com/katalvlaran/citybike/pricing"
	"github.com/katalvlaran/citybike/sortsearch"
)

// Summary answers: how is the system used overall?
// Errors: ErrNoData when the dataset holds no trips.
func (a *Analyzer) Summary() (Summary, error) {
	trips := a.ds.Trips
	if len(trips) == 0 {
		return Summary{}, ErrNoData
	}

	s := Summary{TotalTrips: len(trips)}
	var totalDuration float64
	for _, t := range trips {
		s.TotalDistanceKM += t.DistanceKM
		totalDuration += t.DurationMinutes
	}
	s.AvgDurationMinutes = totalDuration / float64(len(trips))

	return s, nil
}

// TopStartStations answers: which stations do the most trips depart
// from? Results are ranked descending by trip count; ties keep
// ascending station-ID order. Station names come from the stations
// table, "Unknown" when absent. n clamps to the number of distinct
// stations; n <= 0 yields all of them.
func (a *Analyzer) TopStartStations(n int) ([]StationCount, error) {
	counts := make(map[string]int)
	for _, t := range a.ds.Trips {
		counts[t.StartStationID]++
	}

	names := make(map[string]string, len(a.ds.Stations))
	for _, s := range a.ds.Stations {
		names[s.ID] = s.Name
	}

	ranked := make([]StationCount, 0, len(counts))
	for id, c := range counts {
		name, ok := names[id]
		if !ok {
			name = "Unknown"
		}
		ranked = append(ranked, StationCount{StationID: id, Name: name, Trips: c})
	}

	ranked, err := rankDesc(ranked,
		func(sc StationCount) any { return sc.StationID },
		func(sc StationCount) any { return -sc.Trips })
	if err != nil {
		return nil, err
	}

	return clampTop(ranked, n), nil
}

// PeakUsageHours answers: at which hours do trips start? Index is the
// start hour 0..23.
func (a *Analyzer) PeakUsageHours() [24]int {
	var hours [24]int
	for _, t := range a.ds.Trips {
		hours[t.StartTime.Hour()]++
	}

	return hours
}

// BusiestWeekdays answers: which weekdays carry the most trips? Index
// follows time.Weekday, Sunday first.
func (a *Analyzer) BusiestWeekdays() [7]int {
	var days [7]int
	for _, t := range a.ds.Trips {
		days[t.StartTime.Weekday()]++
	}

	return days
}

// AvgDistanceByUserType answers: do members ride farther than casual
// users? Trips without a recorded user type are skipped.
func (a *Analyzer) AvgDistanceByUserType() map[core.UserType]float64 {
	sums := make(map[core.UserType]float64)
	counts := make(map[core.UserType]int)
	for _, t := range a.ds.Trips {
		if t.UserType == "" {
			continue
		}
		sums[t.UserType] += t.DistanceKM
		counts[t.UserType]++
	}

	avgs := make(map[core.UserType]float64, len(sums))
	for ut, sum := range sums {
		avgs[ut] = sum / float64(counts[ut])
	}

	return avgs
}

// TripsByUserType counts trips per user type; trips without a recorded
// type are skipped.
func (a *Analyzer) TripsByUserType() map[core.UserType]int {
	counts := make(map[core.UserType]int)
	for _, t := range a.ds.Trips {
		if t.UserType == "" {
			continue
		}
		counts[t.UserType]++
	}

	return counts
}

// MonthlyTrend answers: how does usage evolve month over month?
// Months are formatted "2006-01" and returned chronologically.
func (a *Analyzer) MonthlyTrend() ([]MonthCount, error) {
	counts := make(map[string]int)
	for _, t := range a.ds.Trips {
		counts[t.StartTime.Format("2006-01")]++
	}

	trend := make([]MonthCount, 0, len(counts))
	for month, c := range counts {
		trend = append(trend, MonthCount{Month: month, Trips: c})
	}

	// "2006-01" keys order chronologically as plain strings.
	trend, err := sortsearch.Sort(trend,
		func(mc MonthCount) any { return mc.Month }, sortsearch.MergeSort)
	if err != nil {
		return nil, err
	}

	return trend, nil
}

// TopActiveUsers answers: who rides the most? Ranked descending by trip
// count, ties on ascending user ID.
func (a *Analyzer) TopActiveUsers(n int) ([]UserCount, error) {
	counts := make(map[string]int)
	for _, t := range a.ds.Trips {
		counts[t.UserID]++
	}

	ranked := make([]UserCount, 0, len(counts))
	for id, c := range counts {
		ranked = append(ranked, UserCount{UserID: id, Trips: c})
	}

	ranked, err := rankDesc(ranked,
		func(uc UserCount) any { return uc.UserID },
		func(uc UserCount) any { return -uc.Trips })
	if err != nil {
		return nil, err
	}

	return clampTop(ranked, n), nil
}

// MaintenanceCostByBikeType answers: which bike type costs the most to
// keep running? Bike types come from the trips table's denormalized
// bike_type column; records whose bike never appears there fall under
// the zero BikeType key.
func (a *Analyzer) MaintenanceCostByBikeType() map[core.BikeType]float64 {
	bikeTypes := make(map[string]core.BikeType)
	for _, t := range a.ds.Trips {
		if t.BikeType != "" {
			bikeTypes[t.BikeID] = t.BikeType
		}
	}

	costs := make(map[core.BikeType]float64)
	for _, m := range a.ds.Maintenance {
		costs[bikeTypes[m.BikeID]] += m.Cost
	}

	return costs
}

// TopRoutes answers: which directed station pairs are ridden the most?
// Ranked descending by trip count, ties on ascending "start->end" key.
func (a *Analyzer) TopRoutes(n int) ([]RouteCount, error) {
	type route struct{ start, end string }
	counts := make(map[route]int)
	for _, t := range a.ds.Trips {
		counts[route{t.StartStationID, t.EndStationID}]++
	}

	ranked := make([]RouteCount, 0, len(counts))
	for r, c := range counts {
		ranked = append(ranked, RouteCount{StartStationID: r.start, EndStationID: r.end, Trips: c})
	}

	ranked, err := rankDesc(ranked,
		func(rc RouteCount) any { return rc.StartStationID + "->" + rc.EndStationID },
		func(rc RouteCount) any { return -rc.Trips })
	if err != nil {
		return nil, err
	}

	return clampTop(ranked, n), nil
}

// DurationStats describes the trip-duration column.
// Errors: ErrNoData when the dataset holds no trips.
func (a *Analyzer) DurationStats() (numeric.Summary, error) {
	durations := a.Durations()
	if len(durations) == 0 {
		return numeric.Summary{}, ErrNoData
	}

	return numeric.Describe(durations)
}

// DurationOutliers flags anomalous trip durations.
// threshold <= 0 selects the method's default.
func (a *Analyzer) DurationOutliers(method numeric.OutlierMethod, threshold float64) (numeric.OutlierReport, error) {
	durations := a.Durations()
	if len(durations) == 0 {
		return numeric.OutlierReport{}, ErrNoData
	}

	return numeric.DetectOutliers(durations, method, threshold)
}

// StationDistances builds the pairwise haversine distance matrix over
// the stations table, ordered as the table is.
func (a *Analyzer) StationDistances() ([][]float64, error) {
	coords := make([]numeric.Coordinate, len(a.ds.Stations))
	for i, s := range a.ds.Stations {
		coords[i] = s.Location
	}

	return numeric.DistanceMatrix(coords)
}

// Revenue estimates fare income per user type. Casual trips starting
// inside a peak window are charged the peak strategy; member pricing is
// flat. Trips without a recorded user type are skipped.
func (a *Analyzer) Revenue() (Revenue, error) {
	type bucket struct {
		userType core.UserType
		peak     bool
	}
	durations := make(map[bucket][]float64)
	distances := make(map[bucket][]float64)

	for _, t := range a.ds.Trips {
		if t.UserType == "" {
			continue
		}
		b := bucket{userType: t.UserType, peak: isPeakHour(t.StartTime.Hour())}
		durations[b] = append(durations[b], t.DurationMinutes)
		distances[b] = append(distances[b], t.DistanceKM)
	}

	rev := Revenue{ByUserType: make(map[core.UserType]float64)}
	for b, durs := range durations {
		strategy, err := pricing.ForUser(b.userType, b.peak)
		if err != nil {
			return Revenue{}, fmt.Errorf("revenue for %q: %w", b.userType, err)
		}
		fares, err := pricing.Fares(durs, distances[b], strategy)
		if err != nil {
			return Revenue{}, err
		}
		for _, f := range fares {
			rev.ByUserType[b.userType] += f
			rev.Total += f
		}
	}

	return rev, nil
}

// Durations extracts the trip-duration column in trip order. Consumers
// pair it with DurationOutliers, whose indices refer to this slice.
func (a *Analyzer) Durations() numeric.Series {
	durations := make(numeric.Series, len(a.ds.Trips))
	for i, t := range a.ds.Trips {
		durations[i] = t.DurationMinutes
	}

	return durations
}

// isPeakHour reports whether the hour falls in a commute window.
func isPeakHour(hour int) bool {
	return (hour >= MorningPeakStart && hour < MorningPeakEnd) ||
		(hour >= EveningPeakStart && hour < EveningPeakEnd)
}

// rankDesc sorts items ascending by baseKey, then stably by rankKey
// (callers pass a negated count, so larger counts come first and ties
// keep the base order).
func rankDesc[T any](items []T, baseKey, rankKey sortsearch.KeyFunc[T]) ([]T, error) {
	ordered, err := sortsearch.Sort(items, baseKey, sortsearch.MergeSort)
	if err != nil {
		return nil, err
	}

	return sortsearch.Sort(ordered, rankKey, sortsearch.MergeSort)
}

// clampTop returns the first n elements; n <= 0 or n past the end
// yields the whole slice.
func clampTop[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}

	return items[:n]
}

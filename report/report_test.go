package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/citybike/analytics"
	"github.com/katalvlaran/citybike/core"
	"github.com/katalvlaran/citybike/ingest"
	"github.com/katalvlaran/citybike/numeric"
	"github.com/katalvlaran/citybike/sortsearch"
)

func testDataset() *ingest.Dataset {
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	trip := func(id, station string, dur float64, ut core.UserType) core.Trip {
		return core.Trip{
			ID: id, UserID: "U1", BikeID: "B1",
			StartStationID: station, EndStationID: "S9",
			StartTime: start, EndTime: start.Add(time.Duration(dur) * time.Minute),
			DurationMinutes: dur, DistanceKM: 3,
			Status: core.TripCompleted, UserType: ut, BikeType: core.BikeClassic,
		}
	}

	return &ingest.Dataset{
		Trips: []core.Trip{
			trip("T1", "S1", 20, core.UserCasual),
			trip("T2", "S1", 25, core.UserCasual),
			trip("T3", "S2", 30, core.UserMember),
		},
		Stations: []core.Station{
			{ID: "S1", Name: "Central", Capacity: 10, Location: numeric.Coordinate{Lat: 60.17, Lon: 24.94}},
		},
		Maintenance: []core.MaintenanceRecord{
			{ID: "M1", BikeID: "B1", Date: start, Type: core.MaintTireRepair, Cost: 15},
		},
	}
}

// TestWriteSummary renders the section header and the metric rows.
func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.WriteSummary(analytics.Summary{TotalTrips: 3, TotalDistanceKM: 9, AvgDurationMinutes: 25})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "=== Summary ===")
	assert.Contains(t, out, "Total trips")
	assert.Contains(t, out, "9.0")
	assert.Contains(t, out, "25.0")
}

// TestWriteTopStations numbers the ranking rows.
func TestWriteTopStations(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.WriteTopStations([]analytics.StationCount{
		{StationID: "S1", Name: "Central", Trips: 2},
		{StationID: "S2", Name: "Unknown", Trips: 1},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Central")
	assert.Contains(t, out, "Unknown")
}

// TestWritePeakHours skips empty hours.
func TestWritePeakHours(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	var hours [24]int
	hours[8] = 5

	require.NoError(t, w.WritePeakHours(hours))

	out := buf.String()
	assert.Contains(t, out, "08:00")
	assert.NotContains(t, out, "23:00")
}

// TestWriteOutliers lists flagged indices with their source values.
func TestWriteOutliers(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	rep := numeric.OutlierReport{
		Method:    numeric.IQRFence,
		Threshold: numeric.DefaultIQRThreshold,
		Index:     []int{0, 1, 2},
		Flags:     []bool{false, false, true},
	}
	require.NoError(t, w.WriteOutliers(rep, numeric.Series{10, 12, 500}))

	out := buf.String()
	assert.Contains(t, out, "method=iqr_fence")
	assert.Contains(t, out, "flagged=1")
	assert.Contains(t, out, "500.00")
}

// TestWriteBenchmarks renders one row per result.
func TestWriteBenchmarks(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	err := w.WriteBenchmarks([]sortsearch.Result{
		{Algorithm: "merge_sort", Size: 1000, Elapsed: 2 * time.Millisecond,
			Counters: sortsearch.Counters{Comparisons: 8700, Swaps: 9976}},
		{Algorithm: "insertion_sort", Size: 1000, Elapsed: 40 * time.Millisecond,
			Counters: sortsearch.Counters{Comparisons: 249750, Swaps: 249750}},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "merge_sort")
	assert.Contains(t, out, "insertion_sort")
	assert.Contains(t, out, "249750")
}

// TestWriteAll renders every canonical section over a real dataset.
func TestWriteAll(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	a := analytics.NewAnalyzer(testDataset())

	err := w.WriteAll(a, numeric.IQRFence, 0)
	require.NoError(t, err)

	out := buf.String()
	for _, section := range []string{
		"=== Summary ===",
		"=== Top start stations ===",
		"=== Trips by start hour ===",
		"=== Maintenance cost by bike type ===",
		"=== Trip duration statistics (min) ===",
		"=== Duration outliers ===",
		"=== Estimated revenue ===",
	} {
		assert.Contains(t, out, section)
	}
}

// TestWriteAll_Empty propagates ErrNoData for an empty dataset.
func TestWriteAll_Empty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	a := analytics.NewAnalyzer(&ingest.Dataset{})

	err := w.WriteAll(a, numeric.IQRFence, 0)
	assert.ErrorIs(t, err, analytics.ErrNoData)
}

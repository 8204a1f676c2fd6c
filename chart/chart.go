package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/citybike/analytics"
	"github.com/katalvlaran/citybike/core"
	"github.com/katalvlaran/citybike/numeric"
	"github.com/katalvlaran/citybike/sortsearch"
)

// ErrNoData is returned when a renderer receives nothing to draw.
var ErrNoData = errors.New("chart: no data")

// Rendering knobs.
const (
	maxStationBars = 10 // TripsPerStation keeps only the busiest stations
	DefaultBins    = 10 // DurationHistogram bin count when bins <= 0
)

// File names produced by RenderAll.
const (
	TripsPerStationFile   = "trips_per_station.html"
	MonthlyTrendFile      = "monthly_trend.html"
	DurationHistogramFile = "duration_histogram.html"
	UserTypeShareFile     = "user_type_share.html"
)

// TripsPerStation renders a bar chart of departures per station,
// clamped to the ten busiest. stations must already be ranked.
func TripsPerStation(w io.Writer, stations []analytics.StationCount) error {
	if len(stations) == 0 {
		return ErrNoData
	}
	if len(stations) > maxStationBars {
		stations = stations[:maxStationBars]
	}

	labels := make([]string, len(stations))
	values := make([]opts.BarData, len(stations))
	for i, s := range stations {
		labels[i] = s.Name
		values[i] = opts.BarData{Value: s.Trips}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Trips per start station"}),
	)
	bar.SetXAxis(labels).AddSeries("trips", values)

	return bar.Render(w)
}

// MonthlyTrend renders a line chart of trips per month. trend must be
// chronologically ordered.
func MonthlyTrend(w io.Writer, trend []analytics.MonthCount) error {
	if len(trend) == 0 {
		return ErrNoData
	}

	labels := make([]string, len(trend))
	values := make([]opts.LineData, len(trend))
	for i, m := range trend {
		labels[i] = m.Month
		values[i] = opts.LineData{Value: m.Trips}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Monthly trip trend"}),
	)
	line.SetXAxis(labels).AddSeries("trips", values)

	return line.Render(w)
}

// DurationHistogram renders a bar chart over fixed-width duration bins.
// Missing values are excluded before binning; bins <= 0 selects
// DefaultBins.
func DurationHistogram(w io.Writer, durations numeric.Series, bins int) error {
	labels, counts := histogram(durations, bins)
	if len(labels) == 0 {
		return ErrNoData
	}

	values := make([]opts.BarData, len(counts))
	for i, c := range counts {
		values[i] = opts.BarData{Value: c}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Trip duration distribution (min)"}),
	)
	bar.SetXAxis(labels).AddSeries("trips", values)

	return bar.Render(w)
}

// UserTypeShare renders a pie chart of trip counts per user type,
// slices ordered by type name.
func UserTypeShare(w io.Writer, counts map[core.UserType]int) error {
	if len(counts) == 0 {
		return ErrNoData
	}

	types := make([]core.UserType, 0, len(counts))
	for ut := range counts {
		types = append(types, ut)
	}
	types, err := sortsearch.Sort(types,
		func(ut core.UserType) any { return string(ut) }, sortsearch.MergeSort)
	if err != nil {
		return err
	}

	slices := make([]opts.PieData, len(types))
	for i, ut := range types {
		slices[i] = opts.PieData{Name: string(ut), Value: counts[ut]}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Trips by user type"}),
	)
	pie.AddSeries("trips", slices)

	return pie.Render(w)
}

// RenderAll writes the full chart set into dir, one HTML file per
// chart, creating the directory when needed.
func RenderAll(dir string, a *analytics.Analyzer) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	stations, err := a.TopStartStations(maxStationBars)
	if err != nil {
		return err
	}
	if err = renderFile(dir, TripsPerStationFile, func(w io.Writer) error {
		return TripsPerStation(w, stations)
	}); err != nil {
		return err
	}

	trend, err := a.MonthlyTrend()
	if err != nil {
		return err
	}
	if err = renderFile(dir, MonthlyTrendFile, func(w io.Writer) error {
		return MonthlyTrend(w, trend)
	}); err != nil {
		return err
	}

	if err = renderFile(dir, DurationHistogramFile, func(w io.Writer) error {
		return DurationHistogram(w, a.Durations(), DefaultBins)
	}); err != nil {
		return err
	}

	return renderFile(dir, UserTypeShareFile, func(w io.Writer) error {
		return UserTypeShare(w, a.TripsByUserType())
	})
}

// renderFile writes one chart to dir/name.
func renderFile(dir, name string, render func(io.Writer) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	defer f.Close()

	if err = render(f); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	return f.Close()
}

// histogram buckets the non-missing values into fixed-width bins and
// labels each bin "lo-hi". A constant series collapses into one bin.
func histogram(values numeric.Series, bins int) ([]string, []int) {
	if bins <= 0 {
		bins = DefaultBins
	}

	var clean []float64
	for _, v := range values {
		if !numeric.IsMissing(v) {
			clean = append(clean, v)
		}
	}
	if len(clean) == 0 {
		return nil, nil
	}

	lo, hi := clean[0], clean[0]
	for _, v := range clean[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return []string{fmt.Sprintf("%.0f", lo)}, []int{len(clean)}
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range clean {
		idx := int((v - lo) / width)
		if idx >= bins { // hi itself lands in the last bin
			idx = bins - 1
		}
		counts[idx]++
	}

	labels := make([]string, bins)
	for i := range labels {
		labels[i] = fmt.Sprintf("%.0f-%.0f", lo+float64(i)*width, lo+float64(i+1)*width)
	}

	return labels, counts
}

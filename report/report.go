package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/citybike/analytics"
	"github.com/katalvlaran/citybike/core"
	"github.com/katalvlaran/citybike/numeric"
	"github.com/katalvlaran/citybike/sortsearch"
)

// TopN is the ranking depth used by WriteAll.
const TopN = 5

// Writer renders report sections to one destination.
type Writer struct {
	w io.Writer
}

// NewWriter builds a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// header prints the "=== section ===" divider.
func (r *Writer) header(title string) error {
	_, err := fmt.Fprintf(r.w, "\n=== %s ===\n", title)

	return err
}

// table builds a tablewriter table with the report's house style.
func (r *Writer) table(headers []string) *tablewriter.Table {
	t := tablewriter.NewWriter(r.w)
	t.SetHeader(headers)
	t.SetAutoFormatHeaders(false)
	t.SetAlignment(tablewriter.ALIGN_RIGHT)

	return t
}

// WriteSummary emits the overall usage section.
func (r *Writer) WriteSummary(s analytics.Summary) error {
	if err := r.header("Summary"); err != nil {
		return err
	}

	t := r.table([]string{"Metric", "Value"})
	t.Append([]string{"Total trips", fmt.Sprintf("%d", s.TotalTrips)})
	t.Append([]string{"Total distance (km)", fmt.Sprintf("%.1f", s.TotalDistanceKM)})
	t.Append([]string{"Avg duration (min)", fmt.Sprintf("%.1f", s.AvgDurationMinutes)})
	t.Render()

	return nil
}

// WriteTopStations emits the station ranking section.
func (r *Writer) WriteTopStations(stations []analytics.StationCount) error {
	if err := r.header("Top start stations"); err != nil {
		return err
	}

	t := r.table([]string{"#", "Station", "Name", "Trips"})
	for i, s := range stations {
		t.Append([]string{
			fmt.Sprintf("%d", i+1), s.StationID, s.Name, fmt.Sprintf("%d", s.Trips),
		})
	}
	t.Render()

	return nil
}

// WritePeakHours emits the hourly histogram section, skipping hours
// with no trips.
func (r *Writer) WritePeakHours(hours [24]int) error {
	if err := r.header("Trips by start hour"); err != nil {
		return err
	}

	t := r.table([]string{"Hour", "Trips"})
	for h, n := range hours {
		if n == 0 {
			continue
		}
		t.Append([]string{fmt.Sprintf("%02d:00", h), fmt.Sprintf("%d", n)})
	}
	t.Render()

	return nil
}

// WriteMaintenanceCosts emits maintenance cost per bike type, ordered
// by type name for stable output.
func (r *Writer) WriteMaintenanceCosts(costs map[core.BikeType]float64) error {
	if err := r.header("Maintenance cost by bike type"); err != nil {
		return err
	}

	types := make([]core.BikeType, 0, len(costs))
	for bt := range costs {
		types = append(types, bt)
	}
	types, err := sortsearch.Sort(types,
		func(bt core.BikeType) any { return string(bt) }, sortsearch.MergeSort)
	if err != nil {
		return err
	}

	t := r.table([]string{"Bike type", "Cost"})
	for _, bt := range types {
		name := string(bt)
		if name == "" {
			name = "unknown"
		}
		t.Append([]string{name, fmt.Sprintf("%.2f", costs[bt])})
	}
	t.Render()

	return nil
}

// WriteDurationStats emits the descriptive statistics section.
func (r *Writer) WriteDurationStats(s numeric.Summary) error {
	if err := r.header("Trip duration statistics (min)"); err != nil {
		return err
	}

	t := r.table([]string{"Stat", "Value"})
	t.Append([]string{"count", fmt.Sprintf("%d", s.Count)})
	t.Append([]string{"mean", fmt.Sprintf("%.2f", s.Mean)})
	t.Append([]string{"median", fmt.Sprintf("%.2f", s.Median)})
	t.Append([]string{"std", fmt.Sprintf("%.2f", s.StdDev)})
	t.Append([]string{"min", fmt.Sprintf("%.2f", s.Min)})
	t.Append([]string{"max", fmt.Sprintf("%.2f", s.Max)})
	t.Append([]string{"q1", fmt.Sprintf("%.2f", s.Q1)})
	t.Append([]string{"q3", fmt.Sprintf("%.2f", s.Q3)})
	t.Render()

	return nil
}

// WriteOutliers emits the outlier section: detection method, threshold
// and the flagged indices with their values.
func (r *Writer) WriteOutliers(rep numeric.OutlierReport, values numeric.Series) error {
	if err := r.header("Duration outliers"); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.w, "method=%s threshold=%.2f flagged=%d\n",
		rep.Method, rep.Threshold, len(rep.Outliers())); err != nil {
		return err
	}

	outliers := rep.Outliers()
	if len(outliers) == 0 {
		return nil
	}

	t := r.table([]string{"Index", "Value"})
	for _, idx := range outliers {
		value := "?"
		if idx >= 0 && idx < len(values) {
			value = fmt.Sprintf("%.2f", values[idx])
		}
		t.Append([]string{fmt.Sprintf("%d", idx), value})
	}
	t.Render()

	return nil
}

// WriteRevenue emits fare totals per user type, ordered by type name.
func (r *Writer) WriteRevenue(rev analytics.Revenue) error {
	if err := r.header("Estimated revenue"); err != nil {
		return err
	}

	types := make([]core.UserType, 0, len(rev.ByUserType))
	for ut := range rev.ByUserType {
		types = append(types, ut)
	}
	types, err := sortsearch.Sort(types,
		func(ut core.UserType) any { return string(ut) }, sortsearch.MergeSort)
	if err != nil {
		return err
	}

	t := r.table([]string{"User type", "Revenue"})
	for _, ut := range types {
		t.Append([]string{string(ut), fmt.Sprintf("%.2f", rev.ByUserType[ut])})
	}
	t.Append([]string{"total", fmt.Sprintf("%.2f", rev.Total)})
	t.Render()

	return nil
}

// WriteBenchmarks emits the algorithm comparison table.
func (r *Writer) WriteBenchmarks(results []sortsearch.Result) error {
	if err := r.header("Algorithm benchmarks"); err != nil {
		return err
	}

	t := r.table([]string{"Algorithm", "n", "Elapsed", "Comparisons", "Moves"})
	for _, res := range results {
		t.Append([]string{
			res.Algorithm,
			fmt.Sprintf("%d", res.Size),
			res.Elapsed.String(),
			fmt.Sprintf("%d", res.Counters.Comparisons),
			fmt.Sprintf("%d", res.Counters.Swaps),
		})
	}
	t.Render()

	return nil
}

// WriteAll runs every analysis and emits the full report in the
// canonical section order.
func (r *Writer) WriteAll(a *analytics.Analyzer, method numeric.OutlierMethod, threshold float64) error {
	summary, err := a.Summary()
	if err != nil {
		return err
	}
	if err = r.WriteSummary(summary); err != nil {
		return err
	}

	stations, err := a.TopStartStations(TopN)
	if err != nil {
		return err
	}
	if err = r.WriteTopStations(stations); err != nil {
		return err
	}

	if err = r.WritePeakHours(a.PeakUsageHours()); err != nil {
		return err
	}

	if err = r.WriteMaintenanceCosts(a.MaintenanceCostByBikeType()); err != nil {
		return err
	}

	stats, err := a.DurationStats()
	if err != nil {
		return err
	}
	if err = r.WriteDurationStats(stats); err != nil {
		return err
	}

	outliers, err := a.DurationOutliers(method, threshold)
	if err != nil {
		return err
	}
	if err = r.WriteOutliers(outliers, a.Durations()); err != nil {
		return err
	}

	rev, err := a.Revenue()
	if err != nil {
		return err
	}

	return r.WriteRevenue(rev)
}

package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/citybike/numeric"
)

// ExampleDescribe summarizes a duration column with one missing entry.
func ExampleDescribe() {
	durations := numeric.Series{12, numeric.Missing, 18, 30, 24}

	sum, err := numeric.Describe(durations)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("count=%d mean=%.1f median=%.1f min=%.0f max=%.0f\n",
		sum.Count, sum.Mean, sum.Median, sum.Min, sum.Max)
	// Output:
	// count=4 mean=21.0 median=21.0 min=12 max=30
}

// ExampleHaversine measures the great-circle distance between two
// station coordinates.
func ExampleHaversine() {
	paris := numeric.Coordinate{Lat: 48.8566, Lon: 2.3522}
	london := numeric.Coordinate{Lat: 51.5074, Lon: -0.1278}

	km, err := numeric.Haversine(paris, london)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.0f km\n", km)
	// Output:
	// 344 km
}

// ExampleDetectOutliers flags a pathological trip duration with the
// default IQR fence.
func ExampleDetectOutliers() {
	durations := numeric.Series{1, 2, 3, 4, 100}

	rep, err := numeric.DetectOutliers(durations, numeric.IQRFence, 0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("method=%s threshold=%.1f outliers=%v\n", rep.Method, rep.Threshold, rep.Outliers())
	// Output:
	// method=iqr_fence threshold=1.5 outliers=[4]
}

package pricing

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/citybike/core"
)

// Sentinel errors for strategy selection and bulk fare calculation.
var (
	// ErrUnknownUserType is returned by ForUser for an unrecognized type.
	ErrUnknownUserType = errors.New("pricing: unknown user type")

	// ErrLengthMismatch is returned by Fares when the duration and
	// distance columns differ in length.
	ErrLengthMismatch = errors.New("pricing: duration and distance columns must have equal length")
)

// Casual rate constants (euros).
const (
	CasualUnlockFee = 1.00
	CasualPerMinute = 0.15
	CasualPerKM     = 0.10
)

// Member rate constants (euros). Members pay no unlock fee.
const (
	MemberPerMinute = 0.08
	MemberPerKM     = 0.05
)

// PeakMultiplier is the surcharge factor applied to casual rates during
// peak hours.
const PeakMultiplier = 1.5

// Strategy computes the cost of one trip in euros.
type Strategy interface {
	// Name is the strategy's canonical identifier for reports.
	Name() string

	// Cost returns the fare for a trip of the given duration (minutes)
	// and distance (kilometers).
	Cost(durationMin, distanceKM float64) float64
}

// Casual prices trips for non-member riders.
type Casual struct{}

// Name implements Strategy.
func (Casual) Name() string { return "casual" }

// Cost implements Strategy: unlock fee + per-minute + per-km.
func (Casual) Cost(durationMin, distanceKM float64) float64 {
	return CasualUnlockFee + CasualPerMinute*durationMin + CasualPerKM*distanceKM
}

// Member prices trips for members at discounted rates.
type Member struct{}

// Name implements Strategy.
func (Member) Name() string { return "member" }

// Cost implements Strategy: per-minute + per-km, no unlock fee.
func (Member) Cost(durationMin, distanceKM float64) float64 {
	return MemberPerMinute*durationMin + MemberPerKM*distanceKM
}

// PeakHour surcharges the casual fare by PeakMultiplier.
type PeakHour struct{}

// Name implements Strategy.
func (PeakHour) Name() string { return "peak_hour" }

// Cost implements Strategy.
func (PeakHour) Cost(durationMin, distanceKM float64) float64 {
	return PeakMultiplier * Casual{}.Cost(durationMin, distanceKM)
}

// ForUser selects the strategy for a user type. During peak hours,
// casual riders pay the surcharged rate; member rates are flat all day.
func ForUser(t core.UserType, peak bool) (Strategy, error) {
	switch t {
	case core.UserCasual:
		if peak {
			return PeakHour{}, nil
		}

		return Casual{}, nil
	case core.UserMember:
		return Member{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownUserType, t)
	}
}

// Fares applies one strategy across whole duration/distance columns and
// returns the per-trip fares in input order.
//
// Errors:
//   - ErrLengthMismatch — the columns differ in length.
func Fares(durations, distances []float64, s Strategy) ([]float64, error) {
	if len(durations) != len(distances) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(durations), len(distances))
	}

	fares := make([]float64, len(durations))
	for i := range durations {
		fares[i] = s.Cost(durations[i], distances[i])
	}

	return fares, nil
}

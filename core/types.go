// Package core - domain value types, enums and sentinel errors.
package core

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/citybike/numeric"
)

// Sentinel errors for domain construction and validation.
var (
	// ErrMissingField indicates a required row field is absent or empty.
	ErrMissingField = errors.New("core: required field missing")

	// ErrInvalidField indicates a field is present but fails validation
	// (unknown categorical value, out-of-range number, bad timestamp...).
	ErrInvalidField = errors.New("core: invalid field value")
)

// Datetime layouts used by the row factories.
const (
	DateLayout     = "2006-01-02"
	DatetimeLayout = "2006-01-02 15:04:05"
)

// BikeType distinguishes the two bike variants.
type BikeType string

const (
	BikeClassic  BikeType = "classic"
	BikeElectric BikeType = "electric"
)

// ParseBikeType normalizes (lowercase, trimmed) and validates a raw value.
func ParseBikeType(s string) (BikeType, error) {
	switch t := BikeType(normalize(s)); t {
	case BikeClassic, BikeElectric:
		return t, nil
	default:
		return "", fmt.Errorf("%w: bike_type %q", ErrInvalidField, s)
	}
}

// BikeStatus is the operational state of a bike.
type BikeStatus string

const (
	StatusAvailable   BikeStatus = "available"
	StatusInUse       BikeStatus = "in_use"
	StatusMaintenance BikeStatus = "maintenance"
)

// ParseBikeStatus normalizes and validates a raw value.
func ParseBikeStatus(s string) (BikeStatus, error) {
	switch t := BikeStatus(normalize(s)); t {
	case StatusAvailable, StatusInUse, StatusMaintenance:
		return t, nil
	default:
		return "", fmt.Errorf("%w: status %q", ErrInvalidField, s)
	}
}

// UserType distinguishes casual riders from members.
type UserType string

const (
	UserCasual UserType = "casual"
	UserMember UserType = "member"
)

// ParseUserType normalizes and validates a raw value.
func ParseUserType(s string) (UserType, error) {
	switch t := UserType(normalize(s)); t {
	case UserCasual, UserMember:
		return t, nil
	default:
		return "", fmt.Errorf("%w: user_type %q", ErrInvalidField, s)
	}
}

// Tier is the membership level of a member user.
type Tier string

const (
	TierBasic   Tier = "basic"
	TierPremium Tier = "premium"
)

// ParseTier normalizes and validates a raw value.
func ParseTier(s string) (Tier, error) {
	switch t := Tier(normalize(s)); t {
	case TierBasic, TierPremium:
		return t, nil
	default:
		return "", fmt.Errorf("%w: tier %q", ErrInvalidField, s)
	}
}

// TripStatus is the outcome of a trip.
type TripStatus string

const (
	TripCompleted TripStatus = "completed"
	TripCancelled TripStatus = "cancelled"
)

// ParseTripStatus normalizes and validates a raw value.
func ParseTripStatus(s string) (TripStatus, error) {
	switch t := TripStatus(normalize(s)); t {
	case TripCompleted, TripCancelled:
		return t, nil
	default:
		return "", fmt.Errorf("%w: trip status %q", ErrInvalidField, s)
	}
}

// MaintenanceType is the category of a maintenance event.
type MaintenanceType string

const (
	MaintTireRepair         MaintenanceType = "tire_repair"
	MaintBrakeAdjustment    MaintenanceType = "brake_adjustment"
	MaintBatteryReplacement MaintenanceType = "battery_replacement"
	MaintChainLubrication   MaintenanceType = "chain_lubrication"
	MaintGeneralInspection  MaintenanceType = "general_inspection"
)

// ParseMaintenanceType normalizes and validates a raw value.
func ParseMaintenanceType(s string) (MaintenanceType, error) {
	switch t := MaintenanceType(normalize(s)); t {
	case MaintTireRepair, MaintBrakeAdjustment, MaintBatteryReplacement,
		MaintChainLubrication, MaintGeneralInspection:
		return t, nil
	default:
		return "", fmt.Errorf("%w: maintenance_type %q", ErrInvalidField, s)
	}
}

// normalize lowercases and trims a categorical raw value.
func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Bike is one bike of the fleet. GearCount applies to classic bikes;
// BatteryLevel (0-100) and MaxRangeKM (> 0) apply to electric bikes.
type Bike struct {
	ID           string
	Type         BikeType
	Status       BikeStatus
	GearCount    int
	BatteryLevel float64
	MaxRangeKM   float64
}

// Validate enforces the per-variant bike invariants.
func (b Bike) Validate() error {
	if b.ID == "" {
		return fmt.Errorf("%w: bike_id", ErrMissingField)
	}
	if _, err := ParseBikeType(string(b.Type)); err != nil {
		return err
	}
	if _, err := ParseBikeStatus(string(b.Status)); err != nil {
		return err
	}

	switch b.Type {
	case BikeClassic:
		if b.GearCount <= 0 {
			return fmt.Errorf("%w: gear_count must be positive, got %d", ErrInvalidField, b.GearCount)
		}
	case BikeElectric:
		if b.BatteryLevel < 0 || b.BatteryLevel > 100 {
			return fmt.Errorf("%w: battery_level must be in [0,100], got %v", ErrInvalidField, b.BatteryLevel)
		}
		if b.MaxRangeKM <= 0 {
			return fmt.Errorf("%w: max_range_km must be positive, got %v", ErrInvalidField, b.MaxRangeKM)
		}
	}

	return nil
}

// Station is one docking station of the network.
type Station struct {
	ID       string
	Name     string
	Capacity int
	Location numeric.Coordinate
}

// Validate enforces the station invariants.
func (s Station) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: station_id", ErrMissingField)
	}
	if s.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidField, s.Capacity)
	}
	if !s.Location.Valid() {
		return fmt.Errorf("%w: station coordinates (%v, %v)", ErrInvalidField, s.Location.Lat, s.Location.Lon)
	}

	return nil
}

// User is a rider. DayPassCount applies to casual users; the membership
// window and Tier apply to members.
type User struct {
	ID              string
	Name            string
	Email           string
	Type            UserType
	DayPassCount    int
	MembershipStart time.Time
	MembershipEnd   time.Time
	Tier            Tier
}

// Validate enforces the per-variant user invariants.
func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("%w: user_id", ErrMissingField)
	}
	if !strings.Contains(u.Email, "@") {
		return fmt.Errorf("%w: email %q", ErrInvalidField, u.Email)
	}
	if _, err := ParseUserType(string(u.Type)); err != nil {
		return err
	}

	switch u.Type {
	case UserCasual:
		if u.DayPassCount < 0 {
			return fmt.Errorf("%w: day_pass_count must be non-negative, got %d", ErrInvalidField, u.DayPassCount)
		}
	case UserMember:
		if _, err := ParseTier(string(u.Tier)); err != nil {
			return err
		}
		if u.MembershipEnd.Before(u.MembershipStart) {
			return fmt.Errorf("%w: membership_end before membership_start", ErrInvalidField)
		}
	}

	return nil
}

// Trip is one ride between two stations. UserType and BikeType are
// denormalized from the cleaned trip records so that analytics can group
// without joins.
type Trip struct {
	ID              string
	UserID          string
	BikeID          string
	StartStationID  string
	EndStationID    string
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes float64
	DistanceKM      float64
	Status          TripStatus
	UserType        UserType
	BikeType        BikeType
}

// Validate enforces the trip invariants.
func (t Trip) Validate() error {
	switch {
	case t.ID == "":
		return fmt.Errorf("%w: trip_id", ErrMissingField)
	case t.UserID == "":
		return fmt.Errorf("%w: user_id", ErrMissingField)
	case t.BikeID == "":
		return fmt.Errorf("%w: bike_id", ErrMissingField)
	case t.StartStationID == "":
		return fmt.Errorf("%w: start_station_id", ErrMissingField)
	case t.EndStationID == "":
		return fmt.Errorf("%w: end_station_id", ErrMissingField)
	}
	if t.EndTime.Before(t.StartTime) {
		return fmt.Errorf("%w: end_time before start_time", ErrInvalidField)
	}
	if t.DurationMinutes < 0 {
		return fmt.Errorf("%w: duration_minutes must be non-negative, got %v", ErrInvalidField, t.DurationMinutes)
	}
	if t.DistanceKM < 0 {
		return fmt.Errorf("%w: distance_km must be non-negative, got %v", ErrInvalidField, t.DistanceKM)
	}
	if _, err := ParseTripStatus(string(t.Status)); err != nil {
		return err
	}

	return nil
}

// Duration derives the trip length in minutes from the timestamps.
// The recorded DurationMinutes column may disagree slightly with this
// derivation; analytics uses the recorded column, the derivation exists
// for cross-checks.
func (t Trip) Duration() float64 {
	return t.EndTime.Sub(t.StartTime).Minutes()
}

// MaintenanceRecord is one maintenance event on a bike.
type MaintenanceRecord struct {
	ID          string
	BikeID      string
	Date        time.Time
	Type        MaintenanceType
	Cost        float64
	Description string
}

// Validate enforces the maintenance invariants.
func (m MaintenanceRecord) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("%w: record_id", ErrMissingField)
	}
	if m.BikeID == "" {
		return fmt.Errorf("%w: bike_id", ErrMissingField)
	}
	if m.Cost < 0 {
		return fmt.Errorf("%w: cost must be non-negative, got %v", ErrInvalidField, m.Cost)
	}
	if _, err := ParseMaintenanceType(string(m.Type)); err != nil {
		return err
	}

	return nil
}

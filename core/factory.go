// Package core - row factories: pure mappings from field-keyed records
// to validated domain values.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Row is one raw CSV record, keyed by column name. Values arrive as
// strings; the factories own all parsing and validation.
type Row map[string]string

// field returns the trimmed value of a required column.
func (r Row) field(name string) (string, error) {
	v := strings.TrimSpace(r[name])
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingField, name)
	}

	return v, nil
}

// floatField parses an optional float column, or def when absent.
func (r Row) floatField(name string, def float64) (float64, error) {
	v := strings.TrimSpace(r[name])
	if v == "" {
		return def, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidField, name, v)
	}

	return f, nil
}

// intField parses an optional integer column, or def when absent.
func (r Row) intField(name string, def int) (int, error) {
	v := strings.TrimSpace(r[name])
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidField, name, v)
	}

	return n, nil
}

// timeField parses a required datetime column, trying the datetime
// layout first and falling back to the date-only layout.
func (r Row) timeField(name string) (time.Time, error) {
	v, err := r.field(name)
	if err != nil {
		return time.Time{}, err
	}

	if ts, err := time.Parse(DatetimeLayout, v); err == nil {
		return ts, nil
	}
	if ts, err := time.Parse(DateLayout, v); err == nil {
		return ts, nil
	}

	return time.Time{}, fmt.Errorf("%w: %s %q", ErrInvalidField, name, v)
}

// BikeFromRow builds a validated Bike. The bike_type column decides which
// variant fields apply: gear_count (default 7) for classic, battery_level
// (default 100) and max_range_km (default 50) for electric.
func BikeFromRow(row Row) (Bike, error) {
	id, err := row.field("bike_id")
	if err != nil {
		return Bike{}, err
	}

	typ, err := ParseBikeType(row["bike_type"])
	if err != nil {
		return Bike{}, err
	}

	status := StatusAvailable
	if raw := strings.TrimSpace(row["status"]); raw != "" {
		if status, err = ParseBikeStatus(raw); err != nil {
			return Bike{}, err
		}
	}

	b := Bike{ID: id, Type: typ, Status: status}
	switch typ {
	case BikeClassic:
		if b.GearCount, err = row.intField("gear_count", 7); err != nil {
			return Bike{}, err
		}
	case BikeElectric:
		if b.BatteryLevel, err = row.floatField("battery_level", 100); err != nil {
			return Bike{}, err
		}
		if b.MaxRangeKM, err = row.floatField("max_range_km", 50); err != nil {
			return Bike{}, err
		}
	}

	if err = b.Validate(); err != nil {
		return Bike{}, err
	}

	return b, nil
}

// StationFromRow builds a validated Station.
func StationFromRow(row Row) (Station, error) {
	id, err := row.field("station_id")
	if err != nil {
		return Station{}, err
	}

	name := strings.TrimSpace(row["station_name"])
	if name == "" {
		name = "Unknown" // cleaned datasets fill absent names the same way
	}

	capacity, err := row.intField("capacity", 0)
	if err != nil {
		return Station{}, err
	}
	lat, err := row.floatField("latitude", 0)
	if err != nil {
		return Station{}, err
	}
	lon, err := row.floatField("longitude", 0)
	if err != nil {
		return Station{}, err
	}

	s := Station{ID: id, Name: name, Capacity: capacity}
	s.Location.Lat, s.Location.Lon = lat, lon
	if err = s.Validate(); err != nil {
		return Station{}, err
	}

	return s, nil
}

// UserFromRow builds a validated User. The user_type column decides the
// variant: day_pass_count for casual, membership window + tier (default
// basic) for member; an absent membership_end defaults to the start.
func UserFromRow(row Row) (User, error) {
	id, err := row.field("user_id")
	if err != nil {
		return User{}, err
	}
	email, err := row.field("email")
	if err != nil {
		return User{}, err
	}

	typ, err := ParseUserType(row["user_type"])
	if err != nil {
		return User{}, err
	}

	u := User{
		ID:    id,
		Name:  strings.TrimSpace(row["name"]),
		Email: email,
		Type:  typ,
	}

	switch typ {
	case UserCasual:
		if u.DayPassCount, err = row.intField("day_pass_count", 0); err != nil {
			return User{}, err
		}
	case UserMember:
		tier := TierBasic
		if raw := strings.TrimSpace(row["tier"]); raw != "" {
			if tier, err = ParseTier(raw); err != nil {
				return User{}, err
			}
		}
		u.Tier = tier

		if raw := strings.TrimSpace(row["membership_start"]); raw != "" {
			if u.MembershipStart, err = row.timeField("membership_start"); err != nil {
				return User{}, err
			}
		}
		u.MembershipEnd = u.MembershipStart
		if raw := strings.TrimSpace(row["membership_end"]); raw != "" {
			if u.MembershipEnd, err = row.timeField("membership_end"); err != nil {
				return User{}, err
			}
		}
	}

	if err = u.Validate(); err != nil {
		return User{}, err
	}

	return u, nil
}

// TripFromRow builds a validated Trip.
func TripFromRow(row Row) (Trip, error) {
	t := Trip{}

	var err error
	if t.ID, err = row.field("trip_id"); err != nil {
		return Trip{}, err
	}
	if t.UserID, err = row.field("user_id"); err != nil {
		return Trip{}, err
	}
	if t.BikeID, err = row.field("bike_id"); err != nil {
		return Trip{}, err
	}
	if t.StartStationID, err = row.field("start_station_id"); err != nil {
		return Trip{}, err
	}
	if t.EndStationID, err = row.field("end_station_id"); err != nil {
		return Trip{}, err
	}
	if t.StartTime, err = row.timeField("start_time"); err != nil {
		return Trip{}, err
	}
	if t.EndTime, err = row.timeField("end_time"); err != nil {
		return Trip{}, err
	}

	if raw, err := row.field("duration_minutes"); err != nil {
		return Trip{}, err
	} else if t.DurationMinutes, err = strconv.ParseFloat(raw, 64); err != nil {
		return Trip{}, fmt.Errorf("%w: duration_minutes %q", ErrInvalidField, raw)
	}
	if raw, err := row.field("distance_km"); err != nil {
		return Trip{}, err
	} else if t.DistanceKM, err = strconv.ParseFloat(raw, 64); err != nil {
		return Trip{}, fmt.Errorf("%w: distance_km %q", ErrInvalidField, raw)
	}

	if t.Status, err = ParseTripStatus(row["status"]); err != nil {
		return Trip{}, err
	}
	if raw := strings.TrimSpace(row["user_type"]); raw != "" {
		if t.UserType, err = ParseUserType(raw); err != nil {
			return Trip{}, err
		}
	}
	if raw := strings.TrimSpace(row["bike_type"]); raw != "" {
		if t.BikeType, err = ParseBikeType(raw); err != nil {
			return Trip{}, err
		}
	}

	if err = t.Validate(); err != nil {
		return Trip{}, err
	}

	return t, nil
}

// MaintenanceFromRow builds a validated MaintenanceRecord.
func MaintenanceFromRow(row Row) (MaintenanceRecord, error) {
	m := MaintenanceRecord{Description: strings.TrimSpace(row["description"])}

	var err error
	if m.ID, err = row.field("record_id"); err != nil {
		return MaintenanceRecord{}, err
	}
	if m.BikeID, err = row.field("bike_id"); err != nil {
		return MaintenanceRecord{}, err
	}
	if m.Date, err = row.timeField("date"); err != nil {
		return MaintenanceRecord{}, err
	}
	if m.Type, err = ParseMaintenanceType(row["maintenance_type"]); err != nil {
		return MaintenanceRecord{}, err
	}
	if m.Cost, err = row.floatField("cost", 0); err != nil {
		return MaintenanceRecord{}, err
	}

	if err = m.Validate(); err != nil {
		return MaintenanceRecord{}, err
	}

	return m, nil
}

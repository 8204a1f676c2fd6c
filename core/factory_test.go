package core_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/citybike/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBikeFromRow_Variants: the bike_type discriminator picks the
// variant and its defaults, hiding the choice from the caller.
func TestBikeFromRow_Variants(t *testing.T) {
	classic, err := core.BikeFromRow(core.Row{"bike_id": "BK100", "bike_type": "classic"})
	require.NoError(t, err)
	assert.Equal(t, core.BikeClassic, classic.Type)
	assert.Equal(t, 7, classic.GearCount, "gear_count defaults to 7")
	assert.Equal(t, core.StatusAvailable, classic.Status, "status defaults to available")

	electric, err := core.BikeFromRow(core.Row{
		"bike_id": "BK200", "bike_type": "Electric",
		"battery_level": "62.5", "max_range_km": "40", "status": "in_use",
	})
	require.NoError(t, err)
	assert.Equal(t, core.BikeElectric, electric.Type)
	assert.Equal(t, 62.5, electric.BatteryLevel)
	assert.Equal(t, 40.0, electric.MaxRangeKM)
	assert.Equal(t, core.StatusInUse, electric.Status)

	_, err = core.BikeFromRow(core.Row{"bike_id": "BK300", "bike_type": "unicycle"})
	assert.ErrorIs(t, err, core.ErrInvalidField)

	_, err = core.BikeFromRow(core.Row{"bike_type": "classic"})
	assert.ErrorIs(t, err, core.ErrMissingField)
}

// TestStationFromRow covers coordinate parsing and the Unknown-name fill.
func TestStationFromRow(t *testing.T) {
	st, err := core.StationFromRow(core.Row{
		"station_id": "ST1", "station_name": "Central Park",
		"capacity": "24", "latitude": "48.8566", "longitude": "2.3522",
	})
	require.NoError(t, err)
	assert.Equal(t, "Central Park", st.Name)
	assert.Equal(t, 24, st.Capacity)
	assert.Equal(t, 48.8566, st.Location.Lat)

	st, err = core.StationFromRow(core.Row{
		"station_id": "ST2", "capacity": "10", "latitude": "0", "longitude": "0",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown", st.Name, "absent names are filled with Unknown")

	_, err = core.StationFromRow(core.Row{
		"station_id": "ST3", "capacity": "10", "latitude": "95", "longitude": "0",
	})
	assert.ErrorIs(t, err, core.ErrInvalidField)
}

// TestUserFromRow_Variants covers both user variants and the membership
// defaults.
func TestUserFromRow_Variants(t *testing.T) {
	casual, err := core.UserFromRow(core.Row{
		"user_id": "U1", "name": "Ada", "email": "ada@example.com",
		"user_type": "casual", "day_pass_count": "3",
	})
	require.NoError(t, err)
	assert.Equal(t, core.UserCasual, casual.Type)
	assert.Equal(t, 3, casual.DayPassCount)

	member, err := core.UserFromRow(core.Row{
		"user_id": "U2", "name": "Grace", "email": "grace@example.com",
		"user_type": "member", "membership_start": "2024-01-01",
		"membership_end": "2025-01-01", "tier": "Premium",
	})
	require.NoError(t, err)
	assert.Equal(t, core.UserMember, member.Type)
	assert.Equal(t, core.TierPremium, member.Tier)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), member.MembershipStart)

	// membership_end defaults to membership_start, tier to basic.
	member, err = core.UserFromRow(core.Row{
		"user_id": "U3", "name": "Linus", "email": "l@example.com",
		"user_type": "member", "membership_start": "2024-03-01",
	})
	require.NoError(t, err)
	assert.Equal(t, member.MembershipStart, member.MembershipEnd)
	assert.Equal(t, core.TierBasic, member.Tier)

	_, err = core.UserFromRow(core.Row{
		"user_id": "U4", "name": "X", "email": "x@example.com", "user_type": "vip",
	})
	assert.ErrorIs(t, err, core.ErrInvalidField)
}

// TestTripFromRow covers datetime parsing and the numeric columns.
func TestTripFromRow(t *testing.T) {
	trip, err := core.TripFromRow(core.Row{
		"trip_id": "T1", "user_id": "U1", "bike_id": "BK1",
		"start_station_id": "ST1", "end_station_id": "ST2",
		"start_time": "2024-06-01 08:00:00", "end_time": "2024-06-01 08:25:00",
		"duration_minutes": "25", "distance_km": "4.2",
		"status": "Completed", "user_type": "casual", "bike_type": "classic",
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, trip.DurationMinutes)
	assert.Equal(t, 4.2, trip.DistanceKM)
	assert.Equal(t, core.TripCompleted, trip.Status)
	assert.InDelta(t, trip.DurationMinutes, trip.Duration(), 1e-9)

	_, err = core.TripFromRow(core.Row{
		"trip_id": "T2", "user_id": "U1", "bike_id": "BK1",
		"start_station_id": "ST1", "end_station_id": "ST2",
		"start_time": "yesterday", "end_time": "2024-06-01 08:25:00",
		"duration_minutes": "25", "distance_km": "4.2", "status": "completed",
	})
	assert.ErrorIs(t, err, core.ErrInvalidField)
}

// TestMaintenanceFromRow covers the date-only layout and cost parsing.
func TestMaintenanceFromRow(t *testing.T) {
	rec, err := core.MaintenanceFromRow(core.Row{
		"record_id": "M1", "bike_id": "BK1", "date": "2024-05-10",
		"maintenance_type": "chain_lubrication", "cost": "8.50",
		"description": "routine",
	})
	require.NoError(t, err)
	assert.Equal(t, core.MaintChainLubrication, rec.Type)
	assert.Equal(t, 8.5, rec.Cost)
	assert.Equal(t, "routine", rec.Description)

	_, err = core.MaintenanceFromRow(core.Row{
		"record_id": "M2", "bike_id": "BK1", "date": "2024-05-10",
		"maintenance_type": "oil_change", "cost": "5",
	})
	assert.ErrorIs(t, err, core.ErrInvalidField)
}

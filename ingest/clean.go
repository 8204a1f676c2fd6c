package ingest

import (
	"github.com/katalvlaran/citybike/core"
)

// Clean turns raw rows into validated domain records.
//
// For each table it first drops duplicate IDs (keeping the first
// occurrence, in source order), then runs the rows through the core
// row factories. A factory error means the row was unparseable,
// missing a required field or semantically invalid; such rows are
// counted as Dropped and logged at debug level with the reason.
func (ld *Loader) Clean(raw *Raw) (*Dataset, CleanStats) {
	ds := &Dataset{}
	var stats CleanStats

	stats.Trips = cleanTable(ld, "trips", raw.Trips, tripIDColumn,
		core.TripFromRow, &ds.Trips)
	stats.Stations = cleanTable(ld, "stations", raw.Stations, stationIDColumn,
		core.StationFromRow, &ds.Stations)
	stats.Maintenance = cleanTable(ld, "maintenance", raw.Maintenance, maintenanceIDColumn,
		core.MaintenanceFromRow, &ds.Maintenance)

	ld.logger.Info("cleaned dataset",
		"trips_kept", stats.Trips.Kept,
		"trips_dropped", stats.Trips.Dropped+stats.Trips.Duplicates,
		"stations_kept", stats.Stations.Kept,
		"maintenance_kept", stats.Maintenance.Kept)
	return ds, stats
}

// cleanTable applies dedup-then-validate to one table and appends the
// survivors to out.
func cleanTable[T any](
	ld *Loader,
	table string,
	rows []core.Row,
	idColumn string,
	fromRow func(core.Row) (T, error),
	out *[]T,
) TableStats {
	st := TableStats{Loaded: len(rows)}
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		id := row[idColumn]
		if id != "" && seen[id] {
			st.Duplicates++
			continue
		}
		if id != "" {
			seen[id] = true
		}

		rec, err := fromRow(row)
		if err != nil {
			st.Dropped++
			ld.logger.Debug("dropped row", "table", table, "id", id, "reason", err)
			continue
		}
		*out = append(*out, rec)
		st.Kept++
	}
	return st
}

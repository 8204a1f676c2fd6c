package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/citybike/core"
)

// File names expected by LoadDir.
const (
	TripsFile       = "trips.csv"
	StationsFile    = "stations.csv"
	MaintenanceFile = "maintenance.csv"
)

// ID columns each table must carry. A header without the table's ID
// column cannot be de-duplicated and fails the load.
const (
	tripIDColumn        = "trip_id"
	stationIDColumn     = "station_id"
	maintenanceIDColumn = "record_id"
)

// LoadTrips reads the trips table from r.
// Errors: ErrEmptyInput, ErrMissingColumn, or a csv parse error.
func (ld *Loader) LoadTrips(r io.Reader) ([]core.Row, error) {
	return readRows(r, tripIDColumn)
}

// LoadStations reads the stations table from r.
func (ld *Loader) LoadStations(r io.Reader) ([]core.Row, error) {
	return readRows(r, stationIDColumn)
}

// LoadMaintenance reads the maintenance table from r.
func (ld *Loader) LoadMaintenance(r io.Reader) ([]core.Row, error) {
	return readRows(r, maintenanceIDColumn)
}

// LoadDir reads trips.csv, stations.csv and maintenance.csv from dir.
// A missing stations or maintenance file is tolerated (the slice stays
// empty); a missing trips file is an error, since every analysis needs
// trips.
func (ld *Loader) LoadDir(dir string) (*Raw, error) {
	raw := &Raw{}

	trips, err := ld.loadFile(filepath.Join(dir, TripsFile), ld.LoadTrips)
	if err != nil {
		return nil, err
	}
	raw.Trips = trips

	stations, err := ld.loadFile(filepath.Join(dir, StationsFile), ld.LoadStations)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	raw.Stations = stations

	maint, err := ld.loadFile(filepath.Join(dir, MaintenanceFile), ld.LoadMaintenance)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	raw.Maintenance = maint

	ld.logger.Info("loaded raw tables",
		"dir", dir,
		"trips", len(raw.Trips),
		"stations", len(raw.Stations),
		"maintenance", len(raw.Maintenance))
	return raw, nil
}

func (ld *Loader) loadFile(path string, load func(io.Reader) ([]core.Row, error)) ([]core.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return rows, nil
}

// readRows parses one CSV table into core.Row maps keyed by the
// trimmed, lowercased header names.
func readRows(r io.Reader, idColumn string) ([]core.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, err
	}

	cols := make([]string, len(header))
	hasID := false
	for i, h := range header {
		cols[i] = strings.ToLower(strings.TrimSpace(h))
		if cols[i] == idColumn {
			hasID = true
		}
	}
	if !hasID {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, idColumn)
	}

	// Tables in the wild occasionally carry ragged rows; match fields
	// positionally and ignore trailing extras rather than failing.
	cr.FieldsPerRecord = -1

	var rows []core.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(core.Row, len(cols))
		for i, col := range cols {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

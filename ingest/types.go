package ingest

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/citybike/core"
)

var (
	// ErrEmptyInput is returned when a CSV source has no header row.
	ErrEmptyInput = errors.New("ingest: empty input")
	// ErrMissingColumn is returned when a CSV header lacks the table's ID column.
	ErrMissingColumn = errors.New("ingest: missing required column")
)

// Raw holds the unvalidated rows of the three source tables, one
// core.Row per CSV line, keyed by the original header names.
type Raw struct {
	Trips       []core.Row
	Stations    []core.Row
	Maintenance []core.Row
}

// Dataset is the cleaned, validated view of the system used by the
// analytics layer. Slices are in source order after de-duplication.
type Dataset struct {
	Trips       []core.Trip
	Stations    []core.Station
	Maintenance []core.MaintenanceRecord
}

// TableStats records what happened to one table during Clean.
type TableStats struct {
	Loaded     int // rows handed to Clean
	Duplicates int // rows dropped as duplicate IDs
	Dropped    int // rows dropped as unparseable or invalid
	Kept       int // rows surviving into the Dataset
}

// CleanStats aggregates per-table cleaning counters.
type CleanStats struct {
	Trips       TableStats
	Stations    TableStats
	Maintenance TableStats
}

// Loader reads and cleans the CityBike CSV tables.
// The zero value is not usable; construct with NewLoader.
type Loader struct {
	logger *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the structured logger used for per-row drop reporting.
func WithLogger(l *slog.Logger) Option {
	return func(ld *Loader) { ld.logger = l }
}

// NewLoader builds a Loader. Without options it logs to the default
// slog logger.
func NewLoader(opts ...Option) *Loader {
	ld := &Loader{logger: slog.Default()}
	for _, opt := range opts {
		opt(ld)
	}
	return ld
}

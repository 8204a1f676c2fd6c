// Package core defines the CityBike domain model - bikes, stations,
// users, trips and maintenance records - together with the row factories
// that build validated domain values from raw CSV-row maps.
//
// 🚀 What is core?
//
//	The vocabulary shared by every other package:
//	  • Bike / Station / User / Trip / MaintenanceRecord value types
//	  • enum types (BikeType, UserType, TripStatus, ...) with parsers
//	  • row factories: pure mappings from a field-keyed record
//	    (core.Row) to a validated domain value
//
// ✨ Validation happens exactly once, at construction:
//
//	Every factory and Validate method enforces the model's invariants
//	(capacity > 0, coordinates in range, end time not before start time,
//	non-negative costs and distances, known categorical values). Code
//	downstream of a factory can rely on those invariants without
//	re-checking.
//
// The factories are deliberately flat functions, not a type hierarchy:
// a Row goes in, a struct or an error comes out, and the caller never
// needs to know which variant rules applied.
//
// No I/O, no logging, no shared state - plain values throughout.
package core

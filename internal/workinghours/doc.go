// Package workinghours turns a tenant's stored business hours into bookable time slots.
//
// Stored configuration arrives in several historical shapes, so every entry point
// takes untyped raw values and never fails: malformed input degrades to defaults.
// The pipeline is one-directional:
//
//	raw config -> NormalizeWorkingHoursConfig -> BuildScheduleByDay -> GetTimeSlotsForDate
//
// All functions are pure and safe for concurrent use. Times are tenant-local
// wall-clock minutes; no time-zone conversion happens here.
package workinghours

// Package types contains the shared types of the regroup library.
//
// The package exists so that subpackages (roster, planner, export, httpapi,
// internal/metrics, internal/logging) can share the schedule data model and
// the Logger/Collector interfaces without importing the root package.
package types

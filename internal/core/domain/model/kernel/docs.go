// Package kernel contains shared value objects used across the domain model:
// UUID identifiers and geographic points for delivery destinations.
//
// Value objects here are immutable, validate themselves, and have invalid zero
// values that must be created through the provided constructors.
package kernel

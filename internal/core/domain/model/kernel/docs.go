// Package kernel provides the value objects shared by every aggregate of the
// waste collection domain.
//
// The package includes:
//   - ID: a store-assigned, strictly positive surrogate key
//   - Day and DayRange: UTC calendar days used by report filters
//   - Address: a registered location inside the Jurisdiction
package kernel

// Package request provides the CollectionRequest aggregate: a single order by
// an industrial site to have a quantity of one waste type picked up and
// disposed of.
//
// The package includes:
//   - Request: the aggregate root holding identity, site, waste and status
//   - Status: the lifecycle state machine
//
// Key business rules:
//   - Quantity is a positive finite number of kilograms
//   - Waste type is non-blank free text
//   - Status moves strictly forward: Pending -> Accepted -> Completed
//   - Completed is terminal and requests are never deleted
package request

// Package kernel holds the shared building blocks of the domain model that do not
// belong to a single aggregate.
//
// The package includes:
//   - IDGenerator: the source of record identifiers for new dishes and orders
//   - UUIDGenerator: the production generator backed by github.com/google/uuid
package kernel

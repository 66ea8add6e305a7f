// Package kernel provides core domain primitives shared by the training catalog.
//
// The package includes:
//   - UUID: the opaque entity identifier, and IDGenerator, the factory of fresh ones
//   - Clock: the injectable source of the current instant
//   - DateRange: an inclusive, day-aligned range of calendar days
//
// All primitives are immutable values.
package kernel

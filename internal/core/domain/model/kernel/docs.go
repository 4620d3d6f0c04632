// Package kernel provides core domain primitives shared by the domain model.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - GeoPoint: A value object for geographic coordinates (latitude, longitude)
//   - Address: A value object combining an optional GeoPoint with a free-text description
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel

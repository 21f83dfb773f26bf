// Package store defines the persistence interfaces consumed by the
// scheduler core, along with the shared sentinel errors implementations
// return. Concrete backends live under internal/platform.
package store

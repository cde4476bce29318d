// Package memory provides in-memory implementations of the store
// interfaces. State lives only for the process lifetime.
//
// Both stores guard their collections with a mutex held for the duration
// of each operation, so they are safe to share across request handlers.
package memory

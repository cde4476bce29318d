// Package store defines the persistence interfaces for domain entities
// and the shared error taxonomy used by all store implementations.
//
// Implementations live under internal/platform (for example,
// internal/platform/memory provides the in-memory stores used by the
// server). Services depend only on the interfaces defined here.
package store

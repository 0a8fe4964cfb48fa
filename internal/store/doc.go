// Package store defines interfaces for task persistence operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, so the service layer stays the same whether
// tasks live in process memory or somewhere else.
package store

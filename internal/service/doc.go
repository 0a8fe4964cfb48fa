// Package service contains the application-specific use cases for tasks.
// It orchestrates interactions between domain objects and the task store
// (defined in internal/store) and publishes lifecycle events.
//
// Error handling:
//   - Expected conditions are returned as sentinel errors (ErrTaskNotFound)
//     or as the domain validation error itself
//   - Unexpected errors are wrapped in *TaskServiceError
//   - Callers use errors.Is/errors.As; the API layer maps them to HTTP status codes
//
// The service layer depends on domain entities and store interfaces, never
// on a specific store implementation.
package service

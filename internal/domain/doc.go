// Package domain contains the core business entities and validation rules
// of the task service. It is independent of storage and transport: the
// Task entity, the TaskUpdate partial-update payload, and the validation
// errors the other layers translate into responses live here.
package domain

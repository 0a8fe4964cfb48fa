// Package events provides types and interfaces for task lifecycle events.
//
// The service layer emits a TaskEvent after every successful mutation
// without knowing who listens; handlers registered on an EventEmitter
// (for example the audit logger wired in cmd/server) react to them.
//
// The primary components are:
// - TaskEvent: a record of one change to one task
// - EventHandler: interface for components that consume events
// - EventEmitter: interface for components that publish events
package events

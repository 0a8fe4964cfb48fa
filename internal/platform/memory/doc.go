// Package memory provides process-local implementations of the store
// interfaces. Records live only for the lifetime of the process.
package memory

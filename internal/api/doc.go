// Package api handles incoming HTTP requests for tasks: request decoding
// and validation, error mapping and response formatting. It acts as an
// adapter between HTTP clients and the task service.
package api

// Package api provides HTTP handlers for the API.
//
// Handlers are thin adapters over the service layer: they parse and
// validate requests, call the service, and translate service outcomes
// into response codes. Raw errors are logged with a trace ID and never
// sent to clients.
package api

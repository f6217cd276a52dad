// Package handler is the entry point for business logic after the router.
//
// Handlers parse requests, validate input via the validation package, and
// call the appropriate service. They are the interface between the HTTP
// request and the core business logic.
package handler

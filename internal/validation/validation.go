// Package validation binds and validates request payloads.
//
// Rules live in validator struct tags on the request types; failures are
// translated into field-level errors the client can act on.
package validation

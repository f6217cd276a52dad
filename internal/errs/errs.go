// Package errs defines the application error types.
//
// Every error that crosses the service boundary is (or is converted into)
// an *HTTPError carrying a machine-readable code, a human-readable message,
// and an HTTP status, so callers always receive a consistent shape.
//
// Three categories matter to callers:
//   - validation errors (code VALIDATION_FAILED): the input broke a
//     documented rule; raised before any store access;
//   - persistence errors (codes produced by the sqlerr package): the store
//     rejected the statement;
//   - connection errors (code DATABASE_UNAVAILABLE): the store could not
//     be reached at all.
package errs

// Package sqlerr classifies database driver errors.
//
// It parses SQLSTATE codes reported by the Postgres driver and converts
// them into typed application errors, so a raw "foreign key violation"
// reaches the caller as a meaningful persistence error instead of a
// cryptic driver string.
package sqlerr

package sqlerr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Code is the application-level category of a database error.
type Code int

const (
	// Other covers everything not mapped to a specific category.
	Other Code = iota
	// UniqueViolation: a UNIQUE constraint was broken (SQLSTATE 23505).
	UniqueViolation
	// ForeignKeyViolation: a referenced row does not exist (23503).
	ForeignKeyViolation
	// NotNullViolation: a required column was NULL (23502).
	NotNullViolation
	// CheckViolation: a CHECK constraint failed (23514).
	CheckViolation
	// ConnectionFailure: the connection to the store broke (class 08).
	ConnectionFailure
	// QueryCanceled: the statement was canceled or timed out (57014).
	QueryCanceled
)

func (c Code) String() string {
	switch c {
	case UniqueViolation:
		return "unique_violation"
	case ForeignKeyViolation:
		return "foreign_key_violation"
	case NotNullViolation:
		return "not_null_violation"
	case CheckViolation:
		return "check_violation"
	case ConnectionFailure:
		return "connection_failure"
	case QueryCanceled:
		return "query_canceled"
	default:
		return "other"
	}
}

// MapCode maps a Postgres SQLSTATE to a Code.
func MapCode(sqlstate string) Code {
	switch sqlstate {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	case "57014":
		return QueryCanceled
	}
	// Class 08 is "Connection Exception".
	if strings.HasPrefix(sqlstate, "08") {
		return ConnectionFailure
	}
	return Other
}

// Severity mirrors the severity field of a Postgres error report.
type Severity int

const (
	SeverityError Severity = iota
	SeverityFatal
	SeverityPanic
)

// MapSeverity maps the textual severity from the server to a Severity.
func MapSeverity(severity string) Severity {
	switch strings.ToUpper(severity) {
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityError
	}
}

// Error is the structured form of a database error. It keeps the original
// SQLSTATE plus the schema metadata Postgres reports, and unwraps to the
// driver error for logging.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	if e.TableName != "" {
		return fmt.Sprintf("%s on table %s: %s", e.Code, e.TableName, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.driverErr
}

// ConvertPgError converts a raw pgconn.PgError into an *Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// ErrCode reports the Code of err if it is (or wraps) an *Error, and Other
// otherwise.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	return Other
}

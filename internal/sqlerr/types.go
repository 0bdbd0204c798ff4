package sqlerr

import "fmt"

// Code categorizes Postgres SQLSTATE values we care about into a small
// enum so callers can switch on them without memorizing SQLSTATEs.
type Code int

const (
	// Other covers every SQLSTATE not explicitly mapped below.
	Other Code = iota
	UniqueViolation
	ForeignKeyViolation
	NotNullViolation
	CheckViolation
)

// Severity mirrors the Postgres error severity field.
type Severity int

const (
	SeverityOther Severity = iota
	SeverityError
	SeverityFatal
	SeverityPanic
)

// MapCode maps a raw SQLSTATE string into a Code.
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
	default:
		return Other
	}
}

// MapSeverity maps the Postgres severity string into a Severity.
func MapSeverity(severity string) Severity {
	switch severity {
	case "ERROR":
		return SeverityError
	case "FATAL":
		return SeverityFatal
	case "PANIC":
		return SeverityPanic
	default:
		return SeverityOther
	}
}

// Error is the normalized database error. It keeps the original driver
// error for unwrapping while exposing the mapped category and the
// schema metadata Postgres reports.
type Error struct {
	Code           Code
	Severity       Severity
	DatabaseCode   string // original SQLSTATE
	Message        string
	SchemaName     string
	TableName      string
	ColumnName     string
	DataTypeName   string
	ConstraintName string

	driverErr error
}

func (e *Error) Error() string {
	return fmt.Sprintf("sqlstate %s: %s", e.DatabaseCode, e.Message)
}

// Unwrap exposes the original driver error to errors.Is/As.
func (e *Error) Unwrap() error {
	return e.driverErr
}

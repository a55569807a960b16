package utils

import (
	"errors"
	"regexp"
	"strings"

	"github.com/lib/pq"
)

// Stable error_code discriminators surfaced to API clients.
const (
	CodeDuplicateEntry         = "duplicate-entry"
	CodeForeignKeyViolation    = "foreign-key-violation"
	CodeReferencedRecordExists = "referenced-record-exists"
)

// ConstraintError is a database constraint violation translated into a
// user-facing category. The raw driver error stays wrapped for logging.
type ConstraintError struct {
	Code       string
	Constraint string
	Field      string
	Value      string
	cause      error
}

func (e *ConstraintError) Error() string {
	return e.Code + ": " + e.cause.Error()
}

func (e *ConstraintError) Unwrap() error { return e.cause }

// postgres "Key (field)=(value) already exists." style detail lines
var pqDetailRe = regexp.MustCompile(`Key \(([^)]+)\)=\(([^)]*)\)`)

// TranslateDBError maps postgres driver errors onto the constraint
// taxonomy. Unique violations become duplicate-entry; foreign key
// violations become foreign-key-violation on inserts/updates and
// referenced-record-exists on deletes. Anything else passes through
// unchanged so service sentinels keep working.
func TranslateDBError(err error, deleting bool) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}

	ce := &ConstraintError{
		Constraint: pqErr.Constraint,
		cause:      err,
	}

	if m := pqDetailRe.FindStringSubmatch(pqErr.Detail); m != nil {
		ce.Field = m[1]
		ce.Value = m[2]
	}
	if ce.Field == "" && pqErr.Constraint != "" {
		// best-effort: constraint names follow idx_<table>_<field> / fk_<table>_<field>
		parts := strings.Split(pqErr.Constraint, "_")
		ce.Field = parts[len(parts)-1]
	}

	switch pqErr.Code {
	case "23505":
		ce.Code = CodeDuplicateEntry
	case "23503":
		if deleting {
			ce.Code = CodeReferencedRecordExists
		} else {
			ce.Code = CodeForeignKeyViolation
		}
	default:
		return err
	}

	return ce
}

package seeder

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

type ErrorKind string

const (
	KindInvalidData  ErrorKind = "invalid data"
	KindConnectivity ErrorKind = "connectivity"
	KindSchema       ErrorKind = "schema"
	KindConstraint   ErrorKind = "constraint"
	KindUnknown      ErrorKind = "unknown"
)

// StepError carries the identity of the seeding step that failed.
type StepError struct {
	Step Step
	Kind ErrorKind
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("seed %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func newStepError(step Step, fallback ErrorKind, err error) *StepError {
	return &StepError{
		Step: step,
		Kind: classify(err, fallback),
		Err:  err,
	}
}

// classify maps Postgres SQLSTATE classes onto error kinds.
func classify(err error, fallback ErrorKind) ErrorKind {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code.Class() {
		case "08":
			return KindConnectivity
		case "23":
			return KindConstraint
		case "42":
			return KindSchema
		}
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return KindConnectivity
	}

	return fallback
}

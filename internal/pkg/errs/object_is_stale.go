package errs

import "fmt"

// ObjectIsStaleError is returned when a conditional write matched no row because
// the stored state no longer equals the state the caller read.
type ObjectIsStaleError struct {
	ParamName string
	ID        any
	Expected  any
}

func NewObjectIsStaleError(paramName string, id any, expected any) *ObjectIsStaleError {
	return &ObjectIsStaleError{
		ParamName: paramName,
		ID:        id,
		Expected:  expected,
	}
}

func (e *ObjectIsStaleError) Error() string {
	return fmt.Sprintf("%s: %s %s is no longer %s",
		ErrObjectIsStale, sanitize(e.ParamName), sanitizeValue(e.ID), sanitizeValue(e.Expected))
}

func (e *ObjectIsStaleError) Unwrap() error {
	return ErrObjectIsStale
}

package errs

import "fmt"

// TransitionIsNotAllowedError describes a rejected state change with enough context
// to reconstruct it: the resource, its id, the current state and the attempted target.
// Cause carries the specific reason and is reachable through errors.Is.
type TransitionIsNotAllowedError struct {
	Resource string
	ID       any
	From     any
	To       any
	Cause    error
}

func NewTransitionIsNotAllowedError(resource string, id any, from any, to any) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{
		Resource: resource,
		ID:       id,
		From:     from,
		To:       to,
	}
}

func NewTransitionIsNotAllowedErrorWithCause(
	resource string,
	id any,
	from any,
	to any,
	cause error,
) *TransitionIsNotAllowedError {
	return &TransitionIsNotAllowedError{
		Resource: resource,
		ID:       id,
		From:     from,
		To:       to,
		Cause:    cause,
	}
}

func (e *TransitionIsNotAllowedError) Error() string {
	return withCause(
		fmt.Sprintf("%s: %s %s from %s to %s",
			ErrTransitionIsNotAllowed,
			sanitize(e.Resource), sanitizeValue(e.ID), sanitizeValue(e.From), sanitizeValue(e.To)),
		e.Cause,
	)
}

func (e *TransitionIsNotAllowedError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransitionIsNotAllowed}
	}
	return []error{ErrTransitionIsNotAllowed, e.Cause}
}

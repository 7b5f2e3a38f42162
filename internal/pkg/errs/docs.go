// Package errs provides the typed errors shared by the domain, the application
// layer and the adapters of the telecom service.
//
// Every error type pairs a sentinel (ErrObjectNotFound, ErrTransitionIsNotAllowed, ...)
// with a struct carrying the details. Callers classify with errors.Is against the
// sentinel and extract details with errors.As. The inbound HTTP adapter maps the
// sentinels onto status codes:
//   - ErrObjectNotFound: 404
//   - ErrObjectAlreadyExists, ErrOperationInProgress, ErrObjectIsStale: 409
//   - ErrTransitionIsNotAllowed and the ErrValueIs* family: 400
//
// Values embedded in messages are flattened to a single line.
package errs

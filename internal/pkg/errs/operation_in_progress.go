package errs

import "fmt"

type OperationInProgressError struct {
	ParamName string
	Key       string
}

func NewOperationInProgressError(paramName string, key string) *OperationInProgressError {
	return &OperationInProgressError{
		ParamName: paramName,
		Key:       key,
	}
}

func (e *OperationInProgressError) Error() string {
	return fmt.Sprintf("%s: %s is %s", ErrOperationInProgress, sanitize(e.ParamName), sanitize(e.Key))
}

func (e *OperationInProgressError) Unwrap() error {
	return ErrOperationInProgress
}

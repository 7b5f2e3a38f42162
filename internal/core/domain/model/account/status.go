package account

import (
	"fmt"

	"telecom/internal/pkg/errs"
)

type Status string

const (
	Unknown   Status = ""
	Active    Status = "ACTIVE"
	Suspended Status = "SUSPENDED"
	Closed    Status = "CLOSED"
)

func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

func (s Status) Validate() error {
	switch s { //nolint:exhaustive // Unknown is invalid
	case Active, Suspended, Closed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"account status is invalid",
			fmt.Errorf("%q is not a valid account status", string(s)),
		)
	}
}

func (s Status) String() string {
	if s == Unknown {
		return "UNKNOWN"
	}
	return string(s)
}

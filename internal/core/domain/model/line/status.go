package line

import (
	"fmt"
	"slices"

	"telecom/internal/pkg/errs"
)

// Status is the lifecycle state of a line. Values are stored verbatim in the
// lines.status column and travel unchanged over the HTTP API.
//
// Permitted transitions:
//
//	PROVISIONED ──> ACTIVE | SUSPENDED | DELETED
//	ACTIVE      ──> SUSPENDED | DELETED
//	SUSPENDED   ──> ACTIVE | DELETED
//	DELETED     ──> (none)
//
// DELETED is absorbing: nothing leaves it. ACTIVE is reached from PROVISIONED
// only through commissioning, or from SUSPENDED through a plain status change.
type Status string

const (
	// Unknown is the zero value and is never a valid status.
	// It catches a Status that was declared but never assigned.
	Unknown Status = ""

	// Provisioned is the status of every newly created line.
	// It is the only commissionable status.
	Provisioned Status = "PROVISIONED"

	// Active lines carry traffic.
	Active Status = "ACTIVE"

	// Suspended lines are kept but carry no traffic until reactivated.
	Suspended Status = "SUSPENDED"

	// Deleted is terminal. Deleted rows are kept for the audit trail.
	Deleted Status = "DELETED"
)

// transitions is built once and never written afterwards, so it is safe for
// concurrent reads without locking.
var transitions = map[Status][]Status{
	Provisioned: {Active, Suspended, Deleted},
	Active:      {Suspended, Deleted},
	Suspended:   {Active, Deleted},
	Deleted:     {},
}

// Statuses returns every valid status in declaration order.
// The inventory report uses it so statuses without lines still show up with zero.
func Statuses() []Status {
	return []Status{Provisioned, Active, Suspended, Deleted}
}

// ParseStatus converts an external spelling into a Status.
// Only the exact stored spellings are accepted; "active" or " ACTIVE" are rejected.
//
// Returns:
//   - the status and nil for PROVISIONED, ACTIVE, SUSPENDED or DELETED
//   - Unknown and a *errs.ValueIsInvalidError for anything else
//
// Example:
//
//	target, err := line.ParseStatus(body.Status)
//	if err != nil {
//	    return c.JSON(http.StatusBadRequest, err.Error())
//	}
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	return s, nil
}

// Validate checks that s is one of the four known statuses.
// Unknown and any value read from an outdated row are rejected, which keeps
// corrupt data from reaching the aggregate through RestoreLine.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer. It never returns an empty string, so log
// fields and error messages stay readable for the zero value.
//
// Example:
//
//	fmt.Println(line.Unknown)   // UNKNOWN
//	fmt.Println(line.Suspended) // SUSPENDED
func (s Status) String() string {
	if s == Unknown {
		return "UNKNOWN"
	}
	return string(s)
}

// Allowed reports whether the policy permits current -> target.
// Anything involving an unrecognized status is not allowed.
func Allowed(current Status, target Status) bool {
	return current.CanTransitionTo(target)
}

// CanTransitionTo reports whether s may move to target. Self-transitions are
// never allowed, and an unrecognized s or target yields false rather than an error.
//
// Example:
//
//	line.Active.CanTransitionTo(line.Suspended)      // true
//	line.Deleted.CanTransitionTo(line.Active)        // false
//	line.Status("GONE").CanTransitionTo(line.Active) // false
func (s Status) CanTransitionTo(target Status) bool {
	next, ok := transitions[s]
	if !ok {
		return false
	}
	return slices.Contains(next, target)
}

// AllowedTargets returns a fresh slice; callers may modify it.
func (s Status) AllowedTargets() []Status {
	return slices.Clone(transitions[s])
}

// IsCommissionable is true only for PROVISIONED.
func (s Status) IsCommissionable() bool {
	return s == Provisioned
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	next, ok := transitions[s]
	return ok && len(next) == 0
}

package line

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"
)

const (
	ResourceType = "line"

	maxMSISDNLength   = 32
	maxPlanNameLength = 128
)

var (
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine")

	// Commissioning rejections. They are the Cause of the returned
	// *errs.TransitionIsNotAllowedError, so callers can tell them apart with errors.Is.
	ErrLineIsAlreadyActive     = errors.New("line is already active")
	ErrLineIsDeleted           = errors.New("cannot commission deleted line")
	ErrLineIsNotCommissionable = errors.New("line is not commissionable")
)

// Line is the aggregate root of a subscriber line.
//
// Invariants:
//   - id, accountID, msisdn and createdAt never change after construction
//   - status is always one of the four valid values
//   - every status change goes through the transition policy
type Line struct {
	id        kernel.UUID
	accountID kernel.UUID
	msisdn    string
	planName  string
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewLine creates a line in PROVISIONED status.
func NewLine(id kernel.UUID, accountID kernel.UUID, msisdn string, planName string) (*Line, error) {
	l := &Line{
		status:        Provisioned,
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setAccountID(accountID),
		l.setMSISDN(msisdn),
		l.setPlanName(planName),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLine rebuilds a line from persisted state.
func RestoreLine(
	id kernel.UUID,
	accountID kernel.UUID,
	msisdn string,
	planName string,
	status Status,
	createdAt time.Time,
) (*Line, error) {
	l := &Line{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		l.setID(id),
		l.setAccountID(accountID),
		l.setMSISDN(msisdn),
		l.setPlanName(planName),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	l.status = status

	return l, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID        { return l.id }
func (l *Line) AccountID() kernel.UUID { return l.accountID }
func (l *Line) MSISDN() string         { return l.msisdn }
func (l *Line) PlanName() string       { return l.planName }
func (l *Line) Status() Status         { return l.status }
func (l *Line) CreatedAt() time.Time   { return l.createdAt }

// ChangeStatus moves the line to target if the transition policy allows it.
// A malformed target yields a ValueIsInvalidError; a disallowed one yields a
// TransitionIsNotAllowedError naming both states. The line is unchanged on error.
func (l *Line) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if !l.status.CanTransitionTo(target) {
		return errs.NewTransitionIsNotAllowedError(ResourceType, l.id.String(), l.status.String(), target.String())
	}

	l.status = target
	return nil
}

// Delete is ChangeStatus(Deleted).
func (l *Line) Delete() error {
	return l.ChangeStatus(Deleted)
}

// CheckCommissionable reports why the line cannot be commissioned, if it cannot.
func (l *Line) CheckCommissionable() error {
	if l.status.IsCommissionable() {
		return nil
	}

	var cause error
	switch l.status { //nolint:exhaustive // Provisioned returned above
	case Active:
		cause = ErrLineIsAlreadyActive
	case Deleted:
		cause = ErrLineIsDeleted
	default:
		cause = fmt.Errorf("%w: cannot commission line in status %s", ErrLineIsNotCommissionable, l.status)
	}

	return errs.NewTransitionIsNotAllowedErrorWithCause(
		ResourceType, l.id.String(), l.status.String(), Active.String(), cause,
	)
}

// Commission performs the commissioning transition PROVISIONED -> ACTIVE.
func (l *Line) Commission() error {
	if err := l.CheckCommissionable(); err != nil {
		return err
	}
	return l.ChangeStatus(Active)
}

// Snapshot returns the state recorded in audit entries. The map is freshly
// allocated on every call.
func (l *Line) Snapshot() map[string]any {
	return map[string]any{
		"id":         l.id,
		"account_id": l.accountID,
		"msisdn":     l.msisdn,
		"plan_name":  l.planName,
		"status":     l.status,
		"created_at": l.createdAt,
	}
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("account id", err)
	}
	l.accountID = accountID
	return nil
}

func (l *Line) setMSISDN(msisdn string) error {
	msisdn = strings.TrimSpace(msisdn)
	if msisdn == "" {
		return errs.NewValueIsRequiredError("msisdn")
	}
	if n := utf8.RuneCountInString(msisdn); n > maxMSISDNLength {
		return errs.NewValueIsOutOfRangeError("msisdn length", n, 1, maxMSISDNLength)
	}
	l.msisdn = msisdn
	return nil
}

func (l *Line) setPlanName(planName string) error {
	planName = strings.TrimSpace(planName)
	if planName == "" {
		return errs.NewValueIsRequiredError("plan name")
	}
	if n := utf8.RuneCountInString(planName); n > maxPlanNameLength {
		return errs.NewValueIsOutOfRangeError("plan name length", n, 1, maxPlanNameLength)
	}
	l.planName = planName
	return nil
}

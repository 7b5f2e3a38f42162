package commands

import (
	"errors"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"
	"telecom/internal/pkg/guard"
)

var ErrCreateLineCommandIsNotConstructed = errors.New(
	"CreateLineCommand must be created via NewCreateLineCommand constructor",
)

// CreateLineCommand asks for a new line under an existing account.
//
//	cmd, err := NewCreateLineCommand(kernel.NewUUID(), accountID, "447700900123", "Unlimited", actor)
type CreateLineCommand struct { //nolint:recvcheck //using for validation
	lineID    kernel.UUID
	accountID kernel.UUID
	msisdn    string
	planName  string
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateLineCommand checks identifiers and required fields. The msisdn and plan
// formats are validated by the line aggregate itself. A nil actor is anonymous.
func NewCreateLineCommand(
	lineID kernel.UUID,
	accountID kernel.UUID,
	msisdn string,
	planName string,
	actor kernel.Actor,
) (CreateLineCommand, error) {
	cmd := CreateLineCommand{
		actor: actorOrAnonymous(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setAccountID(accountID),
		cmd.setMSISDN(msisdn),
		cmd.setPlanName(planName),
	); err != nil {
		return CreateLineCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrCreateLineCommandIsNotConstructed for a zero-value command.
func (c CreateLineCommand) Validate() error {
	return c.guard.Validate(ErrCreateLineCommandIsNotConstructed)
}

func (c CreateLineCommand) LineID() kernel.UUID    { return c.lineID }
func (c CreateLineCommand) AccountID() kernel.UUID { return c.accountID }
func (c CreateLineCommand) MSISDN() string         { return c.msisdn }
func (c CreateLineCommand) PlanName() string       { return c.planName }
func (c CreateLineCommand) Actor() kernel.Actor    { return c.actor }

func (c *CreateLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}

func (c *CreateLineCommand) setAccountID(accountID kernel.UUID) error {
	if err := accountID.Validate(); err != nil {
		return err
	}
	c.accountID = accountID
	return nil
}

func (c *CreateLineCommand) setMSISDN(msisdn string) error {
	if msisdn == "" {
		return errs.NewValueIsRequiredError("msisdn")
	}
	c.msisdn = msisdn
	return nil
}

func (c *CreateLineCommand) setPlanName(planName string) error {
	if planName == "" {
		return errs.NewValueIsRequiredError("plan_name")
	}
	c.planName = planName
	return nil
}

package commands

import (
	"errors"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/guard"
)

var ErrUpdateAccountCommandIsNotConstructed = errors.New(
	"UpdateAccountCommand must be created via NewUpdateAccountCommand constructor",
)

// UpdateAccountCommand replaces the fields set in changes and leaves the rest alone.
type UpdateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	changes   account.Changes
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

func NewUpdateAccountCommand(accountID kernel.UUID, changes account.Changes, actor kernel.Actor) (UpdateAccountCommand, error) {
	if err := accountID.Validate(); err != nil {
		return UpdateAccountCommand{}, err
	}

	return UpdateAccountCommand{
		accountID: accountID,
		changes:   changes,
		actor:     actorOrAnonymous(actor),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAccountCommandIsNotConstructed)
}

func (c UpdateAccountCommand) AccountID() kernel.UUID   { return c.accountID }
func (c UpdateAccountCommand) Changes() account.Changes { return c.changes }
func (c UpdateAccountCommand) Actor() kernel.Actor      { return c.actor }

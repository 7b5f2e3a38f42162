package commands

import (
	"errors"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/guard"
)

var ErrCreateAccountCommandIsNotConstructed = errors.New(
	"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
)

// CreateAccountCommand carries the fields of a new account. Field formats are
// checked by the account aggregate; an Unknown status means ACTIVE.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	accountID kernel.UUID
	fullName  string
	email     string
	phone     string
	status    account.Status
	actor     kernel.Actor

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand only checks the account id; the aggregate owns the rest.
func NewCreateAccountCommand(
	accountID kernel.UUID,
	fullName string,
	email string,
	phone string,
	status account.Status,
	actor kernel.Actor,
) (CreateAccountCommand, error) {
	if err := accountID.Validate(); err != nil {
		return CreateAccountCommand{}, err
	}
	if status != account.Unknown {
		if err := status.Validate(); err != nil {
			return CreateAccountCommand{}, err
		}
	}

	return CreateAccountCommand{
		accountID: accountID,
		fullName:  fullName,
		email:     email,
		phone:     phone,
		status:    status,
		actor:     actorOrAnonymous(actor),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

func (c CreateAccountCommand) AccountID() kernel.UUID { return c.accountID }
func (c CreateAccountCommand) FullName() string       { return c.fullName }
func (c CreateAccountCommand) Email() string          { return c.email }
func (c CreateAccountCommand) Phone() string          { return c.phone }
func (c CreateAccountCommand) Status() account.Status { return c.status }
func (c CreateAccountCommand) Actor() kernel.Actor    { return c.actor }

package commands

import (
	"errors"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/guard"
)

var ErrDeleteLineCommandIsNotConstructed = errors.New(
	"DeleteLineCommand must be created via NewDeleteLineCommand constructor",
)

// DeleteLineCommand soft-deletes a line: the row stays with status DELETED.
type DeleteLineCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewDeleteLineCommand validates the line id. A nil actor is recorded as anonymous.
func NewDeleteLineCommand(lineID kernel.UUID, actor kernel.Actor) (DeleteLineCommand, error) {
	if err := lineID.Validate(); err != nil {
		return DeleteLineCommand{}, err
	}

	return DeleteLineCommand{
		lineID: lineID,
		actor:  actorOrAnonymous(actor),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteLineCommand) Validate() error {
	return c.guard.Validate(ErrDeleteLineCommandIsNotConstructed)
}

func (c DeleteLineCommand) LineID() kernel.UUID { return c.lineID }
func (c DeleteLineCommand) Actor() kernel.Actor { return c.actor }

package commands

import (
	"errors"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/pkg/guard"
)

var ErrChangeLineStatusCommandIsNotConstructed = errors.New(
	"ChangeLineStatusCommand must be created via NewChangeLineStatusCommand constructor",
)

// ChangeLineStatusCommand moves a line to a target status, subject to the transition policy.
// The target is checked for being a known status here; whether the move is permitted
// is decided by the handler against the stored status.
//
// Example:
//
//	target, err := line.ParseStatus(body.Status)
//	if err != nil {
//	    return err
//	}
//	cmd, err := NewChangeLineStatusCommand(lineID, target, actor)
//	if err != nil {
//	    return err
//	}
//	l, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrTransitionIsNotAllowed) {
//	    // e.g. DELETED -> ACTIVE
//	}
type ChangeLineStatusCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	target line.Status
	actor  kernel.Actor

	guard guard.ConstructorGuard
}

// NewChangeLineStatusCommand validates the line id and the target status.
// A nil actor is recorded as anonymous.
func NewChangeLineStatusCommand(lineID kernel.UUID, target line.Status, actor kernel.Actor) (ChangeLineStatusCommand, error) {
	cmd := ChangeLineStatusCommand{
		actor: actorOrAnonymous(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeLineStatusCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrChangeLineStatusCommandIsNotConstructed for a zero-value command.
func (c ChangeLineStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeLineStatusCommandIsNotConstructed)
}

func (c ChangeLineStatusCommand) LineID() kernel.UUID { return c.lineID }
func (c ChangeLineStatusCommand) Target() line.Status { return c.target }
func (c ChangeLineStatusCommand) Actor() kernel.Actor { return c.actor }

func (c *ChangeLineStatusCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}

func (c *ChangeLineStatusCommand) setTarget(target line.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

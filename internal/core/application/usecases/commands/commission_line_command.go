package commands

import (
	"errors"
	"strings"
	"unicode/utf8"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"
	"telecom/internal/pkg/guard"
)

const maxIdempotencyKeyLength = 255

var ErrCommissionLineCommandIsNotConstructed = errors.New(
	"CommissionLineCommand must be created via NewCommissionLineCommand constructor",
)

// CommissionLineCommand activates a PROVISIONED line after external provisioning.
// The idempotency key is optional; an empty key disables deduplication.
//
// Example:
//
//	cmd, err := NewCommissionLineCommand(lineID, actor, c.Request().Header.Get("Idempotency-Key"))
//	if err != nil {
//	    return err
//	}
//	l, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, line.ErrLineIsAlreadyActive):
//	    // a second commission, or one that lost a race
//	case errors.Is(err, errs.ErrOperationInProgress):
//	    // same key, first request still running
//	}
type CommissionLineCommand struct { //nolint:recvcheck //using for validation
	lineID         kernel.UUID
	actor          kernel.Actor
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewCommissionLineCommand validates the line id and trims the idempotency key,
// which must not exceed 255 characters.
func NewCommissionLineCommand(lineID kernel.UUID, actor kernel.Actor, idempotencyKey string) (CommissionLineCommand, error) {
	cmd := CommissionLineCommand{
		actor: actorOrAnonymous(actor),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLineID(lineID),
		cmd.setIdempotencyKey(idempotencyKey),
	); err != nil {
		return CommissionLineCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrCommissionLineCommandIsNotConstructed for a zero-value command.
func (c CommissionLineCommand) Validate() error {
	return c.guard.Validate(ErrCommissionLineCommandIsNotConstructed)
}

func (c CommissionLineCommand) LineID() kernel.UUID    { return c.lineID }
func (c CommissionLineCommand) Actor() kernel.Actor    { return c.actor }
func (c CommissionLineCommand) IdempotencyKey() string { return c.idempotencyKey }

func (c *CommissionLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	c.lineID = lineID
	return nil
}

func (c *CommissionLineCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if n := utf8.RuneCountInString(key); n > maxIdempotencyKeyLength {
		return errs.NewValueIsOutOfRangeError("idempotency_key", n, 0, maxIdempotencyKeyLength)
	}
	c.idempotencyKey = key
	return nil
}

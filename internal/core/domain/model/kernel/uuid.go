package kernel

import (
	"fmt"

	"telecom/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for the zero value and by
// UUIDFromBytes when the bytes encode the nil UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID identifies lines, accounts and audit entries. It wraps github.com/google/uuid
// so the nil UUID can be rejected at construction time.
//
// UUID is a comparable value type: it can be used as a map key, copied freely and
// shared between goroutines.
//
// The zero value is invalid. Build one with NewUUID, UUIDFromString or UUIDFromBytes:
//
//	lineID := kernel.NewUUID()
//
//	accountID, err := kernel.UUIDFromString(c.Param("accountId"))
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("account id", err)
//	}
//
//	cmd, err := commands.NewCreateLineCommand(lineID, accountID, msisdn, plan, actor)
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) UUID. It is how new lines and accounts
// get their identity before they are persisted.
//
// Example:
//
//	l, err := line.NewLine(kernel.NewUUID(), accountID, "447700900123", "Unlimited")
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical, braced, urn-prefixed or hyphen-less forms.
// A syntactically valid nil UUID is accepted here and rejected by Validate.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from its 16-byte form, as stored in uuid columns.
// The slice must be exactly 16 bytes long and must not encode the nil UUID.
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
//	if err != nil {
//	    return nil, fmt.Errorf("corrupt line row: %w", err)
//	}
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical lowercase "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// It is the form used in audit resource ids, log fields and HTTP responses.
//
// Example:
//
//	logger.Info("line commissioned", zap.String("line_id", l.ID().String()))
func (u UUID) String() string {
	return u.id.String()
}

// Bytes returns a copy of the underlying uuid.UUID.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether u and other hold the same identifier.
//
// Example:
//
//	if !l.AccountID().IsEqual(accountID) {
//	    return errs.NewObjectNotFoundError("line", l.ID().String())
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the nil UUID. Aggregate and command
// constructors call it on every identifier they receive.
//
// Example:
//
//	func (c *DeleteLineCommand) setLineID(id kernel.UUID) error {
//	    if err := id.Validate(); err != nil {
//	        return err
//	    }
//	    c.lineID = id
//	    return nil
//	}
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText renders the canonical form so UUIDs embed cleanly in JSON and audit snapshots.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

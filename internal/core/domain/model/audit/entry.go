package audit

import (
	"errors"
	"strings"
	"time"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"
)

// Action names the operation recorded by an entry.
type Action string

const (
	ActionCreateLine       Action = "create_line"
	ActionUpdateLineStatus Action = "update_line_status"
	ActionDeleteLine       Action = "delete_line"
	ActionCommissionLine   Action = "commission_line"
	ActionCreateAccount    Action = "create_account"
	ActionUpdateAccount    Action = "update_account"
)

func (a Action) String() string { return string(a) }

var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry")

// Entry is an immutable audit record. ResourceID is plain text and is not a
// foreign key, so entries outlive the resources they describe.
type Entry struct {
	id           kernel.UUID
	actor        *string
	action       Action
	resourceType string
	resourceID   string
	oldValue     Value
	newValue     Value
	createdAt    time.Time

	isConstructed bool
}

// NewEntry sanitizes oldState and newState into fresh Value trees; the arguments
// are only read. A nil oldState (creation) is recorded as null.
func NewEntry(
	actor kernel.Actor,
	action Action,
	resourceType string,
	resourceID string,
	oldState any,
	newState any,
) (*Entry, error) {
	e := &Entry{
		id:            kernel.NewUUID(),
		oldValue:      Sanitize(oldState),
		newValue:      Sanitize(newState),
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}
	if name, ok := kernel.ActorDisplayName(actor); ok {
		e.actor = &name
	}

	if err := errors.Join(
		e.setAction(action),
		e.setResource(resourceType, resourceID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func RestoreEntry(
	id kernel.UUID,
	actor *string,
	action Action,
	resourceType string,
	resourceID string,
	oldValue Value,
	newValue Value,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		oldValue:      oldValue,
		newValue:      newValue,
		createdAt:     createdAt,
		isConstructed: true,
	}
	if actor != nil {
		name := *actor
		e.actor = &name
	}

	if err := errors.Join(
		id.Validate(),
		e.setAction(action),
		e.setResource(resourceType, resourceID),
	); err != nil {
		return nil, err
	}
	e.id = id

	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

func (e *Entry) ID() kernel.UUID { return e.id }

// Actor returns the recorded display name, if any.
func (e *Entry) Actor() (string, bool) {
	if e.actor == nil {
		return "", false
	}
	return *e.actor, true
}

func (e *Entry) Action() Action       { return e.action }
func (e *Entry) ResourceType() string { return e.resourceType }
func (e *Entry) ResourceID() string   { return e.resourceID }
func (e *Entry) OldValue() Value      { return e.oldValue }
func (e *Entry) NewValue() Value      { return e.newValue }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }

func (e *Entry) setAction(action Action) error {
	if strings.TrimSpace(string(action)) == "" {
		return errs.NewValueIsRequiredError("action")
	}
	e.action = action
	return nil
}

func (e *Entry) setResource(resourceType string, resourceID string) error {
	var errList []error
	if strings.TrimSpace(resourceType) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("resource type"))
	}
	if strings.TrimSpace(resourceID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("resource id"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	e.resourceType = resourceType
	e.resourceID = resourceID
	return nil
}

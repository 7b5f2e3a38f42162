// Package auditrepo stores audit entries in an append-only table.
package auditrepo

import (
	"time"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO is the row of audit_entries. resource_id is plain text with no
// foreign key. Snapshots are jsonb; an absent snapshot is SQL NULL.
type EntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Actor        *string   `gorm:"size:255"`
	Action       string    `gorm:"size:64;not null;index"`
	ResourceType string    `gorm:"size:64;not null;index:idx_audit_entries_resource,priority:1"`
	ResourceID   string    `gorm:"size:64;not null;index:idx_audit_entries_resource,priority:2"`
	OldValue     []byte    `gorm:"column:old_value;type:jsonb"`
	NewValue     []byte    `gorm:"column:new_value;type:jsonb"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false;index"`
}

func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(entry *audit.Entry) (EntryDTO, error) {
	oldValue, err := encode(entry.OldValue())
	if err != nil {
		return EntryDTO{}, err
	}
	newValue, err := encode(entry.NewValue())
	if err != nil {
		return EntryDTO{}, err
	}

	dto := EntryDTO{
		ID:           entry.ID().Bytes(),
		Action:       entry.Action().String(),
		ResourceType: entry.ResourceType(),
		ResourceID:   entry.ResourceID(),
		OldValue:     oldValue,
		NewValue:     newValue,
		CreatedAt:    entry.CreatedAt(),
	}
	if actor, ok := entry.Actor(); ok {
		dto.Actor = &actor
	}

	return dto, nil
}

// ToDomain is exported for the audit query handler.
func ToDomain(dto EntryDTO) (*audit.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	oldValue, err := audit.ParseJSON(dto.OldValue)
	if err != nil {
		return nil, err
	}
	newValue, err := audit.ParseJSON(dto.NewValue)
	if err != nil {
		return nil, err
	}

	return audit.RestoreEntry(
		id, dto.Actor, audit.Action(dto.Action), dto.ResourceType, dto.ResourceID, oldValue, newValue, dto.CreatedAt,
	)
}

func encode(v audit.Value) ([]byte, error) {
	if v.IsNull() {
		return nil, nil
	}
	return v.MarshalJSON()
}

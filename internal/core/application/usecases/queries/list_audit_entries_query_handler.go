package queries

import (
	"context"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListAuditEntriesQueryHandler struct {
	db *gorm.DB
}

func NewListAuditEntriesQueryHandler(db *gorm.DB) ListAuditEntriesQueryHandler {
	return ListAuditEntriesQueryHandler{db: db}
}

func (h ListAuditEntriesQueryHandler) Handle(
	ctx context.Context,
	query ListAuditEntriesQuery,
) ([]AuditEntryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).
		Table("audit_entries").
		Select("id, actor, action, resource_type, resource_id, old_value, new_value, created_at").
		Where("resource_type = ?", query.ResourceType())
	if query.ResourceID() != "" {
		db = db.Where("resource_id = ?", query.ResourceID())
	}

	rows, err := db.Order("created_at, id").Limit(query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]AuditEntryResponse, 0)
	for rows.Next() {
		var (
			entry              AuditEntryResponse
			id                 uuid.UUID
			action             string
			oldValue, newValue []byte
		)
		if err = rows.Scan(
			&id, &entry.Actor, &action, &entry.ResourceType, &entry.ResourceID, &oldValue, &newValue, &entry.CreatedAt,
		); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if entry.OldValue, err = audit.ParseJSON(oldValue); err != nil {
			return nil, err
		}
		if entry.NewValue, err = audit.ParseJSON(newValue); err != nil {
			return nil, err
		}
		entry.Action = audit.Action(action)
		entry.CreatedAt = entry.CreatedAt.UTC()
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

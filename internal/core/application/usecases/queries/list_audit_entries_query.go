package queries

import (
	"errors"
	"strings"
	"time"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"
	"telecom/internal/pkg/guard"
)

var ErrListAuditEntriesQueryIsNotConstructed = errors.New(
	"ListAuditEntriesQuery must be created via NewListAuditEntriesQuery constructor",
)

type AuditEntryResponse struct {
	ID           kernel.UUID
	Actor        *string
	Action       audit.Action
	ResourceType string
	ResourceID   string
	OldValue     audit.Value
	NewValue     audit.Value
	CreatedAt    time.Time
}

// ListAuditEntriesQuery lists the history of one resource type, optionally
// narrowed to a single resource id, oldest first.
type ListAuditEntriesQuery struct {
	resourceType string
	resourceID   string
	limit        int

	guard guard.ConstructorGuard
}

func NewListAuditEntriesQuery(resourceType string, resourceID string, limit int) (ListAuditEntriesQuery, error) {
	resourceType = strings.TrimSpace(resourceType)
	if resourceType == "" {
		return ListAuditEntriesQuery{}, errs.NewValueIsRequiredError("resource_type")
	}

	return ListAuditEntriesQuery{
		resourceType: resourceType,
		resourceID:   strings.TrimSpace(resourceID),
		limit:        normalizeLimit(limit),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListAuditEntriesQuery) Validate() error {
	return q.guard.Validate(ErrListAuditEntriesQueryIsNotConstructed)
}

func (q ListAuditEntriesQuery) ResourceType() string { return q.resourceType }
func (q ListAuditEntriesQuery) ResourceID() string   { return q.resourceID }
func (q ListAuditEntriesQuery) Limit() int           { return q.limit }

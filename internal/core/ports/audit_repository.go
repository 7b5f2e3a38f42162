package ports

import (
	"context"

	"telecom/internal/core/domain/model/audit"
)

// AuditRepository is append-only: entries are never updated or deleted.
type AuditRepository interface {
	Add(ctx context.Context, entry *audit.Entry) error

	// ListByResource returns the entries of one resource, oldest first.
	ListByResource(ctx context.Context, resourceType string, resourceID string) ([]*audit.Entry, error)
}

package commands

import (
	"context"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"

	"go.uber.org/zap"
)

// AuditRecorder appends one immutable audit entry. oldState and newState are
// sanitized into fresh value trees and never modified.
type AuditRecorder interface {
	Record(
		ctx context.Context,
		actor kernel.Actor,
		action audit.Action,
		resourceType string,
		resourceID string,
		oldState any,
		newState any,
	) (*audit.Entry, error)
}

// TransactionalAuditRecorder writes each entry in its own unit of work, so a
// failed audit insert can never roll back the business change it describes.
type TransactionalAuditRecorder struct {
	uowFactory AuditUoWFactory
}

func NewTransactionalAuditRecorder(uowFactory AuditUoWFactory) *TransactionalAuditRecorder {
	return &TransactionalAuditRecorder{uowFactory: uowFactory}
}

func (r *TransactionalAuditRecorder) Record(
	ctx context.Context,
	actor kernel.Actor,
	action audit.Action,
	resourceType string,
	resourceID string,
	oldState any,
	newState any,
) (*audit.Entry, error) {
	entry, err := audit.NewEntry(actor, action, resourceType, resourceID, oldState, newState)
	if err != nil {
		return nil, err
	}

	uow := r.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AuditRepository().Add(ctx, entry); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return entry, nil
}

// recordAudit runs after the business commit. Failures are logged and dropped:
// the change already happened and the caller must see it succeed. The entry is
// written even if the request context was cancelled after the commit.
func recordAudit(
	ctx context.Context,
	logger *zap.Logger,
	recorder AuditRecorder,
	actor kernel.Actor,
	action audit.Action,
	resourceType string,
	resourceID string,
	oldState any,
	newState any,
) {
	if _, err := recorder.Record(context.WithoutCancel(ctx), actor, action, resourceType, resourceID, oldState, newState); err != nil {
		logger.Warn("failed to record audit entry",
			zap.String("action", action.String()),
			zap.String("resource_type", resourceType),
			zap.String("resource_id", resourceID),
			zap.Error(err),
		)
	}
}

func actorOrAnonymous(actor kernel.Actor) kernel.Actor {
	if actor == nil {
		return kernel.Anonymous{}
	}
	return actor
}

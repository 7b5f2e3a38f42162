package commands

import (
	"context"

	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/pkg/errs"

	"go.uber.org/zap"
)

// CreateLineCommandHandler registers a PROVISIONED line. Uniqueness of the msisdn
// is left to the database, so concurrent creations of one number yield exactly one
// line and a conflict for everybody else.
//
// Example:
//
//	handler := NewCreateLineCommandHandler(uowFactory, recorder, logger)
//	l, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // the account does not exist
//	case errors.Is(err, errs.ErrObjectAlreadyExists):
//	    // the msisdn is taken
//	case err != nil:
//	    return err
//	}
//	fmt.Println(l.Status()) // PROVISIONED
type CreateLineCommandHandler struct {
	uowFactory LineUoWFactory
	recorder   AuditRecorder
	logger     *zap.Logger
}

// NewCreateLineCommandHandler wires the handler. The recorder is called only after
// the line is committed.
func NewCreateLineCommandHandler(
	uowFactory LineUoWFactory,
	recorder AuditRecorder,
	logger *zap.Logger,
) CreateLineCommandHandler {
	return CreateLineCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     logger,
	}
}

// Handle checks that the account exists, inserts the line and commits, all in one
// transaction, then records a create_line entry with no old value.
func (h *CreateLineCommandHandler) Handle(ctx context.Context, cmd CreateLineCommand) (*line.Line, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	l, err := line.NewLine(cmd.LineID(), cmd.AccountID(), cmd.MSISDN(), cmd.PlanName())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	exists, err := uow.AccountRepository().Exists(ctx, cmd.AccountID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("account", cmd.AccountID().String())
	}

	if err = uow.LineRepository().Add(ctx, l); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.logger, h.recorder, cmd.Actor(),
		audit.ActionCreateLine, line.ResourceType, l.ID().String(), nil, l.Snapshot())

	return l, nil
}

package commands

import (
	"context"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/audit"

	"go.uber.org/zap"
)

type UpdateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	recorder   AuditRecorder
	logger     *zap.Logger
}

func NewUpdateAccountCommandHandler(
	uowFactory AccountUoWFactory,
	recorder AuditRecorder,
	logger *zap.Logger,
) UpdateAccountCommandHandler {
	return UpdateAccountCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     logger,
	}
}

// Handle applies the changes in one transaction. Nothing is written when any change is
// invalid, and a duplicate email surfaces as ObjectAlreadyExistsError.
func (h *UpdateAccountCommandHandler) Handle(ctx context.Context, cmd UpdateAccountCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()
	acc, err := repo.Get(ctx, cmd.AccountID())
	if err != nil {
		return nil, err
	}

	oldState := acc.Snapshot()
	if err = acc.Update(cmd.Changes()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, acc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.logger, h.recorder, cmd.Actor(),
		audit.ActionUpdateAccount, account.ResourceType, acc.ID().String(), oldState, acc.Snapshot())

	return acc, nil
}

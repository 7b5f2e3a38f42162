package commands

import (
	"context"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/audit"

	"go.uber.org/zap"
)

// CreateAccountCommandHandler stores a new account and records create_account.
type CreateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	recorder   AuditRecorder
	logger     *zap.Logger
}

func NewCreateAccountCommandHandler(
	uowFactory AccountUoWFactory,
	recorder AuditRecorder,
	logger *zap.Logger,
) CreateAccountCommandHandler {
	return CreateAccountCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		logger:     logger,
	}
}

// Handle stores the account. A duplicate email surfaces as ObjectAlreadyExistsError.
func (h *CreateAccountCommandHandler) Handle(ctx context.Context, cmd CreateAccountCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	acc, err := account.NewAccount(cmd.AccountID(), cmd.FullName(), cmd.Email(), cmd.Phone(), cmd.Status())
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

	if err = uow.AccountRepository().Add(ctx, acc); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	recordAudit(ctx, h.logger, h.recorder, cmd.Actor(),
		audit.ActionCreateAccount, account.ResourceType, acc.ID().String(), nil, acc.Snapshot())

	return acc, nil
}

package commands_test

import (
	"testing"

	"telecom/internal/core/application/usecases/commands"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewCreateAccountCommand_InvalidStatus(t *testing.T) {
	_, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "Ada", "ada@example.com", "+44", "GONE", nil)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "Ada Lovelace", "Ada@Example.com", "+44 20", account.Unknown, nil)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	recorder := new(MockAuditRecorder)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accounts).Once(),
		accounts.On("Add", ctx, mock.AnythingOfType("*account.Account")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	recorder.On("Record", mock.Anything, kernel.Anonymous{}, audit.ActionCreateAccount, account.ResourceType,
		cmd.AccountID().String(), nil, mock.Anything).Return(nil, nil).Once()
	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateAccountCommandHandler(factory, recorder, zap.NewNop())
	acc, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", acc.Email())
	assert.Equal(t, account.Active, acc.Status())
	uow.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestCreateAccountCommandHandler_Handle_InvalidEmailNeverOpensTransaction(t *testing.T) {
	cmd, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "Ada", "not-an-email", "+44", account.Active, nil)
	require.NoError(t, err)
	factory := new(MockAccountUoWFactory)

	h := commands.NewCreateAccountCommandHandler(factory, new(MockAuditRecorder), zap.NewNop())
	_, err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateAccountCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateAccountCommand(kernel.NewUUID(), "Ada", "ada@example.com", "+44", account.Active, nil)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts).Once()
	accounts.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("email", "ada@example.com")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()
	recorder := new(MockAuditRecorder)

	h := commands.NewCreateAccountCommandHandler(factory, recorder, zap.NewNop())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
	recorder.AssertNotCalled(t, "Record")
}

func TestUpdateAccountCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stored, err := account.NewAccount(kernel.NewUUID(), "Ada", "ada@example.com", "+44", account.Active)
	require.NoError(t, err)
	cmd, err := commands.NewUpdateAccountCommand(stored.ID(), account.Changes{
		Status: lo.ToPtr(account.Suspended),
	}, nil)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	recorder := new(MockAuditRecorder)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AccountRepository").Return(accounts).Once(),
		accounts.On("Get", ctx, stored.ID()).Return(stored, nil).Once(),
		accounts.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	recorder.On("Record", mock.Anything, kernel.Anonymous{}, audit.ActionUpdateAccount, account.ResourceType,
		stored.ID().String(),
		mock.MatchedBy(func(old map[string]any) bool { return old["status"] == account.Active }),
		mock.MatchedBy(func(nw map[string]any) bool { return nw["status"] == account.Suspended }),
	).Return(nil, nil).Once()
	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAccountCommandHandler(factory, recorder, zap.NewNop())
	acc, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, account.Suspended, acc.Status())
	assert.Equal(t, "Ada", acc.FullName())
	uow.AssertExpectations(t)
	accounts.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestUpdateAccountCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateAccountCommand(id, account.Changes{FullName: lo.ToPtr("X")}, nil)
	require.NoError(t, err)

	accounts := new(MockAccountRepository)
	uow := new(MockAccountUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AccountRepository").Return(accounts).Once()
	accounts.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("account", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockAccountUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateAccountCommandHandler(factory, new(MockAuditRecorder), zap.NewNop())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

package http

import (
	"context"
	"errors"

	"telecom/internal/core/application/usecases/commands"
	"telecom/internal/core/application/usecases/queries"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/line"

	"github.com/stretchr/testify/mock"
)

type MockCreateAccount struct{ mock.Mock }

func (m *MockCreateAccount) Handle(ctx context.Context, cmd commands.CreateAccountCommand) (*account.Account, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

type MockUpdateAccount struct{ mock.Mock }

func (m *MockUpdateAccount) Handle(ctx context.Context, cmd commands.UpdateAccountCommand) (*account.Account, error) {
	args := m.Called(ctx, cmd)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

type MockLineCommand[C any] struct{ mock.Mock }

func (m *MockLineCommand[C]) Handle(ctx context.Context, cmd C) (*line.Line, error) {
	args := m.Called(ctx, cmd)
	l, _ := args.Get(0).(*line.Line)
	return l, args.Error(1)
}

type MockQuery[Q any, R any] struct{ mock.Mock }

func (m *MockQuery[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	r, _ := args.Get(0).(R)
	return r, args.Error(1)
}

type mocks struct {
	createAccount    *MockCreateAccount
	updateAccount    *MockUpdateAccount
	createLine       *MockLineCommand[commands.CreateLineCommand]
	changeLineStatus *MockLineCommand[commands.ChangeLineStatusCommand]
	deleteLine       *MockLineCommand[commands.DeleteLineCommand]
	commissionLine   *MockLineCommand[commands.CommissionLineCommand]

	getAccount       *MockQuery[queries.GetAccountQuery, queries.AccountResponse]
	listAccounts     *MockQuery[queries.ListAccountsQuery, []queries.AccountResponse]
	getLine          *MockQuery[queries.GetLineQuery, queries.LineResponse]
	listLines        *MockQuery[queries.ListLinesForAccountQuery, []queries.LineResponse]
	listAuditEntries *MockQuery[queries.ListAuditEntriesQuery, []queries.AuditEntryResponse]
}

func newMocks() *mocks {
	return &mocks{
		createAccount:    &MockCreateAccount{},
		updateAccount:    &MockUpdateAccount{},
		createLine:       &MockLineCommand[commands.CreateLineCommand]{},
		changeLineStatus: &MockLineCommand[commands.ChangeLineStatusCommand]{},
		deleteLine:       &MockLineCommand[commands.DeleteLineCommand]{},
		commissionLine:   &MockLineCommand[commands.CommissionLineCommand]{},
		getAccount:       &MockQuery[queries.GetAccountQuery, queries.AccountResponse]{},
		listAccounts:     &MockQuery[queries.ListAccountsQuery, []queries.AccountResponse]{},
		getLine:          &MockQuery[queries.GetLineQuery, queries.LineResponse]{},
		listLines:        &MockQuery[queries.ListLinesForAccountQuery, []queries.LineResponse]{},
		listAuditEntries: &MockQuery[queries.ListAuditEntriesQuery, []queries.AuditEntryResponse]{},
	}
}

func (m *mocks) handlers() Handlers {
	return Handlers{
		CreateAccount:       m.createAccount,
		UpdateAccount:       m.updateAccount,
		CreateLine:          m.createLine,
		ChangeLineStatus:    m.changeLineStatus,
		DeleteLine:          m.deleteLine,
		CommissionLine:      m.commissionLine,
		GetAccount:          m.getAccount,
		ListAccounts:        m.listAccounts,
		GetLine:             m.getLine,
		ListLinesForAccount: m.listLines,
		ListAuditEntries:    m.listAuditEntries,
	}
}

type fakeHealth struct{ err error }

func (f fakeHealth) PingContext(context.Context) error { return f.err }

var errDatabaseDown = errors.New("dial tcp 10.0.0.5:5432: connection refused")

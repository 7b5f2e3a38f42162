package commands_test

import (
	"context"

	"telecom/internal/core/application/usecases/commands"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLineRepository struct{ mock.Mock }

func (m *MockLineRepository) Add(ctx context.Context, l *line.Line) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLineRepository) Get(ctx context.Context, id kernel.UUID) (*line.Line, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*line.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*line.Line, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*line.Line)
	return l, args.Error(1)
}

func (m *MockLineRepository) UpdateStatus(ctx context.Context, l *line.Line, expected line.Status) error {
	return m.Called(ctx, l, expected).Error(0)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, a *account.Account) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*account.Account)
	return a, args.Error(1)
}

func (m *MockAccountRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockAuditRepository struct{ mock.Mock }

func (m *MockAuditRepository) Add(ctx context.Context, e *audit.Entry) error {
	return m.Called(ctx, e).Error(0)
}

func (m *MockAuditRepository) ListByResource(ctx context.Context, resourceType string, resourceID string) ([]*audit.Entry, error) {
	args := m.Called(ctx, resourceType, resourceID)
	entries, _ := args.Get(0).([]*audit.Entry)
	return entries, args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *mockTx) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *mockTx) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

type MockLineUoW struct{ mockTx }

func (m *MockLineUoW) LineRepository() ports.LineRepository {
	return m.Called().Get(0).(ports.LineRepository)
}

func (m *MockLineUoW) AccountRepository() ports.AccountRepository {
	return m.Called().Get(0).(ports.AccountRepository)
}

type MockLineUoWFactory struct{ mock.Mock }

func (m *MockLineUoWFactory) Create() commands.LineUoW {
	return m.Called().Get(0).(commands.LineUoW)
}

type MockAccountUoW struct{ mockTx }

func (m *MockAccountUoW) AccountRepository() ports.AccountRepository {
	return m.Called().Get(0).(ports.AccountRepository)
}

type MockAccountUoWFactory struct{ mock.Mock }

func (m *MockAccountUoWFactory) Create() commands.AccountUoW {
	return m.Called().Get(0).(commands.AccountUoW)
}

type MockAuditUoW struct{ mockTx }

func (m *MockAuditUoW) AuditRepository() ports.AuditRepository {
	return m.Called().Get(0).(ports.AuditRepository)
}

type MockAuditUoWFactory struct{ mock.Mock }

func (m *MockAuditUoWFactory) Create() commands.AuditUoW {
	return m.Called().Get(0).(commands.AuditUoW)
}

type MockAuditRecorder struct{ mock.Mock }

func (m *MockAuditRecorder) Record(
	ctx context.Context,
	actor kernel.Actor,
	action audit.Action,
	resourceType string,
	resourceID string,
	oldState any,
	newState any,
) (*audit.Entry, error) {
	args := m.Called(ctx, actor, action, resourceType, resourceID, oldState, newState)
	e, _ := args.Get(0).(*audit.Entry)
	return e, args.Error(1)
}

type MockProvisioner struct{ mock.Mock }

func (m *MockProvisioner) Provision(ctx context.Context, l *line.Line) error {
	return m.Called(ctx, l).Error(0)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string) (kernel.UUID, bool, error) {
	args := m.Called(ctx, key)
	id, _ := args.Get(0).(kernel.UUID)
	return id, args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Complete(ctx context.Context, key string, lineID kernel.UUID) error {
	return m.Called(ctx, key, lineID).Error(0)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) {
	m.Called(ctx, key)
}

func newTestLine(status line.Status) *line.Line {
	l, err := line.RestoreLine(kernel.NewUUID(), kernel.NewUUID(), "447700900123", "Unlimited", status, timeNow())
	if err != nil {
		panic(err)
	}
	return l
}

package postgres_test

import (
	"context"
	"fmt"
	"testing"

	postgres_adapter "telecom/internal/adapters/out/postgres"
	"telecom/internal/adapters/out/postgres/pgtest"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/core/ports"
	"telecom/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	database *pgtest.Database
	factory  ports.UnitOfWorkFactory
	seq      int
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(database.DB)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesSeparateInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.LineRepository())
	suite.NotNil(uow1.AccountRepository())
	suite.NotNil(uow1.AuditRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitAndRollbackWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Error(uow.Commit(ctx))
	suite.Error(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommitIsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	l := suite.newLine()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.LineRepository().Add(ctx, l))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Error(uow.Rollback(ctx))

	_, err := suite.factory.Create().LineRepository().Get(ctx, l.ID())
	suite.NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestMultiRepositoryCommit() {
	ctx := context.Background()
	uow := suite.factory.Create()

	acc, err := account.NewAccount(kernel.NewUUID(), "Ada Lovelace", "ada@example.com", "+44 20 0000", account.Active)
	suite.Require().NoError(err)
	l, err := line.NewLine(kernel.NewUUID(), acc.ID(), "447700900001", "Unlimited")
	suite.Require().NoError(err)
	entry, err := audit.NewEntry(kernel.Anonymous{}, audit.ActionCreateLine, line.ResourceType, l.ID().String(), nil, l.Snapshot())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.AccountRepository().Add(ctx, acc))
	suite.Require().NoError(uow.LineRepository().Add(ctx, l))
	suite.Require().NoError(uow.AuditRepository().Add(ctx, entry))
	suite.Require().NoError(uow.Commit(ctx))

	fresh := suite.factory.Create()
	exists, err := fresh.AccountRepository().Exists(ctx, acc.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	stored, err := fresh.LineRepository().Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(acc.ID(), stored.AccountID())

	entries, err := fresh.AuditRepository().ListByResource(ctx, line.ResourceType, l.ID().String())
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()
	l := suite.newLine()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.LineRepository().Add(ctx, l))

	_, err := uow.LineRepository().Get(ctx, l.ID())
	suite.Require().NoError(err, "visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().LineRepository().Get(ctx, l.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestIsolationBetweenUnitsOfWork() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	line1 := suite.newLine()
	line2 := suite.newLine()

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.LineRepository().Add(ctx, line1))
	suite.Require().NoError(uow2.LineRepository().Add(ctx, line2))

	_, err := uow1.LineRepository().Get(ctx, line2.ID())
	suite.Error(err, "uncommitted rows of another transaction are invisible")
	_, err = uow2.LineRepository().Get(ctx, line1.ID())
	suite.Error(err)

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	fresh := suite.factory.Create()
	_, err = fresh.LineRepository().Get(ctx, line1.ID())
	suite.NoError(err)
	_, err = fresh.LineRepository().Get(ctx, line2.ID())
	suite.Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestWithoutTransaction_AutoCommits() {
	ctx := context.Background()
	l := suite.newLine()

	suite.Require().NoError(suite.factory.Create().LineRepository().Add(ctx, l))

	got, err := suite.factory.Create().LineRepository().Get(ctx, l.ID())
	suite.Require().NoError(err)
	suite.Equal(l.ID(), got.ID())
}

func (suite *UnitOfWorkIntegrationTestSuite) newLine() *line.Line {
	suite.seq++
	l, err := line.NewLine(kernel.NewUUID(), kernel.NewUUID(), fmt.Sprintf("44770090%04d", suite.seq), "Basic")
	suite.Require().NoError(err)
	return l
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

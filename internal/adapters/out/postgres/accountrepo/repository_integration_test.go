package accountrepo_test

import (
	"context"
	"testing"

	"telecom/internal/adapters/out/postgres/accountrepo"
	"telecom/internal/adapters/out/postgres/pgtest"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/stretchr/testify/suite"
)

type AccountRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *accountrepo.GormAccountRepository
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repository = accountrepo.NewGormAccountRepository(database.DB)
}

func (suite *AccountRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *AccountRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.database != nil {
		suite.Require().NoError(suite.database.Terminate(context.Background()))
	}
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_ThenGet_RoundTrips() {
	ctx := context.Background()
	acc := suite.newAccount("grace@example.com")

	suite.Require().NoError(suite.repository.Add(ctx, acc))

	got, err := suite.repository.Get(ctx, acc.ID())
	suite.Require().NoError(err)
	suite.Equal(acc.FullName(), got.FullName())
	suite.Equal(acc.Email(), got.Email())
	suite.Equal(acc.Phone(), got.Phone())
	suite.Equal(account.Active, got.Status())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestAdd_DuplicateEmail_ReturnsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newAccount("dup@example.com")))

	err := suite.repository.Add(ctx, suite.newAccount("dup@example.com"))

	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_ReplacesFields() {
	ctx := context.Background()
	acc := suite.newAccount("old@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, acc))

	suite.Require().NoError(acc.Update(account.Changes{
		Email:  lo.ToPtr("new@example.com"),
		Phone:  lo.ToPtr("+1 555 0199"),
		Status: lo.ToPtr(account.Suspended),
	}))
	suite.Require().NoError(suite.repository.Update(ctx, acc))

	got, err := suite.repository.Get(ctx, acc.ID())
	suite.Require().NoError(err)
	suite.Equal("new@example.com", got.Email())
	suite.Equal("+1 555 0199", got.Phone())
	suite.Equal(account.Suspended, got.Status())
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_EmailTaken_ReturnsConflict() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newAccount("taken@example.com")))
	acc := suite.newAccount("mine@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, acc))

	suite.Require().NoError(acc.Update(account.Changes{Email: lo.ToPtr("taken@example.com")}))
	err := suite.repository.Update(ctx, acc)

	suite.ErrorIs(err, errs.ErrObjectAlreadyExists)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestUpdate_Missing_ReturnsNotFound() {
	err := suite.repository.Update(context.Background(), suite.newAccount("ghost@example.com"))

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	acc := suite.newAccount("exists@example.com")
	suite.Require().NoError(suite.repository.Add(ctx, acc))

	exists, err := suite.repository.Exists(ctx, acc.ID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *AccountRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AccountRepositoryIntegrationTestSuite) newAccount(email string) *account.Account {
	acc, err := account.NewAccount(kernel.NewUUID(), "Grace Hopper", email, "+1 555 0100", account.Active)
	suite.Require().NoError(err)
	return acc
}

func TestAccountRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AccountRepositoryIntegrationTestSuite))
}

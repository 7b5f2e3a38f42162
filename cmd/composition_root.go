package cmd

import (
	httpin "telecom/internal/adapters/in/http"
	"telecom/internal/adapters/out/idempotency"
	"telecom/internal/adapters/out/postgres"
	"telecom/internal/adapters/out/provisioning"
	"telecom/internal/core/application/usecases/commands"
	"telecom/internal/core/application/usecases/queries"
	"telecom/internal/core/ports"
	"telecom/internal/jobs"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *zap.Logger

	provisioner ports.Provisioner
	idempotency ports.IdempotencyStore
	recorder    commands.AuditRecorder
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *zap.Logger) *CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	var auditFactory commands.AuditUoWFactory = FuncAuditUoWFactory(func() commands.AuditUoW {
		return uowFactory.Create()
	})

	return &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		uowFactory:  uowFactory,
		logger:      logger,
		provisioner: provisioning.NewSimulatedProvisioner(config.ProvisioningDelay, logger),
		idempotency: idempotency.NewInMemoryStore(config.IdempotencyTTL),
		recorder:    commands.NewTransactionalAuditRecorder(auditFactory),
	}
}

func (c *CompositionRoot) lineUoWFactory() commands.LineUoWFactory {
	return FuncLineUoWFactory(func() commands.LineUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) handlerLogger(name string) *zap.Logger {
	return c.logger.With(zap.String("component", name))
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	return commands.NewCreateAccountCommandHandler(c.accountUoWFactory(), c.recorder,
		c.handlerLogger("create_account"))
}

func (c *CompositionRoot) CreateUpdateAccountCommandHandler() commands.UpdateAccountCommandHandler {
	return commands.NewUpdateAccountCommandHandler(c.accountUoWFactory(), c.recorder,
		c.handlerLogger("update_account"))
}

func (c *CompositionRoot) CreateCreateLineCommandHandler() commands.CreateLineCommandHandler {
	return commands.NewCreateLineCommandHandler(c.lineUoWFactory(), c.recorder, c.handlerLogger("create_line"))
}

func (c *CompositionRoot) CreateChangeLineStatusCommandHandler() commands.ChangeLineStatusCommandHandler {
	return commands.NewChangeLineStatusCommandHandler(c.lineUoWFactory(), c.recorder,
		c.handlerLogger("change_line_status"))
}

func (c *CompositionRoot) CreateDeleteLineCommandHandler() commands.DeleteLineCommandHandler {
	return commands.NewDeleteLineCommandHandler(c.lineUoWFactory(), c.recorder, c.handlerLogger("delete_line"))
}

func (c *CompositionRoot) CreateCommissionLineCommandHandler() commands.CommissionLineCommandHandler {
	return commands.NewCommissionLineCommandHandler(c.lineUoWFactory(), c.provisioner, c.idempotency, c.recorder,
		c.handlerLogger("commission_line"))
}

func (c *CompositionRoot) CreateGetAccountQueryHandler() queries.GetAccountQueryHandler {
	return queries.NewGetAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAccountsQueryHandler() queries.ListAccountsQueryHandler {
	return queries.NewListAccountsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLineQueryHandler() queries.GetLineQueryHandler {
	return queries.NewGetLineQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLinesForAccountQueryHandler() queries.ListLinesForAccountQueryHandler {
	return queries.NewListLinesForAccountQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListAuditEntriesQueryHandler() queries.ListAuditEntriesQueryHandler {
	return queries.NewListAuditEntriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountLinesByStatusQueryHandler() queries.CountLinesByStatusQueryHandler {
	return queries.NewCountLinesByStatusQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	createAccount := c.CreateCreateAccountCommandHandler()
	updateAccount := c.CreateUpdateAccountCommandHandler()
	createLine := c.CreateCreateLineCommandHandler()
	changeLineStatus := c.CreateChangeLineStatusCommandHandler()
	deleteLine := c.CreateDeleteLineCommandHandler()
	commissionLine := c.CreateCommissionLineCommandHandler()

	return httpin.NewServer(httpin.Handlers{
		CreateAccount:       &createAccount,
		UpdateAccount:       &updateAccount,
		CreateLine:          &createLine,
		ChangeLineStatus:    &changeLineStatus,
		DeleteLine:          &deleteLine,
		CommissionLine:      &commissionLine,
		GetAccount:          c.CreateGetAccountQueryHandler(),
		ListAccounts:        c.CreateListAccountsQueryHandler(),
		GetLine:             c.CreateGetLineQueryHandler(),
		ListLinesForAccount: c.CreateListLinesForAccountQueryHandler(),
		ListAuditEntries:    c.CreateListAuditEntriesQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewLineInventoryReportJob(c.CreateCountLinesByStatusQueryHandler(), c.config.InventoryReportSchedule,
			c.logger),
	)
}

func (c *CompositionRoot) RouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		AppName:             AppName,
		Version:             Version,
		CommissionRateLimit: c.config.CommissionRateLimit,
		CommissionBurst:     c.config.CommissionBurst,
		EchoLogLevel:        echoLogLevel(c.config.ZapLevel()),
	}
}

type FuncLineUoWFactory func() commands.LineUoW

func (f FuncLineUoWFactory) Create() commands.LineUoW {
	return f()
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncAuditUoWFactory func() commands.AuditUoW

func (f FuncAuditUoWFactory) Create() commands.AuditUoW {
	return f()
}

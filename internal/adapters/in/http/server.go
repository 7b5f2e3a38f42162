package http

import (
	"context"
	"net/http"

	"telecom/internal/core/application/usecases/commands"
	"telecom/internal/core/application/usecases/queries"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

type CreateAccountHandler interface {
	Handle(ctx context.Context, cmd commands.CreateAccountCommand) (*account.Account, error)
}

type UpdateAccountHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateAccountCommand) (*account.Account, error)
}

type CreateLineHandler interface {
	Handle(ctx context.Context, cmd commands.CreateLineCommand) (*line.Line, error)
}

type ChangeLineStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeLineStatusCommand) (*line.Line, error)
}

type DeleteLineHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteLineCommand) (*line.Line, error)
}

type CommissionLineHandler interface {
	Handle(ctx context.Context, cmd commands.CommissionLineCommand) (*line.Line, error)
}

type GetAccountHandler interface {
	Handle(ctx context.Context, query queries.GetAccountQuery) (queries.AccountResponse, error)
}

type ListAccountsHandler interface {
	Handle(ctx context.Context, query queries.ListAccountsQuery) ([]queries.AccountResponse, error)
}

type GetLineHandler interface {
	Handle(ctx context.Context, query queries.GetLineQuery) (queries.LineResponse, error)
}

type ListLinesForAccountHandler interface {
	Handle(ctx context.Context, query queries.ListLinesForAccountQuery) ([]queries.LineResponse, error)
}

type ListAuditEntriesHandler interface {
	Handle(ctx context.Context, query queries.ListAuditEntriesQuery) ([]queries.AuditEntryResponse, error)
}

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	// Command handlers
	CreateAccount    CreateAccountHandler
	UpdateAccount    UpdateAccountHandler
	CreateLine       CreateLineHandler
	ChangeLineStatus ChangeLineStatusHandler
	DeleteLine       DeleteLineHandler
	CommissionLine   CommissionLineHandler

	// Query handlers
	GetAccount          GetAccountHandler
	ListAccounts        ListAccountsHandler
	GetLine             GetLineHandler
	ListLinesForAccount ListLinesForAccountHandler
	ListAuditEntries    ListAuditEntriesHandler
}

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	handlers Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// ListAccounts handles GET /api/v1/accounts.
func (s *Server) ListAccounts(ctx echo.Context, params servers.ListAccountsParams) error {
	query, err := queries.NewListAccountsQuery(lo.FromPtr(params.Limit), lo.FromPtr(params.Offset))
	if err != nil {
		return err
	}

	accounts, err := s.handlers.ListAccounts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lo.Map(accounts, func(a queries.AccountResponse, _ int) servers.Account {
		return accountFromResponse(a)
	}))
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(ctx echo.Context) error {
	var body servers.CreateAccountJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	status := account.Unknown
	if body.Status != nil {
		status = account.Status(*body.Status)
	}

	cmd, err := commands.NewCreateAccountCommand(
		kernel.NewUUID(), body.FullName, body.Email, body.Phone, status, actorFrom(ctx),
	)
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateAccount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, accountFromAggregate(created))
}

// GetAccount handles GET /api/v1/accounts/:accountId.
func (s *Server) GetAccount(ctx echo.Context, accountID servers.AccountId) error {
	id, err := kernel.UUIDFromBytes(accountID[:])
	if err != nil {
		return err
	}
	query, err := queries.NewGetAccountQuery(id)
	if err != nil {
		return err
	}

	found, err := s.handlers.GetAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, accountFromResponse(found))
}

// UpdateAccount handles PUT /api/v1/accounts/:accountId.
func (s *Server) UpdateAccount(ctx echo.Context, accountID servers.AccountId) error {
	var body servers.UpdateAccountJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(accountID[:])
	if err != nil {
		return err
	}

	changes := account.Changes{
		FullName: body.FullName,
		Email:    body.Email,
		Phone:    body.Phone,
	}
	if body.Status != nil {
		changes.Status = lo.ToPtr(account.Status(*body.Status))
	}

	cmd, err := commands.NewUpdateAccountCommand(id, changes, actorFrom(ctx))
	if err != nil {
		return err
	}

	updated, err := s.handlers.UpdateAccount.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, accountFromAggregate(updated))
}

// ListAccountLines handles GET /api/v1/accounts/:accountId/lines.
func (s *Server) ListAccountLines(
	ctx echo.Context,
	accountID servers.AccountId,
	params servers.ListAccountLinesParams,
) error {
	id, err := kernel.UUIDFromBytes(accountID[:])
	if err != nil {
		return err
	}
	query, err := queries.NewListLinesForAccountQuery(id, lo.FromPtr(params.Limit))
	if err != nil {
		return err
	}

	lines, err := s.handlers.ListLinesForAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lo.Map(lines, func(l queries.LineResponse, _ int) servers.Line {
		return lineFromResponse(l)
	}))
}

// CreateAccountLine handles POST /api/v1/accounts/:accountId/lines.
func (s *Server) CreateAccountLine(ctx echo.Context, accountID servers.AccountId) error {
	var body servers.CreateAccountLineJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(accountID[:])
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateLineCommand(kernel.NewUUID(), id, body.Msisdn, body.PlanName, actorFrom(ctx))
	if err != nil {
		return err
	}

	created, err := s.handlers.CreateLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, lineFromAggregate(created))
}

// ListAuditEntries handles GET /api/v1/audit-entries.
func (s *Server) ListAuditEntries(ctx echo.Context, params servers.ListAuditEntriesParams) error {
	query, err := queries.NewListAuditEntriesQuery(
		params.ResourceType, lo.FromPtr(params.ResourceId), lo.FromPtr(params.Limit),
	)
	if err != nil {
		return err
	}

	entries, err := s.handlers.ListAuditEntries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lo.Map(entries, func(e queries.AuditEntryResponse, _ int) servers.AuditEntry {
		return auditEntryFromResponse(e)
	}))
}

// GetLine handles GET /api/v1/lines/:lineId.
func (s *Server) GetLine(ctx echo.Context, lineID servers.LineId) error {
	id, err := kernel.UUIDFromBytes(lineID[:])
	if err != nil {
		return err
	}
	query, err := queries.NewGetLineQuery(id)
	if err != nil {
		return err
	}

	found, err := s.handlers.GetLine.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lineFromResponse(found))
}

// DeleteLine handles DELETE /api/v1/lines/:lineId. The line is kept in DELETED status.
func (s *Server) DeleteLine(ctx echo.Context, lineID servers.LineId) error {
	id, err := kernel.UUIDFromBytes(lineID[:])
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteLineCommand(id, actorFrom(ctx))
	if err != nil {
		return err
	}

	deleted, err := s.handlers.DeleteLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lineFromAggregate(deleted))
}

// CommissionLine handles POST /api/v1/lines/:lineId/commission.
func (s *Server) CommissionLine(ctx echo.Context, lineID servers.LineId, params servers.CommissionLineParams) error {
	id, err := kernel.UUIDFromBytes(lineID[:])
	if err != nil {
		return err
	}
	cmd, err := commands.NewCommissionLineCommand(id, actorFrom(ctx), lo.FromPtr(params.IdempotencyKey))
	if err != nil {
		return err
	}

	commissioned, err := s.handlers.CommissionLine.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lineFromAggregate(commissioned))
}

// ChangeLineStatus handles PATCH /api/v1/lines/:lineId/status.
func (s *Server) ChangeLineStatus(ctx echo.Context, lineID servers.LineId) error {
	var body servers.ChangeLineStatusJSONRequestBody
	if err := bindAndValidate(ctx, &body); err != nil {
		return err
	}

	id, err := kernel.UUIDFromBytes(lineID[:])
	if err != nil {
		return err
	}
	target, err := line.ParseStatus(string(body.Status))
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeLineStatusCommand(id, target, actorFrom(ctx))
	if err != nil {
		return err
	}

	changed, err := s.handlers.ChangeLineStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, lineFromAggregate(changed))
}

func bindAndValidate(ctx echo.Context, dest any) error {
	if err := ctx.Bind(dest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return ctx.Validate(dest)
}

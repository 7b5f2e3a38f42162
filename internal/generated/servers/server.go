package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /accounts)
	ListAccounts(ctx echo.Context, params ListAccountsParams) error
	// (POST /accounts)
	CreateAccount(ctx echo.Context) error
	// (GET /accounts/{accountId})
	GetAccount(ctx echo.Context, accountId AccountId) error
	// (PUT /accounts/{accountId})
	UpdateAccount(ctx echo.Context, accountId AccountId) error
	// (GET /accounts/{accountId}/lines)
	ListAccountLines(ctx echo.Context, accountId AccountId, params ListAccountLinesParams) error
	// (POST /accounts/{accountId}/lines)
	CreateAccountLine(ctx echo.Context, accountId AccountId) error
	// (GET /audit-entries)
	ListAuditEntries(ctx echo.Context, params ListAuditEntriesParams) error
	// (GET /lines/{lineId})
	GetLine(ctx echo.Context, lineId LineId) error
	// (DELETE /lines/{lineId})
	DeleteLine(ctx echo.Context, lineId LineId) error
	// (POST /lines/{lineId}/commission)
	CommissionLine(ctx echo.Context, lineId LineId, params CommissionLineParams) error
	// (PATCH /lines/{lineId}/status)
	ChangeLineStatus(ctx echo.Context, lineId LineId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindPathUUID(ctx echo.Context, name string, dest *openapi_types.UUID) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

func bindQuery(ctx echo.Context, name string, required bool, dest interface{}) error {
	err := runtime.BindQueryParameter("form", true, required, name, ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// ListAccounts converts echo context to params.
func (w *ServerInterfaceWrapper) ListAccounts(ctx echo.Context) error {
	var params ListAccountsParams
	if err := bindQuery(ctx, "limit", false, &params.Limit); err != nil {
		return err
	}
	if err := bindQuery(ctx, "offset", false, &params.Offset); err != nil {
		return err
	}
	return w.Handler.ListAccounts(ctx, params)
}

// CreateAccount converts echo context to params.
func (w *ServerInterfaceWrapper) CreateAccount(ctx echo.Context) error {
	return w.Handler.CreateAccount(ctx)
}

// GetAccount converts echo context to params.
func (w *ServerInterfaceWrapper) GetAccount(ctx echo.Context) error {
	var accountId AccountId
	if err := bindPathUUID(ctx, "accountId", &accountId); err != nil {
		return err
	}
	return w.Handler.GetAccount(ctx, accountId)
}

// UpdateAccount converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateAccount(ctx echo.Context) error {
	var accountId AccountId
	if err := bindPathUUID(ctx, "accountId", &accountId); err != nil {
		return err
	}
	return w.Handler.UpdateAccount(ctx, accountId)
}

// ListAccountLines converts echo context to params.
func (w *ServerInterfaceWrapper) ListAccountLines(ctx echo.Context) error {
	var accountId AccountId
	if err := bindPathUUID(ctx, "accountId", &accountId); err != nil {
		return err
	}
	var params ListAccountLinesParams
	if err := bindQuery(ctx, "limit", false, &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListAccountLines(ctx, accountId, params)
}

// CreateAccountLine converts echo context to params.
func (w *ServerInterfaceWrapper) CreateAccountLine(ctx echo.Context) error {
	var accountId AccountId
	if err := bindPathUUID(ctx, "accountId", &accountId); err != nil {
		return err
	}
	return w.Handler.CreateAccountLine(ctx, accountId)
}

// ListAuditEntries converts echo context to params.
func (w *ServerInterfaceWrapper) ListAuditEntries(ctx echo.Context) error {
	var params ListAuditEntriesParams
	if err := bindQuery(ctx, "resource_type", true, &params.ResourceType); err != nil {
		return err
	}
	if err := bindQuery(ctx, "resource_id", false, &params.ResourceId); err != nil {
		return err
	}
	if err := bindQuery(ctx, "limit", false, &params.Limit); err != nil {
		return err
	}
	return w.Handler.ListAuditEntries(ctx, params)
}

// GetLine converts echo context to params.
func (w *ServerInterfaceWrapper) GetLine(ctx echo.Context) error {
	var lineId LineId
	if err := bindPathUUID(ctx, "lineId", &lineId); err != nil {
		return err
	}
	return w.Handler.GetLine(ctx, lineId)
}

// DeleteLine converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteLine(ctx echo.Context) error {
	var lineId LineId
	if err := bindPathUUID(ctx, "lineId", &lineId); err != nil {
		return err
	}
	return w.Handler.DeleteLine(ctx, lineId)
}

// CommissionLine converts echo context to params.
func (w *ServerInterfaceWrapper) CommissionLine(ctx echo.Context) error {
	var lineId LineId
	if err := bindPathUUID(ctx, "lineId", &lineId); err != nil {
		return err
	}

	var params CommissionLineParams
	headers := ctx.Request().Header
	if valueList, found := headers[http.CanonicalHeaderKey("Idempotency-Key")]; found {
		if n := len(valueList); n != 1 {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Expected one value for Idempotency-Key, got %d", n))
		}
		var idempotencyKey string
		err := runtime.BindStyledParameterWithOptions("simple", "Idempotency-Key", valueList[0], &idempotencyKey,
			runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: false})
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Invalid format for parameter Idempotency-Key: %s", err))
		}
		params.IdempotencyKey = &idempotencyKey
	}

	return w.Handler.CommissionLine(ctx, lineId, params)
}

// ChangeLineStatus converts echo context to params.
func (w *ServerInterfaceWrapper) ChangeLineStatus(ctx echo.Context) error {
	var lineId LineId
	if err := bindPathUUID(ctx, "lineId", &lineId); err != nil {
		return err
	}
	return w.Handler.ChangeLineStatus(ctx, lineId)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RouteMiddlewares attaches extra middleware to single operations, keyed by operation id.
type RouteMiddlewares map[string][]echo.MiddlewareFunc

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "", nil)
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string, mw RouteMiddlewares) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/accounts", wrapper.ListAccounts, mw["ListAccounts"]...)
	router.POST(baseURL+"/accounts", wrapper.CreateAccount, mw["CreateAccount"]...)
	router.GET(baseURL+"/accounts/:accountId", wrapper.GetAccount, mw["GetAccount"]...)
	router.PUT(baseURL+"/accounts/:accountId", wrapper.UpdateAccount, mw["UpdateAccount"]...)
	router.GET(baseURL+"/accounts/:accountId/lines", wrapper.ListAccountLines, mw["ListAccountLines"]...)
	router.POST(baseURL+"/accounts/:accountId/lines", wrapper.CreateAccountLine, mw["CreateAccountLine"]...)
	router.GET(baseURL+"/audit-entries", wrapper.ListAuditEntries, mw["ListAuditEntries"]...)
	router.GET(baseURL+"/lines/:lineId", wrapper.GetLine, mw["GetLine"]...)
	router.DELETE(baseURL+"/lines/:lineId", wrapper.DeleteLine, mw["DeleteLine"]...)
	router.POST(baseURL+"/lines/:lineId/commission", wrapper.CommissionLine, mw["CommissionLine"]...)
	router.PATCH(baseURL+"/lines/:lineId/status", wrapper.ChangeLineStatus, mw["ChangeLineStatus"]...)
}

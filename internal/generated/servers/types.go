// Package servers provides the HTTP models and routing primitives described by
// api/openapi.yaml. It follows the layout oapi-codegen emits for the echo target.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for AccountStatus.
const (
	AccountStatusACTIVE    AccountStatus = "ACTIVE"
	AccountStatusCLOSED    AccountStatus = "CLOSED"
	AccountStatusSUSPENDED AccountStatus = "SUSPENDED"
)

// Defines values for LineStatus.
const (
	LineStatusACTIVE      LineStatus = "ACTIVE"
	LineStatusDELETED     LineStatus = "DELETED"
	LineStatusPROVISIONED LineStatus = "PROVISIONED"
	LineStatusSUSPENDED   LineStatus = "SUSPENDED"
)

// Defines values for ErrorError.
const (
	BadRequest          ErrorError = "BadRequest"
	Conflict            ErrorError = "Conflict"
	InternalServerError ErrorError = "InternalServerError"
	NotFound            ErrorError = "NotFound"
	ServiceUnavailable  ErrorError = "ServiceUnavailable"
	TooManyRequests     ErrorError = "TooManyRequests"
)

// Account defines model for Account.
type Account struct {
	CreatedAt time.Time          `json:"created_at"`
	Email     string             `json:"email"`
	FullName  string             `json:"full_name"`
	Id        openapi_types.UUID `json:"id"`
	Phone     string             `json:"phone"`
	Status    AccountStatus      `json:"status"`
}

// AccountStatus defines model for AccountStatus.
type AccountStatus string

// AccountUpdate defines model for AccountUpdate.
type AccountUpdate struct {
	Email    *string        `json:"email,omitempty"    validate:"omitempty,email"`
	FullName *string        `json:"full_name,omitempty" validate:"omitempty,max=255"`
	Phone    *string        `json:"phone,omitempty"    validate:"omitempty,max=32"`
	Status   *AccountStatus `json:"status,omitempty"   validate:"omitempty,oneof=ACTIVE SUSPENDED CLOSED"`
}

// AuditEntry defines model for AuditEntry.
type AuditEntry struct {
	Action       string             `json:"action"`
	Actor        *string            `json:"actor"`
	CreatedAt    time.Time          `json:"created_at"`
	Id           openapi_types.UUID `json:"id"`
	NewValue     interface{}        `json:"new_value"`
	OldValue     interface{}        `json:"old_value"`
	ResourceId   string             `json:"resource_id"`
	ResourceType string             `json:"resource_type"`
}

// Error defines model for Error.
type Error struct {
	Error   ErrorError `json:"error"`
	Message string     `json:"message"`
}

// ErrorError defines model for Error.Error.
type ErrorError string

// Health is returned by the liveness endpoint.
type Health struct {
	Database string `json:"database"`
	Status   string `json:"status"`
}

// Line defines model for Line.
type Line struct {
	AccountId openapi_types.UUID `json:"account_id"`
	CreatedAt time.Time          `json:"created_at"`
	Id        openapi_types.UUID `json:"id"`
	Msisdn    string             `json:"msisdn"`
	PlanName  string             `json:"plan_name"`
	Status    LineStatus         `json:"status"`
}

// LineStatus defines model for LineStatus.
type LineStatus string

// LineStatusUpdate defines model for LineStatusUpdate.
type LineStatusUpdate struct {
	Status LineStatus `json:"status" validate:"required"`
}

// NewAccount defines model for NewAccount.
type NewAccount struct {
	Email    string         `json:"email"            validate:"required,email"`
	FullName string         `json:"full_name"        validate:"required,max=255"`
	Phone    string         `json:"phone"            validate:"required,max=32"`
	Status   *AccountStatus `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE SUSPENDED CLOSED"`
}

// NewLine defines model for NewLine.
type NewLine struct {
	Msisdn   string `json:"msisdn"    validate:"required,max=32"`
	PlanName string `json:"plan_name" validate:"required,max=128"`
}

// AccountId defines model for AccountId.
type AccountId = openapi_types.UUID

// LineId defines model for LineId.
type LineId = openapi_types.UUID

// Limit defines model for Limit.
type Limit = int

// ListAccountsParams defines parameters for ListAccounts.
type ListAccountsParams struct {
	Limit  *Limit `form:"limit,omitempty"  json:"limit,omitempty"`
	Offset *int   `form:"offset,omitempty" json:"offset,omitempty"`
}

// ListAccountLinesParams defines parameters for ListAccountLines.
type ListAccountLinesParams struct {
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

// ListAuditEntriesParams defines parameters for ListAuditEntries.
type ListAuditEntriesParams struct {
	ResourceType string  `form:"resource_type"         json:"resource_type"`
	ResourceId   *string `form:"resource_id,omitempty" json:"resource_id,omitempty"`
	Limit        *Limit  `form:"limit,omitempty"       json:"limit,omitempty"`
}

// CommissionLineParams defines parameters for CommissionLine.
type CommissionLineParams struct {
	IdempotencyKey *string `json:"Idempotency-Key,omitempty"`
}

// CreateAccountJSONRequestBody defines body for CreateAccount for application/json ContentType.
type CreateAccountJSONRequestBody = NewAccount

// UpdateAccountJSONRequestBody defines body for UpdateAccount for application/json ContentType.
type UpdateAccountJSONRequestBody = AccountUpdate

// CreateAccountLineJSONRequestBody defines body for CreateAccountLine for application/json ContentType.
type CreateAccountLineJSONRequestBody = NewLine

// ChangeLineStatusJSONRequestBody defines body for ChangeLineStatus for application/json ContentType.
type ChangeLineStatusJSONRequestBody = LineStatusUpdate

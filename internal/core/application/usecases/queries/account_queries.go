package queries

import (
	"errors"
	"time"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrGetAccountQueryIsNotConstructed = errors.New(
		"GetAccountQuery must be created via NewGetAccountQuery constructor",
	)
	ErrListAccountsQueryIsNotConstructed = errors.New(
		"ListAccountsQuery must be created via NewListAccountsQuery constructor",
	)
)

type AccountResponse struct {
	ID        kernel.UUID
	FullName  string
	Email     string
	Phone     string
	Status    account.Status
	CreatedAt time.Time
}

const accountColumns = `id, full_name, email, phone, status, created_at`

func scanAccount(row rowScanner) (AccountResponse, error) {
	var (
		resp   AccountResponse
		id     uuid.UUID
		status string
	)
	if err := row.Scan(&id, &resp.FullName, &resp.Email, &resp.Phone, &status, &resp.CreatedAt); err != nil {
		return AccountResponse{}, err
	}

	accountID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return AccountResponse{}, err
	}

	resp.ID = accountID
	resp.Status = account.Status(status)
	resp.CreatedAt = resp.CreatedAt.UTC()
	return resp, nil
}

type GetAccountQuery struct {
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAccountQuery(accountID kernel.UUID) (GetAccountQuery, error) {
	if err := accountID.Validate(); err != nil {
		return GetAccountQuery{}, err
	}
	return GetAccountQuery{accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

func (q GetAccountQuery) AccountID() kernel.UUID { return q.accountID }

// ListAccountsQuery pages through accounts, oldest first.
type ListAccountsQuery struct {
	limit  int
	offset int

	guard guard.ConstructorGuard
}

func NewListAccountsQuery(limit int, offset int) (ListAccountsQuery, error) {
	offset, err := normalizeOffset(offset)
	if err != nil {
		return ListAccountsQuery{}, err
	}

	return ListAccountsQuery{
		limit:  normalizeLimit(limit),
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListAccountsQuery) Validate() error {
	return q.guard.Validate(ErrListAccountsQueryIsNotConstructed)
}

func (q ListAccountsQuery) Limit() int  { return q.limit }
func (q ListAccountsQuery) Offset() int { return q.offset }

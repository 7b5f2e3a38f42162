package queries

import (
	"errors"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/guard"
)

var ErrListLinesForAccountQueryIsNotConstructed = errors.New(
	"ListLinesForAccountQuery must be created via NewListLinesForAccountQuery constructor",
)

// ListLinesForAccountQuery pages through the lines of one account, oldest first.
// A non-positive limit means DefaultLimit; larger limits are capped at MaxLimit.
type ListLinesForAccountQuery struct {
	accountID kernel.UUID
	limit     int

	guard guard.ConstructorGuard
}

func NewListLinesForAccountQuery(accountID kernel.UUID, limit int) (ListLinesForAccountQuery, error) {
	if err := accountID.Validate(); err != nil {
		return ListLinesForAccountQuery{}, err
	}

	return ListLinesForAccountQuery{
		accountID: accountID,
		limit:     normalizeLimit(limit),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q ListLinesForAccountQuery) Validate() error {
	return q.guard.Validate(ErrListLinesForAccountQueryIsNotConstructed)
}

func (q ListLinesForAccountQuery) AccountID() kernel.UUID { return q.accountID }
func (q ListLinesForAccountQuery) Limit() int             { return q.limit }

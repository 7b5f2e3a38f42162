package queries

import (
	"errors"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/guard"
)

var ErrGetLineQueryIsNotConstructed = errors.New(
	"GetLineQuery must be created via NewGetLineQuery constructor",
)

type GetLineQuery struct {
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLineQuery(lineID kernel.UUID) (GetLineQuery, error) {
	if err := lineID.Validate(); err != nil {
		return GetLineQuery{}, err
	}
	return GetLineQuery{lineID: lineID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetLineQuery) Validate() error {
	return q.guard.Validate(ErrGetLineQueryIsNotConstructed)
}

func (q GetLineQuery) LineID() kernel.UUID { return q.lineID }

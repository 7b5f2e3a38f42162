package ports

import (
	"context"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"
)

type AccountRepository interface {
	// Add inserts a new account. A duplicate email yields *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update replaces every mutable field of an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}

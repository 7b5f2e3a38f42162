package ports

import (
	"context"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
)

// LineRepository persists line aggregates.
type LineRepository interface {
	// Add inserts a new line. A duplicate msisdn yields *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *line.Line) error

	// Get returns *errs.ObjectNotFoundError when the line does not exist.
	Get(ctx context.Context, id kernel.UUID) (*line.Line, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	// It must be called inside a transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*line.Line, error)

	// UpdateStatus writes aggregate.Status() only if the stored status still equals
	// expected. When no row matches it returns *errs.ObjectIsStaleError and
	// nothing is written.
	UpdateStatus(ctx context.Context, aggregate *line.Line, expected line.Status) error
}

package ports

import (
	"context"

	"telecom/internal/core/domain/model/kernel"
)

// IdempotencyStore deduplicates retried commissioning requests.
type IdempotencyStore interface {
	// Reserve claims key for an in-flight operation. It returns
	// *errs.OperationInProgressError if the key is already reserved, and
	// (lineID, true, nil) if the key already completed for lineID.
	Reserve(ctx context.Context, key string) (lineID kernel.UUID, completed bool, err error)

	// Complete records that key finished successfully for lineID.
	Complete(ctx context.Context, key string, lineID kernel.UUID) error

	// Release drops an in-flight reservation so the key can be retried.
	Release(ctx context.Context, key string)
}

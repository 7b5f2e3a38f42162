package idempotency_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"telecom/internal/adapters/out/idempotency"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"

	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryStore_ReserveCompleteReplay(t *testing.T) {
	ctx := context.Background()
	store := idempotency.NewInMemoryStore(time.Minute)
	lineID := kernel.NewUUID()

	_, completed, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, completed)

	_, _, err = store.Reserve(ctx, "k1")
	require.ErrorIs(t, err, errs.ErrOperationInProgress)

	require.NoError(t, store.Complete(ctx, "k1", lineID))

	got, completed, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, lineID, got)
}

func TestInMemoryStore_ReleaseAllowsRetry(t *testing.T) {
	ctx := context.Background()
	store := idempotency.NewInMemoryStore(time.Minute)

	_, _, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)
	store.Release(ctx, "k1")

	_, completed, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, completed)
}

func TestInMemoryStore_KeysExpire(t *testing.T) {
	ctx := context.Background()
	store := idempotency.NewInMemoryStore(20 * time.Millisecond)

	_, _, err := store.Reserve(ctx, "k1")
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		_, _, err := store.Reserve(ctx, "k1")
		return err == nil
	}, time.Second, 10*time.Millisecond)
}

func TestInMemoryStore_CompleteRejectsInvalidID(t *testing.T) {
	store := idempotency.NewInMemoryStore(0)

	err := store.Complete(context.Background(), "k1", kernel.UUID{})

	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestInMemoryStore_ConcurrentReserveHasOneWinner(t *testing.T) {
	store := idempotency.NewInMemoryStore(time.Minute)
	var winners atomic.Int32

	var wg conc.WaitGroup
	for range 20 {
		wg.Go(func() {
			if _, _, err := store.Reserve(context.Background(), "shared"); err == nil {
				winners.Add(1)
			}
		})
	}
	wg.Wait()

	assert.EqualValues(t, 1, winners.Load())
}

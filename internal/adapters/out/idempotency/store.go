// Package idempotency deduplicates retried commissioning requests in process memory.
package idempotency

import (
	"context"
	"time"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"

	goCache "github.com/patrickmn/go-cache"
)

const (
	DefaultTTL             = 10 * time.Minute
	defaultCleanupInterval = time.Minute
)

type record struct {
	lineID    kernel.UUID
	completed bool
}

// InMemoryStore implements ports.IdempotencyStore on go-cache. Reservations rely on
// Cache.Add, which fails when the key is present, so exactly one caller wins a key.
type InMemoryStore struct {
	cache *goCache.Cache
	ttl   time.Duration
}

// NewInMemoryStore keeps keys for ttl. A non-positive ttl means DefaultTTL.
func NewInMemoryStore(ttl time.Duration) *InMemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &InMemoryStore{
		cache: goCache.New(ttl, defaultCleanupInterval),
		ttl:   ttl,
	}
}

func (s *InMemoryStore) Reserve(_ context.Context, key string) (kernel.UUID, bool, error) {
	for {
		if err := s.cache.Add(key, record{}, s.ttl); err == nil {
			return kernel.UUID{}, false, nil
		}

		v, found := s.cache.Get(key)
		if !found {
			// Expired between Add and Get.
			continue
		}

		r, _ := v.(record)
		if r.completed {
			return r.lineID, true, nil
		}
		return kernel.UUID{}, false, errs.NewOperationInProgressError("idempotency key", key)
	}
}

func (s *InMemoryStore) Complete(_ context.Context, key string, lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}
	s.cache.Set(key, record{lineID: lineID, completed: true}, s.ttl)
	return nil
}

func (s *InMemoryStore) Release(_ context.Context, key string) {
	s.cache.Delete(key)
}

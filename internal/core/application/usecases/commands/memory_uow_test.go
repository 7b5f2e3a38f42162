package commands_test

import (
	"context"
	"sync"
	"time"

	"telecom/internal/core/application/usecases/commands"
	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/audit"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/core/ports"
	"telecom/internal/pkg/errs"
)

func timeNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// memoryStore is a docker-free stand-in for the database. Writes are applied
// immediately; GetForUpdate takes a per-line lock released on Commit or Rollback,
// which is all the engine relies on.
type memoryStore struct {
	mu       sync.Mutex
	lines    map[kernel.UUID]*line.Line
	accounts map[kernel.UUID]*account.Account
	entries  []*audit.Entry
	rowLocks map[kernel.UUID]*sync.Mutex
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		lines:    map[kernel.UUID]*line.Line{},
		accounts: map[kernel.UUID]*account.Account{},
		rowLocks: map[kernel.UUID]*sync.Mutex{},
	}
}

func (s *memoryStore) rowLock(id kernel.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.rowLocks[id]
	if !ok {
		l = &sync.Mutex{}
		s.rowLocks[id] = l
	}
	return l
}

func (s *memoryStore) putLine(l *line.Line) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[l.ID()] = copyLine(l)
}

func (s *memoryStore) line(id kernel.UUID) *line.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLine(s.lines[id])
}

func (s *memoryStore) auditEntries() []*audit.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*audit.Entry(nil), s.entries...)
}

func copyLine(l *line.Line) *line.Line {
	if l == nil {
		return nil
	}
	c, err := line.RestoreLine(l.ID(), l.AccountID(), l.MSISDN(), l.PlanName(), l.Status(), l.CreatedAt())
	if err != nil {
		panic(err)
	}
	return c
}

type memoryUoW struct {
	store *memoryStore
	held  []*sync.Mutex
}

func (u *memoryUoW) Begin(context.Context) error { return nil }

func (u *memoryUoW) Commit(context.Context) error {
	u.release()
	return nil
}

func (u *memoryUoW) Rollback(context.Context) error {
	u.release()
	return nil
}

func (u *memoryUoW) release() {
	for _, l := range u.held {
		l.Unlock()
	}
	u.held = nil
}

func (u *memoryUoW) LineRepository() ports.LineRepository       { return memoryLines{u} }
func (u *memoryUoW) AccountRepository() ports.AccountRepository { return memoryAccounts{u.store} }
func (u *memoryUoW) AuditRepository() ports.AuditRepository     { return memoryAudit{u.store} }

type memoryLines struct{ uow *memoryUoW }

func (r memoryLines) Add(_ context.Context, l *line.Line) error {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.lines {
		if existing.MSISDN() == l.MSISDN() {
			return errs.NewObjectAlreadyExistsError("msisdn", l.MSISDN())
		}
	}
	s.lines[l.ID()] = copyLine(l)
	return nil
}

func (r memoryLines) Get(_ context.Context, id kernel.UUID) (*line.Line, error) {
	l := r.uow.store.line(id)
	if l == nil {
		return nil, errs.NewObjectNotFoundError("line", id.String())
	}
	return l, nil
}

func (r memoryLines) GetForUpdate(ctx context.Context, id kernel.UUID) (*line.Line, error) {
	lock := r.uow.store.rowLock(id)
	lock.Lock()
	r.uow.held = append(r.uow.held, lock)
	return r.Get(ctx, id)
}

func (r memoryLines) UpdateStatus(_ context.Context, l *line.Line, expected line.Status) error {
	s := r.uow.store
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.lines[l.ID()]
	if !ok || stored.Status() != expected {
		return errs.NewObjectIsStaleError("line", l.ID().String(), expected.String())
	}
	s.lines[l.ID()] = copyLine(l)
	return nil
}

type memoryAccounts struct{ store *memoryStore }

func (r memoryAccounts) Add(_ context.Context, a *account.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.accounts[a.ID()] = a
	return nil
}

func (r memoryAccounts) Update(ctx context.Context, a *account.Account) error {
	return r.Add(ctx, a)
}

func (r memoryAccounts) Get(_ context.Context, id kernel.UUID) (*account.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	a, ok := r.store.accounts[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("account", id.String())
	}
	return a, nil
}

func (r memoryAccounts) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	_, ok := r.store.accounts[id]
	return ok, nil
}

type memoryAudit struct{ store *memoryStore }

func (r memoryAudit) Add(_ context.Context, e *audit.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.entries = append(r.store.entries, e)
	return nil
}

func (r memoryAudit) ListByResource(_ context.Context, resourceType string, resourceID string) ([]*audit.Entry, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var out []*audit.Entry
	for _, e := range r.store.entries {
		if e.ResourceType() == resourceType && e.ResourceID() == resourceID {
			out = append(out, e)
		}
	}
	return out, nil
}

type memoryLineUoWFactory struct{ store *memoryStore }

func (f memoryLineUoWFactory) Create() commands.LineUoW { return &memoryUoW{store: f.store} }

type memoryAuditUoWFactory struct{ store *memoryStore }

func (f memoryAuditUoWFactory) Create() commands.AuditUoW { return &memoryUoW{store: f.store} }

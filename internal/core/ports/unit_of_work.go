// Package ports defines the contracts between the application core and its adapters.
package ports

import (
	"context"
)

// UnitOfWorkFactory hands out one UnitOfWork per operation. Concurrent
// commissions of the same line each get their own transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin run inside the transaction; repositories
// obtained without an open transaction run directly against the database.
type UnitOfWork interface {
	// Begin starts a transaction; calling it again while one is open is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	LineRepository() LineRepository
	AccountRepository() AccountRepository
	AuditRepository() AuditRepository
}

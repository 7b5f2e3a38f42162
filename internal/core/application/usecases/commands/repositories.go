// Package commands contains the operations that change line, account and audit state.
// Every handler validates its command, runs inside a unit of work and records an
// audit entry after its business transaction committed.
package commands

import (
	"context"

	"telecom/internal/core/ports"
)

// Unit of work views scoped to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LineRepoFactory interface {
		LineRepository() ports.LineRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	AuditRepoFactory interface {
		AuditRepository() ports.AuditRepository
	}

	// LineUoW covers line operations. Creating a line also checks the owning account.
	LineUoW interface {
		TxManager
		LineRepoFactory
		AccountRepoFactory
	}

	LineUoWFactory interface {
		Create() LineUoW
	}

	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// AuditUoW is used by the recorder, always in a transaction of its own.
	AuditUoW interface {
		TxManager
		AuditRepoFactory
	}

	AuditUoWFactory interface {
		Create() AuditUoW
	}
)

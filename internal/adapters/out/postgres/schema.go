package postgres

import (
	"telecom/internal/adapters/out/postgres/accountrepo"
	"telecom/internal/adapters/out/postgres/auditrepo"
	"telecom/internal/adapters/out/postgres/linerepo"

	"gorm.io/gorm"
)

// Tables lists every table owned by the service, in truncation-safe order.
var Tables = []string{"audit_entries", "lines", "accounts"}

// Migrate creates or updates the schema of accounts, lines and audit entries.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&accountrepo.AccountDTO{}, &linerepo.LineDTO{}, &auditrepo.EntryDTO{})
}

// Package accountrepo persists account aggregates with GORM.
package accountrepo

import (
	"time"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type AccountDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName  string    `gorm:"size:255;not null"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_accounts_email"`
	Phone     string    `gorm:"size:64;not null"`
	Status    string    `gorm:"size:16;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index"`
}

func (AccountDTO) TableName() string {
	return "accounts"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	return AccountDTO{
		ID:        aggregate.ID().Bytes(),
		FullName:  aggregate.FullName(),
		Email:     aggregate.Email(),
		Phone:     aggregate.Phone(),
		Status:    string(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// ToDomain is exported for the account query handlers, which read rows directly.
func ToDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.RestoreAccount(id, dto.FullName, dto.Email, dto.Phone, account.Status(dto.Status), dto.CreatedAt)
}

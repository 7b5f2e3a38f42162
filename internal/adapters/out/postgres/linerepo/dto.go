// Package linerepo persists line aggregates with GORM.
package linerepo

import (
	"time"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"

	"github.com/google/uuid"
)

// LineDTO is the row of the lines table. msisdn carries the unique index that
// enforces subscriber number uniqueness.
type LineDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index:idx_lines_account_created,priority:1"`
	MSISDN    string    `gorm:"column:msisdn;size:32;not null;uniqueIndex:idx_lines_msisdn"`
	PlanName  string    `gorm:"size:128;not null"`
	Status    string    `gorm:"size:16;not null;index"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false;index:idx_lines_account_created,priority:2"`
}

func (LineDTO) TableName() string {
	return "lines"
}

func fromDomain(aggregate *line.Line) LineDTO {
	return LineDTO{
		ID:        aggregate.ID().Bytes(),
		AccountID: aggregate.AccountID().Bytes(),
		MSISDN:    aggregate.MSISDN(),
		PlanName:  aggregate.PlanName(),
		Status:    string(aggregate.Status()),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func toDomain(dto LineDTO) (*line.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	accountID, err := kernel.UUIDFromBytes(dto.AccountID[:])
	if err != nil {
		return nil, err
	}

	return line.RestoreLine(id, accountID, dto.MSISDN, dto.PlanName, line.Status(dto.Status), dto.CreatedAt)
}

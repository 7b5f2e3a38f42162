package linerepo

import (
	"context"
	"errors"

	"telecom/internal/adapters/out/postgres/pgerr"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLineRepository implements ports.LineRepository using GORM.
type GormLineRepository struct {
	db *gorm.DB
}

func NewGormLineRepository(db *gorm.DB) *GormLineRepository {
	return &GormLineRepository{db: db}
}

// Add inserts a new line, translating a msisdn unique violation into a conflict.
func (r *GormLineRepository) Add(ctx context.Context, aggregate *line.Line) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if _, ok := pgerr.UniqueViolation(err); ok {
			return errs.NewObjectAlreadyExistsErrorWithCause("msisdn", aggregate.MSISDN(), err)
		}
		return err
	}

	return nil
}

func (r *GormLineRepository) Get(ctx context.Context, id kernel.UUID) (*line.Line, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the row with SELECT ... FOR UPDATE.
func (r *GormLineRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*line.Line, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormLineRepository) get(db *gorm.DB, id kernel.UUID) (*line.Line, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LineDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus is a conditional write:
//
//	UPDATE lines SET status = $new WHERE id = $id AND status = $expected
//
// Zero affected rows means another writer got there first.
func (r *GormLineRepository) UpdateStatus(ctx context.Context, aggregate *line.Line, expected line.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&LineDTO{}).
		Where("id = ? AND status = ?", aggregate.ID().Bytes(), string(expected)).
		Update("status", string(aggregate.Status()))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectIsStaleError("line", aggregate.ID().String(), expected.String())
	}

	return nil
}

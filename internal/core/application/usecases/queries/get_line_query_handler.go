package queries

import (
	"context"
	"database/sql"
	"errors"

	"telecom/internal/core/domain/model/line"
	"telecom/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetLineQueryHandler struct {
	db *gorm.DB
}

func NewGetLineQueryHandler(db *gorm.DB) GetLineQueryHandler {
	return GetLineQueryHandler{db: db}
}

func (h GetLineQueryHandler) Handle(ctx context.Context, query GetLineQuery) (LineResponse, error) {
	if err := query.Validate(); err != nil {
		return LineResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+lineColumns+`
		FROM lines
		WHERE id = ?
	`, query.LineID().Bytes()).Row()

	l, err := scanLine(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LineResponse{}, errs.NewObjectNotFoundError(line.ResourceType, query.LineID().String())
		}
		return LineResponse{}, err
	}

	return l, nil
}

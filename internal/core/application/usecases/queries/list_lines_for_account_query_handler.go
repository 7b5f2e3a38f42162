package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListLinesForAccountQueryHandler struct {
	db *gorm.DB
}

func NewListLinesForAccountQueryHandler(db *gorm.DB) ListLinesForAccountQueryHandler {
	return ListLinesForAccountQueryHandler{db: db}
}

// Handle returns an empty slice, not an error, for an account without lines.
func (h ListLinesForAccountQueryHandler) Handle(
	ctx context.Context,
	query ListLinesForAccountQuery,
) ([]LineResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+lineColumns+`
		FROM lines
		WHERE account_id = ?
		ORDER BY created_at, id
		LIMIT ?
	`, query.AccountID().Bytes(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]LineResponse, 0)
	for rows.Next() {
		l, scanErr := scanLine(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		lines = append(lines, l)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

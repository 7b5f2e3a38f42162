package queries

import (
	"context"
	"errors"

	"telecom/internal/core/domain/model/line"
	"telecom/internal/pkg/guard"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

var ErrCountLinesByStatusQueryIsNotConstructed = errors.New(
	"CountLinesByStatusQuery must be created via NewCountLinesByStatusQuery constructor",
)

// CountLinesByStatusQuery backs the periodic inventory report.
type CountLinesByStatusQuery struct {
	guard guard.ConstructorGuard
}

func NewCountLinesByStatusQuery() CountLinesByStatusQuery {
	return CountLinesByStatusQuery{guard: guard.NewConstructorGuard()}
}

func (q CountLinesByStatusQuery) Validate() error {
	return q.guard.Validate(ErrCountLinesByStatusQueryIsNotConstructed)
}

type CountLinesByStatusQueryHandler struct {
	db *gorm.DB
}

func NewCountLinesByStatusQueryHandler(db *gorm.DB) CountLinesByStatusQueryHandler {
	return CountLinesByStatusQueryHandler{db: db}
}

// Handle returns a count for every status, including statuses with no lines.
func (h CountLinesByStatusQueryHandler) Handle(
	ctx context.Context,
	query CountLinesByStatusQuery,
) (map[line.Status]int64, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	counts := lo.SliceToMap(line.Statuses(), func(s line.Status) (line.Status, int64) {
		return s, 0
	})

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT status, COUNT(*)
		FROM lines
		GROUP BY status
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int64
		)
		if err = rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[line.Status(status)] = count
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

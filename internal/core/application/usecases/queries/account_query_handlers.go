package queries

import (
	"context"
	"database/sql"
	"errors"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetAccountQueryHandler struct {
	db *gorm.DB
}

func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

func (h GetAccountQueryHandler) Handle(ctx context.Context, query GetAccountQuery) (AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return AccountResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+accountColumns+`
		FROM accounts
		WHERE id = ?
	`, query.AccountID().Bytes()).Row()

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AccountResponse{}, errs.NewObjectNotFoundError(account.ResourceType, query.AccountID().String())
		}
		return AccountResponse{}, err
	}

	return acc, nil
}

type ListAccountsQueryHandler struct {
	db *gorm.DB
}

func NewListAccountsQueryHandler(db *gorm.DB) ListAccountsQueryHandler {
	return ListAccountsQueryHandler{db: db}
}

func (h ListAccountsQueryHandler) Handle(ctx context.Context, query ListAccountsQuery) ([]AccountResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+accountColumns+`
		FROM accounts
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]AccountResponse, 0)
	for rows.Next() {
		acc, scanErr := scanAccount(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		accounts = append(accounts, acc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

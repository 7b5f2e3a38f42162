// Package queries contains read operations. Handlers run plain SQL through GORM
// and return read models; they never take locks or open transactions.
package queries

import (
	"errors"
	"time"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/core/domain/model/line"
	"telecom/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// normalizeLimit maps a non-positive limit to DefaultLimit and caps it at MaxLimit.
func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

func normalizeOffset(offset int) (int, error) {
	if offset < 0 {
		return 0, errs.NewValueIsOutOfRangeError("offset", offset, 0, "unbounded")
	}
	return offset, nil
}

// LineResponse is the read model of a line.
type LineResponse struct {
	ID        kernel.UUID
	AccountID kernel.UUID
	MSISDN    string
	PlanName  string
	Status    line.Status
	CreatedAt time.Time
}

type rowScanner interface {
	Scan(dest ...any) error
}

const lineColumns = `id, account_id, msisdn, plan_name, status, created_at`

func scanLine(row rowScanner) (LineResponse, error) {
	var (
		resp      LineResponse
		id        uuid.UUID
		accountID uuid.UUID
		status    string
	)
	if err := row.Scan(&id, &accountID, &resp.MSISDN, &resp.PlanName, &status, &resp.CreatedAt); err != nil {
		return LineResponse{}, err
	}

	lineID, idErr := kernel.UUIDFromBytes(id[:])
	accID, accErr := kernel.UUIDFromBytes(accountID[:])
	if err := errors.Join(idErr, accErr); err != nil {
		return LineResponse{}, err
	}

	resp.ID = lineID
	resp.AccountID = accID
	resp.Status = line.Status(status)
	resp.CreatedAt = resp.CreatedAt.UTC()
	return resp, nil
}

package queries_test

import (
	"testing"

	"telecom/internal/core/application/usecases/queries"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListLinesForAccountQuery_Limit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero means default", limit: 0, want: queries.DefaultLimit},
		{name: "negative means default", limit: -5, want: queries.DefaultLimit},
		{name: "within range kept", limit: 25, want: 25},
		{name: "above max capped", limit: 5000, want: queries.MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := queries.NewListLinesForAccountQuery(kernel.NewUUID(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Limit())
		})
	}
}

func TestNewListLinesForAccountQuery_InvalidAccount(t *testing.T) {
	_, err := queries.NewListLinesForAccountQuery(kernel.UUID{}, 10)

	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewListAccountsQuery_NegativeOffset(t *testing.T) {
	_, err := queries.NewListAccountsQuery(10, -1)

	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestNewListAuditEntriesQuery_RequiresResourceType(t *testing.T) {
	_, err := queries.NewListAuditEntriesQuery("  ", "", 0)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestZeroValueQueries_AreNotConstructed(t *testing.T) {
	assert.ErrorIs(t, queries.GetLineQuery{}.Validate(), queries.ErrGetLineQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAccountQuery{}.Validate(), queries.ErrGetAccountQueryIsNotConstructed)
	assert.ErrorIs(t, queries.CountLinesByStatusQuery{}.Validate(), queries.ErrCountLinesByStatusQueryIsNotConstructed)
}

package account_test

import (
	"testing"
	"time"

	"telecom/internal/core/domain/model/account"
	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("defaults to active", func(t *testing.T) {
		a, err := account.NewAccount(kernel.NewUUID(), "Ada Lovelace", "Ada@Example.com", "+441234", account.Unknown)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, account.Active, a.Status())
		assert.Equal(t, "ada@example.com", a.Email())
	})

	t.Run("rejects bad fields", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "", "not-an-email", "", "FROZEN")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "phone")
		assert.Contains(t, err.Error(), "full name")
	})
}

func TestAccount_Update(t *testing.T) {
	newAccount := func(t *testing.T) *account.Account {
		t.Helper()
		a, err := account.RestoreAccount(kernel.NewUUID(), "Ada", "ada@example.com", "+44", account.Active, time.Now())
		require.NoError(t, err)
		return a
	}

	t.Run("replaces only provided fields", func(t *testing.T) {
		a := newAccount(t)

		err := a.Update(account.Changes{
			Phone:  lo.ToPtr("+4499"),
			Status: lo.ToPtr(account.Closed),
		})

		require.NoError(t, err)
		assert.Equal(t, "Ada", a.FullName())
		assert.Equal(t, "+4499", a.Phone())
		assert.Equal(t, account.Closed, a.Status())
	})

	t.Run("any status may follow any other", func(t *testing.T) {
		a := newAccount(t)
		for _, s := range []account.Status{account.Closed, account.Active, account.Suspended, account.Active} {
			require.NoError(t, a.Update(account.Changes{Status: lo.ToPtr(s)}))
		}
	})

	t.Run("leaves the account untouched on error", func(t *testing.T) {
		a := newAccount(t)

		err := a.Update(account.Changes{
			FullName: lo.ToPtr("Grace"),
			Email:    lo.ToPtr("broken"),
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "Ada", a.FullName())
		assert.Equal(t, "ada@example.com", a.Email())
	})
}

func TestParseStatus(t *testing.T) {
	s, err := account.ParseStatus("SUSPENDED")
	require.NoError(t, err)
	assert.Equal(t, account.Suspended, s)

	_, err = account.ParseStatus("suspended")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

package kernel_test

import (
	"testing"

	"telecom/internal/core/domain/model/kernel"
	"telecom/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActor_DisplayName(t *testing.T) {
	principal, err := kernel.NewNamedPrincipal("  alice ", "ADMIN")
	require.NoError(t, err)
	system, err := kernel.NewSystemActor("seed-script")
	require.NoError(t, err)

	tests := []struct {
		name     string
		actor    kernel.Actor
		wantName string
		wantOK   bool
	}{
		{"named principal", principal, "alice", true},
		{"system actor", system, "seed-script", true},
		{"anonymous", kernel.Anonymous{}, "", false},
		{"nil actor", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := kernel.ActorDisplayName(tt.actor)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantOK, ok)
		})
	}

	assert.Equal(t, "ADMIN", principal.Role())
}

func TestActor_Constructors(t *testing.T) {
	t.Run("principal name is required", func(t *testing.T) {
		_, err := kernel.NewNamedPrincipal("   ", "ADMIN")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("system label is required", func(t *testing.T) {
		_, err := kernel.NewSystemActor("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

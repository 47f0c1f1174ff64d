package services

import (
	"context"
	"testing"

	testdb "github.com/fleetworks/conductor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivePattern(t *testing.T) {
	tests := []struct {
		name  string
		tool  string
		input string
		want  string
	}{
		{"shell command generalizes to first token", "Bash", "npm install left-pad", "npm *"},
		{"shell tool name is case-insensitive", "bash", "git push origin main", "git *"},
		{"single-token shell command stays exact", "Bash", "ls", "ls"},
		{"non-shell tool keeps exact input", "Write", "/srv/app/config.yaml", "/srv/app/config.yaml"},
		{"whitespace trimmed", "Bash", "  make test  ", "make *"},
		{"empty input yields empty pattern", "Bash", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePattern(tt.tool, tt.input))
		})
	}
}

func TestPermissionService_Approve(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewPermissionService(client.Client)
	ctx := context.Background()

	proj := createTestProject(t, client.Client, "PRM")
	tk := createTestTicket(t, client.Client, proj.ID, "supervised work")

	t.Run("derives pattern from input", func(t *testing.T) {
		perm, err := svc.Approve(ctx, tk.ID, "Bash", "npm install left-pad", "")
		require.NoError(t, err)
		assert.Equal(t, "npm *", perm.Pattern)
		assert.Equal(t, "Bash", perm.Tool)
	})

	t.Run("explicit pattern wins", func(t *testing.T) {
		perm, err := svc.Approve(ctx, tk.ID, "Bash", "git push origin main", "git push *")
		require.NoError(t, err)
		assert.Equal(t, "git push *", perm.Pattern)
	})

	t.Run("duplicate approval is idempotent", func(t *testing.T) {
		first, err := svc.Approve(ctx, tk.ID, "Bash", "make test", "")
		require.NoError(t, err)
		second, err := svc.Approve(ctx, tk.ID, "Bash", "make build", "")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
	})

	t.Run("validates tool and pattern", func(t *testing.T) {
		_, err := svc.Approve(ctx, tk.ID, " ", "x", "")
		assert.True(t, IsValidationError(err))

		_, err = svc.Approve(ctx, tk.ID, "Bash", "", "")
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown ticket", func(t *testing.T) {
		_, err := svc.Approve(ctx, 99999, "Bash", "ls", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("lists approvals in creation order", func(t *testing.T) {
		perms, err := svc.Approved(ctx, tk.ID)
		require.NoError(t, err)
		require.Len(t, perms, 3)
		assert.Equal(t, "npm *", perms[0].Pattern)
	})
}

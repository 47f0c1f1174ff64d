package services

import (
	"context"
	"strings"
	"testing"

	"github.com/fleetworks/conductor/ent/project"
	"github.com/fleetworks/conductor/pkg/models"
	testdb "github.com/fleetworks/conductor/test/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestProjectService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	t.Run("creates with defaults", func(t *testing.T) {
		p, err := svc.Create(ctx, models.CreateProjectRequest{Code: "SHOP", Name: "Shop backend"})
		require.NoError(t, err)

		assert.Equal(t, "SHOP", p.Code)
		assert.Equal(t, project.DefaultExecutionModeAutonomous, p.DefaultExecutionMode)
		assert.Equal(t, project.ModelTierSmart, p.ModelTier)
		assert.True(t, p.GitEnabled)
		assert.Equal(t, 1, p.NextTicketSeq)
		assert.False(t, p.Archived)
	})

	t.Run("stores explicit settings", func(t *testing.T) {
		p, err := svc.Create(ctx, models.CreateProjectRequest{
			Code:                 "API2",
			Name:                 "API v2",
			WebPath:              "/srv/api/web",
			AppPath:              "/srv/api/app",
			DefaultExecutionMode: "supervised",
			ModelTier:            "fast",
			GitEnabled:           boolPtr(false),
		})
		require.NoError(t, err)

		assert.Equal(t, project.DefaultExecutionModeSupervised, p.DefaultExecutionMode)
		assert.Equal(t, project.ModelTierFast, p.ModelTier)
		assert.False(t, p.GitEnabled)
		assert.Equal(t, "/srv/api/web", p.WebPath)
	})

	t.Run("rejects malformed codes", func(t *testing.T) {
		for _, code := range []string{"", "a", "X", "lower", "TOOLONGCODE", "HAS SPACE", "1ST"} {
			_, err := svc.Create(ctx, models.CreateProjectRequest{Code: code, Name: "x"})
			assert.Truef(t, IsValidationError(err), "code %q should be rejected", code)
		}
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateProjectRequest{Code: "SHOP", Name: "again"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := svc.Create(ctx, models.CreateProjectRequest{Code: "NONAME", Name: "  "})
		assert.True(t, IsValidationError(err))
	})
}

func TestProjectService_UpdateAndArchive(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, client.Client, "UPD")

	t.Run("partial update", func(t *testing.T) {
		updated, err := svc.Update(ctx, p.ID, models.UpdateProjectRequest{
			Name:      strPtr("Renamed"),
			ModelTier: strPtr("fast"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Name)
		assert.Equal(t, project.ModelTierFast, updated.ModelTier)
		// Untouched fields survive.
		assert.Equal(t, "UPD", updated.Code)
	})

	t.Run("clearing a path", func(t *testing.T) {
		_, err := svc.Update(ctx, p.ID, models.UpdateProjectRequest{WebPath: strPtr("/srv/web")})
		require.NoError(t, err)
		updated, err := svc.Update(ctx, p.ID, models.UpdateProjectRequest{WebPath: strPtr("")})
		require.NoError(t, err)
		assert.Empty(t, updated.WebPath)
	})

	t.Run("invalid tier", func(t *testing.T) {
		_, err := svc.Update(ctx, p.ID, models.UpdateProjectRequest{ModelTier: strPtr("enormous")})
		assert.True(t, IsValidationError(err))
	})

	t.Run("archive hides from active list", func(t *testing.T) {
		other := createTestProject(t, client.Client, "KEEP")

		_, err := svc.Archive(ctx, p.ID)
		require.NoError(t, err)

		active, err := svc.Active(ctx)
		require.NoError(t, err)
		require.Len(t, active, 1)
		assert.Equal(t, other.ID, active[0].ID)

		all, err := svc.List(ctx, true)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := svc.Update(ctx, 99999, models.UpdateProjectRequest{Name: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProjectService_Knowledge(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, client.Client, "KNW")

	t.Run("appends bulleted notes", func(t *testing.T) {
		require.NoError(t, svc.AppendKnowledge(ctx, p.ID, "tests require the vault sidecar"))
		require.NoError(t, svc.AppendKnowledge(ctx, p.ID, "payments module owns retries"))

		reloaded, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, "- tests require the vault sidecar\n- payments module owns retries\n", reloaded.Knowledge)
	})

	t.Run("blank notes are dropped", func(t *testing.T) {
		require.NoError(t, svc.AppendKnowledge(ctx, p.ID, "   "))

		reloaded, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(reloaded.Knowledge, "\n"))
	})

	t.Run("trims oldest lines past the cap", func(t *testing.T) {
		long := strings.Repeat("x", 1024)
		for i := 0; i < 40; i++ {
			require.NoError(t, svc.AppendKnowledge(ctx, p.ID, long))
		}

		reloaded, err := svc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(reloaded.Knowledge), maxKnowledgeBytes)
		// The earliest notes are the ones trimmed.
		assert.NotContains(t, reloaded.Knowledge, "vault sidecar")
	})
}

func TestProjectService_SetMap(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := NewProjectService(client.Client)
	ctx := context.Background()

	p := createTestProject(t, client.Client, "MAP")

	require.NoError(t, svc.SetMap(ctx, p.ID, "cmd/ entrypoints\npkg/ libraries"))

	reloaded, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Contains(t, reloaded.MapContent, "entrypoints")
	require.NotNil(t, reloaded.MapGeneratedAt)
}

package heartbeat

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetworks/conductor/ent/daemonstatus"
	"github.com/fleetworks/conductor/pkg/models"
	"github.com/fleetworks/conductor/pkg/scheduler"
	"github.com/fleetworks/conductor/pkg/services"
	testdb "github.com/fleetworks/conductor/test/database"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestService_BeatPublishesSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	tickets := services.NewTicketService(client.Client)
	status := services.NewStatusService(client.Client)

	proj, err := services.NewProjectService(client.Client).Create(ctx, models.CreateProjectRequest{
		Code: "HRT", Name: "Heartbeat fixture",
	})
	require.NoError(t, err)
	tk, err := tickets.Create(ctx, models.CreateTicketRequest{ProjectID: proj.ID, Title: "Live work"})
	require.NoError(t, err)

	health := func() scheduler.Health {
		return scheduler.Health{Running: true, ActiveWorkers: 1, MaxWorkers: 3, ActiveTickets: []int{tk.ID}}
	}
	svc := NewService(30*time.Second, "", status, tickets, health, "1.2.3", testLogger())
	svc.started = time.Now().UTC()

	svc.beat(ctx, daemonstatus.StatusRunning)

	row, err := status.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, daemonstatus.StatusRunning, row.Status)
	assert.Equal(t, 1, row.ActiveTickets)
	assert.Equal(t, []string{tk.TicketNumber}, row.CurrentTickets)
	assert.Equal(t, "1.2.3", row.Version)
	assert.Equal(t, os.Getpid(), row.Pid)
	assert.WithinDuration(t, time.Now(), row.LastHeartbeatAt, 5*time.Second)
}

func TestService_UnknownTicketDegradesToID(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	tickets := services.NewTicketService(client.Client)
	status := services.NewStatusService(client.Client)

	health := func() scheduler.Health {
		return scheduler.Health{Running: true, ActiveTickets: []int{999}}
	}
	svc := NewService(30*time.Second, "", status, tickets, health, "dev", testLogger())
	svc.started = time.Now().UTC()

	svc.beat(ctx, daemonstatus.StatusRunning)

	row, err := status.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"#999"}, row.CurrentTickets)
}

func TestService_LivenessFile(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	tickets := services.NewTicketService(client.Client)
	status := services.NewStatusService(client.Client)

	path := filepath.Join(t.TempDir(), "conductor.alive")
	health := func() scheduler.Health { return scheduler.Health{Running: true} }
	svc := NewService(30*time.Second, path, status, tickets, health, "dev", testLogger())
	svc.started = time.Now().UTC()

	svc.beat(ctx, daemonstatus.StatusRunning)

	require.NoError(t, Check(path, time.Minute))

	// Tmp file must not linger after the rename.
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, Check(filepath.Join(dir, "nope"), time.Minute))
	})

	t.Run("malformed content", func(t *testing.T) {
		path := filepath.Join(dir, "bad")
		require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o644))
		assert.Error(t, Check(path, time.Minute))
	})

	t.Run("stale heartbeat", func(t *testing.T) {
		path := filepath.Join(dir, "stale")
		old := time.Now().UTC().Add(-10 * time.Minute).Format(time.RFC3339)
		require.NoError(t, os.WriteFile(path, []byte("123 "+old+"\n"), 0o644))
		err := Check(path, time.Minute)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "old")
	})

	t.Run("fresh heartbeat", func(t *testing.T) {
		path := filepath.Join(dir, "fresh")
		now := time.Now().UTC().Format(time.RFC3339)
		require.NoError(t, os.WriteFile(path, []byte("123 "+now+"\n"), 0o644))
		assert.NoError(t, Check(path, time.Minute))
	})
}

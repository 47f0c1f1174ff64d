package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/fleetworks/conductor/ent"
	"github.com/fleetworks/conductor/ent/executionsession"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newMigratedClient provisions PostgreSQL (external via CI_DATABASE_URL, or a
// testcontainer locally) and applies the embedded migrations through the same
// path production uses. This is the one test that runs the real SQL files;
// everything else uses ent auto-migration via test/util.
func newMigratedClient(t *testing.T) *Client {
	ctx := context.Background()

	connStr := os.Getenv("CI_DATABASE_URL")
	if connStr == "" {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:17-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	err = runMigrations(ctx, db, Config{Database: "test"}, drv)
	require.NoError(t, err)

	// A second pass must be a no-op.
	err = runMigrations(ctx, db, Config{Database: "test"}, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestMigrationsAndHealth(t *testing.T) {
	client := newMigratedClient(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000))
}

func TestSingleRunningSessionPerTicket(t *testing.T) {
	client := newMigratedClient(t)
	ctx := context.Background()

	project, err := client.Project.Create().
		SetCode("MIGR").
		SetName("Migration test").
		Save(ctx)
	require.NoError(t, err)

	ticket, err := client.Ticket.Create().
		SetProjectID(project.ID).
		SetTicketNumber("MIGR-0001").
		SetTitle("Exercise the partial unique index").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ExecutionSession.Create().
		SetID(uuid.NewString()).
		SetTicketID(ticket.ID).
		SetStatus(executionsession.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	// Second running session for the same ticket violates the partial
	// unique index.
	_, err = client.ExecutionSession.Create().
		SetID(uuid.NewString()).
		SetTicketID(ticket.ID).
		SetStatus(executionsession.StatusRunning).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// A finished session does not conflict.
	_, err = client.ExecutionSession.Create().
		SetID(uuid.NewString()).
		SetTicketID(ticket.ID).
		SetStatus(executionsession.StatusCompleted).
		Save(ctx)
	require.NoError(t, err)
}

func TestTicketFullTextSearch(t *testing.T) {
	client := newMigratedClient(t)
	ctx := context.Background()

	project, err := client.Project.Create().
		SetCode("FTS").
		SetName("Search test").
		Save(ctx)
	require.NoError(t, err)

	match, err := client.Ticket.Create().
		SetProjectID(project.ID).
		SetTicketNumber("FTS-0001").
		SetTitle("Fix database migration ordering").
		SetDescription("Migrations apply out of order on fresh installs").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Ticket.Create().
		SetProjectID(project.ID).
		SetTicketNumber("FTS-0002").
		SetTitle("Polish dashboard styling").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT id FROM tickets
		WHERE to_tsvector('english', title || ' ' || COALESCE(description, '')) @@ to_tsquery('english', $1)`,
		"database & migration",
	)
	require.NoError(t, err)
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, []int{match.ID}, ids)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     string
		check       func(*testing.T, Config)
	}{
		{
			name:    "defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "conductor", cfg.User)
				assert.Equal(t, "conductor", cfg.Database)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
			},
		},
		{
			name: "custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "db.example.com", cfg.Host)
				assert.Equal(t, 5433, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 50, cfg.MaxOpenConns)
			},
		},
		{
			name:    "invalid port",
			envVars: map[string]string{"DB_PORT": "invalid", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_PORT",
		},
		{
			name:    "invalid max open conns",
			envVars: map[string]string{"DB_MAX_OPEN_CONNS": "not_a_number", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name:    "invalid lifetime",
			envVars: map[string]string{"DB_CONN_MAX_LIFETIME": "forever", "DB_PASSWORD": "test"},
			wantErr: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name:    "missing password",
			envVars: map[string]string{},
			wantErr: "DB_PASSWORD is required",
		},
	}

	envKeys := []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
		"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envKeys {
				t.Setenv(key, "")
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := Config{
		Host: "localhost", Port: 5432, User: "test", Password: "test",
		Database: "test", SSLMode: "disable",
		MaxOpenConns: 10, MaxIdleConns: 5,
	}

	require.NoError(t, valid.Validate())

	noPassword := valid
	noPassword.Password = ""
	assert.Error(t, noPassword.Validate())

	idleExceedsOpen := valid
	idleExceedsOpen.MaxIdleConns = 20
	assert.Error(t, idleExceedsOpen.Validate())

	zeroOpen := valid
	zeroOpen.MaxOpenConns = 0
	assert.Error(t, zeroOpen.Validate())

	negativeIdle := valid
	negativeIdle.MaxIdleConns = -1
	assert.Error(t, negativeIdle.Validate())
}

package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/RaidBot_Go/internal/database"
)

var (
	testPool     *pgxpool.Pool
	testPoolErr  error
	testPoolOnce sync.Once
	terminate    func()
)

func TestMain(m *testing.M) {
	code := m.Run()
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupTestDB returns a migrated pool shared by every test in the package,
// skipping when Docker is unavailable.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testPoolOnce.Do(func() {
		testPool, testPoolErr = startContainer(context.Background())
	})
	if testPoolErr != nil {
		t.Skipf("Skipping integration test: %v", testPoolErr)
	}

	truncateAll(t, testPool)
	return testPool
}

func startContainer(ctx context.Context) (pool *pgxpool.Pool, err error) {
	// testcontainers panics when no Docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("docker unavailable: %v", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate = func() { _ = pgContainer.Terminate(context.Background()) }

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, fmt.Errorf("failed to get connection string: %w", err)
	}
	if err := database.Migrate(ctx, connStr); err != nil {
		return nil, err
	}
	return database.NewPool(ctx, connStr, 10, 30*time.Minute, time.Hour)
}

func truncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE guild_configs, characters, raids, raid_signups, raid_logs RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

package postgres

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dinefind/dinefind/internal/store"
	"github.com/dinefind/dinefind/internal/store/storetest"
)

func makePGStore(t *testing.T) store.Store {
	t.Helper()
	dsn := os.Getenv("DINEFIND_POSTGRES_DSN")
	if dsn == "" {
		dsn = startPostgresContainer(t)
	}
	db, err := Open(dsn)
	if err != nil {
		t.Fatalf("postgres open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return NewWithDB(db)
}

// startPostgresContainer launches a disposable Postgres via testcontainers.
// Skips when Docker is unavailable so the suite stays runnable everywhere.
func startPostgresContainer(t *testing.T) string {
	t.Helper()
	if os.Getenv("DINEFIND_SKIP_CONTAINER_TESTS") != "" {
		t.Skip("DINEFIND_SKIP_CONTAINER_TESTS set; skipping postgres store integration test")
	}
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "dinefind",
			"POSTGRES_PASSWORD": "dinefind",
			"POSTGRES_DB":       "dinefind",
		},
		WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("could not start postgres container (docker unavailable?): %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}
	return fmt.Sprintf("postgres://dinefind:dinefind@%s:%s/dinefind?sslmode=disable", host, port.Port())
}

func TestPostgresStore_Compliance(t *testing.T) {
	storetest.Run(t, makePGStore)
}

package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"

	"github.com/chainsafe/marketplace-favorites/pkg/config"
)

// RequireDockerAccess skips the test when no docker daemon socket answers.
func RequireDockerAccess(t *testing.T) {
	t.Helper()

	if os.Getenv("DOCKER_HOST") != "" {
		return
	}
	candidates := []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	}

	for _, sock := range candidates {
		if _, err := os.Stat(sock); err != nil {
			continue
		}
		conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}

	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// SetupTestDB starts a PostgreSQL testcontainer and returns a connection to it
// together with a cleanup function. The test is skipped without docker.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDockerAccess(t)
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("favorites_test"),
		postgres.WithUsername("favorites"),
		postgres.WithPassword("favorites"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "favorites",
		Password: "favorites",
		Database: "favorites_test",
		SSLMode:  "disable",
	}

	var db *bun.DB
	const maxRetries = 10
	for i := 0; i < maxRetries; i++ {
		db, err = ConnectDB(cfg)
		if err == nil {
			break
		}
		if i == maxRetries-1 {
			_ = container.Terminate(ctx)
			t.Fatalf("failed to connect to test database after %d attempts: %v", maxRetries, err)
		}
		time.Sleep(time.Duration(100*(1<<uint(i))) * time.Millisecond)
	}

	cleanup := func() {
		_ = db.Close()
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}
	return db, cleanup
}

// AssertTableExists checks if a table exists in the database
func AssertTableExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if !relationExists(t, db, "information_schema.tables", "table_name", tableName) {
		t.Errorf("table %s does not exist", tableName)
	}
}

// AssertTableNotExists checks if a table does not exist in the database
func AssertTableNotExists(t *testing.T, db *bun.DB, tableName string) {
	t.Helper()
	if relationExists(t, db, "information_schema.tables", "table_name", tableName) {
		t.Errorf("table %s should not exist but it does", tableName)
	}
}

// AssertIndexExists checks if an index exists in the database
func AssertIndexExists(t *testing.T, db *bun.DB, indexName string) {
	t.Helper()
	if !relationExists(t, db, "pg_indexes", "indexname", indexName) {
		t.Errorf("index %s does not exist", indexName)
	}
}

// AssertConstraintExists checks if a named constraint exists in the database
func AssertConstraintExists(t *testing.T, db *bun.DB, constraintName string) {
	t.Helper()
	if !relationExists(t, db, "information_schema.table_constraints", "constraint_name", constraintName) {
		t.Errorf("constraint %s does not exist", constraintName)
	}
}

// AssertRowCount checks if a table has the expected number of rows
func AssertRowCount(t *testing.T, db *bun.DB, tableName string, expected int) {
	t.Helper()

	count, err := db.NewSelect().TableExpr("?", bun.Ident(tableName)).Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count rows in table %s: %v", tableName, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", tableName, expected, count)
	}
}

func relationExists(t *testing.T, db *bun.DB, catalog, column, name string) bool {
	t.Helper()

	var exists bool
	err := db.NewSelect().
		ColumnExpr("EXISTS (SELECT 1 FROM ? WHERE ? = ?)", bun.Safe(catalog), bun.Ident(column), name).
		Scan(context.Background(), &exists)
	if err != nil {
		t.Fatalf("failed to look up %s in %s: %v", name, catalog, err)
	}
	return exists
}

package pgutil

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"

	"github.com/chainsafe/vault-discovery/pkg/config"
)

const (
	testImage    = "postgres:15-alpine"
	testDatabase = "vault_discovery_test"
	testUser     = "discovery"
	testPassword = "discovery"
)

// RequireDockerAccess skips the test when no docker daemon is reachable.
func RequireDockerAccess(t *testing.T) {
	t.Helper()

	if os.Getenv("DOCKER_HOST") != "" {
		return
	}
	for _, sock := range []string{
		"/var/run/docker.sock",
		filepath.Join(os.Getenv("HOME"), ".docker/run/docker.sock"),
	} {
		conn, err := (&net.Dialer{Timeout: time.Second}).DialContext(context.Background(), "unix", sock)
		if err == nil {
			_ = conn.Close()
			return
		}
	}
	t.Skip("docker daemon socket is not accessible; skipping testcontainer-backed tests")
}

// SetupTestDB starts a disposable postgres container and connects to it.
// The returned cleanup closes the connection and terminates the container.
func SetupTestDB(t *testing.T) (*bun.DB, func()) {
	t.Helper()
	RequireDockerAccess(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := postgres.Run(ctx, testImage,
		postgres.WithDatabase(testDatabase),
		postgres.WithUsername(testUser),
		postgres.WithPassword(testPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	terminate := func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	}

	host, err := container.Host(ctx)
	if err != nil {
		terminate()
		t.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		terminate()
		t.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     testUser,
		Password: testPassword,
		Database: testDatabase,
		SSLMode:  "disable",
	}

	// the wait strategy fires on the log line, the port can lag behind it
	var db *bun.DB
	for backoff := 100 * time.Millisecond; ; backoff *= 2 {
		db, err = ConnectDB(ctx, cfg)
		if err == nil {
			break
		}
		if ctx.Err() != nil || backoff > 5*time.Second {
			terminate()
			t.Fatalf("failed to connect to test database: %v", err)
		}
		time.Sleep(backoff)
	}

	return db, func() {
		_ = db.Close()
		terminate()
	}
}

func queryBool(t *testing.T, db bun.IDB, expr string, args ...any) bool {
	t.Helper()
	var ok bool
	if err := db.NewSelect().ColumnExpr(expr, args...).Scan(context.Background(), &ok); err != nil {
		t.Fatalf("query %q failed: %v", expr, err)
	}
	return ok
}

func tableExists(t *testing.T, db bun.IDB, table string) bool {
	t.Helper()
	return queryBool(t, db,
		"EXISTS (SELECT 1 FROM information_schema.tables WHERE table_schema = 'public' AND table_name = ?)", table)
}

// AssertTableExists fails the test when table is missing
func AssertTableExists(t *testing.T, db bun.IDB, table string) {
	t.Helper()
	if !tableExists(t, db, table) {
		t.Errorf("table %s does not exist", table)
	}
}

// AssertTableNotExists fails the test when table is present
func AssertTableNotExists(t *testing.T, db bun.IDB, table string) {
	t.Helper()
	if tableExists(t, db, table) {
		t.Errorf("table %s should not exist but it does", table)
	}
}

// AssertIndexExists fails the test when index is missing
func AssertIndexExists(t *testing.T, db bun.IDB, index string) {
	t.Helper()
	if !queryBool(t, db, "EXISTS (SELECT 1 FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)", index) {
		t.Errorf("index %s does not exist", index)
	}
}

// AssertRowCount fails the test when table does not hold exactly expected rows
func AssertRowCount(t *testing.T, db bun.IDB, table string, expected int) {
	t.Helper()
	var count int
	err := db.NewSelect().
		TableExpr("?", bun.Ident(table)).
		ColumnExpr("COUNT(*)").
		Scan(context.Background(), &count)
	if err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	if count != expected {
		t.Errorf("table %s: expected %d rows, got %d", table, expected, count)
	}
}

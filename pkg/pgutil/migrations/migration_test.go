package migrations

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/pkg/config"
	"github.com/chainsafe/vault-discovery/pkg/pgutil"
)

type snapshotDao struct {
	bun.BaseModel `bun:"table:vault_snapshots"`
	ID            int64     `bun:",pk,autoincrement"`
	ChainID       int64     `bun:",notnull"`
	Address       string    `bun:",notnull,type:varchar(42)"`
	TVL           float64   `bun:"tvl,nullzero"`
	TakenAt       time.Time `bun:",notnull,default:current_timestamp"`
}

func indexExists(t *testing.T, db *bun.DB, name string) bool {
	t.Helper()
	var exists bool
	query := `SELECT EXISTS (SELECT FROM pg_indexes WHERE schemaname = 'public' AND indexname = ?)`
	if err := db.NewRaw(query, name).Scan(context.Background(), &exists); err != nil {
		t.Fatalf("failed to check index %s: %v", name, err)
	}
	return exists
}

func TestConnectDB_Success(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	if err := db.Ping(); err != nil {
		t.Errorf("Ping() failed: %v", err)
	}
}

func TestConnectDB_InvalidHost(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "invalid-host-that-does-not-exist",
		Port:     5432,
		User:     "test",
		Password: "test",
		Database: "test",
		SSLMode:  "disable",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := pgutil.ConnectDB(ctx, cfg)
	if err == nil {
		_ = db.Close()
		t.Error("ConnectDB() should fail with invalid host")
	}
}

func TestCreateSchema(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	pgutil.AssertTableExists(t, db, "vault_snapshots")

	// idempotent
	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Errorf("CreateSchema() second call failed: %v", err)
	}
}

func TestDropTables(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := DropTables(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("DropTables() failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "vault_snapshots")

	if err := DropTables(ctx, db, &snapshotDao{}); err != nil {
		t.Errorf("DropTables() second call failed: %v", err)
	}
}

func TestCreateIndex_Composite(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}

	const name = "idx_vault_snapshots_chain_id_address"
	if err := CreateIndex(ctx, db, "vault_snapshots", name, "chain_id", "address"); err != nil {
		t.Fatalf("CreateIndex() failed: %v", err)
	}
	pgutil.AssertIndexExists(t, db, name)

	var def string
	if err := db.NewRaw(`SELECT indexdef FROM pg_indexes WHERE indexname = ?`, name).Scan(ctx, &def); err != nil {
		t.Fatalf("failed to read index definition: %v", err)
	}
	if want := "(chain_id, address)"; !strings.Contains(def, want) {
		t.Errorf("index definition %q does not cover %s", def, want)
	}

	if err := CreateIndex(ctx, db, "vault_snapshots", name, "chain_id", "address"); err != nil {
		t.Errorf("CreateIndex() second call failed: %v", err)
	}
}

func TestDropIndex(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	if err := CreateSchema(ctx, db, &snapshotDao{}); err != nil {
		t.Fatalf("CreateSchema() failed: %v", err)
	}
	if err := CreateIndex(ctx, db, "vault_snapshots", "idx_vault_snapshots_tvl", "tvl"); err != nil {
		t.Fatalf("CreateIndex() failed: %v", err)
	}

	if err := DropIndex(ctx, db, "idx_vault_snapshots_tvl"); err != nil {
		t.Fatalf("DropIndex() failed: %v", err)
	}
	if indexExists(t, db, "idx_vault_snapshots_tvl") {
		t.Error("index should be dropped but still exists")
	}

	if err := DropIndex(ctx, db, "idx_vault_snapshots_tvl"); err != nil {
		t.Errorf("DropIndex() second call failed: %v", err)
	}
}

func TestRun_RejectsBadCommands(t *testing.T) {
	if err := Run(context.Background(), nil, nil); err != ErrNoCommand {
		t.Errorf("Run() without args = %v, want ErrNoCommand", err)
	}
	err := Run(context.Background(), nil, nil, "sideways")
	if err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Run() with unknown command = %v", err)
	}
}

func TestRun_Lifecycle(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	ms := migrate.NewMigrations()
	ms.MustRegister(func(ctx context.Context, db *bun.DB) error {
		return CreateSchema(ctx, db, (*snapshotDao)(nil))
	}, func(ctx context.Context, db *bun.DB) error {
		return DropTables(ctx, db, (*snapshotDao)(nil))
	})
	migrator := migrate.NewMigrator(db, ms)

	for _, cmd := range []string{CommandInit, CommandUp, CommandStatus} {
		if err := Run(ctx, migrator, zap.NewNop(), cmd); err != nil {
			t.Fatalf("Run(%s) failed: %v", cmd, err)
		}
	}
	pgutil.AssertTableExists(t, db, "vault_snapshots")

	// a second up is a no-op
	if err := Run(ctx, migrator, zap.NewNop(), CommandUp); err != nil {
		t.Fatalf("Run(up) again failed: %v", err)
	}

	if err := Run(ctx, migrator, zap.NewNop(), CommandDown); err != nil {
		t.Fatalf("Run(down) failed: %v", err)
	}
	pgutil.AssertTableNotExists(t, db, "vault_snapshots")
}

func TestUsage(t *testing.T) {
	var sb strings.Builder
	Usage(&sb)
	for _, cmd := range []string{CommandInit, CommandUp, CommandDown, CommandStatus} {
		if !strings.Contains(sb.String(), cmd) {
			t.Errorf("usage does not mention %q", cmd)
		}
	}
}

package migrations

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/vault-discovery/pkg/fallback"
	"github.com/chainsafe/vault-discovery/pkg/migrations/discoverydb"
	"github.com/chainsafe/vault-discovery/pkg/pgutil"
)

func migrateUp(t *testing.T, db *bun.DB) *migrate.Migrator {
	t.Helper()
	ctx := context.Background()

	migrator := migrate.NewMigrator(db, discoverydb.Migrations)

	// Initialize migration system
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	// Run all migrations up
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected migrations to run, but none were applied")
	}
	return migrator
}

func TestDiscoveryDBMigrations_Apply(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()

	migrateUp(t, db)

	for _, table := range []string{"fallback_vaults", "bun_migrations"} {
		pgutil.AssertTableExists(t, db, table)
	}
	pgutil.AssertIndexExists(t, db, discoverydb.ChainAssetIndex)
}

func TestMigrations_Idempotency(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrateUp(t, db)

	// Run migrations second time - should not fail
	group, err := migrator.Migrate(ctx)
	if err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	if !group.IsZero() {
		t.Error("Expected no new migrations on second run")
	}

	pgutil.AssertTableExists(t, db, "fallback_vaults")
}

func TestMigrations_Rollback(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrateUp(t, db)

	// Rollback last migration group (all migrations run in one group by Migrate())
	group, err := migrator.Rollback(ctx)
	if err != nil {
		t.Fatalf("Rollback() failed: %v", err)
	}
	if group.IsZero() {
		t.Error("Expected rollback to process a migration")
	}

	pgutil.AssertTableNotExists(t, db, "fallback_vaults")
}

func TestSeedData_Applied(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrateUp(t, db)

	// The zero-address placeholder is not seeded
	pgutil.AssertRowCount(t, db, "fallback_vaults", 3)

	var rows []fallback.VaultDao
	err := db.NewSelect().
		Model(&rows).
		Where("chain_id = ?", 8453).
		Where("asset_symbol = ?", "WETH").
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		t.Fatalf("Failed to query seed data: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 Base WETH rows, got %d", len(rows))
	}
	if rows[0].Address != "0x27D8c7273fd3fcC6956a0B370cE5Fd4A7fc65c18" {
		t.Errorf("Expected Seamless vault first, got %s", rows[0].Address)
	}
}

func TestSeedData_Idempotency(t *testing.T) {
	db, cleanup := pgutil.SetupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	migrator := migrateUp(t, db)

	// A refreshed entry must survive rollback of the seed
	store := fallback.NewStore(db)
	err := store.Upsert(ctx, &fallback.Entry{
		ChainID:     8453,
		AssetSymbol: "USDC",
		Label:       "Refreshed USDC vault",
		Address:     "0xbeeF010f9cb27031ad51e3333f9aF9C6B1228183",
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "fallback_vaults", 4)

	// Running again must not duplicate seed rows
	if _, err = migrator.Migrate(ctx); err != nil {
		t.Fatalf("Second Migrate() failed: %v", err)
	}
	pgutil.AssertRowCount(t, db, "fallback_vaults", 4)
}

package fallback

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/pgutil"
	mghelper "github.com/chainsafe/vault-discovery/pkg/pgutil/migrations"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	if err := mghelper.CreateSchema(ctx, db, &VaultDao{}); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	return ctx, NewStore(db)
}

func TestPGStore_UpsertAndLookup(t *testing.T) {
	ctx, store := setupStore(t)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	older := &Entry{ChainID: chains.Base, AssetSymbol: "weth", Label: "old", Address: "0x27d8c7273fd3fcc6956a0b370ce5fd4a7fc65c18", UpdatedAt: base}
	newer := &Entry{ChainID: chains.Base, AssetSymbol: "WETH", Label: "new", Address: "0x5A32099837D89E3a794a44fb131CBbAD41f87a8C", UpdatedAt: base.Add(time.Hour)}

	for _, e := range []*Entry{older, newer} {
		if err := store.Upsert(ctx, e); err != nil {
			t.Fatalf("Upsert() failed: %v", err)
		}
	}

	got, err := store.Lookup(ctx, chains.Base, "weth")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if got.Address != "0x5A32099837D89E3a794a44fb131CBbAD41f87a8C" {
		t.Fatalf("expected newest entry, got %s", got.Address)
	}
	if got.AssetSymbol != "WETH" {
		t.Fatalf("expected normalized symbol WETH, got %s", got.AssetSymbol)
	}

	// Refreshing the older vault makes it the preferred one again
	older.UpdatedAt = base.Add(2 * time.Hour)
	older.Label = "refreshed"
	if err := store.Upsert(ctx, older); err != nil {
		t.Fatalf("Upsert() refresh failed: %v", err)
	}

	got, err = store.Lookup(ctx, chains.Base, "WETH")
	if err != nil {
		t.Fatalf("Lookup() failed: %v", err)
	}
	if got.Address != "0x27D8c7273fd3fcC6956a0B370cE5Fd4A7fc65c18" {
		t.Fatalf("expected checksummed refreshed entry, got %s", got.Address)
	}
	if got.Label != "refreshed" {
		t.Fatalf("expected refreshed label, got %s", got.Label)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 entries after upsert of existing address, got %d", len(all))
	}
}

func TestPGStore_LookupSkipsPlaceholder(t *testing.T) {
	ctx, store := setupStore(t)

	err := store.Upsert(ctx, &Entry{
		ChainID:     chains.Sepolia,
		AssetSymbol: "WETH",
		Label:       "placeholder",
		Address:     zeroAddress,
	})
	if err != nil {
		t.Fatalf("Upsert() failed: %v", err)
	}

	_, err = store.Lookup(ctx, chains.Sepolia, "WETH")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGStore_UpsertRejectsInvalidAddress(t *testing.T) {
	ctx, store := setupStore(t)

	err := store.Upsert(ctx, &Entry{ChainID: chains.Base, AssetSymbol: "WETH", Address: "not-an-address"})
	if err == nil {
		t.Fatal("expected error for invalid address")
	}
}

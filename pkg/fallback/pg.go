package fallback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/vault-discovery/pkg/chains"
)

// zeroAddress is stored for placeholders and never returned by Lookup.
const zeroAddress = "0x0000000000000000000000000000000000000000"

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the fallback store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// Upsert inserts the entry or refreshes label and timestamp of an existing
// (chain_id, address) row.
func (s *pgStore) Upsert(ctx context.Context, entry *Entry) error {
	if !chains.IsValidAddress(entry.Address) {
		return fmt.Errorf("invalid fallback address %q", entry.Address)
	}
	dao := toVaultDao(entry)
	dao.Address = chains.NormalizeAddress(entry.Address)
	if dao.UpdatedAt.IsZero() {
		dao.UpdatedAt = time.Now().UTC()
	}

	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (chain_id, address) DO UPDATE").
		Set("asset_symbol = EXCLUDED.asset_symbol").
		Set("label = EXCLUDED.label").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert fallback vault: %w", err)
	}
	return nil
}

// Lookup returns the most recently updated non-placeholder entry for the pair.
func (s *pgStore) Lookup(ctx context.Context, chainID int64, assetSymbol string) (*Entry, error) {
	dao := new(VaultDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("chain_id = ?", chainID).
		Where("asset_symbol = ?", normalizeSymbol(assetSymbol)).
		Where("address <> ?", zeroAddress).
		OrderExpr("updated_at DESC, id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lookup fallback vault: %w", err)
	}
	return toEntry(dao), nil
}

// List returns every stored entry ordered by chain, asset and recency.
func (s *pgStore) List(ctx context.Context) ([]*Entry, error) {
	var daos []VaultDao
	err := s.db.NewSelect().
		Model(&daos).
		OrderExpr("chain_id ASC, asset_symbol ASC, updated_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fallback vaults: %w", err)
	}
	entries := make([]*Entry, len(daos))
	for i := range daos {
		entries[i] = toEntry(&daos[i])
	}
	return entries, nil
}

var _ Store = (*pgStore)(nil)

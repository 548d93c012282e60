package discoverydb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/fallback"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("seeding fallback_vaults table...")
		for _, e := range seedRows() {
			_, err := db.NewInsert().
				Model(e).
				On("CONFLICT (chain_id, address) DO NOTHING").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("removing seed data from fallback_vaults table...")
		addresses := make([]string, 0)
		for _, e := range seedRows() {
			addresses = append(addresses, e.Address)
		}
		// Only delete the seeded rows, not refreshed ones
		_, err := db.NewDelete().
			Model((*fallback.VaultDao)(nil)).
			Where("address IN (?)", bun.In(addresses)).
			Where("updated_at <= ?", seedRows()[0].UpdatedAt).
			Exec(ctx)
		return err
	})
}

// seedRows returns the static fallback table without zero-address placeholders.
func seedRows() []*fallback.VaultDao {
	var rows []*fallback.VaultDao
	for _, e := range fallback.StaticEntries() {
		if chains.IsZeroAddress(e.Address) {
			continue
		}
		rows = append(rows, &fallback.VaultDao{
			ChainID:     e.ChainID,
			AssetSymbol: e.AssetSymbol,
			Label:       e.Label,
			Address:     e.Address,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	return rows
}

package fallback

import (
	"time"

	"github.com/uptrace/bun"
)

// VaultDao maps directly to the 'fallback_vaults' table in PostgreSQL.
type VaultDao struct {
	bun.BaseModel `bun:"table:fallback_vaults,alias:fv"`
	ID            int64     `bun:"id,pk,autoincrement"`
	ChainID       int64     `bun:"chain_id,notnull,unique:uq_fallback_vaults_chain_address"`
	AssetSymbol   string    `bun:"asset_symbol,notnull,type:varchar(32)"`
	Label         string    `bun:"label,notnull,type:varchar(255)"`
	Address       string    `bun:"address,notnull,type:varchar(42),unique:uq_fallback_vaults_chain_address"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toVaultDao(e *Entry) *VaultDao {
	return &VaultDao{
		ChainID:     e.ChainID,
		AssetSymbol: normalizeSymbol(e.AssetSymbol),
		Label:       e.Label,
		Address:     e.Address,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEntry(dao *VaultDao) *Entry {
	return &Entry{
		ChainID:     dao.ChainID,
		AssetSymbol: dao.AssetSymbol,
		Label:       dao.Label,
		Address:     dao.Address,
		UpdatedAt:   dao.UpdatedAt,
	}
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

const serviceName = "DiscoveryService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the discovery Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) started(method string, fields ...zap.Field) {
	ls.logger.Info(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)...)
}

func (ls *logService) finished(method string, start time.Time, err error, fields ...zap.Field) {
	base := []zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		ls.logger.Error(method+" failed", append(base, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", append(base, fields...)...)
}

func optionFields(opts filter.Options) []zap.Field {
	fields := []zap.Field{zap.Int("limit", opts.Limit)}
	if opts.AssetSymbol != "" {
		fields = append(fields, zap.String("asset_symbol", opts.AssetSymbol))
	}
	if opts.Chain != "" {
		fields = append(fields, zap.String("chain", opts.Chain))
	}
	if opts.ChainID != nil {
		fields = append(fields, zap.Int64("chain_id", *opts.ChainID))
	}
	if opts.SortBy != "" {
		fields = append(fields, zap.String("sort_by", string(opts.SortBy)))
	}
	return fields
}

func (ls *logService) Query(ctx context.Context, opts filter.Options) (res *discovery.Result, err error) {
	start := time.Now()
	ls.started("Query", optionFields(opts)...)
	defer func() {
		if err != nil {
			ls.finished("Query", start, err)
			return
		}
		ls.finished("Query", start, nil,
			zap.Int("vaults", len(res.Vaults)),
			zap.Int("skipped", res.Skipped),
			zap.Strings("warnings", res.Warnings))
	}()
	return ls.svc.Query(ctx, opts)
}

func (ls *logService) GetVaults(ctx context.Context, opts filter.Options) (vaults []*vault.Vault, err error) {
	start := time.Now()
	ls.started("GetVaults", optionFields(opts)...)
	defer func() { ls.finished("GetVaults", start, err, zap.Int("vaults", len(vaults))) }()
	return ls.svc.GetVaults(ctx, opts)
}

func (ls *logService) TopByYield(ctx context.Context, limit int, minTVL float64) (vaults []*vault.Vault, err error) {
	start := time.Now()
	ls.started("TopByYield", zap.Int("limit", limit), zap.Float64("min_tvl", minTVL))
	defer func() { ls.finished("TopByYield", start, err, zap.Int("vaults", len(vaults))) }()
	return ls.svc.TopByYield(ctx, limit, minTVL)
}

func (ls *logService) TopBySize(ctx context.Context, limit int) (vaults []*vault.Vault, err error) {
	start := time.Now()
	ls.started("TopBySize", zap.Int("limit", limit))
	defer func() { ls.finished("TopBySize", start, err, zap.Int("vaults", len(vaults))) }()
	return ls.svc.TopBySize(ctx, limit)
}

func (ls *logService) Search(ctx context.Context, query string, limit int) (vaults []*vault.Vault, err error) {
	start := time.Now()
	ls.started("Search", zap.String("query", query), zap.Int("limit", limit))
	defer func() { ls.finished("Search", start, err, zap.Int("vaults", len(vaults))) }()
	return ls.svc.Search(ctx, query, limit)
}

func (ls *logService) SearchVaults(ctx context.Context, opts discovery.SearchOptions) (vaults []*vault.Vault, err error) {
	start := time.Now()
	ls.started("SearchVaults",
		zap.String("query", opts.Query),
		zap.Int64s("chains", opts.Chains),
		zap.Int("limit", opts.Limit),
		zap.Int("offset", opts.Offset))
	defer func() { ls.finished("SearchVaults", start, err, zap.Int("vaults", len(vaults))) }()
	return ls.svc.SearchVaults(ctx, opts)
}

func (ls *logService) BestVaultsForAsset(ctx context.Context, assetSymbol string, limit int) (vaults []*vault.Vault, err error) {
	start := time.Now()
	ls.started("BestVaultsForAsset", zap.String("asset_symbol", assetSymbol), zap.Int("limit", limit))
	defer func() { ls.finished("BestVaultsForAsset", start, err, zap.Int("vaults", len(vaults))) }()
	return ls.svc.BestVaultsForAsset(ctx, assetSymbol, limit)
}

func (ls *logService) ResolveVaultAddress(ctx context.Context, asset, chain string) (res *discovery.Resolution, err error) {
	start := time.Now()
	ls.started("ResolveVaultAddress", zap.String("asset", asset), zap.String("chain", chain))
	defer func() {
		if err != nil {
			ls.finished("ResolveVaultAddress", start, err)
			return
		}
		ls.finished("ResolveVaultAddress", start, nil,
			zap.String("kind", string(res.Kind)),
			zap.String("address", res.Address),
			zap.Bool("degraded", res.IsDegraded()))
	}()
	return ls.svc.ResolveVaultAddress(ctx, asset, chain)
}

func (ls *logService) GetByAddress(ctx context.Context, address string, chainID int64) (v *vault.Vault, err error) {
	start := time.Now()
	ls.started("GetByAddress", zap.String("address", address), zap.Int64("chain_id", chainID))
	defer func() { ls.finished("GetByAddress", start, err, zap.Bool("found", v != nil)) }()
	return ls.svc.GetByAddress(ctx, address, chainID)
}

func (ls *logService) ChainSummary(ctx context.Context, chainID int64) (sum *discovery.Summary, err error) {
	start := time.Now()
	ls.started("ChainSummary", zap.Int64("chain_id", chainID))
	defer func() {
		if err != nil {
			ls.finished("ChainSummary", start, err)
			return
		}
		ls.finished("ChainSummary", start, nil,
			zap.Int("total_vaults", sum.TotalVaults),
			zap.Float64("total_tvl", sum.TotalTVL))
	}()
	return ls.svc.ChainSummary(ctx, chainID)
}

func (ls *logService) SupportedChainsWithVaults(ctx context.Context) (out []discovery.ChainVaultCount, err error) {
	start := time.Now()
	ls.started("SupportedChainsWithVaults")
	defer func() { ls.finished("SupportedChainsWithVaults", start, err, zap.Int("chains", len(out))) }()
	return ls.svc.SupportedChainsWithVaults(ctx)
}

func (ls *logService) VaultsByPreset(
	ctx context.Context,
	preset discovery.Preset,
	overrides filter.Options,
) (vaults []*vault.Vault, err error) {
	start := time.Now()
	ls.started("VaultsByPreset", append(optionFields(overrides), zap.String("preset", string(preset)))...)
	defer func() { ls.finished("VaultsByPreset", start, err, zap.Int("vaults", len(vaults))) }()
	return ls.svc.VaultsByPreset(ctx, preset, overrides)
}

func (ls *logService) TopVaultAddresses(ctx context.Context, chain string, n int) (addrs []string, err error) {
	start := time.Now()
	ls.started("TopVaultAddresses", zap.String("chain", chain), zap.Int("n", n))
	defer func() { ls.finished("TopVaultAddresses", start, err, zap.Int("addresses", len(addrs))) }()
	return ls.svc.TopVaultAddresses(ctx, chain, n)
}

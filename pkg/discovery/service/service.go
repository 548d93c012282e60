package service

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/fallback"
	"github.com/chainsafe/vault-discovery/pkg/morpho"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

// Defaults of the convenience queries.
const (
	DefaultTopLimit    = 10
	DefaultSearchLimit = 10
	DefaultBestLimit   = 5

	// bestMinTVL keeps dust vaults out of best-vault and address resolution.
	bestMinTVL = 10_000

	// summaryTopN is the size of the top lists in a chain summary.
	summaryTopN = 5
)

// Fetcher is the narrow upstream interface the service needs.
// *morpho.Client satisfies it.
//
//go:generate mockery --name Fetcher --output mocks --outpkg mocks --filename mock_fetcher.go --with-expecter
type Fetcher interface {
	FetchVaults(ctx context.Context, req *morpho.Request) ([]json.RawMessage, error)
}

// Service defines the vault discovery operations
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Query(ctx context.Context, opts filter.Options) (*discovery.Result, error)
	GetVaults(ctx context.Context, opts filter.Options) ([]*vault.Vault, error)
	TopByYield(ctx context.Context, limit int, minTVL float64) ([]*vault.Vault, error)
	TopBySize(ctx context.Context, limit int) ([]*vault.Vault, error)
	Search(ctx context.Context, query string, limit int) ([]*vault.Vault, error)
	SearchVaults(ctx context.Context, opts discovery.SearchOptions) ([]*vault.Vault, error)
	BestVaultsForAsset(ctx context.Context, assetSymbol string, limit int) ([]*vault.Vault, error)
	ResolveVaultAddress(ctx context.Context, asset, chain string) (*discovery.Resolution, error)
	GetByAddress(ctx context.Context, address string, chainID int64) (*vault.Vault, error)
	ChainSummary(ctx context.Context, chainID int64) (*discovery.Summary, error)
	SupportedChainsWithVaults(ctx context.Context) ([]discovery.ChainVaultCount, error)
	VaultsByPreset(ctx context.Context, preset discovery.Preset, overrides filter.Options) ([]*vault.Vault, error)
	TopVaultAddresses(ctx context.Context, chain string, n int) ([]string, error)
}

type discoveryService struct {
	fetcher  Fetcher
	registry fallback.Registry
	logger   *zap.Logger
}

// NewService creates a new discovery service. registry may be nil, in which case
// address resolution has no degraded path.
func NewService(fetcher Fetcher, registry fallback.Registry, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &discoveryService{
		fetcher:  fetcher,
		registry: registry,
		logger:   logger,
	}
}

func (s *discoveryService) GetVaults(ctx context.Context, opts filter.Options) ([]*vault.Vault, error) {
	res, err := s.Query(ctx, opts)
	if err != nil {
		return nil, err
	}
	return res.Vaults, nil
}

func (s *discoveryService) TopByYield(ctx context.Context, limit int, minTVL float64) ([]*vault.Vault, error) {
	opts := filter.Options{
		SortBy:      filter.SortByAPY,
		SortOrder:   filter.Desc,
		Limit:       orDefault(limit, DefaultTopLimit),
		ExcludeIdle: true,
	}
	if minTVL > 0 {
		opts.MinTVL = filter.Float64(minTVL)
	}
	return s.GetVaults(ctx, opts)
}

func (s *discoveryService) TopBySize(ctx context.Context, limit int) ([]*vault.Vault, error) {
	return s.GetVaults(ctx, filter.Options{
		SortBy:      filter.SortByTotalAssetsUSD,
		SortOrder:   filter.Desc,
		Limit:       orDefault(limit, DefaultTopLimit),
		ExcludeIdle: true,
	})
}

func (s *discoveryService) GetByAddress(ctx context.Context, address string, chainID int64) (*vault.Vault, error) {
	if err := chains.MustSupport(chainID); err != nil {
		return nil, err
	}
	vaults, err := s.GetVaults(ctx, filter.Options{
		Addresses: []string{address},
		ChainID:   filter.Int64(chainID),
		Limit:     1,
	})
	if err != nil {
		return nil, err
	}
	if len(vaults) == 0 {
		return nil, nil
	}
	return vaults[0], nil
}

func (s *discoveryService) TopVaultAddresses(ctx context.Context, chain string, n int) ([]string, error) {
	chainID, err := chains.Resolve(chain)
	if err != nil {
		return nil, err
	}
	vaults, err := s.GetVaults(ctx, filter.Options{
		ChainID:     filter.Int64(chainID),
		ExcludeIdle: true,
		SortBy:      filter.SortByTotalAssetsUSD,
		SortOrder:   filter.Desc,
		Limit:       orDefault(n, DefaultTopLimit),
	})
	if err != nil {
		return nil, err
	}
	out := make([]string, len(vaults))
	for i, v := range vaults {
		out[i] = v.Address
	}
	return out, nil
}

func orDefault(limit, def int) int {
	if limit == 0 {
		return def
	}
	return limit
}

// truncate validates limit and cuts vaults to at most limit entries.
func truncate(vaults []*vault.Vault, limit int) ([]*vault.Vault, error) {
	if limit < 0 {
		return nil, &vault.InvalidFilterError{Field: "limit", Reason: "must not be negative"}
	}
	if len(vaults) > limit {
		return vaults[:limit], nil
	}
	return vaults, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

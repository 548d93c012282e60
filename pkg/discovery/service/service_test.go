package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service/mocks"
	"github.com/chainsafe/vault-discovery/pkg/fallback"
	fallbackmocks "github.com/chainsafe/vault-discovery/pkg/fallback/mocks"
	"github.com/chainsafe/vault-discovery/pkg/morpho"
	"github.com/chainsafe/vault-discovery/pkg/vault"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
	"github.com/chainsafe/vault-discovery/pkg/vault/record"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fixture describes one upstream vault. netAPY is a fraction, as served upstream.
type fixture struct {
	id          int
	name        string
	asset       string
	chainID     int64
	netAPY      float64
	tvl         float64
	whitelisted bool
}

func address(n int) string {
	return fmt.Sprintf("0x%040d", n)
}

func (f fixture) raw() json.RawMessage {
	return json.RawMessage(fmt.Sprintf(`{
		"address": %q,
		"name": %q,
		"symbol": %q,
		"whitelisted": %t,
		"creationTimestamp": %d,
		"chain": {"id": %d, "network": %q},
		"asset": {"address": %q, "symbol": %q, "name": %q, "decimals": 18},
		"state": {"apy": %g, "netApy": %g, "totalAssets": "1000", "totalAssetsUsd": %g, "fee": 0.1, "rewards": []}
	}`,
		address(f.id), f.name, "mv"+f.asset, f.whitelisted, 1700000000+f.id,
		f.chainID, chains.Name(f.chainID),
		address(9000+len(f.asset)), f.asset, f.asset+" Token",
		f.netAPY, f.netAPY, f.tvl))
}

// backend evaluates requests against fixtures the way the remote service does:
// filter, order, then cut to the page size.
type backend struct {
	mu       sync.Mutex
	fixtures []fixture
	broken   []json.RawMessage
	requests []*morpho.Request
}

func (b *backend) fetch(_ context.Context, req *morpho.Request) ([]json.RawMessage, error) {
	b.mu.Lock()
	b.requests = append(b.requests, req)
	b.mu.Unlock()

	type row struct {
		v   *vault.Vault
		raw json.RawMessage
	}
	var rows []row
	for _, f := range b.fixtures {
		raw := f.raw()
		v, err := record.Map(raw)
		if err != nil {
			return nil, err
		}
		if req.Where.Matches(v) {
			rows = append(rows, row{v: v, raw: raw})
		}
	}

	key := func(v *vault.Vault) float64 {
		if req.OrderBy == filter.OrderByNetAPY {
			return v.Metrics.NetAPY
		}
		return v.Metrics.TotalAssetsUSD
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if req.OrderDirection == filter.OrderAsc {
			return key(rows[i].v) < key(rows[j].v)
		}
		return key(rows[i].v) > key(rows[j].v)
	})

	out := make([]json.RawMessage, 0, len(rows)+len(b.broken))
	for _, r := range rows {
		out = append(out, r.raw)
	}
	out = append(out, b.broken...)
	if len(out) > req.First {
		out = out[:req.First]
	}
	return out, nil
}

func (b *backend) lastRequest(t *testing.T) *morpho.Request {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	require.NotEmpty(t, b.requests)
	return b.requests[len(b.requests)-1]
}

func defaultFixtures() []fixture {
	return []fixture{
		{id: 1, name: "Steakhouse USDC", asset: "USDC", chainID: chains.Base, netAPY: 0.06, tvl: 50_000_000, whitelisted: true},
		{id: 2, name: "Gauntlet USDC Prime", asset: "USDC", chainID: chains.Base, netAPY: 0.08, tvl: 2_000_000, whitelisted: true},
		{id: 3, name: "Seamless WETH", asset: "WETH", chainID: chains.Base, netAPY: 0.03, tvl: 20_000_000, whitelisted: true},
		{id: 4, name: "Degen WETH", asset: "WETH", chainID: chains.Base, netAPY: 0.25, tvl: 5_000},
		{id: 5, name: "Idle USDC", asset: "USDC", chainID: chains.Base, netAPY: 0.5, tvl: 10},
		{id: 6, name: "Re7 WETH", asset: "WETH", chainID: chains.Ethereum, netAPY: 0.04, tvl: 80_000_000, whitelisted: true},
		{id: 7, name: "Flagship USDT", asset: "USDT", chainID: chains.Ethereum, netAPY: 0.07, tvl: 150_000, whitelisted: true},
	}
}

func newService(t *testing.T, b *backend, registry fallback.Registry) service.Service {
	t.Helper()
	fetcher := mocks.NewFetcher(t)
	fetcher.EXPECT().FetchVaults(mock.Anything, mock.Anything).RunAndReturn(b.fetch)
	return service.NewService(fetcher, registry, nil)
}

func addresses(vaults []*vault.Vault) []string {
	out := make([]string, len(vaults))
	for i, v := range vaults {
		out[i] = v.Address
	}
	return out
}

func TestQuery_SkipsUnmappableRecords(t *testing.T) {
	b := &backend{
		fixtures: defaultFixtures()[:2],
		broken:   []json.RawMessage{json.RawMessage(`{"name":"no address"}`)},
	}
	svc := newService(t, b, nil)

	res, err := svc.Query(context.Background(), filter.Options{})
	require.NoError(t, err)
	require.Len(t, res.Vaults, 2)
	require.Equal(t, 1, res.Skipped)
	require.Empty(t, res.Warnings)
}

func TestQuery_AllRecordsFailedAddsWarning(t *testing.T) {
	b := &backend{
		broken: []json.RawMessage{
			json.RawMessage(`{"address":"not-an-address"}`),
			json.RawMessage(`[1,2,3]`),
		},
	}
	svc := newService(t, b, nil)

	res, err := svc.Query(context.Background(), filter.Options{})
	require.NoError(t, err)
	require.Empty(t, res.Vaults)
	require.NotNil(t, res.Vaults)
	require.Equal(t, 2, res.Skipped)
	require.Len(t, res.Warnings, 1)
}

func TestQuery_ExcludeIdleIsAppliedLocally(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	res, err := svc.Query(context.Background(), filter.Options{Chain: "base", ExcludeIdle: true})
	require.NoError(t, err)
	for _, v := range res.Vaults {
		require.False(t, v.IsIdle, v.Name)
		require.Equal(t, chains.Base, v.Chain.ID)
	}
	require.Len(t, res.Vaults, 4)

	req := b.lastRequest(t)
	require.Equal(t, []int64{chains.Base}, req.Where.ChainIDIn)
	require.Equal(t, filter.DefaultLimit, req.First)
}

func TestQuery_InvalidFilterSkipsUpstream(t *testing.T) {
	// no expectations: any upstream call fails the test
	svc := service.NewService(mocks.NewFetcher(t), nil, nil)

	tests := []struct {
		name string
		opts filter.Options
	}{
		{name: "negative limit", opts: filter.Options{Limit: -1}},
		{name: "limit too large", opts: filter.Options{Limit: filter.MaxLimit + 1}},
		{name: "min above max", opts: filter.Options{MinNetAPY: filter.Float64(10), MaxNetAPY: filter.Float64(1)}},
		{name: "bad asset address", opts: filter.Options{AssetAddress: "0x123"}},
		{name: "infinite min apy", opts: filter.Options{MinNetAPY: filter.Float64(math.Inf(1))}},
		{name: "NaN max apy", opts: filter.Options{MaxNetAPY: filter.Float64(math.NaN())}},
		{name: "NaN min tvl", opts: filter.Options{MinTVL: filter.Float64(math.NaN())}},
		{name: "infinite max tvl", opts: filter.Options{MaxTVL: filter.Float64(math.Inf(-1))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Query(context.Background(), tt.opts)
			var filterErr *vault.InvalidFilterError
			require.ErrorAs(t, err, &filterErr)
		})
	}

	_, err := svc.Query(context.Background(), filter.Options{Chain: "solana"})
	var chainErr *vault.UnsupportedChainError
	require.ErrorAs(t, err, &chainErr)
}

func TestQuery_UpstreamErrorIsReturned(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	upstream := &vault.RemoteQueryError{StatusCode: 502, Message: "bad gateway"}
	fetcher.EXPECT().FetchVaults(mock.Anything, mock.Anything).Return(nil, upstream)
	svc := service.NewService(fetcher, nil, nil)

	_, err := svc.GetVaults(context.Background(), filter.Options{})
	require.ErrorIs(t, err, upstream)
}

func TestTopByYield(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	vaults, err := svc.TopByYield(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Equal(t, service.DefaultTopLimit, b.lastRequest(t).First)
	require.Equal(t, filter.OrderByNetAPY, b.lastRequest(t).OrderBy)
	// idle vault 5 has the best yield but is dropped
	require.Equal(t, []string{address(4), address(2), address(7), address(1), address(6), address(3)}, addresses(vaults))

	vaults, err = svc.TopByYield(context.Background(), 2, 1_000_000)
	require.NoError(t, err)
	require.Equal(t, []string{address(2), address(1)}, addresses(vaults))
}

func TestTopBySize(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	vaults, err := svc.TopBySize(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, []string{address(6), address(1), address(3)}, addresses(vaults))
	require.Equal(t, filter.OrderByTotalAssetsUSD, b.lastRequest(t).OrderBy)
	require.Equal(t, filter.OrderDesc, b.lastRequest(t).OrderDirection)

	vaults, err = svc.TopBySize(context.Background(), 0)
	require.NoError(t, err)
	// idle vault 5 is dropped even when the page has room for it
	require.Equal(t, []string{address(6), address(1), address(3), address(2), address(7), address(4)}, addresses(vaults))
}

func TestGetVaults_ConcreteScenario(t *testing.T) {
	fixtures := append(defaultFixtures(),
		fixture{id: 10, name: "Moonwell USDC", asset: "USDC", chainID: chains.Base, netAPY: 0.09, tvl: 1_000_000},
		fixture{id: 11, name: "Small USDC", asset: "USDC", chainID: chains.Base, netAPY: 0.2, tvl: 999_999},
		fixture{id: 12, name: "Spark USDC", asset: "USDC", chainID: chains.Ethereum, netAPY: 0.3, tvl: 90_000_000},
		fixture{id: 13, name: "Extra USDC A", asset: "USDC", chainID: chains.Base, netAPY: 0.05, tvl: 3_000_000},
		fixture{id: 14, name: "Extra USDC B", asset: "USDC", chainID: chains.Base, netAPY: 0.04, tvl: 4_000_000},
		fixture{id: 15, name: "Extra USDC C", asset: "USDC", chainID: chains.Base, netAPY: 0.01, tvl: 5_000_000},
	)
	b := &backend{fixtures: fixtures}
	svc := newService(t, b, nil)

	vaults, err := svc.GetVaults(context.Background(), filter.Options{
		AssetSymbol: "USDC",
		ChainID:     filter.Int64(chains.Base),
		MinTVL:      filter.Float64(1_000_000),
		SortBy:      filter.SortByAPY,
		SortOrder:   filter.Desc,
		Limit:       5,
	})
	require.NoError(t, err)
	require.Len(t, vaults, 5)
	for i, v := range vaults {
		require.Equal(t, "USDC", v.Asset.Symbol, v.Name)
		require.Equal(t, chains.Base, v.Chain.ID, v.Name)
		require.GreaterOrEqual(t, v.Metrics.TotalAssetsUSD, float64(1_000_000), v.Name)
		if i > 0 {
			require.LessOrEqual(t, v.Metrics.APY, vaults[i-1].Metrics.APY, v.Name)
		}
	}
	require.Equal(t, []string{address(10), address(2), address(1), address(13), address(14)}, addresses(vaults))

	again, err := svc.GetVaults(context.Background(), filter.Options{
		AssetSymbol: "USDC",
		ChainID:     filter.Int64(chains.Base),
		MinTVL:      filter.Float64(1_000_000),
		SortBy:      filter.SortByAPY,
		SortOrder:   filter.Desc,
		Limit:       5,
	})
	require.NoError(t, err)
	require.Equal(t, addresses(vaults), addresses(again))
}

func TestResolveVaultAddress_SingleWETHVaultOnBase(t *testing.T) {
	b := &backend{fixtures: []fixture{
		{id: 42, name: "Base WETH", asset: "WETH", chainID: chains.Base, netAPY: 0.05, tvl: 2_000_000},
	}}
	svc := newService(t, b, fallbackmocks.NewRegistry(t))

	res, err := svc.ResolveVaultAddress(context.Background(), "WETH", "base")
	require.NoError(t, err)
	require.Equal(t, discovery.Live, res.Kind)
	require.Equal(t, address(42), res.Address)

	best, err := svc.BestVaultsForAsset(context.Background(), "weth", 1)
	require.NoError(t, err)
	require.Len(t, best, 1)
	require.Equal(t, res.Address, best[0].Address)
	require.InDelta(t, 5.0, best[0].Metrics.APY, 1e-9)
}

func TestSearchVaults(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)
	ctx := context.Background()

	vaults, err := svc.Search(ctx, "usd", 0)
	require.NoError(t, err)
	require.Equal(t, []string{address(1), address(2), address(7), address(5)}, addresses(vaults))
	require.Equal(t, filter.MaxLimit, b.lastRequest(t).First)

	vaults, err = svc.SearchVaults(ctx, discovery.SearchOptions{Query: "USDC", Chains: []int64{chains.Base}, Offset: 1, Limit: 1})
	require.NoError(t, err)
	require.Equal(t, []string{address(2)}, addresses(vaults))
	require.Equal(t, []int64{chains.Base}, b.lastRequest(t).Where.ChainIDIn)

	vaults, err = svc.SearchVaults(ctx, discovery.SearchOptions{Query: "weth", Offset: 10})
	require.NoError(t, err)
	require.Empty(t, vaults)

	vaults, err = svc.Search(ctx, "steakhouse", 0)
	require.NoError(t, err)
	require.Equal(t, []string{address(1)}, addresses(vaults))
}

func TestSearchVaults_Invalid(t *testing.T) {
	svc := service.NewService(mocks.NewFetcher(t), nil, nil)

	tests := []struct {
		name  string
		opts  discovery.SearchOptions
		field string
	}{
		{name: "empty query", opts: discovery.SearchOptions{Query: "  "}, field: "query"},
		{name: "negative offset", opts: discovery.SearchOptions{Query: "usdc", Offset: -1}, field: "offset"},
		{name: "negative limit", opts: discovery.SearchOptions{Query: "usdc", Limit: -5}, field: "limit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SearchVaults(context.Background(), tt.opts)
			var filterErr *vault.InvalidFilterError
			require.ErrorAs(t, err, &filterErr)
			require.Equal(t, tt.field, filterErr.Field)
		})
	}
}

func TestBestVaultsForAsset(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	vaults, err := svc.BestVaultsForAsset(context.Background(), "weth", 0)
	require.NoError(t, err)
	// vault 4 is below the minimum TVL
	require.Equal(t, []string{address(6), address(3)}, addresses(vaults))

	req := b.lastRequest(t)
	require.Equal(t, filter.OrderByNetAPY, req.OrderBy)
	require.NotNil(t, req.Where.TotalAssetsUSDGte)
	require.Equal(t, float64(10_000), *req.Where.TotalAssetsUSDGte)

	vaults, err = svc.BestVaultsForAsset(context.Background(), "USDC", 1)
	require.NoError(t, err)
	require.Equal(t, []string{address(2)}, addresses(vaults))

	vaults, err = svc.BestVaultsForAsset(context.Background(), "DAI", 0)
	require.NoError(t, err)
	require.Empty(t, vaults)
}

func TestResolveVaultAddress_Live(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, fallbackmocks.NewRegistry(t))

	res, err := svc.ResolveVaultAddress(context.Background(), "usdc", "Base")
	require.NoError(t, err)
	require.Equal(t, discovery.Live, res.Kind)
	require.Equal(t, address(2), res.Address)
	require.Equal(t, chains.Base, res.ChainID)
	require.Equal(t, "USDC", res.Asset)
	require.Equal(t, "Gauntlet USDC Prime", res.Name)
	require.Equal(t, "morpho", res.Source)
	require.False(t, res.IsDegraded())
	require.Equal(t, []int64{chains.Base}, b.lastRequest(t).Where.ChainIDIn)
}

func TestResolveVaultAddress_NotFound(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, fallbackmocks.NewRegistry(t))

	res, err := svc.ResolveVaultAddress(context.Background(), "USDT", "8453")
	require.NoError(t, err)
	require.Equal(t, discovery.NotFound, res.Kind)
	require.Empty(t, res.Address)
	require.False(t, res.Found())
}

func TestResolveVaultAddress_UnsupportedChainFailsFast(t *testing.T) {
	svc := service.NewService(mocks.NewFetcher(t), fallbackmocks.NewRegistry(t), nil)

	_, err := svc.ResolveVaultAddress(context.Background(), "USDC", "fantom")
	var chainErr *vault.UnsupportedChainError
	require.ErrorAs(t, err, &chainErr)
	require.Equal(t, "fantom", chainErr.Chain)
}

func TestResolveVaultAddress_Fallback(t *testing.T) {
	upstream := &vault.RemoteQueryError{StatusCode: 503, Message: "unavailable"}
	updated := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		fetchErr  error
		entry     *fallback.Entry
		lookupErr error
		wantKind  discovery.ResolutionKind
		wantErr   error
	}{
		{
			name:     "upstream error served from registry",
			fetchErr: upstream,
			entry:    &fallback.Entry{ChainID: chains.Base, AssetSymbol: "WETH", Label: "Seamless WETH Vault", Address: address(42), UpdatedAt: updated},
			wantKind: discovery.Fallback,
		},
		{
			name:     "deadline served from registry",
			fetchErr: fmt.Errorf("fetch: %w", context.DeadlineExceeded),
			entry:    &fallback.Entry{ChainID: chains.Base, AssetSymbol: "WETH", Label: "Seamless WETH Vault", Address: address(42), UpdatedAt: updated},
			wantKind: discovery.Fallback,
		},
		{
			name:      "registry miss returns upstream error",
			fetchErr:  upstream,
			lookupErr: fallback.ErrNotFound,
			wantErr:   upstream,
		},
		{
			name:      "registry failure returns upstream error",
			fetchErr:  upstream,
			lookupErr: errors.New("connection refused"),
			wantErr:   upstream,
		},
		{
			name:     "zero address entry returns upstream error",
			fetchErr: upstream,
			entry:    &fallback.Entry{ChainID: chains.Base, AssetSymbol: "WETH", Address: "0x0000000000000000000000000000000000000000"},
			wantErr:  upstream,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := mocks.NewFetcher(t)
			fetcher.EXPECT().FetchVaults(mock.Anything, mock.Anything).Return(nil, tt.fetchErr)
			registry := fallbackmocks.NewRegistry(t)
			registry.EXPECT().Lookup(mock.Anything, chains.Base, "WETH").Return(tt.entry, tt.lookupErr)

			svc := service.NewService(fetcher, registry, nil)
			res, err := svc.ResolveVaultAddress(context.Background(), "weth", "base")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, res)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantKind, res.Kind)
			require.Equal(t, tt.entry.Address, res.Address)
			require.Equal(t, tt.entry.Label, res.Name)
			require.Equal(t, "fallback", res.Source)
			require.True(t, res.IsDegraded())
		})
	}
}

func TestResolveVaultAddress_CancellationSkipsFallback(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	fetcher.EXPECT().FetchVaults(mock.Anything, mock.Anything).Return(nil, context.Canceled)
	// no Lookup expectation
	svc := service.NewService(fetcher, fallbackmocks.NewRegistry(t), nil)

	_, err := svc.ResolveVaultAddress(context.Background(), "WETH", "base")
	require.ErrorIs(t, err, context.Canceled)
}

func TestResolveVaultAddress_NoRegistry(t *testing.T) {
	upstream := &vault.RemoteQueryError{Message: "dial tcp: connection refused"}
	fetcher := mocks.NewFetcher(t)
	fetcher.EXPECT().FetchVaults(mock.Anything, mock.Anything).Return(nil, upstream)
	svc := service.NewService(fetcher, nil, nil)

	_, err := svc.ResolveVaultAddress(context.Background(), "WETH", "base")
	require.ErrorIs(t, err, upstream)
}

func TestResolveVaultAddress_StaticRegistry(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	fetcher.EXPECT().FetchVaults(mock.Anything, mock.Anything).Return(nil, &vault.RemoteQueryError{StatusCode: 500, Message: "internal"})
	svc := service.NewService(fetcher, fallback.NewStaticRegistry(), nil)

	res, err := svc.ResolveVaultAddress(context.Background(), "WETH", "base")
	require.NoError(t, err)
	require.Equal(t, discovery.Fallback, res.Kind)
	require.Equal(t, "0x27D8c7273fd3fcC6956a0B370cE5Fd4A7fc65c18", res.Address)

	// the Sepolia placeholder never resolves
	_, err = svc.ResolveVaultAddress(context.Background(), "WETH", "sepolia")
	var rqErr *vault.RemoteQueryError
	require.ErrorAs(t, err, &rqErr)
}

func TestGetByAddress(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	v, err := svc.GetByAddress(context.Background(), address(3), chains.Base)
	require.NoError(t, err)
	require.NotNil(t, v)
	require.Equal(t, "Seamless WETH", v.Name)
	require.Equal(t, 1, b.lastRequest(t).First)

	// right address, wrong chain
	v, err = svc.GetByAddress(context.Background(), address(3), chains.Ethereum)
	require.NoError(t, err)
	require.Nil(t, v)

	_, err = svc.GetByAddress(context.Background(), address(3), 250)
	var chainErr *vault.UnsupportedChainError
	require.ErrorAs(t, err, &chainErr)
}

func TestChainSummary(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	sum, err := svc.ChainSummary(context.Background(), chains.Base)
	require.NoError(t, err)
	require.Equal(t, chains.Base, sum.ChainID)
	require.Equal(t, "base", sum.ChainName)
	require.Equal(t, 5, sum.TotalVaults)
	require.InDelta(t, 72_005_010, sum.TotalTVL, 0.001)
	require.Equal(t, []string{address(1), address(3), address(2), address(4), address(5)}, addresses(sum.TopVaultsByTVL))
	require.Equal(t, []string{address(4), address(2), address(1), address(3)}, addresses(sum.TopVaultsByAPY))

	require.Len(t, sum.AssetBreakdown, 2)
	require.Equal(t, "USDC", sum.AssetBreakdown[0].Symbol)
	require.Equal(t, 3, sum.AssetBreakdown[0].Count)
	require.InDelta(t, 52_000_010, sum.AssetBreakdown[0].TotalTVL, 0.001)
	require.InDelta(t, 50, sum.AssetBreakdown[0].MaxNetAPY, 1e-9)
	require.Equal(t, "WETH", sum.AssetBreakdown[1].Symbol)
	require.Equal(t, 2, sum.AssetBreakdown[1].Count)

	_, err = svc.ChainSummary(context.Background(), 56)
	var chainErr *vault.UnsupportedChainError
	require.ErrorAs(t, err, &chainErr)
}

func TestSupportedChainsWithVaults(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	out, err := svc.SupportedChainsWithVaults(context.Background())
	require.NoError(t, err)
	require.Equal(t, []discovery.ChainVaultCount{
		{ChainID: chains.Ethereum, Name: "ethereum", VaultCount: 2},
		{ChainID: chains.Base, Name: "base", VaultCount: 5},
	}, out)

	b.mu.Lock()
	require.Len(t, b.requests, len(chains.SupportedIDs()))
	b.mu.Unlock()
}

func TestSupportedChainsWithVaults_ErrorFailsCall(t *testing.T) {
	fetcher := mocks.NewFetcher(t)
	upstream := &vault.RemoteQueryError{StatusCode: 429, Message: "too many requests"}
	fetcher.EXPECT().FetchVaults(mock.Anything, mock.Anything).Return(nil, upstream)
	svc := service.NewService(fetcher, nil, nil)

	_, err := svc.SupportedChainsWithVaults(context.Background())
	require.ErrorIs(t, err, upstream)
}

func TestVaultsByPreset(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)
	ctx := context.Background()

	vaults, err := svc.VaultsByPreset(ctx, discovery.PresetHighYield, filter.Options{})
	require.NoError(t, err)
	require.Equal(t, []string{address(2), address(7), address(1)}, addresses(vaults))

	vaults, err = svc.VaultsByPreset(ctx, discovery.PresetStable, filter.Options{Chain: "ethereum"})
	require.NoError(t, err)
	require.Equal(t, []string{address(6)}, addresses(vaults))
	require.Equal(t, filter.DefaultLimit, b.lastRequest(t).First)

	vaults, err = svc.VaultsByPreset(ctx, discovery.PresetHighTVL, filter.Options{Limit: 1})
	require.NoError(t, err)
	require.Equal(t, []string{address(6)}, addresses(vaults))

	_, err = svc.VaultsByPreset(ctx, "moonshot", filter.Options{})
	var filterErr *vault.InvalidFilterError
	require.ErrorAs(t, err, &filterErr)
	require.Equal(t, "preset", filterErr.Field)
}

func TestTopVaultAddresses(t *testing.T) {
	b := &backend{fixtures: defaultFixtures()}
	svc := newService(t, b, nil)

	addrs, err := svc.TopVaultAddresses(context.Background(), "base", 3)
	require.NoError(t, err)
	require.Equal(t, []string{address(1), address(3), address(2)}, addrs)

	addrs, err = svc.TopVaultAddresses(context.Background(), "base", 0)
	require.NoError(t, err)
	// the idle vault is excluded
	require.Len(t, addrs, 4)
	require.Equal(t, service.DefaultTopLimit, b.lastRequest(t).First)
}

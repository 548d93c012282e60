package filter

import (
	"math"
	"strings"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/vault"
)

// OrderBy is the remote service's vault ordering enumeration.
type OrderBy string

// Remote ordering values.
const (
	OrderByNetAPY            OrderBy = "NetApy"
	OrderByTotalAssets       OrderBy = "TotalAssets"
	OrderByTotalAssetsUSD    OrderBy = "TotalAssetsUsd"
	OrderByCreationTimestamp OrderBy = "CreationTimestamp"
)

// DefaultOrderBy is used when no or an unknown sort field is requested.
const DefaultOrderBy = OrderByTotalAssetsUSD

// OrderDirection is the remote service's ordering direction enumeration.
type OrderDirection string

// Remote ordering directions.
const (
	OrderAsc  OrderDirection = "Asc"
	OrderDesc OrderDirection = "Desc"
)

var sortFields = map[SortField]OrderBy{
	SortByAPY:               OrderByNetAPY,
	SortByNetAPY:            OrderByNetAPY,
	SortByTotalAssets:       OrderByTotalAssets,
	SortByTotalAssetsUSD:    OrderByTotalAssetsUSD,
	SortByCreationTimestamp: OrderByCreationTimestamp,
}

// Predicate is the result of Build: everything needed to issue one remote query and
// post-process its records.
type Predicate struct {
	// Where is nil when no server-side constraint applies; the query then omits its filter argument.
	Where          *ServerPredicate
	OrderBy        OrderBy
	OrderDirection OrderDirection
	First          int
	Residual       Residual
}

// Build splits opts into a server predicate and a residual predicate. All validation
// happens here, before any network call is made.
func Build(opts Options) (*Predicate, error) {
	first, err := resolveLimit(opts.Limit)
	if err != nil {
		return nil, err
	}

	where := &ServerPredicate{}

	chainIDs, err := resolveChains(opts)
	if err != nil {
		return nil, err
	}
	where.ChainIDIn = chainIDs

	if s := strings.TrimSpace(opts.AssetSymbol); s != "" {
		where.AssetSymbolIn = []string{s}
	}
	if opts.AssetAddress != "" {
		if !chains.IsValidAddress(opts.AssetAddress) {
			return nil, &vault.InvalidFilterError{Field: "assetAddress", Reason: "not a valid address"}
		}
		where.AssetAddressIn = []string{chains.NormalizeAddress(opts.AssetAddress)}
	}
	for _, a := range opts.Addresses {
		if !chains.IsValidAddress(a) {
			return nil, &vault.InvalidFilterError{Field: "address", Reason: "not a valid address: " + a}
		}
		where.AddressIn = append(where.AddressIn, chains.NormalizeAddress(a))
	}
	if opts.WhitelistedOnly {
		t := true
		where.Whitelisted = &t
	}

	if err := checkBounds(opts); err != nil {
		return nil, err
	}
	if opts.MinNetAPY != nil {
		where.NetAPYGte = Float64(vault.PercentToFraction(*opts.MinNetAPY))
	}
	if opts.MaxNetAPY != nil {
		where.NetAPYLte = Float64(vault.PercentToFraction(*opts.MaxNetAPY))
	}
	where.TotalAssetsUSDGte = opts.MinTVL
	where.TotalAssetsUSDLte = opts.MaxTVL
	if opts.MinTotalAssets != nil {
		s := opts.MinTotalAssets.String()
		where.TotalAssetsGte = &s
	}
	if opts.MaxTotalAssets != nil {
		s := opts.MaxTotalAssets.String()
		where.TotalAssetsLte = &s
	}

	p := &Predicate{
		OrderBy:        mapSortField(opts.SortBy),
		OrderDirection: mapSortOrder(opts.SortOrder),
		First:          first,
		Residual:       Residual{ExcludeIdle: opts.ExcludeIdle},
	}
	if !where.IsEmpty() {
		p.Where = where
	}
	return p, nil
}

func resolveLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultLimit, nil
	case limit < 0:
		return 0, &vault.InvalidFilterError{Field: "limit", Reason: "must not be negative"}
	case limit > MaxLimit:
		return 0, &vault.InvalidFilterError{Field: "limit", Reason: "must not exceed 1000"}
	default:
		return limit, nil
	}
}

func resolveChains(opts Options) ([]int64, error) {
	if opts.ChainID != nil {
		return []int64{*opts.ChainID}, nil
	}
	if strings.TrimSpace(opts.Chain) != "" {
		id, err := chains.Resolve(opts.Chain)
		if err != nil {
			return nil, err
		}
		return []int64{id}, nil
	}
	if len(opts.ChainIDs) == 0 {
		return nil, nil
	}
	out := make([]int64, 0, len(opts.ChainIDs))
	seen := make(map[int64]struct{}, len(opts.ChainIDs))
	for _, id := range opts.ChainIDs {
		if err := chains.MustSupport(id); err != nil {
			return nil, err
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func checkBounds(opts Options) error {
	for _, b := range []struct {
		field string
		v     *float64
	}{
		{"minNetApy", opts.MinNetAPY},
		{"maxNetApy", opts.MaxNetAPY},
		{"minTvl", opts.MinTVL},
		{"maxTvl", opts.MaxTVL},
	} {
		if b.v != nil && (math.IsNaN(*b.v) || math.IsInf(*b.v, 0)) {
			return &vault.InvalidFilterError{Field: b.field, Reason: "must be finite"}
		}
	}
	if opts.MinNetAPY != nil && opts.MaxNetAPY != nil && *opts.MinNetAPY > *opts.MaxNetAPY {
		return &vault.InvalidFilterError{Field: "netApy", Reason: "min is greater than max"}
	}
	if opts.MinTVL != nil && opts.MaxTVL != nil && *opts.MinTVL > *opts.MaxTVL {
		return &vault.InvalidFilterError{Field: "tvl", Reason: "min is greater than max"}
	}
	if opts.MinTotalAssets != nil && opts.MaxTotalAssets != nil && opts.MinTotalAssets.GreaterThan(*opts.MaxTotalAssets) {
		return &vault.InvalidFilterError{Field: "totalAssets", Reason: "min is greater than max"}
	}
	return nil
}

// mapSortField falls back to DefaultOrderBy for empty or unknown fields.
func mapSortField(f SortField) OrderBy {
	if ob, ok := sortFields[f]; ok {
		return ob
	}
	for k, ob := range sortFields {
		if strings.EqualFold(string(k), string(f)) {
			return ob
		}
	}
	return DefaultOrderBy
}

func mapSortOrder(o SortOrder) OrderDirection {
	if ParseSortOrder(string(o)) == Asc {
		return OrderAsc
	}
	return OrderDesc
}

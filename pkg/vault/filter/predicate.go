package filter

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/vault"
)

// ServerPredicate is the filter argument understood by the remote service.
// NetAPY bounds are yield fractions, TotalAssets bounds are raw amounts as strings.
type ServerPredicate struct {
	ChainIDIn         []int64  `json:"chainId_in,omitempty"`
	AssetSymbolIn     []string `json:"assetSymbol_in,omitempty"`
	AssetAddressIn    []string `json:"assetAddress_in,omitempty"`
	AddressIn         []string `json:"address_in,omitempty"`
	Whitelisted       *bool    `json:"whitelisted,omitempty"`
	NetAPYGte         *float64 `json:"netApy_gte,omitempty"`
	NetAPYLte         *float64 `json:"netApy_lte,omitempty"`
	TotalAssetsUSDGte *float64 `json:"totalAssetsUsd_gte,omitempty"`
	TotalAssetsUSDLte *float64 `json:"totalAssetsUsd_lte,omitempty"`
	TotalAssetsGte    *string  `json:"totalAssets_gte,omitempty"`
	TotalAssetsLte    *string  `json:"totalAssets_lte,omitempty"`
}

// IsEmpty reports whether the predicate carries no constraint.
func (p *ServerPredicate) IsEmpty() bool {
	return p == nil || (len(p.ChainIDIn) == 0 &&
		len(p.AssetSymbolIn) == 0 &&
		len(p.AssetAddressIn) == 0 &&
		len(p.AddressIn) == 0 &&
		p.Whitelisted == nil &&
		p.NetAPYGte == nil && p.NetAPYLte == nil &&
		p.TotalAssetsUSDGte == nil && p.TotalAssetsUSDLte == nil &&
		p.TotalAssetsGte == nil && p.TotalAssetsLte == nil)
}

// Matches evaluates the predicate against v the way the remote service does.
// A nil predicate matches everything.
func (p *ServerPredicate) Matches(v *vault.Vault) bool {
	if p == nil {
		return true
	}
	if len(p.ChainIDIn) > 0 && !slices.Contains(p.ChainIDIn, v.Chain.ID) {
		return false
	}
	if len(p.AssetSymbolIn) > 0 && !slices.Contains(p.AssetSymbolIn, v.Asset.Symbol) {
		return false
	}
	if len(p.AssetAddressIn) > 0 && !containsAddress(p.AssetAddressIn, v.Asset.Address) {
		return false
	}
	if len(p.AddressIn) > 0 && !containsAddress(p.AddressIn, v.Address) {
		return false
	}
	if p.Whitelisted != nil && v.Whitelisted != *p.Whitelisted {
		return false
	}
	if p.NetAPYGte != nil && v.Metrics.NetAPY < vault.FractionToPercent(*p.NetAPYGte) {
		return false
	}
	if p.NetAPYLte != nil && v.Metrics.NetAPY > vault.FractionToPercent(*p.NetAPYLte) {
		return false
	}
	if p.TotalAssetsUSDGte != nil && v.Metrics.TotalAssetsUSD < *p.TotalAssetsUSDGte {
		return false
	}
	if p.TotalAssetsUSDLte != nil && v.Metrics.TotalAssetsUSD > *p.TotalAssetsUSDLte {
		return false
	}
	if p.TotalAssetsGte != nil && v.Metrics.TotalAssets.LessThan(mustDecimal(*p.TotalAssetsGte)) {
		return false
	}
	if p.TotalAssetsLte != nil && v.Metrics.TotalAssets.GreaterThan(mustDecimal(*p.TotalAssetsLte)) {
		return false
	}
	return true
}

// Residual is the part of a filter evaluated locally after mapping.
type Residual struct {
	ExcludeIdle bool
}

// Keep reports whether v passes the residual predicate.
func (r Residual) Keep(v *vault.Vault) bool {
	return !r.ExcludeIdle || !v.IsIdle
}

// Apply returns the vaults passing the residual predicate, preserving order.
func (r Residual) Apply(vaults []*vault.Vault) []*vault.Vault {
	out := make([]*vault.Vault, 0, len(vaults))
	for _, v := range vaults {
		if r.Keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func containsAddress(list []string, v string) bool {
	for _, x := range list {
		if chains.SameAddress(x, v) {
			return true
		}
	}
	return false
}

// mustDecimal parses values produced by Build; those are always valid.
func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

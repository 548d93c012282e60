// Package discovery holds the result types returned by the vault discovery service.
package discovery

import (
	"github.com/chainsafe/vault-discovery/pkg/vault"
)

// Result is the outcome of one filtered vault query.
type Result struct {
	Vaults []*vault.Vault `json:"vaults"`
	// Skipped counts upstream records that could not be mapped.
	Skipped  int      `json:"skipped"`
	Warnings []string `json:"warnings,omitempty"`
}

// ResolutionKind tells how a vault address was resolved.
type ResolutionKind string

const (
	// Live means the address came from a successful upstream query.
	Live ResolutionKind = "live"
	// Fallback means upstream failed and the address came from the fallback registry.
	Fallback ResolutionKind = "fallback"
	// NotFound means upstream answered but no vault qualified.
	NotFound ResolutionKind = "not_found"
)

// Resolution is the answer to "which vault should I use for this asset on this chain".
type Resolution struct {
	Kind    ResolutionKind `json:"kind"`
	Address string         `json:"address,omitempty"`
	ChainID int64          `json:"chainId"`
	Asset   string         `json:"asset"`
	// Name is the vault name for live results and the registry label for fallbacks.
	Name   string `json:"name,omitempty"`
	Source string `json:"source,omitempty"`
}

// IsDegraded reports whether the address was served from possibly stale data.
func (r *Resolution) IsDegraded() bool {
	return r != nil && r.Kind == Fallback
}

// Found reports whether the resolution carries an address.
func (r *Resolution) Found() bool {
	return r != nil && r.Kind != NotFound && r.Address != ""
}

// SearchOptions configures a free-text vault search.
type SearchOptions struct {
	Query  string
	Chains []int64
	Limit  int
	Offset int
}

// AssetBreakdown aggregates the vaults of one underlying asset on a chain.
type AssetBreakdown struct {
	Symbol    string  `json:"symbol"`
	Count     int     `json:"count"`
	TotalTVL  float64 `json:"totalTvl"`
	MaxNetAPY float64 `json:"maxNetApy"`
}

// Summary describes the vault landscape of a single chain.
type Summary struct {
	ChainID        int64            `json:"chainId"`
	ChainName      string           `json:"chainName"`
	TotalVaults    int              `json:"totalVaults"`
	TotalTVL       float64          `json:"totalTvl"`
	TopVaultsByTVL []*vault.Vault   `json:"topVaultsByTvl"`
	TopVaultsByAPY []*vault.Vault   `json:"topVaultsByNetApy"`
	AssetBreakdown []AssetBreakdown `json:"assetBreakdown"`
}

// ChainVaultCount is the number of vaults listed on a supported chain.
type ChainVaultCount struct {
	ChainID    int64  `json:"chainId"`
	Name       string `json:"name"`
	VaultCount int    `json:"vaultCount"`
}

// Preset names a pre-configured filter.
type Preset string

const (
	PresetHighYield Preset = "highYield"
	PresetStable    Preset = "stable"
	PresetHighTVL   Preset = "highTvl"
)

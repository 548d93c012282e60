// Package filter translates a declarative Options value into the predicate pushed to
// the remote data service plus the residual predicate evaluated locally.
package filter

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Limits applied to the number of records requested from the remote service.
const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// SortField names a vault attribute results can be ordered by.
type SortField string

// Supported sort fields.
const (
	SortByAPY               SortField = "apy"
	SortByNetAPY            SortField = "netApy"
	SortByTotalAssets       SortField = "totalAssets"
	SortByTotalAssetsUSD    SortField = "totalAssetsUsd"
	SortByCreationTimestamp SortField = "creationTimestamp"
)

// SortOrder is the direction of the ordering.
type SortOrder string

// Supported sort orders.
const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Options is a declarative vault filter. Every field is optional and absence means
// "no constraint", never zero.
type Options struct {
	AssetSymbol  string
	AssetAddress string
	// Chain is a chain name ("base") or decimal id ("8453"). Ignored when ChainID is set.
	Chain   string
	ChainID *int64
	// ChainIDs restricts results to several chains. Used only when neither Chain nor ChainID is set.
	ChainIDs []int64
	// Addresses restricts results to specific vault addresses.
	Addresses []string

	// MinNetAPY and MaxNetAPY bound the net APY, in percent.
	MinNetAPY *float64
	MaxNetAPY *float64
	// MinTVL and MaxTVL bound the USD value locked.
	MinTVL *float64
	MaxTVL *float64
	// MinTotalAssets and MaxTotalAssets bound the raw token amount held.
	MinTotalAssets *decimal.Decimal
	MaxTotalAssets *decimal.Decimal

	WhitelistedOnly bool
	ExcludeIdle     bool

	SortBy    SortField
	SortOrder SortOrder
	Limit     int
}

// Float64 returns a pointer to v, for optional numeric fields.
func Float64(v float64) *float64 { return &v }

// Int64 returns a pointer to v, for optional chain ids.
func Int64(v int64) *int64 { return &v }

// Decimal returns a pointer to v, for optional raw amount bounds.
func Decimal(v decimal.Decimal) *decimal.Decimal { return &v }

// Merge returns a copy of o where every field set in overrides replaces the one in o.
func (o Options) Merge(overrides Options) Options {
	out := o
	if overrides.AssetSymbol != "" {
		out.AssetSymbol = overrides.AssetSymbol
	}
	if overrides.AssetAddress != "" {
		out.AssetAddress = overrides.AssetAddress
	}
	if overrides.Chain != "" {
		out.Chain = overrides.Chain
	}
	if overrides.ChainID != nil {
		out.ChainID = overrides.ChainID
	}
	if len(overrides.ChainIDs) > 0 {
		out.ChainIDs = overrides.ChainIDs
	}
	if len(overrides.Addresses) > 0 {
		out.Addresses = overrides.Addresses
	}
	if overrides.MinNetAPY != nil {
		out.MinNetAPY = overrides.MinNetAPY
	}
	if overrides.MaxNetAPY != nil {
		out.MaxNetAPY = overrides.MaxNetAPY
	}
	if overrides.MinTVL != nil {
		out.MinTVL = overrides.MinTVL
	}
	if overrides.MaxTVL != nil {
		out.MaxTVL = overrides.MaxTVL
	}
	if overrides.MinTotalAssets != nil {
		out.MinTotalAssets = overrides.MinTotalAssets
	}
	if overrides.MaxTotalAssets != nil {
		out.MaxTotalAssets = overrides.MaxTotalAssets
	}
	out.WhitelistedOnly = o.WhitelistedOnly || overrides.WhitelistedOnly
	out.ExcludeIdle = o.ExcludeIdle || overrides.ExcludeIdle
	if overrides.SortBy != "" {
		out.SortBy = overrides.SortBy
	}
	if overrides.SortOrder != "" {
		out.SortOrder = overrides.SortOrder
	}
	if overrides.Limit != 0 {
		out.Limit = overrides.Limit
	}
	return out
}

// ParseSortOrder parses "asc"/"desc" case-insensitively, defaulting to Desc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}

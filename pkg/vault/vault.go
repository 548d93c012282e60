// Package vault defines the canonical vault entity, the record mapper that builds it
// from untrusted upstream data and the error taxonomy shared by the discovery engine.
package vault

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// IdleThresholdUSD is the TVL below which a vault is considered idle.
const IdleThresholdUSD = 100

// Vault is an immutable snapshot of a yield-bearing vault.
// Identity is the (Address, Chain.ID) pair.
type Vault struct {
	Address           string  `json:"address"`
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	Asset             Asset   `json:"asset"`
	Chain             Chain   `json:"chain"`
	Metrics           Metrics `json:"metrics"`
	Whitelisted       bool    `json:"whitelisted"`
	CreationTimestamp int64   `json:"creationTimestamp"`
	IsIdle            bool    `json:"isIdle"`
}

// Asset is the underlying deposit token of a vault.
type Asset struct {
	Address  string `json:"address"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals int    `json:"decimals"`
}

// Chain identifies the network a vault is deployed on.
type Chain struct {
	ID      int64  `json:"id"`
	Network string `json:"network"`
}

// Metrics holds the performance figures of a vault.
// APY, NetAPY, Fee and reward APRs are percentages (5.23 means 5.23%).
// TotalAssets is expressed in raw token units.
type Metrics struct {
	APY            float64         `json:"apy"`
	NetAPY         float64         `json:"netApy"`
	TotalAssets    decimal.Decimal `json:"totalAssets"`
	TotalAssetsUSD float64         `json:"totalAssetsUsd"`
	Fee            float64         `json:"fee"`
	Rewards        []Reward        `json:"rewards"`
}

// Reward is an additional incentive token distributed to depositors.
type Reward struct {
	Asset              string  `json:"asset"`
	SupplyAPR          float64 `json:"supplyApr"`
	YearlySupplyTokens string  `json:"yearlySupplyTokens"`
}

// Key returns the identity of the vault.
func (v *Vault) Key() string {
	return strings.ToLower(v.Address) + "@" + strconv.FormatInt(v.Chain.ID, 10)
}

// HasAssetSymbol reports whether the vault's asset symbol equals symbol, ignoring case.
func (v *Vault) HasAssetSymbol(symbol string) bool {
	return strings.EqualFold(v.Asset.Symbol, symbol)
}

// IsIdleTVL reports whether a TVL value falls below the idle threshold.
func IsIdleTVL(totalAssetsUSD float64) bool {
	return totalAssetsUSD < IdleThresholdUSD
}

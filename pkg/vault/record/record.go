// Package record maps raw upstream vault records into vault.Vault values.
//
// Upstream records are untrusted: every field is looked up explicitly and only the
// identity fields (vault address, chain id, asset address) are mandatory.
package record

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"

	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/vault"
)

// Record field paths of the upstream Vault object.
const (
	pathAddress           = "address"
	pathName              = "name"
	pathSymbol            = "symbol"
	pathWhitelisted       = "whitelisted"
	pathCreationTimestamp = "creationTimestamp"
	pathChainID           = "chain.id"
	pathChainNetwork      = "chain.network"
	pathAssetAddress      = "asset.address"
	pathAssetSymbol       = "asset.symbol"
	pathAssetName         = "asset.name"
	pathAssetDecimals     = "asset.decimals"
	pathAPY               = "state.apy"
	pathNetAPY            = "state.netApy"
	pathTotalAssets       = "state.totalAssets"
	pathTotalAssetsUSD    = "state.totalAssetsUsd"
	pathFee               = "state.fee"
	pathRewards           = "state.rewards"
)

// Map converts a raw record into a Vault. It returns a *vault.MappingError when the
// record is not a JSON object or an identity field is missing or malformed.
func Map(raw []byte) (*vault.Vault, error) {
	if !gjson.ValidBytes(raw) {
		return nil, &vault.MappingError{Field: "record", Reason: "is not valid JSON"}
	}
	rec := gjson.ParseBytes(raw)
	if !rec.IsObject() {
		return nil, &vault.MappingError{Field: "record", Reason: "is not an object"}
	}

	address, err := requiredAddress(rec, pathAddress)
	if err != nil {
		return nil, err
	}
	chainID, err := requiredChainID(rec)
	if err != nil {
		return nil, err
	}
	assetAddress, err := requiredAddress(rec, pathAssetAddress)
	if err != nil {
		return nil, err
	}

	network := rec.Get(pathChainNetwork).String()
	if network == "" {
		network = chains.Name(chainID)
	}

	tvl := rec.Get(pathTotalAssetsUSD).Float()

	return &vault.Vault{
		Address: address,
		Name:    rec.Get(pathName).String(),
		Symbol:  rec.Get(pathSymbol).String(),
		Asset: vault.Asset{
			Address:  assetAddress,
			Symbol:   rec.Get(pathAssetSymbol).String(),
			Name:     rec.Get(pathAssetName).String(),
			Decimals: int(rec.Get(pathAssetDecimals).Int()),
		},
		Chain: vault.Chain{
			ID:      chainID,
			Network: strings.ToLower(network),
		},
		Metrics: vault.Metrics{
			APY:            vault.FractionToPercent(rec.Get(pathAPY).Float()),
			NetAPY:         vault.FractionToPercent(rec.Get(pathNetAPY).Float()),
			TotalAssets:    rawAmount(rec.Get(pathTotalAssets)),
			TotalAssetsUSD: tvl,
			Fee:            vault.FractionToPercent(rec.Get(pathFee).Float()),
			Rewards:        rewards(rec.Get(pathRewards)),
		},
		Whitelisted:       rec.Get(pathWhitelisted).Bool(),
		CreationTimestamp: rec.Get(pathCreationTimestamp).Int(),
		IsIdle:            vault.IsIdleTVL(tvl),
	}, nil
}

func requiredAddress(rec gjson.Result, path string) (string, error) {
	v := rec.Get(path)
	if !v.Exists() || v.Type == gjson.Null || strings.TrimSpace(v.String()) == "" {
		return "", &vault.MappingError{Field: path, Reason: "is missing"}
	}
	if v.Type != gjson.String || !chains.IsValidAddress(v.Str) {
		return "", &vault.MappingError{Field: path, Reason: "is not a valid address"}
	}
	return chains.NormalizeAddress(v.Str), nil
}

func requiredChainID(rec gjson.Result) (int64, error) {
	v := rec.Get(pathChainID)
	if !v.Exists() || v.Type == gjson.Null {
		return 0, &vault.MappingError{Field: pathChainID, Reason: "is missing"}
	}
	id := v.Int()
	if id <= 0 {
		return 0, &vault.MappingError{Field: pathChainID, Reason: "is not a positive integer"}
	}
	return id, nil
}

// rawAmount accepts BigInt values serialized either as JSON strings or numbers.
// Anything unparsable becomes zero.
func rawAmount(v gjson.Result) decimal.Decimal {
	var s string
	switch v.Type {
	case gjson.String:
		s = v.Str
	case gjson.Number:
		s = v.Raw
	default:
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func rewards(v gjson.Result) []vault.Reward {
	if !v.IsArray() {
		return []vault.Reward{}
	}
	items := v.Array()
	out := make([]vault.Reward, 0, len(items))
	for _, item := range items {
		asset := item.Get("asset.address").String()
		if flat := item.Get("asset"); asset == "" && flat.Type == gjson.String {
			asset = flat.Str
		}
		out = append(out, vault.Reward{
			Asset:              asset,
			SupplyAPR:          vault.FractionToPercent(item.Get("supplyApr").Float()),
			YearlySupplyTokens: rawAmount(item.Get("yearlySupplyTokens")).String(),
		})
	}
	return out
}


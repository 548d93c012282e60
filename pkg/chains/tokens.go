package chains

import (
	"sort"
	"strings"

	"github.com/chainsafe/vault-discovery/pkg/vault"
)

// Well-known token symbols.
const (
	USDC = "USDC"
	WETH = "WETH"
	USDT = "USDT"
)

// Official Circle USDC and canonical WETH addresses.
var wellKnownTokens = map[int64]map[string]string{
	Ethereum: {
		USDC: "0xA0b86991c6218A36c1D19D4a2e9Eb0cE3606eB48",
		WETH: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2",
		USDT: "0xdAC17F958D2ee523a2206206994597C13D831ec7",
	},
	Base: {
		USDC: "0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913",
		WETH: "0x4200000000000000000000000000000000000006",
		USDT: "0xfde4C96c8593536E31F229EA8f37b2ADa2699bb2",
	},
	Arbitrum: {
		USDC: "0xaf88d065e77c8cC2239327C5EDb3A432268e5831",
		WETH: "0x82aF49447D8a07e3bd95BD0d56f35241523fBab1",
		USDT: "0xFd086bC7CD5C481DCC9C85ebE478A1C0b69FCbb9",
	},
	Optimism: {
		USDC: "0x0b2C639c533813f4Aa9D7837CAf62653d097Ff85",
		WETH: "0x4200000000000000000000000000000000000006",
		USDT: "0x94b008aA00579c1307B0EF2c499aD98a8ce58e58",
	},
	Polygon: {
		USDC: "0x3c499c542cEF5E3811e1192ce70d8cC03d5c3359",
		WETH: "0x7ceB23fD6bC0adD59E62ac25578270cFf1b9f619",
		USDT: "0xc2132D05D31c914a87C6611C10748AEb04B58e8F",
	},
	Sepolia: {
		USDC: "0x94a9D9AC8a22534E3FaCa9F4e7F2E2cf85d5E4C8",
		WETH: "0xC558DBdd856501FCd9aaF1E62eae57A9F0629a3c",
		USDT: "0xaA8E23Fb1079EA71e0a56F48a2aA51851D8433D0",
	},
}

// TokenAddress returns the well-known address of symbol on chainID.
func TokenAddress(symbol string, chainID int64) (string, error) {
	if err := MustSupport(chainID); err != nil {
		return "", err
	}
	addr, ok := wellKnownTokens[chainID][strings.ToUpper(strings.TrimSpace(symbol))]
	if !ok {
		return "", &vault.InvalidFilterError{Field: "asset", Reason: "unknown token symbol " + symbol}
	}
	return addr, nil
}

// TokenAddresses returns a copy of the well-known token table for chainID.
func TokenAddresses(chainID int64) (map[string]string, error) {
	if err := MustSupport(chainID); err != nil {
		return nil, err
	}
	out := make(map[string]string, len(wellKnownTokens[chainID]))
	for sym, addr := range wellKnownTokens[chainID] {
		out[sym] = addr
	}
	return out, nil
}

// KnownSymbols lists the well-known token symbols in alphabetical order.
func KnownSymbols() []string {
	out := []string{USDC, WETH, USDT}
	sort.Strings(out)
	return out
}

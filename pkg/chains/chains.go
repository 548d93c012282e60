// Package chains holds the static chain and token tables used to resolve
// caller-supplied chain identifiers before any upstream query is made.
package chains

import (
	"sort"
	"strconv"
	"strings"

	"github.com/chainsafe/vault-discovery/pkg/vault"
)

// Supported chain ids.
const (
	Ethereum int64 = 1
	Optimism int64 = 10
	Polygon  int64 = 137
	Base     int64 = 8453
	Arbitrum int64 = 42161
	Sepolia  int64 = 11155111
)

var names = map[int64]string{
	Ethereum: "ethereum",
	Base:     "base",
	Arbitrum: "arbitrum",
	Optimism: "optimism",
	Polygon:  "polygon",
	Sepolia:  "sepolia",
}

var ids = func() map[string]int64 {
	m := make(map[string]int64, len(names))
	for id, name := range names {
		m[name] = id
	}
	return m
}()

// IsSupported reports whether id is in the chain table.
func IsSupported(id int64) bool {
	_, ok := names[id]
	return ok
}

// Name returns the network name for id, or an empty string when unsupported.
func Name(id int64) string {
	return names[id]
}

// SupportedIDs returns all supported chain ids in ascending order.
func SupportedIDs() []int64 {
	out := make([]int64, 0, len(names))
	for id := range names {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Resolve turns a chain name ("base", "Base") or a decimal id ("8453") into a chain id.
func Resolve(chain string) (int64, error) {
	c := strings.TrimSpace(chain)
	if id, err := strconv.ParseInt(c, 10, 64); err == nil {
		if !IsSupported(id) {
			return 0, &vault.UnsupportedChainError{Chain: c}
		}
		return id, nil
	}
	id, ok := ids[strings.ToLower(c)]
	if !ok {
		return 0, &vault.UnsupportedChainError{Chain: c}
	}
	return id, nil
}

// MustSupport returns an UnsupportedChainError when id is not in the chain table.
func MustSupport(id int64) error {
	if !IsSupported(id) {
		return &vault.UnsupportedChainError{Chain: strconv.FormatInt(id, 10)}
	}
	return nil
}

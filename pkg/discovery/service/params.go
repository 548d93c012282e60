package service

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "github.com/chainsafe/vault-discovery/pkg/app/errors"
	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/vault/filter"
)

// parseOptions reads a filter from query parameters. Unknown parameters are ignored.
func parseOptions(q url.Values) (filter.Options, error) {
	opts := filter.Options{
		AssetSymbol:  q.Get("asset"),
		AssetAddress: q.Get("asset_address"),
		Chain:        q.Get("chain"),
		SortBy:       filter.SortField(q.Get("sort_by")),
		SortOrder:    filter.SortOrder(q.Get("sort_order")),
	}

	var err error
	if opts.ChainIDs, err = parseChains(q.Get("chains")); err != nil {
		return opts, err
	}
	opts.Addresses = splitList(q.Get("addresses"))

	if opts.MinNetAPY, err = parseFloat(q, "min_apy"); err != nil {
		return opts, err
	}
	if opts.MaxNetAPY, err = parseFloat(q, "max_apy"); err != nil {
		return opts, err
	}
	if opts.MinTVL, err = parseFloat(q, "min_tvl"); err != nil {
		return opts, err
	}
	if opts.MaxTVL, err = parseFloat(q, "max_tvl"); err != nil {
		return opts, err
	}
	if opts.MinTotalAssets, err = parseDecimal(q, "min_total_assets"); err != nil {
		return opts, err
	}
	if opts.MaxTotalAssets, err = parseDecimal(q, "max_total_assets"); err != nil {
		return opts, err
	}
	if opts.WhitelistedOnly, err = parseBool(q, "whitelisted"); err != nil {
		return opts, err
	}
	if opts.ExcludeIdle, err = parseBool(q, "exclude_idle"); err != nil {
		return opts, err
	}
	if opts.Limit, err = parseInt(q, "limit"); err != nil {
		return opts, err
	}
	return opts, nil
}

// parseChains resolves a comma separated list of chain names or ids.
func parseChains(raw string) ([]int64, error) {
	var out []int64
	for _, c := range splitList(raw) {
		id, err := chains.Resolve(c)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseFloat(q url.Values, key string) (*float64, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid "+key)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, apperrors.BadRequestError(nil, "invalid "+key)
	}
	return &v, nil
}

func parseDecimal(q url.Values, key string) (*decimal.Decimal, error) {
	raw := q.Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "invalid "+key)
	}
	return &v, nil
}

func parseBool(q url.Values, key string) (bool, error) {
	raw := q.Get(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperrors.BadRequestError(err, "invalid "+key)
	}
	return v, nil
}

func parseInt(q url.Values, key string) (int, error) {
	raw := q.Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.BadRequestError(err, "invalid "+key)
	}
	return v, nil
}

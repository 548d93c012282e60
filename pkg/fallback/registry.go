// Package fallback provides the last-known vault addresses served when the remote
// data service is unavailable.
package fallback

import (
	"context"
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when no usable fallback entry exists for a chain and asset.
var ErrNotFound = errors.New("fallback vault not found")

// Entry is one last-known vault address for an asset on a chain.
type Entry struct {
	ChainID     int64     `json:"chainId"`
	AssetSymbol string    `json:"asset"`
	Label       string    `json:"label"`
	Address     string    `json:"address"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Registry looks up fallback vault addresses.
//
//go:generate mockery --name Registry --output mocks --outpkg mocks --filename mock_registry.go --with-expecter
type Registry interface {
	// Lookup returns the preferred entry for the pair, or ErrNotFound.
	// Zero-address placeholders are never returned.
	Lookup(ctx context.Context, chainID int64, assetSymbol string) (*Entry, error)
}

// Writer persists refreshed entries.
type Writer interface {
	Upsert(ctx context.Context, entry *Entry) error
}

// Store is a Registry that can also be written to and listed.
type Store interface {
	Registry
	Writer
	List(ctx context.Context) ([]*Entry, error)
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

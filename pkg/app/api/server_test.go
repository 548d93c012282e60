package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/vault-discovery/pkg/app/http"
	"github.com/chainsafe/vault-discovery/pkg/config"
	"github.com/chainsafe/vault-discovery/pkg/discovery/service/mocks"
	"github.com/chainsafe/vault-discovery/pkg/fallback"
	"github.com/chainsafe/vault-discovery/pkg/vault"
)

type emptyStore struct{}

func (emptyStore) Lookup(context.Context, int64, string) (*fallback.Entry, error) {
	return nil, fallback.ErrNotFound
}

func (emptyStore) Upsert(context.Context, *fallback.Entry) error {
	return nil
}

func (emptyStore) List(context.Context) ([]*fallback.Entry, error) {
	return nil, nil
}

func newRouter(t *testing.T, mutate func(*config.Config), store fallback.Store) (http.Handler, *mocks.Service) {
	t.Helper()
	cfg := config.Default()
	if mutate != nil {
		mutate(cfg)
	}
	svc := mocks.NewService(t)
	s := NewServer(cfg)
	limiter := apphttp.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, zap.NewNop())
	return s.setupRouter(svc, store, limiter, zap.NewNop()), svc
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestRouter_Health(t *testing.T) {
	h, _ := newRouter(t, nil, nil)
	rec := get(h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestRouter_DiscoveryRoutes(t *testing.T) {
	h, svc := newRouter(t, nil, nil)
	svc.EXPECT().TopBySize(mock.Anything, 3).Return([]*vault.Vault{{Address: "0x01"}}, nil)

	rec := get(h, "/vaults/top/size?limit=3")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Vaults []vault.Vault `json:"vaults"`
		Count  int           `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Vaults, 1)
	assert.Equal(t, "0x01", body.Vaults[0].Address)
	assert.Equal(t, 1, body.Count)
}

func TestRouter_RateLimit(t *testing.T) {
	h, svc := newRouter(t, func(c *config.Config) {
		c.RateLimit.RPS = 0.001
		c.RateLimit.Burst = 1
	}, nil)
	svc.EXPECT().TopBySize(mock.Anything, 0).Return(nil, nil).Once()

	assert.Equal(t, http.StatusOK, get(h, "/vaults/top/size").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(h, "/vaults/top/size").Code)
	// health checks bypass the limiter
	assert.Equal(t, http.StatusOK, get(h, "/health").Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	enable := func(c *config.Config) {
		c.Fallback.Source = config.FallbackSourcePostgres
		c.Auth.JWKSURL = "http://127.0.0.1:1/jwks.json"
	}

	h, _ := newRouter(t, nil, emptyStore{})
	assert.Equal(t, http.StatusNotFound, get(h, "/admin/fallback").Code)

	h, _ = newRouter(t, enable, nil)
	assert.Equal(t, http.StatusNotFound, get(h, "/admin/fallback").Code)

	h, _ = newRouter(t, enable, emptyStore{})
	assert.Equal(t, http.StatusUnauthorized, get(h, "/admin/fallback").Code)
}

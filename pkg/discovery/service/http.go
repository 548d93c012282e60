package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/vault-discovery/pkg/app/errors"
	apphttp "github.com/chainsafe/vault-discovery/pkg/app/http"
	"github.com/chainsafe/vault-discovery/pkg/chains"
	"github.com/chainsafe/vault-discovery/pkg/discovery"
	"github.com/chainsafe/vault-discovery/pkg/vault"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

type vaultsResponse struct {
	Vaults []*vault.Vault `json:"vaults"`
	Count  int            `json:"count"`
}

type resolveResponse struct {
	*discovery.Resolution
	Degraded bool `json:"degraded"`
}

type chainsResponse struct {
	Chains []discovery.ChainVaultCount `json:"chains"`
}

type addressesResponse struct {
	ChainID   int64    `json:"chainId"`
	Addresses []string `json:"addresses"`
}

// RegisterRoutes registers HTTP endpoints for the discovery service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Route("/vaults", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.query))
		r.Get("/top/yield", apphttp.HandleError(h.topByYield))
		r.Get("/top/size", apphttp.HandleError(h.topBySize))
		r.Get("/search", apphttp.HandleError(h.search))
		r.Get("/best/{asset}", apphttp.HandleError(h.best))
		r.Get("/resolve", apphttp.HandleError(h.resolve))
		r.Get("/presets/{preset}", apphttp.HandleError(h.preset))
	})
	r.Route("/chains", func(r chi.Router) {
		r.Get("/", apphttp.HandleError(h.listChains))
		r.Get("/{chain}/summary", apphttp.HandleError(h.summary))
		r.Get("/{chain}/vaults/{address}", apphttp.HandleError(h.byAddress))
		r.Get("/{chain}/top-addresses", apphttp.HandleError(h.topAddresses))
	})
}

func (h *HTTP) query(w http.ResponseWriter, r *http.Request) error {
	opts, err := parseOptions(r.URL.Query())
	if err != nil {
		return toAppError(err)
	}
	res, err := h.service.Query(r.Context(), opts)
	if err != nil {
		return toAppError(err)
	}
	h.writeJSON(w, http.StatusOK, res)
	return nil
}

func (h *HTTP) topByYield(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	limit, err := parseInt(q, "limit")
	if err != nil {
		return err
	}
	minTVL, err := parseFloat(q, "min_tvl")
	if err != nil {
		return err
	}
	var tvl float64
	if minTVL != nil {
		tvl = *minTVL
	}
	vaults, err := h.service.TopByYield(r.Context(), limit, tvl)
	if err != nil {
		return toAppError(err)
	}
	h.writeVaults(w, vaults)
	return nil
}

func (h *HTTP) topBySize(w http.ResponseWriter, r *http.Request) error {
	limit, err := parseInt(r.URL.Query(), "limit")
	if err != nil {
		return err
	}
	vaults, err := h.service.TopBySize(r.Context(), limit)
	if err != nil {
		return toAppError(err)
	}
	h.writeVaults(w, vaults)
	return nil
}

func (h *HTTP) search(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	limit, err := parseInt(q, "limit")
	if err != nil {
		return err
	}
	offset, err := parseInt(q, "offset")
	if err != nil {
		return err
	}
	chainIDs, err := parseChains(q.Get("chains"))
	if err != nil {
		return toAppError(err)
	}

	var vaults []*vault.Vault
	if len(chainIDs) == 0 && offset == 0 {
		vaults, err = h.service.Search(r.Context(), q.Get("q"), limit)
	} else {
		vaults, err = h.service.SearchVaults(r.Context(), discovery.SearchOptions{
			Query:  q.Get("q"),
			Chains: chainIDs,
			Limit:  limit,
			Offset: offset,
		})
	}
	if err != nil {
		return toAppError(err)
	}
	h.writeVaults(w, vaults)
	return nil
}

func (h *HTTP) best(w http.ResponseWriter, r *http.Request) error {
	limit, err := parseInt(r.URL.Query(), "limit")
	if err != nil {
		return err
	}
	vaults, err := h.service.BestVaultsForAsset(r.Context(), chi.URLParam(r, "asset"), limit)
	if err != nil {
		return toAppError(err)
	}
	h.writeVaults(w, vaults)
	return nil
}

func (h *HTTP) resolve(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	if q.Get("asset") == "" || q.Get("chain") == "" {
		return apperrors.BadRequestError(nil, "asset and chain required")
	}
	res, err := h.service.ResolveVaultAddress(r.Context(), q.Get("asset"), q.Get("chain"))
	if err != nil {
		return toAppError(err)
	}
	h.writeJSON(w, http.StatusOK, resolveResponse{Resolution: res, Degraded: res.IsDegraded()})
	return nil
}

func (h *HTTP) preset(w http.ResponseWriter, r *http.Request) error {
	overrides, err := parseOptions(r.URL.Query())
	if err != nil {
		return toAppError(err)
	}
	preset := discovery.Preset(chi.URLParam(r, "preset"))
	vaults, err := h.service.VaultsByPreset(r.Context(), preset, overrides)
	if err != nil {
		return toAppError(err)
	}
	h.writeVaults(w, vaults)
	return nil
}

func (h *HTTP) listChains(w http.ResponseWriter, r *http.Request) error {
	out, err := h.service.SupportedChainsWithVaults(r.Context())
	if err != nil {
		return toAppError(err)
	}
	h.writeJSON(w, http.StatusOK, chainsResponse{Chains: out})
	return nil
}

func (h *HTTP) summary(w http.ResponseWriter, r *http.Request) error {
	chainID, err := chains.Resolve(chi.URLParam(r, "chain"))
	if err != nil {
		return toAppError(err)
	}
	sum, err := h.service.ChainSummary(r.Context(), chainID)
	if err != nil {
		return toAppError(err)
	}
	h.writeJSON(w, http.StatusOK, sum)
	return nil
}

func (h *HTTP) byAddress(w http.ResponseWriter, r *http.Request) error {
	chainID, err := chains.Resolve(chi.URLParam(r, "chain"))
	if err != nil {
		return toAppError(err)
	}
	v, err := h.service.GetByAddress(r.Context(), chi.URLParam(r, "address"), chainID)
	if err != nil {
		return toAppError(err)
	}
	if v == nil {
		return apperrors.ResourceNotFoundError(nil, "vault not found")
	}
	h.writeJSON(w, http.StatusOK, v)
	return nil
}

func (h *HTTP) topAddresses(w http.ResponseWriter, r *http.Request) error {
	chain := chi.URLParam(r, "chain")
	chainID, err := chains.Resolve(chain)
	if err != nil {
		return toAppError(err)
	}
	n, err := parseInt(r.URL.Query(), "n")
	if err != nil {
		return err
	}
	addrs, err := h.service.TopVaultAddresses(r.Context(), chain, n)
	if err != nil {
		return toAppError(err)
	}
	h.writeJSON(w, http.StatusOK, addressesResponse{ChainID: chainID, Addresses: addrs})
	return nil
}

func (h *HTTP) writeVaults(w http.ResponseWriter, vaults []*vault.Vault) {
	if vaults == nil {
		vaults = []*vault.Vault{}
	}
	h.writeJSON(w, http.StatusOK, vaultsResponse{Vaults: vaults, Count: len(vaults)})
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := apphttp.WriteJSON(w, status, data); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}

// toAppError maps discovery errors onto application error categories.
func toAppError(err error) error {
	var (
		svcErr      *apperrors.ServiceError
		chainErr    *vault.UnsupportedChainError
		filterErr   *vault.InvalidFilterError
		upstreamErr *vault.RemoteQueryError
	)
	switch {
	case errors.As(err, &svcErr):
		return err
	case errors.As(err, &chainErr):
		return apperrors.BadRequestError(err, chainErr.Error())
	case errors.As(err, &filterErr):
		return apperrors.BadRequestError(err, filterErr.Error())
	case errors.As(err, &upstreamErr):
		return apperrors.DependencyFailureError(err, "vault data service unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError(err, "vault data service timed out")
	default:
		return apperrors.GeneralError(err)
	}
}

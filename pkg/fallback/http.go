package fallback

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/vault-discovery/pkg/app/errors"
	apphttp "github.com/chainsafe/vault-discovery/pkg/app/http"
	"github.com/chainsafe/vault-discovery/pkg/auth"
	"github.com/chainsafe/vault-discovery/pkg/chains"
)

// UpsertRequest is the body of PUT /fallback.
type UpsertRequest struct {
	Chain   string `json:"chain" validate:"required"`
	Asset   string `json:"asset" validate:"required,max=32"`
	Label   string `json:"label" validate:"required,max=255"`
	Address string `json:"address" validate:"required,eth_addr"`
}

type listResponse struct {
	Entries []*Entry `json:"entries"`
}

// HTTP exposes the writable fallback store to operators
type HTTP struct {
	store    Store
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// RegisterAdminRoutes registers the operator endpoints of the fallback store.
// Callers are expected to mount them behind authentication.
func RegisterAdminRoutes(r chi.Router, store Store, logger *zap.Logger) {
	h := &HTTP{
		store:    store,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}

	r.Get("/fallback", apphttp.HandleError(h.list))
	r.Put("/fallback", apphttp.HandleError(h.upsert))
}

func (h *HTTP) list(w http.ResponseWriter, r *http.Request) error {
	entries, err := h.store.List(r.Context())
	if err != nil {
		return apperrors.GeneralError(err)
	}
	if entries == nil {
		entries = []*Entry{}
	}
	h.writeJSON(w, http.StatusOK, listResponse{Entries: entries})
	return nil
}

func (h *HTTP) upsert(w http.ResponseWriter, r *http.Request) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	var req UpsertRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}
	if err := h.validate.Struct(&req); err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}

	chainID, err := chains.Resolve(req.Chain)
	if err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}

	entry := &Entry{
		ChainID:     chainID,
		AssetSymbol: normalizeSymbol(req.Asset),
		Label:       req.Label,
		Address:     chains.NormalizeAddress(req.Address),
		UpdatedAt:   h.now().UTC(),
	}
	if err := h.store.Upsert(r.Context(), entry); err != nil {
		return apperrors.GeneralError(err)
	}

	operator, _ := auth.SubjectFromContext(r.Context())
	h.logger.Info("Fallback vault updated by operator",
		zap.String("operator", operator),
		zap.Int64("chain_id", entry.ChainID),
		zap.String("asset", entry.AssetSymbol),
		zap.String("address", entry.Address),
	)

	h.writeJSON(w, http.StatusOK, entry)
	return nil
}

func (h *HTTP) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := apphttp.WriteJSON(w, status, data); err != nil {
		h.logger.Warn("Failed to write response", zap.Error(err))
	}
}

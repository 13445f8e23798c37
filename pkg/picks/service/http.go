package service

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
	apphttp "github.com/chainsafe/marketplace-favorites/pkg/app/http"
	"github.com/chainsafe/marketplace-favorites/pkg/auth"
	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// maxStatsItems bounds the item ids of one stats request.
const maxStatsItems = 100

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	cfg     *config.PicksConfig
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the picks service on the given
// chi router. Reads work anonymously; picking needs a caller.
func RegisterRoutes(r chi.Router, service Service, cfg *config.PicksConfig, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		cfg:     cfg,
		logger:  logger,
	}

	r.Get("/picks/stats", apphttp.HandleError(h.getStats))
	r.Get("/picks/{itemId}/stats", apphttp.HandleError(h.getItemStats))
	r.Get("/picks/{itemId}", apphttp.HandleError(h.getPickers))
	r.Post("/picks/{itemId}", apphttp.HandleError(h.pickAndUnpick))
}

// power returns the requested power threshold or the configured default.
func (h *HTTP) power(r *http.Request) (*int64, error) {
	power, err := apphttp.QueryInt64(r, "power")
	if err != nil || power != nil {
		return power, err
	}
	def := h.cfg.PowerThreshold
	return &def, nil
}

func (h *HTTP) getStats(w http.ResponseWriter, r *http.Request) error {
	var itemIDs []string
	for _, id := range r.URL.Query()["item_id"] {
		if id = strings.TrimSpace(id); id != "" {
			itemIDs = append(itemIDs, id)
		}
	}
	if len(itemIDs) == 0 {
		return apperrors.BadRequestError(nil, "item_id is required")
	}
	if len(itemIDs) > maxStatsItems {
		return apperrors.BadRequestError(nil, "too many item ids")
	}
	stats, err := h.stats(r, itemIDs)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, stats)
	return nil
}

func (h *HTTP) getItemStats(w http.ResponseWriter, r *http.Request) error {
	stats, err := h.stats(r, []string{chi.URLParam(r, "itemId")})
	if err != nil {
		return err
	}
	if len(stats) != 1 {
		return apperrors.GeneralError(fmt.Errorf("expected stats of one item, got %d", len(stats)))
	}
	apphttp.WriteJSON(w, http.StatusOK, stats[0])
	return nil
}

func (h *HTTP) stats(r *http.Request, itemIDs []string) ([]*favorites.PickStats, error) {
	power, err := h.power(r)
	if err != nil {
		return nil, err
	}
	caller, _ := auth.AddressFromContext(r.Context())

	return h.service.GetPicksStats(r.Context(), itemIDs, favorites.StatsOptions{
		UserAddress: caller,
		Power:       power,
	})
}

func (h *HTTP) getPickers(w http.ResponseWriter, r *http.Request) error {
	limit, offset, err := apphttp.Paging(r, h.cfg.DefaultLimit, h.cfg.MaxLimit)
	if err != nil {
		return err
	}
	power, err := h.power(r)
	if err != nil {
		return err
	}
	caller, _ := auth.AddressFromContext(r.Context())

	page, err := h.service.GetPicksByItemID(r.Context(), chi.URLParam(r, "itemId"), favorites.PickersOptions{
		UserAddress: caller,
		Limit:       limit,
		Offset:      offset,
		Power:       power,
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, page)
	return nil
}

func (h *HTTP) pickAndUnpick(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}

	var req favorites.BulkPickRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := favorites.Validate(req); err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}
	bulk := req.ToBulkPick()
	if overlap := bulk.Overlap(); len(overlap) > 0 {
		return apperrors.BadRequestError(nil,
			"lists cannot be picked and unpicked at once: "+strings.Join(overlap, ", "))
	}

	if err := h.service.PickAndUnpickInBulk(r.Context(), chi.URLParam(r, "itemId"), bulk, caller); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
	apphttp "github.com/chainsafe/marketplace-favorites/pkg/app/http"
	"github.com/chainsafe/marketplace-favorites/pkg/auth"
	"github.com/chainsafe/marketplace-favorites/pkg/config"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	paging  *config.PicksConfig
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the lists service on the given
// chi router. Every route needs an authenticated caller.
func RegisterRoutes(r chi.Router, service Service, paging *config.PicksConfig, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		paging:  paging,
		logger:  logger,
	}

	r.Get("/lists", apphttp.HandleError(h.getLists))
	r.Post("/lists", apphttp.HandleError(h.createList))
	r.Get("/lists/{id}", apphttp.HandleError(h.getList))
	r.Patch("/lists/{id}", apphttp.HandleError(h.updateList))
	r.Delete("/lists/{id}", apphttp.HandleError(h.deleteList))
	r.Get("/lists/{id}/picks", apphttp.HandleError(h.getPicks))
	r.Post("/lists/{id}/picks", apphttp.HandleError(h.addPick))
	r.Delete("/lists/{id}/picks/{itemId}", apphttp.HandleError(h.deletePick))
}

// listID returns the list id path parameter.
func listID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if !favorites.IsValidListID(id) {
		return "", apperrors.BadRequestError(nil, "invalid list id")
	}
	return id, nil
}

func (h *HTTP) getLists(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}
	limit, offset, err := apphttp.Paging(r, h.paging.DefaultLimit, h.paging.MaxLimit)
	if err != nil {
		return err
	}

	opts := favorites.ListsOptions{
		UserAddress:   caller,
		Limit:         limit,
		Offset:        offset,
		SortBy:        favorites.SortByCreatedAt,
		SortDirection: favorites.SortDesc,
		ItemID:        apphttp.QueryString(r, "item_id"),
		Query:         apphttp.QueryString(r, "q"),
	}
	if v := r.URL.Query().Get("sort_by"); v != "" {
		opts.SortBy = favorites.SortBy(v)
		if !opts.SortBy.Valid() {
			return apperrors.BadRequestError(nil, "invalid sort_by")
		}
	}
	if v := r.URL.Query().Get("sort_direction"); v != "" {
		opts.SortDirection = favorites.SortDirection(v)
		if !opts.SortDirection.Valid() {
			return apperrors.BadRequestError(nil, "invalid sort_direction")
		}
	}

	page, err := h.service.GetLists(r.Context(), opts)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, page)
	return nil
}

func (h *HTTP) createList(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}

	var req favorites.CreateListRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := favorites.Validate(req); err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}

	list, err := h.service.AddList(r.Context(), favorites.NewList{
		Name:        req.Name,
		Description: req.Description,
		UserAddress: caller,
		Private:     req.Private,
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, list)
	return nil
}

func (h *HTTP) getList(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}
	id, err := listID(r)
	if err != nil {
		return err
	}

	list, err := h.service.GetList(r.Context(), id, favorites.GetListOptions{
		UserAddress:        caller,
		RequiredPermission: favorites.PermissionView,
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, list)
	return nil
}

func (h *HTTP) updateList(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}
	id, err := listID(r)
	if err != nil {
		return err
	}

	var req favorites.UpdateListRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := favorites.Validate(req); err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}

	list, err := h.service.UpdateList(r.Context(), id, caller, req.ToUpdate())
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, list)
	return nil
}

func (h *HTTP) deleteList(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}
	id, err := listID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeleteList(r.Context(), id, caller); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *HTTP) getPicks(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}
	id, err := listID(r)
	if err != nil {
		return err
	}
	limit, offset, err := apphttp.Paging(r, h.paging.DefaultLimit, h.paging.MaxLimit)
	if err != nil {
		return err
	}

	page, err := h.service.GetPicksByListID(r.Context(), id, favorites.PicksOptions{
		UserAddress: caller,
		Limit:       limit,
		Offset:      offset,
	})
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusOK, page)
	return nil
}

func (h *HTTP) addPick(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}
	id, err := listID(r)
	if err != nil {
		return err
	}

	var req favorites.AddPickRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if err := favorites.Validate(req); err != nil {
		return apperrors.BadRequestError(err, err.Error())
	}

	pick, err := h.service.AddPickToList(r.Context(), id, req.ItemID, caller)
	if err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, pick)
	return nil
}

func (h *HTTP) deletePick(w http.ResponseWriter, r *http.Request) error {
	caller, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return err
	}
	id, err := listID(r)
	if err != nil {
		return err
	}

	if err := h.service.DeletePickInList(r.Context(), id, chi.URLParam(r, "itemId"), caller); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/marketplace-favorites/pkg/app/errors"
	apphttp "github.com/chainsafe/marketplace-favorites/pkg/app/http"
	"github.com/chainsafe/marketplace-favorites/pkg/auth"
	"github.com/chainsafe/marketplace-favorites/pkg/favorites"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the access service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/lists/{id}/access", apphttp.HandleError(h.createAccess))
	r.Delete("/lists/{id}/access", apphttp.HandleError(h.deleteAccess))
}

func (h *HTTP) createAccess(w http.ResponseWriter, r *http.Request) error {
	access, owner, err := parseAccess(r)
	if err != nil {
		return err
	}
	if err := h.service.CreateAccess(r.Context(), access, owner); err != nil {
		return err
	}
	apphttp.WriteJSON(w, http.StatusCreated, access)
	return nil
}

func (h *HTTP) deleteAccess(w http.ResponseWriter, r *http.Request) error {
	access, owner, err := parseAccess(r)
	if err != nil {
		return err
	}
	if err := h.service.DeleteAccess(r.Context(), access, owner); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

// parseAccess reads the grant of a request and the address of its caller.
func parseAccess(r *http.Request) (favorites.Access, string, error) {
	owner, err := auth.RequiredAddress(r.Context())
	if err != nil {
		return favorites.Access{}, "", err
	}
	listID := chi.URLParam(r, "id")
	if !favorites.IsValidListID(listID) {
		return favorites.Access{}, "", apperrors.BadRequestError(nil, "invalid list id")
	}

	var req favorites.AccessRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return favorites.Access{}, "", err
	}
	if err := favorites.Validate(req); err != nil {
		return favorites.Access{}, "", apperrors.BadRequestError(err, err.Error())
	}

	grantee := req.Grantee
	if grantee != favorites.Everyone {
		grantee = auth.NormalizeAddress(grantee)
	}
	return favorites.Access{
		ListID:     listID,
		Permission: req.Permission,
		Grantee:    grantee,
	}, owner, nil
}

package handlers

import (
	"net/http"

	"proplist-backend/application/services"
	"proplist-backend/pkg/auth"
	"proplist-backend/pkg/common"

	"go.uber.org/zap"
)

// FavoriteHandler exposes the per-user favorites list.
type FavoriteHandler struct {
	service *services.FavoriteService
	logger  *zap.Logger
}

// NewFavoriteHandler creates a favorite handler.
func NewFavoriteHandler(service *services.FavoriteService, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{service: service, logger: logger}
}

type favoritesRequest struct {
	PropertyIDs []string `json:"propertyIds"`
}

type favoritesAddedResponse struct {
	Added int `json:"added"`
}

type favoritesListResponse struct {
	Favorites []string `json:"favorites"`
}

// Add handles POST /api/favorites.
func (h *FavoriteHandler) Add(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req favoritesRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	added, err := h.service.Add(r.Context(), user.UserID, req.PropertyIDs)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, favoritesAddedResponse{Added: added})
}

// List handles GET /api/favorites.
func (h *FavoriteHandler) List(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	favorites, err := h.service.List(r.Context(), user.UserID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, favoritesListResponse{Favorites: favorites})
}

// Remove handles DELETE /api/favorites.
func (h *FavoriteHandler) Remove(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req favoritesRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.Remove(r.Context(), user.UserID, req.PropertyIDs); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondNoContent(w)
}

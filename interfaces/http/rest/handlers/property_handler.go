package handlers

import (
	"net/http"

	"proplist-backend/application/services"
	"proplist-backend/domain"
	"proplist-backend/pkg/auth"
	"proplist-backend/pkg/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PropertyHandler exposes listing CRUD, search and filter.
type PropertyHandler struct {
	service *services.PropertyService
	logger  *zap.Logger
}

// NewPropertyHandler creates a property handler.
func NewPropertyHandler(service *services.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{service: service, logger: logger}
}

type searchRequest struct {
	Keyword string `json:"keyword"`
}

// Create handles POST /api/properties.
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var input services.CreatePropertyInput
	if err := common.ParseJSONBody(w, r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	property, err := h.service.Create(r.Context(), user.UserID, input)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, property)
}

// Get handles GET /api/properties/{id}.
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	property, err := h.service.Get(r.Context(), id)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, property)
}

// Update handles PUT /api/properties/{id}.
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	var update domain.PropertyUpdate
	if err := common.ParseJSONBody(w, r, &update, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	property, err := h.service.Update(r.Context(), user.UserID, id, update)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, property)
}

// Delete handles DELETE /api/properties/{id}.
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), user.UserID, id); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondNoContent(w)
}

// Search handles POST /api/properties/search.
func (h *PropertyHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	properties, err := h.service.Search(r.Context(), req.Keyword)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, properties)
}

// Filter handles POST /api/properties/filter.
func (h *PropertyHandler) Filter(w http.ResponseWriter, r *http.Request) {
	var filter domain.PropertyFilter
	if err := common.ParseJSONBody(w, r, &filter, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	properties, err := h.service.Filter(r.Context(), filter)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, properties)
}

package handlers

import (
	"net/http"

	"proplist-backend/application/services"
	"proplist-backend/pkg/auth"
	"proplist-backend/pkg/common"

	"go.uber.org/zap"
)

// RecommendationHandler exposes recipient lookup, sending and the received
// view of recommendations.
type RecommendationHandler struct {
	service *services.RecommendationService
	logger  *zap.Logger
}

// NewRecommendationHandler creates a recommendation handler.
func NewRecommendationHandler(service *services.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{service: service, logger: logger}
}

type recommendRequest struct {
	RecipientEmail string `json:"recipientEmail"`
	PropertyID     string `json:"propertyId"`
}

type recipientResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type lookupRequest struct {
	RecipientEmail string `json:"recipientEmail"`
}

// LookupRecipient handles GET /api/recommendations/search. The email arrives
// in the request body, matching the existing client; the recipientEmail query
// parameter is accepted as a fallback.
func (h *RecommendationHandler) LookupRecipient(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	_ = common.ParseJSONBody(w, r, &req, maxBodyBytes)
	email := req.RecipientEmail
	if email == "" {
		email = r.URL.Query().Get("recipientEmail")
	}

	recipient, err := h.service.LookupRecipient(r.Context(), email)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, recipientResponse{
		ID:    recipient.ID.Hex(),
		Email: recipient.Email,
	})
}

// Recommend handles POST /api/recommendations.
func (h *RecommendationHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req recommendRequest
	if err := common.ParseJSONBody(w, r, &req, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.service.Recommend(r.Context(), user.UserID, req.RecipientEmail, req.PropertyID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, rec)
}

// Received handles GET /api/recommendations/received.
func (h *RecommendationHandler) Received(w http.ResponseWriter, r *http.Request) {
	user, err := auth.GetUserFromContext(r.Context())
	if err != nil {
		common.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	received, err := h.service.Received(r.Context(), user.UserID)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, received)
}

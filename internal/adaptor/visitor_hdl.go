package adaptor

import (
	"encoding/json"
	"net/http"

	"restaurant-rating/internal/dto/request"
	"restaurant-rating/internal/usecase"
	"restaurant-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type VisitorHandler struct {
	service usecase.VisitorService
	log     *zap.Logger
}

func NewVisitorHandler(service usecase.VisitorService, log *zap.Logger) *VisitorHandler {
	return &VisitorHandler{
		service: service,
		log:     log.With(zap.String("handler", "visitor")),
	}
}

// CreateVisitor handles POST /api/visitors
func (h *VisitorHandler) CreateVisitor(w http.ResponseWriter, r *http.Request) {
	var req request.CreateVisitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	visitor, err := h.service.CreateVisitor(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create visitor")
		return
	}

	utils.ResponseCreated(w, "success", visitor)
}

// GetVisitors handles GET /api/visitors
func (h *VisitorHandler) GetVisitors(w http.ResponseWriter, r *http.Request) {
	visitors, err := h.service.GetVisitors(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list visitors")
		return
	}

	utils.ResponseSuccess(w, "success", visitors)
}

// GetVisitorByID handles GET /api/visitors/{id}
func (h *VisitorHandler) GetVisitorByID(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "id")
	if visitorID == "" {
		utils.ResponseBadRequest(w, "Visitor ID is required", nil)
		return
	}

	visitor, err := h.service.GetVisitorByID(r.Context(), visitorID)
	if err != nil {
		respondServiceError(w, h.log, err, "get visitor")
		return
	}

	utils.ResponseSuccess(w, "success", visitor)
}

// UpdateVisitor handles PUT /api/visitors/{id}
func (h *VisitorHandler) UpdateVisitor(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "id")
	if visitorID == "" {
		utils.ResponseBadRequest(w, "Visitor ID is required", nil)
		return
	}

	var req request.UpdateVisitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	visitor, err := h.service.UpdateVisitor(r.Context(), visitorID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update visitor")
		return
	}

	utils.ResponseSuccess(w, "success", visitor)
}

// DeleteVisitor handles DELETE /api/visitors/{id}
func (h *VisitorHandler) DeleteVisitor(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "id")
	if visitorID == "" {
		utils.ResponseBadRequest(w, "Visitor ID is required", nil)
		return
	}

	if err := h.service.DeleteVisitor(r.Context(), visitorID); err != nil {
		respondServiceError(w, h.log, err, "delete visitor")
		return
	}

	utils.ResponseNoContent(w)
}

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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetReview handles GET /api/reviews/{visitorId}/{restaurantId}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorId")
	restaurantID := chi.URLParam(r, "restaurantId")

	review, err := h.service.GetReview(r.Context(), visitorID, restaurantID)
	if err != nil {
		respondServiceError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// UpdateReview handles PUT /api/reviews/{visitorId}/{restaurantId}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorId")
	restaurantID := chi.URLParam(r, "restaurantId")

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), visitorID, restaurantID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /api/reviews/{visitorId}/{restaurantId}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	visitorID := chi.URLParam(r, "visitorId")
	restaurantID := chi.URLParam(r, "restaurantId")

	if err := h.service.DeleteReview(r.Context(), visitorID, restaurantID); err != nil {
		respondServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

// GetRestaurantReviews handles GET /api/restaurants/{id}/reviews
func (h *ReviewHandler) GetRestaurantReviews(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	query := r.URL.Query()
	req := &request.PageRequest{
		Page:      utils.ParseInt(query.Get("page"), 0),
		Size:      utils.ParseInt(query.Get("size"), 10),
		Sort:      query.Get("sort"),
		Direction: query.Get("direction"),
	}

	reviews, err := h.service.GetRestaurantReviews(r.Context(), restaurantID, req)
	if err != nil {
		respondServiceError(w, h.log, err, "get restaurant reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetRestaurantReviewsByRating handles GET /api/restaurants/{id}/reviews/by-rating
func (h *ReviewHandler) GetRestaurantReviewsByRating(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), 0)
	size := utils.ParseInt(query.Get("size"), 10)
	ascending := query.Get("ascending") != "false" // defaults to ascending

	reviews, err := h.service.GetRestaurantReviewsByRating(r.Context(), restaurantID, page, size, ascending)
	if err != nil {
		respondServiceError(w, h.log, err, "get restaurant reviews by rating")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

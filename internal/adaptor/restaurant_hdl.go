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

type RestaurantHandler struct {
	service usecase.RestaurantService
	log     *zap.Logger
}

func NewRestaurantHandler(service usecase.RestaurantService, log *zap.Logger) *RestaurantHandler {
	return &RestaurantHandler{
		service: service,
		log:     log.With(zap.String("handler", "restaurant")),
	}
}

// CreateRestaurant handles POST /api/restaurants
func (h *RestaurantHandler) CreateRestaurant(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	restaurant, err := h.service.CreateRestaurant(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create restaurant")
		return
	}

	utils.ResponseCreated(w, "success", restaurant)
}

// GetRestaurants handles GET /api/restaurants
func (h *RestaurantHandler) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.service.GetRestaurants(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list restaurants")
		return
	}

	utils.ResponseSuccess(w, "success", restaurants)
}

// GetRestaurantByID handles GET /api/restaurants/{id}
func (h *RestaurantHandler) GetRestaurantByID(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	restaurant, err := h.service.GetRestaurantByID(r.Context(), restaurantID)
	if err != nil {
		respondServiceError(w, h.log, err, "get restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// UpdateRestaurant handles PUT /api/restaurants/{id}
func (h *RestaurantHandler) UpdateRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	var req request.UpdateRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	restaurant, err := h.service.UpdateRestaurant(r.Context(), restaurantID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update restaurant")
		return
	}

	utils.ResponseSuccess(w, "success", restaurant)
}

// DeleteRestaurant handles DELETE /api/restaurants/{id}
func (h *RestaurantHandler) DeleteRestaurant(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "id")
	if restaurantID == "" {
		utils.ResponseBadRequest(w, "Restaurant ID is required", nil)
		return
	}

	if err := h.service.DeleteRestaurant(r.Context(), restaurantID); err != nil {
		respondServiceError(w, h.log, err, "delete restaurant")
		return
	}

	utils.ResponseNoContent(w)
}

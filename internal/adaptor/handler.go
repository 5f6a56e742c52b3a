package adaptor

import (
	"errors"
	"net/http"

	"restaurant-rating/internal/usecase"
	"restaurant-rating/pkg/apperr"
	"restaurant-rating/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Visitor    *VisitorHandler
	Restaurant *RestaurantHandler
	Review     *ReviewHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Visitor:    NewVisitorHandler(service.Visitor, log),
		Restaurant: NewRestaurantHandler(service.Restaurant, log),
		Review:     NewReviewHandler(service.Review, log),
	}
}

// respondServiceError maps service error kinds to HTTP status codes.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, apperr.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, apperr.ErrInvalidArgument):
		log.Warn(operation+" failed - invalid argument", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

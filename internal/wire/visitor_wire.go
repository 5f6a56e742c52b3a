package wire

import (
	"restaurant-rating/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireVisitor(r chi.Router, visitorHandler *adaptor.VisitorHandler) {
	r.Post("/api/visitors", visitorHandler.CreateVisitor)
	r.Get("/api/visitors", visitorHandler.GetVisitors)
	r.Get("/api/visitors/{id}", visitorHandler.GetVisitorByID)
	r.Put("/api/visitors/{id}", visitorHandler.UpdateVisitor)

	// Deleting a visitor cascades deletion of the visitor's reviews
	r.Delete("/api/visitors/{id}", visitorHandler.DeleteVisitor)
}

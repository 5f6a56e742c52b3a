package response

import (
	"time"

	"restaurant-rating/internal/data/entity"
)

type VisitorResponse struct {
	ID        string    `json:"id"`
	Name      *string   `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
}

func VisitorToResponse(visitor *entity.Visitor) VisitorResponse {
	return VisitorResponse{
		ID:        visitor.ID.String(),
		Name:      visitor.Name,
		Age:       visitor.Age,
		Gender:    string(visitor.Gender),
		CreatedAt: visitor.CreatedAt,
	}
}

package request

// Rating is deliberately absent: it is derived from reviews and cannot be
// set through the restaurant endpoints.
type CreateRestaurantRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=1000"`
	CuisineType string  `json:"cuisine_type" validate:"required,oneof=ITALIAN CHINESE FRENCH JAPANESE GEORGIAN MEXICAN"`
	AverageBill float64 `json:"average_bill" validate:"required,gt=0"`
}

type UpdateRestaurantRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"required,max=1000"`
	CuisineType string  `json:"cuisine_type" validate:"required,oneof=ITALIAN CHINESE FRENCH JAPANESE GEORGIAN MEXICAN"`
	AverageBill float64 `json:"average_bill" validate:"required,gt=0"`
}

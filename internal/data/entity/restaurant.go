package entity

type CuisineType string

const (
	CuisineItalian  CuisineType = "ITALIAN"
	CuisineChinese  CuisineType = "CHINESE"
	CuisineFrench   CuisineType = "FRENCH"
	CuisineJapanese CuisineType = "JAPANESE"
	CuisineGeorgian CuisineType = "GEORGIAN"
	CuisineMexican  CuisineType = "MEXICAN"
)

type Restaurant struct {
	Base
	Name        string      `db:"name"`
	Description string      `db:"description"`
	CuisineType CuisineType `db:"cuisine_type"`
	AverageBill float64     `db:"average_bill"`
	// Rating is derived from reviews. It is written only through
	// RestaurantRepository.UpdateRating, never by Create/Update.
	Rating float64 `db:"rating"`
}

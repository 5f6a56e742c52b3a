package apperr

import "errors"

// Error kinds shared by all layers. Services wrap these with context via
// fmt.Errorf("...: %w", ...), handlers match with errors.Is and map them
// to HTTP status codes.
var (
	// ErrNotFound - referenced visitor, restaurant, or review does not exist
	ErrNotFound = errors.New("not found")

	// ErrConflict - a review already exists for the (visitor, restaurant) pair
	ErrConflict = errors.New("already exists")

	// ErrInvalidArgument - unrecognized sort field or malformed pagination params
	ErrInvalidArgument = errors.New("invalid argument")
)

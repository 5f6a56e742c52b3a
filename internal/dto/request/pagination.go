package request

// PageRequest carries zero-based pagination and sorting parameters.
type PageRequest struct {
	Page      int    `json:"page" validate:"min=0"`
	Size      int    `json:"size" validate:"min=1,max=100"`
	Sort      string `json:"sort,omitempty"`
	Direction string `json:"direction,omitempty"`
}

func (p PageRequest) Offset() int {
	if p.Page < 0 {
		return 0
	}
	return p.Page * p.Size
}

func (p PageRequest) Limit() int {
	if p.Size < 1 {
		return 10
	}
	if p.Size > 100 {
		return 100
	}
	return p.Size
}

package request

// Name is optional: an absent name is a valid, anonymous visitor.
type CreateVisitorRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age    int     `json:"age" validate:"required,gt=0,max=110"`
	Gender string  `json:"gender" validate:"required,oneof=Man Woman Other"`
}

type UpdateVisitorRequest struct {
	Name   *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age    int     `json:"age" validate:"required,gt=0,max=110"`
	Gender string  `json:"gender" validate:"required,oneof=Man Woman Other"`
}

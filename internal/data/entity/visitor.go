package entity

type Gender string

const (
	GenderMan   Gender = "Man"
	GenderWoman Gender = "Woman"
	GenderOther Gender = "Other"
)

type Visitor struct {
	BaseSimple
	Name   *string `db:"name"` // nil = anonymous visitor
	Age    int     `db:"age"`
	Gender Gender  `db:"gender"`
}

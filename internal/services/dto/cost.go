package dto

// CostForm is the create/update form for a billing entry. PersonID is bound
// for completeness but deliberately overridden with the URL's person on save.
type CostForm struct {
	PersonID     uint   `form:"person" json:"person"`
	GradeID      uint   `form:"grade" json:"grade" validate:"required"`
	Company      int    `form:"company" json:"company" validate:"required"`
	DeptCategory int    `form:"dept_category" json:"dept_category" validate:"required,oneof=1 2"`
	Amount       int    `form:"amount" json:"amount" validate:"required"`
	StartYM      string `form:"start_ym" json:"start_ym" validate:"required"`
	EndYM        string `form:"end_ym" json:"end_ym" validate:"omitempty"`
	RecordType   int    `form:"record_type" json:"record_type" validate:"required,oneof=1 2"`
}

package dto

// PersonForm is the create/update form for a personnel record.
type PersonForm struct {
	Name  string `form:"name" json:"name" validate:"required,max=255"`
	Email string `form:"email" json:"email" validate:"required,email,max=255"`
}

package models

// Person is a personnel record. It exclusively owns its Cost rows; deleting a
// person cascades to them.
type Person struct {
	BaseModel
	Name  string `gorm:"size:255;not null" json:"name"`
	Email string `gorm:"size:255;uniqueIndex;not null" json:"email"`

	Costs []Cost `gorm:"foreignKey:PersonID;constraint:OnDelete:CASCADE" json:"-"`
}

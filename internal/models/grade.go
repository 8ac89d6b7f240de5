package models

import "time"

// Staff grade codes. Codes 1-7 are same-department staff, 11-17 are staff
// loaned from other departments.
const (
	GradeInG1 = 1
	GradeInG2 = 2
	GradeInG3 = 3
	GradeInG4 = 4
	GradeInG5 = 5
	GradeInG6 = 6
	GradeInG7 = 7

	GradeOutG1 = 11
	GradeOutG2 = 12
	GradeOutG3 = 13
	GradeOutG4 = 14
	GradeOutG5 = 15
	GradeOutG6 = 16
	GradeOutG7 = 17
)

// Grade is a staff grade with an effective date range. A nil EndYM means the
// grade is currently in effect. Ranges are not checked for overlap.
type Grade struct {
	BaseModel
	Grade   int        `gorm:"not null" json:"grade"`
	StartYM time.Time  `gorm:"not null" json:"start_ym"`
	EndYM   *time.Time `json:"end_ym"`
}

// SameDepartment reports whether the grade code belongs to the
// same-department range.
func (g *Grade) SameDepartment() bool {
	return g.Grade >= GradeInG1 && g.Grade <= GradeInG7
}

// Active reports whether the grade has no effective end date.
func (g *Grade) Active() bool {
	return g.EndYM == nil
}

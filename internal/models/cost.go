package models

import "time"

// DeptCategory distinguishes which department a cost is booked against.
type DeptCategory int

const (
	DeptManufacturing1 DeptCategory = 1
	DeptOther          DeptCategory = 2
)

// RecordType distinguishes forecasted cost entries from realized ones.
type RecordType int

const (
	RecordPlanned RecordType = 1
	RecordActual  RecordType = 2
)

// Cost is a billing entry owned by exactly one Person and referencing one
// Grade. PersonID is always set server-side from the URL, never from the
// submitted form.
type Cost struct {
	BaseModel
	PersonID     uint         `gorm:"not null;index" json:"person_id"`
	Person       *Person      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	GradeID      uint         `gorm:"not null" json:"grade_id"`
	Grade        *Grade       `json:"-"`
	Company      int          `gorm:"not null" json:"company"`
	DeptCategory DeptCategory `gorm:"default:1" json:"dept_category"`
	Amount       int          `gorm:"not null" json:"amount"`
	StartYM      time.Time    `gorm:"not null" json:"start_ym"`
	EndYM        *time.Time   `json:"end_ym"`
	RecordType   RecordType   `gorm:"default:1" json:"record_type"`
}

package employee

import (
	"time"
)

// Employee memegang foreign key kepemilikan ke EmployeeLogin (1:1) dan
// referensi non-owning ke Department dan Division.
type Employee struct {
	ID           uint      `gorm:"primaryKey"`
	LoginID      uint      `gorm:"uniqueIndex;not null"`
	Fullname     string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(32);not null"`
	Address      string    `gorm:"type:varchar(255)"`
	HireDate     time.Time `gorm:"type:date"`
	DepartmentID uint      `gorm:"not null;index"`
	DivisionID   uint      `gorm:"not null;index"`
	IsActive     bool      `gorm:"not null;default:false"`
	IsDelete     bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

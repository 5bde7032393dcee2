package auth

import (
	"time"
)

// EmployeeLogin adalah credential record: satu baris per Employee.
// ActivationToken disimpan saat registrasi untuk aktivasi akun di kemudian
// hari dan tidak pernah dikirim balik ke client.
type EmployeeLogin struct {
	ID              uint   `gorm:"primaryKey"`
	Email           string `gorm:"type:varchar(255);uniqueIndex:uq_employee_login_email;not null"`
	Password        string `gorm:"type:varchar(255);not null"`
	IPAddress       string `gorm:"type:varchar(64)"`
	ActivationToken string `gorm:"type:varchar(64)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

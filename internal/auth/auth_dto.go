package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// EmployeeProfile adalah proyeksi read-only hasil join ke employee,
// department, dan division untuk response login.
type EmployeeProfile struct {
	IDEmployee     uint   `gorm:"column:id_employee" json:"id_employee"`
	Fullname       string `gorm:"column:fullname" json:"fullname"`
	PhoneNumber    string `gorm:"column:phone_number" json:"phone_number"`
	NameDepartment string `gorm:"column:name_department" json:"name_department"`
	NameDivision   string `gorm:"column:name_division" json:"name_division"`
}

type UserResponse struct {
	ID       uint             `json:"id"`
	Email    string           `json:"email"`
	Employee *EmployeeProfile `json:"employee,omitempty"`
}

type LoginResult struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

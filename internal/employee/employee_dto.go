package employee

import "time"

type UpdateEmployeeRequest struct {
	Fullname     string `json:"fullname" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required,e164"`
	Address      string `json:"address" binding:"required,max=255"`
	HireDate     string `json:"hire_date" binding:"required,datetime=2006-01-02"`
	DepartmentID int    `json:"id_department" binding:"required,gt=0"`
	DivisionID   int    `json:"id_division" binding:"required,gt=0"`
}

// ListRow adalah proyeksi read-only hasil join listing:
// email dari login plus nama department/division.
type ListRow struct {
	ID             uint      `gorm:"column:id"`
	Email          string    `gorm:"column:email"`
	Fullname       string    `gorm:"column:fullname"`
	PhoneNumber    string    `gorm:"column:phone_number"`
	Address        string    `gorm:"column:address"`
	HireDate       time.Time `gorm:"column:hire_date"`
	DepartmentName string    `gorm:"column:department_name"`
	DivisionName   string    `gorm:"column:division_name"`
}

type LoginInfo struct {
	Email string `json:"email"`
}

type NameInfo struct {
	Name string `json:"name"`
}

type EmployeeListItem struct {
	No          int       `json:"no"`
	ID          uint      `json:"id"`
	Login       LoginInfo `json:"login"`
	Fullname    string    `json:"fullname"`
	PhoneNumber string    `json:"phone_number"`
	Address     string    `json:"address"`
	HireDate    string    `json:"hire_date"`
	Department  NameInfo  `json:"department"`
	Division    NameInfo  `json:"division"`
}

type EmployeeResponse struct {
	ID           uint   `json:"id"`
	Fullname     string `json:"fullname"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	HireDate     string `json:"hire_date"`
	DepartmentID uint   `json:"id_department"`
	DivisionID   uint   `json:"id_division"`
	IsActive     bool   `json:"is_active"`
}

package registration

// Satu request dipakai oleh POST /register dan POST /admin/employees:
// keduanya menjalankan alur pembuatan credential+employee yang sama.
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=8"`
	Fullname     string `json:"fullname" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required,e164"`
	Address      string `json:"address" binding:"required,max=255"`
	HireDate     string `json:"hire_date" binding:"required,datetime=2006-01-02"`
	DepartmentID int    `json:"id_department" binding:"required,gt=0"`
	DivisionID   int    `json:"id_division" binding:"required,gt=0"`
}

// Response hanya memuat field publik: tidak pernah password hash
// ataupun activation token.
type RegisterResponse struct {
	ID          uint   `json:"id"`
	Fullname    string `json:"fullname"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}

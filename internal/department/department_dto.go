package department

type CreateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"max=255"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"max=255"`
}

type DepartmentResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DepartmentListItem struct {
	No          int    `json:"no"`
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type OptionItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

package division

type CreateDivisionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"max=255"`
}

type UpdateDivisionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"max=255"`
}

type DivisionResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DivisionListItem struct {
	No          int    `json:"no"`
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type OptionItem struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

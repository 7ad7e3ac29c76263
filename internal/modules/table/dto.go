package table

const (
	minTableCapacity = 1
	maxTableCapacity = 20
)

type CreateTableRequest struct {
	TableNumber string `json:"table_number" binding:"required"`
	Capacity    int    `json:"capacity" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Notes       string `json:"notes"`
}

type UpdateTableRequest struct {
	TableNumber *string `json:"table_number"`
	Capacity    *int    `json:"capacity"`
	Location    *string `json:"location"`
	IsAvailable *bool   `json:"is_available"`
	Notes       *string `json:"notes"`
}

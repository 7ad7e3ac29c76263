package restaurant

const (
	minRestaurantCapacity = 10
	maxRestaurantCapacity = 500
)

// defaultTableCapacities seeds every purchased restaurant with the same
// starter set of interior tables.
var defaultTableCapacities = []int{2, 4, 4, 6, 8}

type ListRequest struct {
	Cuisine string `form:"cuisine"`
	Search  string `form:"search"`
	City    string `form:"city"`
	Page    int    `form:"page"`
}

type PurchaseRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Address     string   `json:"address" binding:"required"`
	Phone       string   `json:"phone" binding:"required"`
	Email       string   `json:"email" binding:"required,email"`
	CuisineType string   `json:"cuisine_type" binding:"required"`
	ImageURL    string   `json:"image_url"`
	OpeningTime string   `json:"opening_time" binding:"required"`
	ClosingTime string   `json:"closing_time" binding:"required"`
	OpeningDays []string `json:"opening_days" binding:"required"`
	MaxCapacity int      `json:"max_capacity" binding:"required"`
}

type UpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Address     *string   `json:"address"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
	CuisineType *string   `json:"cuisine_type"`
	ImageURL    *string   `json:"image_url"`
	OpeningTime *string   `json:"opening_time"`
	ClosingTime *string   `json:"closing_time"`
	OpeningDays *[]string `json:"opening_days"`
	MaxCapacity *int      `json:"max_capacity"`
	IsActive    *bool     `json:"is_active"`
}

type Eligibility struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

type DashboardStats struct {
	TotalReservations     int64 `json:"total_reservations"`
	PendingReservations   int64 `json:"pending_reservations"`
	ConfirmedReservations int64 `json:"confirmed_reservations"`
	TodayReservations     int64 `json:"today_reservations"`
	TotalTables           int64 `json:"total_tables"`
	AvailableTables       int64 `json:"available_tables"`
}

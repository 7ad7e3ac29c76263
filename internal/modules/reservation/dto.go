package reservation

import "time"

const (
	maxPartySize          = 20
	maxSpecialRequestsLen = 500
	defaultPageSize       = 10
)

type CreateReservationRequest struct {
	RestaurantID    int64     `json:"restaurant_id" binding:"required"`
	TableID         int64     `json:"table_id" binding:"required"`
	ReservationDate time.Time `json:"reservation_date" binding:"required"`
	PartySize       int       `json:"party_size" binding:"required"`
	SpecialRequests string    `json:"special_requests"`
}

type AvailableTablesRequest struct {
	RestaurantID    int64     `form:"restaurant_id" binding:"required"`
	ReservationDate time.Time `form:"reservation_date" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	PartySize       int       `form:"party_size" binding:"required"`
}

type ListRequest struct {
	Status string `form:"status"`
	Date   string `form:"date"` // "2006-01-02"
	Page   int    `form:"page"`
}

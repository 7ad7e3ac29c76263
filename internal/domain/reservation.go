package domain

import "time"

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// Terminal reports whether no further status transitions are permitted.
func (s ReservationStatus) Terminal() bool {
	return s == ReservationCancelled || s == ReservationCompleted
}

// ConflictWindow is the minimum spacing between two bookings on the same
// table, and doubles as the minimum-notice cutoff for cancellations.
const ConflictWindow = 2 * time.Hour

type Reservation struct {
	ID              int64             `json:"id" gorm:"primaryKey"`
	UserID          int64             `json:"user_id" gorm:"index"`
	RestaurantID    int64             `json:"restaurant_id" gorm:"index"`
	TableID         int64             `json:"table_id" gorm:"index"`
	ReservationDate time.Time         `json:"reservation_date"`
	PartySize       int               `json:"party_size"`
	Status          ReservationStatus `json:"status" gorm:"type:varchar(16);default:pending"`
	SpecialRequests string            `json:"special_requests,omitempty" gorm:"type:text"`
	Notes           string            `json:"notes,omitempty" gorm:"type:text"`
	ConfirmedAt     *time.Time        `json:"confirmed_at,omitempty"`
	CancelledAt     *time.Time        `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       *time.Time        `json:"-" gorm:"index"`

	User       *User       `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Restaurant *Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Table      *Table      `json:"table,omitempty" gorm:"foreignKey:TableID"`
}

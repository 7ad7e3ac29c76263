package domain

import "time"

type TableLocation string

const (
	TableInterior TableLocation = "interior"
	TableExterior TableLocation = "exterior"
	TablePrivate  TableLocation = "private"
	TableBar      TableLocation = "bar"
)

func (l TableLocation) Valid() bool {
	switch l {
	case TableInterior, TableExterior, TablePrivate, TableBar:
		return true
	}
	return false
}

type Table struct {
	ID           int64         `json:"id" gorm:"primaryKey"`
	RestaurantID int64         `json:"restaurant_id" gorm:"uniqueIndex:idx_tables_restaurant_number"`
	TableNumber  string        `json:"table_number" gorm:"uniqueIndex:idx_tables_restaurant_number"`
	Capacity     int           `json:"capacity"`
	Location     TableLocation `json:"location" gorm:"type:varchar(16)"`
	IsAvailable  bool          `json:"is_available"`
	Notes        string        `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"-" gorm:"index"`

	Reservations []Reservation `json:"reservations,omitempty"`
}

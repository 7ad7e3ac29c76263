package domain

import "time"

type Restaurant struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	OwnerID     *int64     `json:"owner_id,omitempty" gorm:"index"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Address     string     `json:"address"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	CuisineType string     `json:"cuisine_type"`
	ImageURL    string     `json:"image_url,omitempty"`
	OpeningTime string     `json:"opening_time"` // "HH:MM", restaurant-local wall clock
	ClosingTime string     `json:"closing_time"` // "HH:MM", must be after OpeningTime
	OpeningDays []string   `json:"opening_days" gorm:"type:json;serializer:json"`
	MaxCapacity int        `json:"max_capacity"`
	IsActive    bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"-" gorm:"index"`

	Tables []Table `json:"tables,omitempty"`
}

package table

import (
	"context"
	"time"

	"mesareserva/internal/domain"
)

type TableRepository interface {
	ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Table, error)
	GetForRestaurant(ctx context.Context, tableID, restaurantID int64) (*domain.Table, error)
	NumberExists(ctx context.Context, restaurantID int64, number string, excludeID int64) (bool, error)
	Create(ctx context.Context, t *domain.Table) error
	Update(ctx context.Context, t *domain.Table) error
	SoftDelete(ctx context.Context, id int64) error
}

type RestaurantReader interface {
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Restaurant, error)
}

// ReservationChecker guards table removal against upcoming bookings.
type ReservationChecker interface {
	HasActiveForTable(ctx context.Context, tableID int64, after time.Time) (bool, error)
}

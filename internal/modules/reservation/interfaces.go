package reservation

import (
	"context"
	"time"

	"mesareserva/internal/domain"
	"mesareserva/internal/repository"
)

// ReservationRepository defines the persistence operations the booking
// core depends on. The core never traverses ORM relations itself.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	HasConflict(ctx context.Context, tableID int64, start, end time.Time) (bool, error)
	ConflictingTableIDs(ctx context.Context, restaurantID int64, start, end time.Time) ([]int64, error)
	CreateIfFree(ctx context.Context, res *domain.Reservation, start, end time.Time) error
	ListByUser(ctx context.Context, userID int64, f repository.ReservationFilters) ([]domain.Reservation, int64, error)
	ListByRestaurant(ctx context.Context, restaurantID int64, f repository.ReservationFilters) ([]domain.Reservation, int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, at time.Time) error
}

type RestaurantReader interface {
	GetActiveByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Restaurant, error)
}

type TableReader interface {
	GetForRestaurant(ctx context.Context, tableID, restaurantID int64) (*domain.Table, error)
	ListAvailableByCapacity(ctx context.Context, restaurantID int64, minCapacity int, excludeIDs []int64) ([]domain.Table, error)
}

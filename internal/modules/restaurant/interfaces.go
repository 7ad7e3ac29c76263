package restaurant

import (
	"context"

	"mesareserva/internal/domain"
	"mesareserva/internal/repository"
)

type RestaurantRepository interface {
	GetAll(ctx context.Context, f repository.RestaurantFilters) ([]domain.Restaurant, int64, error)
	GetActiveByID(ctx context.Context, id int64) (*domain.Restaurant, error)
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Restaurant, error)
	Update(ctx context.Context, restaurant *domain.Restaurant) error
	CreateWithOwner(ctx context.Context, restaurant *domain.Restaurant, ownerID int64, tables []domain.Table) error
	CountTables(ctx context.Context, restaurantID int64) (total, available int64, err error)
}

// ReservationStatsReader is implemented by the reservation repository and
// feeds the owner dashboard.
type ReservationStatsReader interface {
	StatsForRestaurant(ctx context.Context, restaurantID int64) (*repository.ReservationStats, error)
}

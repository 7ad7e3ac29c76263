package repository

import (
	"context"
	"time"

	"mesareserva/internal/domain"

	"gorm.io/gorm"
)

type TableRepository struct {
	db *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{db: db}
}

var activeReservationStatuses = []domain.ReservationStatus{
	domain.ReservationPending,
	domain.ReservationConfirmed,
}

// ListByRestaurant returns the restaurant's tables ordered by table number,
// each with its upcoming non-cancelled reservations attached.
func (r *TableRepository) ListByRestaurant(ctx context.Context, restaurantID int64) ([]domain.Table, error) {
	var tables []domain.Table
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND deleted_at IS NULL", restaurantID).
		Preload("Reservations", "reservation_date >= ? AND status IN ?", time.Now(), activeReservationStatuses).
		Order("table_number ASC").
		Find(&tables).Error
	return tables, err
}

// GetForRestaurant fetches a table scoped to its restaurant. The
// administrative availability flag is NOT filtered here; callers decide
// how an unavailable table is reported.
func (r *TableRepository) GetForRestaurant(ctx context.Context, tableID, restaurantID int64) (*domain.Table, error) {
	var table domain.Table
	err := r.db.WithContext(ctx).
		Where("id = ? AND restaurant_id = ? AND deleted_at IS NULL", tableID, restaurantID).
		First(&table).Error
	if err != nil {
		return nil, err
	}
	return &table, nil
}

// NumberExists reports whether another table in the restaurant already
// carries the given table number. excludeID skips the table being updated.
func (r *TableRepository) NumberExists(ctx context.Context, restaurantID int64, number string, excludeID int64) (bool, error) {
	var cnt int64
	q := r.db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("restaurant_id = ? AND table_number = ? AND deleted_at IS NULL", restaurantID, number)
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *TableRepository) Create(ctx context.Context, t *domain.Table) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *TableRepository) Update(ctx context.Context, t *domain.Table) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *TableRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("id = ?", id).
		Update("deleted_at", time.Now()).Error
}

// ListAvailableByCapacity returns administratively-available tables that can
// seat the party, excluding the given ids, ordered smallest-first so the
// tightest fitting table is suggested before larger ones.
func (r *TableRepository) ListAvailableByCapacity(
	ctx context.Context,
	restaurantID int64,
	minCapacity int,
	excludeIDs []int64,
) ([]domain.Table, error) {
	var tables []domain.Table
	q := r.db.WithContext(ctx).
		Where("restaurant_id = ? AND is_available = ? AND capacity >= ? AND deleted_at IS NULL",
			restaurantID, true, minCapacity)
	if len(excludeIDs) > 0 {
		q = q.Where("id NOT IN ?", excludeIDs)
	}
	err := q.Order("capacity ASC, table_number ASC").Find(&tables).Error
	return tables, err
}

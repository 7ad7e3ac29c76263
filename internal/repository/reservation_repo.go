package repository

import (
	"context"
	"time"

	"mesareserva/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

type ReservationFilters struct {
	Status string
	// Day bounds the listing to a single calendar day when non-zero.
	DayStart time.Time
	DayEnd   time.Time
	Limit    int
	Offset   int
}

type ReservationStats struct {
	Total     int64 `json:"total_reservations"`
	Pending   int64 `json:"pending_reservations"`
	Confirmed int64 `json:"confirmed_reservations"`
	Today     int64 `json:"today_reservations"`
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	err := r.db.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", id).
		Preload("Restaurant").
		Preload("Table").
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// windowConflicts selects the non-cancelled reservations sitting on the
// table strictly inside (start, end). Bounds are exclusive: bookings
// exactly one conflict-window apart do not collide.
func windowConflicts(tx *gorm.DB, tableID int64, start, end time.Time) *gorm.DB {
	return tx.
		Model(&domain.Reservation{}).
		Where("table_id = ? AND status <> ? AND deleted_at IS NULL", tableID, domain.ReservationCancelled).
		Where("reservation_date > ? AND reservation_date < ?", start, end)
}

// lockTableRow takes a row lock on the parent table so that concurrent
// bookings for the same table serialize even when the conflict window is
// empty. Locking the window rows themselves would lock nothing in exactly
// the racing case, and postgres rejects FOR UPDATE on aggregates anyway.
func lockTableRow(tx *gorm.DB, tableID int64) *gorm.DB {
	var locked domain.Table
	return tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", tableID).
		First(&locked)
}

// HasConflict reports whether any reservation occupies the table's
// conflict window.
func (r *ReservationRepository) HasConflict(ctx context.Context, tableID int64, start, end time.Time) (bool, error) {
	var cnt int64
	err := windowConflicts(r.db.WithContext(ctx), tableID, start, end).Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ConflictingTableIDs returns, in one batched query, the ids of every table
// in the restaurant blocked by a non-cancelled reservation inside the window.
func (r *ReservationRepository) ConflictingTableIDs(ctx context.Context, restaurantID int64, start, end time.Time) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("restaurant_id = ? AND status <> ? AND deleted_at IS NULL", restaurantID, domain.ReservationCancelled).
		Where("reservation_date > ? AND reservation_date < ?", start, end).
		Distinct().
		Pluck("table_id", &ids).Error
	return ids, err
}

// CreateIfFree re-checks the conflict window and inserts the reservation in
// one transaction, so two concurrent requests for the same table cannot
// both pass the availability check and then both insert. On postgres the
// parent tables row is locked for the duration of the transaction; the
// partial unique index on (table_id, reservation_date) backstops the
// exact-slot case.
func (r *ReservationRepository) CreateIfFree(ctx context.Context, res *domain.Reservation, start, end time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// sqlite serializes write transactions on its own and rejects
		// FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			if err := lockTableRow(tx, res.TableID).Error; err != nil {
				return err
			}
		}

		var cnt int64
		if err := windowConflicts(tx, res.TableID, start, end).Count(&cnt).Error; err != nil {
			return err
		}
		if cnt > 0 {
			return ErrConflict
		}

		return tx.Create(res).Error
	})
}

// ListByUser returns a client's reservations, newest first.
func (r *ReservationRepository) ListByUser(ctx context.Context, userID int64, f ReservationFilters) ([]domain.Reservation, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("user_id = ? AND deleted_at IS NULL", userID)
	return r.list(q, f)
}

// ListByRestaurant returns a restaurant's reservations, newest first.
func (r *ReservationRepository) ListByRestaurant(ctx context.Context, restaurantID int64, f ReservationFilters) ([]domain.Reservation, int64, error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("restaurant_id = ? AND deleted_at IS NULL", restaurantID)
	return r.list(q, f)
}

func (r *ReservationRepository) list(q *gorm.DB, f ReservationFilters) ([]domain.Reservation, int64, error) {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.DayStart.IsZero() {
		q = q.Where("reservation_date >= ? AND reservation_date < ?", f.DayStart, f.DayEnd)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reservations []domain.Reservation
	err := q.
		Preload("Restaurant").
		Preload("Table").
		Order("reservation_date DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&reservations).Error
	return reservations, total, err
}

// UpdateStatus persists a lifecycle transition. The matching timestamp
// column is stamped for confirmations and cancellations.
func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, at time.Time) error {
	updates := map[string]any{"status": status}
	switch status {
	case domain.ReservationConfirmed:
		updates["confirmed_at"] = at
	case domain.ReservationCancelled:
		updates["cancelled_at"] = at
	}
	return r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// HasActiveForTable reports whether a future non-cancelled reservation
// still references the table. Used to block table deletion.
func (r *ReservationRepository) HasActiveForTable(ctx context.Context, tableID int64, after time.Time) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&domain.Reservation{}).
		Where("table_id = ? AND status IN ? AND reservation_date >= ? AND deleted_at IS NULL",
			tableID, activeReservationStatuses, after).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// StatsForRestaurant aggregates the owner-dashboard counters.
func (r *ReservationRepository) StatsForRestaurant(ctx context.Context, restaurantID int64) (*ReservationStats, error) {
	stats := &ReservationStats{}
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).
			Model(&domain.Reservation{}).
			Where("restaurant_id = ? AND deleted_at IS NULL", restaurantID)
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", domain.ReservationPending).Count(&stats.Pending).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", domain.ReservationConfirmed).Count(&stats.Confirmed).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24 * time.Hour)
	if err := base().Where("reservation_date >= ? AND reservation_date < ?", dayStart, dayEnd).
		Count(&stats.Today).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

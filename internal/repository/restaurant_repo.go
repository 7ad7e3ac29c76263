package repository

import (
	"context"

	"mesareserva/internal/domain"

	"gorm.io/gorm"
)

type RestaurantFilters struct {
	Cuisine string
	Search  string
	City    string
	Limit   int
	Offset  int
}

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db: db}
}

// GetAll returns active restaurants with optional filters, ordered by name.
func (r *RestaurantRepository) GetAll(
	ctx context.Context,
	f RestaurantFilters,
) ([]domain.Restaurant, int64, error) {

	var restaurants []domain.Restaurant
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Restaurant{}).
		Where("is_active = ? AND deleted_at IS NULL", true)

	if f.Cuisine != "" {
		q = q.Where("cuisine_type LIKE ?", "%"+f.Cuisine+"%")
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("name LIKE ? OR description LIKE ?", like, like)
	}
	if f.City != "" {
		q = q.Where("address LIKE ?", "%"+f.City+"%")
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.
		Preload("Tables", "is_available = ? AND deleted_at IS NULL", true).
		Order("name ASC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&restaurants).Error

	return restaurants, total, err
}

// GetActiveByID fetches an active, non-deleted restaurant.
func (r *RestaurantRepository) GetActiveByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ? AND deleted_at IS NULL", id, true).
		Preload("Tables", "is_available = ? AND deleted_at IS NULL", true).
		First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

// GetByOwnerID fetches the restaurant managed by the given admin user.
func (r *RestaurantRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Restaurant, error) {
	var restaurant domain.Restaurant
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		First(&restaurant).Error
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, restaurant *domain.Restaurant) error {
	return r.db.WithContext(ctx).Save(restaurant).Error
}

// CreateWithOwner creates the restaurant, promotes its owner to admin and
// seeds the default tables, all inside one transaction. Any failure rolls
// the whole purchase back.
func (r *RestaurantRepository) CreateWithOwner(
	ctx context.Context,
	restaurant *domain.Restaurant,
	ownerID int64,
	tables []domain.Table,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		restaurant.OwnerID = &ownerID
		if err := tx.Create(restaurant).Error; err != nil {
			return err
		}

		if err := tx.Model(&domain.User{}).
			Where("id = ?", ownerID).
			Update("role", domain.RoleAdmin).Error; err != nil {
			return err
		}

		for i := range tables {
			tables[i].RestaurantID = restaurant.ID
		}
		if len(tables) > 0 {
			if err := tx.Create(&tables).Error; err != nil {
				return err
			}
		}
		restaurant.Tables = tables
		return nil
	})
}

// CountTables returns the total and administratively-available table counts.
func (r *RestaurantRepository) CountTables(ctx context.Context, restaurantID int64) (total, available int64, err error) {
	q := r.db.WithContext(ctx).
		Model(&domain.Table{}).
		Where("restaurant_id = ? AND deleted_at IS NULL", restaurantID)

	if err = q.Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err = q.Where("is_available = ?", true).Count(&available).Error; err != nil {
		return 0, 0, err
	}
	return total, available, nil
}

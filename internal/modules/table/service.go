package table

import (
	"context"
	"errors"
	"strings"
	"time"

	"mesareserva/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	tables       TableRepository
	restaurants  RestaurantReader
	reservations ReservationChecker
	now          func() time.Time
}

func NewService(tables TableRepository, restaurants RestaurantReader, reservations ReservationChecker) *Service {
	return &Service{
		tables:       tables,
		restaurants:  restaurants,
		reservations: reservations,
		now:          time.Now,
	}
}

// List returns the tables of the actor's restaurant, with their upcoming
// active reservations preloaded.
func (s *Service) List(ctx context.Context, actor domain.Actor) ([]domain.Table, error) {
	restaurant, err := s.ownRestaurant(ctx, actor)
	if err != nil {
		return nil, err
	}
	return s.tables.ListByRestaurant(ctx, restaurant.ID)
}

func (s *Service) Get(ctx context.Context, actor domain.Actor, tableID int64) (*domain.Table, error) {
	restaurant, err := s.ownRestaurant(ctx, actor)
	if err != nil {
		return nil, err
	}

	tbl, err := s.tables.GetForRestaurant(ctx, tableID, restaurant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tbl, nil
}

// Create adds a table to the actor's restaurant. Table numbers are unique
// within a restaurant.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateTableRequest) (*domain.Table, error) {
	restaurant, err := s.ownRestaurant(ctx, actor)
	if err != nil {
		return nil, err
	}

	number := strings.TrimSpace(req.TableNumber)
	location := domain.TableLocation(strings.ToLower(strings.TrimSpace(req.Location)))
	if number == "" || !location.Valid() {
		return nil, ErrValidation
	}
	if req.Capacity < minTableCapacity || req.Capacity > maxTableCapacity {
		return nil, ErrValidation
	}

	taken, err := s.tables.NumberExists(ctx, restaurant.ID, number, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateNumber
	}

	tbl := &domain.Table{
		RestaurantID: restaurant.ID,
		TableNumber:  number,
		Capacity:     req.Capacity,
		Location:     location,
		IsAvailable:  true,
		Notes:        req.Notes,
	}
	if err := s.tables.Create(ctx, tbl); err != nil {
		return nil, err
	}
	return tbl, nil
}

func (s *Service) Update(ctx context.Context, actor domain.Actor, tableID int64, req UpdateTableRequest) (*domain.Table, error) {
	restaurant, err := s.ownRestaurant(ctx, actor)
	if err != nil {
		return nil, err
	}

	tbl, err := s.tables.GetForRestaurant(ctx, tableID, restaurant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.TableNumber != nil {
		number := strings.TrimSpace(*req.TableNumber)
		if number == "" {
			return nil, ErrValidation
		}
		if number != tbl.TableNumber {
			taken, err := s.tables.NumberExists(ctx, restaurant.ID, number, tbl.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, ErrDuplicateNumber
			}
			tbl.TableNumber = number
		}
	}
	if req.Capacity != nil {
		if *req.Capacity < minTableCapacity || *req.Capacity > maxTableCapacity {
			return nil, ErrValidation
		}
		tbl.Capacity = *req.Capacity
	}
	if req.Location != nil {
		location := domain.TableLocation(strings.ToLower(strings.TrimSpace(*req.Location)))
		if !location.Valid() {
			return nil, ErrValidation
		}
		tbl.Location = location
	}
	if req.IsAvailable != nil {
		tbl.IsAvailable = *req.IsAvailable
	}
	if req.Notes != nil {
		tbl.Notes = *req.Notes
	}

	if err := s.tables.Update(ctx, tbl); err != nil {
		return nil, err
	}
	return tbl, nil
}

// Delete soft-deletes a table. Tables with upcoming pending or confirmed
// reservations cannot be removed; those bookings have to be resolved
// first.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, tableID int64) error {
	restaurant, err := s.ownRestaurant(ctx, actor)
	if err != nil {
		return err
	}

	tbl, err := s.tables.GetForRestaurant(ctx, tableID, restaurant.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	busy, err := s.reservations.HasActiveForTable(ctx, tbl.ID, s.now())
	if err != nil {
		return err
	}
	if busy {
		return ErrHasActiveReservations
	}

	return s.tables.SoftDelete(ctx, tbl.ID)
}

func (s *Service) ownRestaurant(ctx context.Context, actor domain.Actor) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByOwnerID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRestaurant
		}
		return nil, err
	}
	return restaurant, nil
}

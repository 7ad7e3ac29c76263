package restaurant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mesareserva/internal/domain"
	"mesareserva/internal/repository"

	"gorm.io/gorm"
)

const listPageSize = 10

type Service struct {
	restaurants RestaurantRepository
	stats       ReservationStatsReader
}

func NewService(restaurants RestaurantRepository, stats ReservationStatsReader) *Service {
	return &Service{restaurants: restaurants, stats: stats}
}

// List returns active restaurants matching the public catalog filters.
func (s *Service) List(ctx context.Context, req ListRequest) ([]domain.Restaurant, int64, error) {
	f := repository.RestaurantFilters{
		Cuisine: strings.TrimSpace(req.Cuisine),
		Search:  strings.TrimSpace(req.Search),
		City:    strings.TrimSpace(req.City),
		Limit:   listPageSize,
	}
	if req.Page > 1 {
		f.Offset = (req.Page - 1) * listPageSize
	}
	return s.restaurants.GetAll(ctx, f)
}

// Get loads one active restaurant with its available tables.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return restaurant, nil
}

// GetMine loads the restaurant owned by the acting admin.
func (s *Service) GetMine(ctx context.Context, actor domain.Actor) (*domain.Restaurant, error) {
	restaurant, err := s.restaurants.GetByOwnerID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoRestaurant
		}
		return nil, err
	}
	return restaurant, nil
}

// UpdateMine applies a partial update to the actor's restaurant. The
// operating window and day list keep their invariants on every change.
func (s *Service) UpdateMine(ctx context.Context, actor domain.Actor, req UpdateRequest) (*domain.Restaurant, error) {
	restaurant, err := s.GetMine(ctx, actor)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		restaurant.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		restaurant.Description = *req.Description
	}
	if req.Address != nil {
		restaurant.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		restaurant.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Email != nil {
		restaurant.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.CuisineType != nil {
		restaurant.CuisineType = strings.TrimSpace(*req.CuisineType)
	}
	if req.ImageURL != nil {
		restaurant.ImageURL = *req.ImageURL
	}
	if req.OpeningTime != nil {
		restaurant.OpeningTime = strings.TrimSpace(*req.OpeningTime)
	}
	if req.ClosingTime != nil {
		restaurant.ClosingTime = strings.TrimSpace(*req.ClosingTime)
	}
	if req.OpeningDays != nil {
		days, ok := domain.NormalizeDays(*req.OpeningDays)
		if !ok {
			return nil, ErrValidation
		}
		restaurant.OpeningDays = days
	}
	if req.MaxCapacity != nil {
		if *req.MaxCapacity < minRestaurantCapacity || *req.MaxCapacity > maxRestaurantCapacity {
			return nil, ErrValidation
		}
		restaurant.MaxCapacity = *req.MaxCapacity
	}
	if req.IsActive != nil {
		restaurant.IsActive = *req.IsActive
	}

	if restaurant.Name == "" {
		return nil, ErrValidation
	}
	if !restaurant.ValidOperatingWindow() {
		return nil, ErrValidation
	}

	if err := s.restaurants.Update(ctx, restaurant); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// CheckEligibility answers whether the actor may purchase a restaurant.
func (s *Service) CheckEligibility(ctx context.Context, actor domain.Actor) (Eligibility, error) {
	if actor.Role != domain.RoleClient {
		return Eligibility{Eligible: false, Reason: "only client accounts can purchase a restaurant"}, nil
	}

	_, err := s.restaurants.GetByOwnerID(ctx, actor.UserID)
	switch {
	case err == nil:
		return Eligibility{Eligible: false, Reason: "you already own a restaurant"}, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return Eligibility{Eligible: true}, nil
	default:
		return Eligibility{}, err
	}
}

// Purchase creates a restaurant for the acting client and promotes them
// to admin, all in one transaction. The new restaurant starts with the
// default table set.
func (s *Service) Purchase(ctx context.Context, actor domain.Actor, req PurchaseRequest) (*domain.Restaurant, error) {
	if actor.Role != domain.RoleClient {
		return nil, ErrNotEligible
	}

	if _, err := s.restaurants.GetByOwnerID(ctx, actor.UserID); err == nil {
		return nil, ErrAlreadyOwner
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	days, ok := domain.NormalizeDays(req.OpeningDays)
	if !ok {
		return nil, ErrValidation
	}
	if req.MaxCapacity < minRestaurantCapacity || req.MaxCapacity > maxRestaurantCapacity {
		return nil, ErrValidation
	}

	restaurant := &domain.Restaurant{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Address:     strings.TrimSpace(req.Address),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		CuisineType: strings.TrimSpace(req.CuisineType),
		ImageURL:    req.ImageURL,
		OpeningTime: strings.TrimSpace(req.OpeningTime),
		ClosingTime: strings.TrimSpace(req.ClosingTime),
		OpeningDays: days,
		MaxCapacity: req.MaxCapacity,
		IsActive:    true,
	}
	if restaurant.Name == "" || !restaurant.ValidOperatingWindow() {
		return nil, ErrValidation
	}

	if err := s.restaurants.CreateWithOwner(ctx, restaurant, actor.UserID, defaultTables()); err != nil {
		return nil, err
	}
	return restaurant, nil
}

// Stats builds the owner dashboard for the actor's restaurant.
func (s *Service) Stats(ctx context.Context, actor domain.Actor) (*DashboardStats, error) {
	restaurant, err := s.GetMine(ctx, actor)
	if err != nil {
		return nil, err
	}

	rs, err := s.stats.StatsForRestaurant(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}
	total, available, err := s.restaurants.CountTables(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalReservations:     rs.Total,
		PendingReservations:   rs.Pending,
		ConfirmedReservations: rs.Confirmed,
		TodayReservations:     rs.Today,
		TotalTables:           total,
		AvailableTables:       available,
	}, nil
}

func defaultTables() []domain.Table {
	tables := make([]domain.Table, 0, len(defaultTableCapacities))
	for i, capacity := range defaultTableCapacities {
		tables = append(tables, domain.Table{
			TableNumber: fmt.Sprintf("T%d", i+1),
			Capacity:    capacity,
			Location:    domain.TableInterior,
			IsAvailable: true,
		})
	}
	return tables
}

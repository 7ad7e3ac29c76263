package reservation

import (
	"context"
	"errors"
	"time"

	"mesareserva/internal/domain"
	"mesareserva/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reservations ReservationRepository
	restaurants  RestaurantReader
	tables       TableReader
	now          func() time.Time
}

func NewService(
	reservations ReservationRepository,
	restaurants RestaurantReader,
	tables TableReader,
) *Service {
	return &Service{
		reservations: reservations,
		restaurants:  restaurants,
		tables:       tables,
		now:          time.Now,
	}
}

// CheckAvailability runs the booking validation pipeline in its fixed
// order and short-circuits at the first failure. It performs no writes,
// so it is reused by both the booking path and the table listing. On
// success the loaded restaurant and table are returned to the caller.
func (s *Service) CheckAvailability(
	ctx context.Context,
	restaurantID, tableID int64,
	when time.Time,
	partySize int,
) (*domain.Restaurant, *domain.Table, error) {
	restaurant, err := s.restaurants.GetActiveByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRestaurantUnavailable
		}
		return nil, nil, err
	}

	table, err := s.tables.GetForRestaurant(ctx, tableID, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrTableUnavailable
		}
		return nil, nil, err
	}
	if !table.IsAvailable {
		return nil, nil, ErrTableUnavailable
	}

	if partySize > table.Capacity {
		return nil, nil, ErrCapacityExceeded
	}

	if !restaurant.WithinOperatingHours(when) {
		return nil, nil, ErrClosedAtTime
	}

	if !restaurant.IsOpenOn(when) {
		return nil, nil, ErrClosedOnDay
	}

	start := when.Add(-domain.ConflictWindow)
	end := when.Add(domain.ConflictWindow)
	conflict, err := s.reservations.HasConflict(ctx, tableID, start, end)
	if err != nil {
		return nil, nil, err
	}
	if conflict {
		return nil, nil, ErrTableConflict
	}

	return restaurant, table, nil
}

// Create books a table for the actor. The availability pipeline is an
// optimistic pre-filter; the repository re-checks the window inside its
// insert transaction and the database's unique slot index backstops the
// remaining race.
func (s *Service) Create(ctx context.Context, actor domain.Actor, req CreateReservationRequest) (*domain.Reservation, error) {
	if req.PartySize < 1 || req.PartySize > maxPartySize {
		return nil, ErrValidation
	}
	if len(req.SpecialRequests) > maxSpecialRequestsLen {
		return nil, ErrValidation
	}
	if !req.ReservationDate.After(s.now()) {
		return nil, ErrValidation
	}

	if _, _, err := s.CheckAvailability(ctx, req.RestaurantID, req.TableID, req.ReservationDate, req.PartySize); err != nil {
		return nil, err
	}

	res := &domain.Reservation{
		UserID:          actor.UserID,
		RestaurantID:    req.RestaurantID,
		TableID:         req.TableID,
		ReservationDate: req.ReservationDate,
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
		Status:          domain.ReservationPending,
	}

	start := req.ReservationDate.Add(-domain.ConflictWindow)
	end := req.ReservationDate.Add(domain.ConflictWindow)
	if err := s.reservations.CreateIfFree(ctx, res, start, end); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrTableConflict
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == "idx_reservations_table_slot" {
			return nil, ErrTableConflict
		}
		return nil, err
	}

	return res, nil
}

// FindAvailableTables lists the tables that could seat the party at the
// requested time, smallest sufficient table first.
func (s *Service) FindAvailableTables(
	ctx context.Context,
	restaurantID int64,
	when time.Time,
	partySize int,
) ([]domain.Table, error) {
	if partySize < 1 || partySize > maxPartySize {
		return nil, ErrValidation
	}

	restaurant, err := s.restaurants.GetActiveByID(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRestaurantUnavailable
		}
		return nil, err
	}

	if !restaurant.WithinOperatingHours(when) {
		return nil, ErrClosedAtTime
	}
	if !restaurant.IsOpenOn(when) {
		return nil, ErrClosedOnDay
	}

	start := when.Add(-domain.ConflictWindow)
	end := when.Add(domain.ConflictWindow)
	busy, err := s.reservations.ConflictingTableIDs(ctx, restaurantID, start, end)
	if err != nil {
		return nil, err
	}

	return s.tables.ListAvailableByCapacity(ctx, restaurantID, partySize, busy)
}

// GetForActor loads one reservation, scoped to what the actor may see:
// clients see their own, admins the ones of their restaurant.
func (s *Service) GetForActor(ctx context.Context, actor domain.Actor, id int64) (*domain.Reservation, error) {
	return s.loadScoped(ctx, actor, id)
}

// ListForUser returns the actor's own reservations.
func (s *Service) ListForUser(ctx context.Context, actor domain.Actor, req ListRequest) ([]domain.Reservation, int64, error) {
	f, err := buildFilters(req)
	if err != nil {
		return nil, 0, err
	}
	return s.reservations.ListByUser(ctx, actor.UserID, f)
}

// ListForRestaurant returns the reservations of the admin actor's restaurant.
func (s *Service) ListForRestaurant(ctx context.Context, actor domain.Actor, req ListRequest) ([]domain.Reservation, int64, error) {
	restaurant, err := s.restaurants.GetByOwnerID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrForbidden
		}
		return nil, 0, err
	}
	f, err := buildFilters(req)
	if err != nil {
		return nil, 0, err
	}
	return s.reservations.ListByRestaurant(ctx, restaurant.ID, f)
}

func buildFilters(req ListRequest) (repository.ReservationFilters, error) {
	f := repository.ReservationFilters{
		Status: req.Status,
		Limit:  defaultPageSize,
	}
	if req.Page > 1 {
		f.Offset = (req.Page - 1) * defaultPageSize
	}
	if req.Date != "" {
		day, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return f, ErrValidation
		}
		f.DayStart = day
		f.DayEnd = day.Add(24 * time.Hour)
	}
	return f, nil
}

// loadScoped fetches a reservation and enforces visibility. Clients get a
// not-found answer for foreign reservations rather than a forbidden one,
// so reservation ids of other users cannot be enumerated.
func (s *Service) loadScoped(ctx context.Context, actor domain.Actor, id int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	switch {
	case actor.Role == domain.RoleClient:
		if res.UserID != actor.UserID {
			return nil, ErrReservationNotFound
		}
	case actor.Role == domain.RoleAdmin:
		restaurant, err := s.restaurants.GetByOwnerID(ctx, actor.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrForbidden
			}
			return nil, err
		}
		if res.RestaurantID != restaurant.ID {
			return nil, ErrForbidden
		}
	case actor.Role == domain.RoleSuperAdmin:
		// superadmins see everything
	default:
		return nil, ErrForbidden
	}

	return res, nil
}

package reservation

import (
	"context"
	"testing"
	"time"

	"mesareserva/internal/domain"
	"mesareserva/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// Mock repositories
type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) HasConflict(ctx context.Context, tableID int64, start, end time.Time) (bool, error) {
	args := m.Called(ctx, tableID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationRepository) ConflictingTableIDs(ctx context.Context, restaurantID int64, start, end time.Time) ([]int64, error) {
	args := m.Called(ctx, restaurantID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockReservationRepository) CreateIfFree(ctx context.Context, res *domain.Reservation, start, end time.Time) error {
	args := m.Called(ctx, res, start, end)
	if args.Error(0) == nil && res != nil {
		res.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReservationRepository) ListByUser(ctx context.Context, userID int64, f repository.ReservationFilters) ([]domain.Reservation, int64, error) {
	args := m.Called(ctx, userID, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *MockReservationRepository) ListByRestaurant(ctx context.Context, restaurantID int64, f repository.ReservationFilters) ([]domain.Reservation, int64, error) {
	args := m.Called(ctx, restaurantID, f)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Reservation), args.Get(1).(int64), args.Error(2)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus, at time.Time) error {
	args := m.Called(ctx, id, status, at)
	return args.Error(0)
}

type MockRestaurantReader struct {
	mock.Mock
}

func (m *MockRestaurantReader) GetActiveByID(ctx context.Context, id int64) (*domain.Restaurant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

func (m *MockRestaurantReader) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Restaurant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Restaurant), args.Error(1)
}

type MockTableReader struct {
	mock.Mock
}

func (m *MockTableReader) GetForRestaurant(ctx context.Context, tableID, restaurantID int64) (*domain.Table, error) {
	args := m.Called(ctx, tableID, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Table), args.Error(1)
}

func (m *MockTableReader) ListAvailableByCapacity(ctx context.Context, restaurantID int64, minCapacity int, excludeIDs []int64) ([]domain.Table, error) {
	args := m.Called(ctx, restaurantID, minCapacity, excludeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Table), args.Error(1)
}

func openAllWeekRestaurant() *domain.Restaurant {
	return &domain.Restaurant{
		ID:          5,
		Name:        "Sakura Sushi House",
		OpeningTime: "11:00",
		ClosingTime: "23:00",
		OpeningDays: []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},
		IsActive:    true,
	}
}

func newTestService(res *MockReservationRepository, rest *MockRestaurantReader, tab *MockTableReader, now time.Time) *Service {
	svc := NewService(res, rest, tab)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Create_Success(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	// Wednesday evening
	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)
	now := when.Add(-48 * time.Hour)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)
	mockRes.On("HasConflict", mock.Anything, int64(10), when.Add(-2*time.Hour), when.Add(2*time.Hour)).
		Return(false, nil)
	mockRes.On("CreateIfFree", mock.Anything, mock.Anything, when.Add(-2*time.Hour), when.Add(2*time.Hour)).
		Return(nil)

	svc := newTestService(mockRes, mockRest, mockTab, now)

	res, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       4,
	})

	assert.NoError(t, err)
	assert.NotNil(t, res)
	assert.Equal(t, int64(999), res.ID)
	assert.Equal(t, int64(7), res.UserID)
	assert.Equal(t, domain.ReservationPending, res.Status)
	mockRes.AssertExpectations(t)
}

func TestService_Create_ConflictingSlot(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	// Existing 19:00 booking makes a 20:30 one collide.
	when := time.Date(2026, 9, 2, 20, 30, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)
	mockRes.On("HasConflict", mock.Anything, int64(10), when.Add(-2*time.Hour), when.Add(2*time.Hour)).
		Return(true, nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrTableConflict)
	mockRes.AssertNotCalled(t, "CreateIfFree", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_TwoHoursApartAllowed(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	// Exactly one conflict window after a 19:00 booking: the repository
	// checks the open interval (19:00, 23:00) for a 21:00 request, and the
	// 19:00 booking falls outside of it.
	when := time.Date(2026, 9, 2, 21, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)
	mockRes.On("HasConflict", mock.Anything, int64(10),
		time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 2, 23, 0, 0, 0, time.UTC)).
		Return(false, nil)
	mockRes.On("CreateIfFree", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	res, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.ReservationPending, res.Status)
	mockRes.AssertExpectations(t)
}

func TestService_Create_CapacityExceeded(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       6,
	})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	// Capacity is rejected before any conflict lookup happens.
	mockRes.AssertNotCalled(t, "HasConflict", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_ClosedOnDay(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	restaurant := openAllWeekRestaurant()
	restaurant.OpeningDays = []string{"tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

	// 2026-09-07 is a Monday.
	when := time.Date(2026, 9, 7, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(restaurant, nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrClosedOnDay)
}

func TestService_Create_OutsideOperatingHours(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	when := time.Date(2026, 9, 2, 23, 30, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrClosedAtTime)
}

func TestService_Create_InactiveRestaurant(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrRestaurantUnavailable)
	mockTab.AssertNotCalled(t, "GetForRestaurant", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Create_TableMarkedUnavailable(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: false}, nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrTableUnavailable)
}

func TestService_Create_PastDateRejected(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	now := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)
	svc := newTestService(mockRes, mockRest, mockTab, now)

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: now.Add(-time.Hour),
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrValidation)
	mockRest.AssertNotCalled(t, "GetActiveByID", mock.Anything, mock.Anything)
}

func TestService_Create_InsertRaceLostTranslates(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)
	mockRes.On("HasConflict", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	mockRes.On("CreateIfFree", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_reservations_table_slot"})

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrTableConflict)
}

func TestService_Create_RepoConflictTranslates(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockTab.On("GetForRestaurant", mock.Anything, int64(10), int64(5)).
		Return(&domain.Table{ID: 10, RestaurantID: 5, Capacity: 4, IsAvailable: true}, nil)
	mockRes.On("HasConflict", mock.Anything, int64(10), mock.Anything, mock.Anything).Return(false, nil)
	mockRes.On("CreateIfFree", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(repository.ErrConflict)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.Create(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, CreateReservationRequest{
		RestaurantID:    5,
		TableID:         10,
		ReservationDate: when,
		PartySize:       2,
	})

	assert.ErrorIs(t, err, ErrTableConflict)
}

func TestService_FindAvailableTables_SmallestFirst(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(openAllWeekRestaurant(), nil)
	mockRes.On("ConflictingTableIDs", mock.Anything, int64(5), when.Add(-2*time.Hour), when.Add(2*time.Hour)).
		Return([]int64{3}, nil)
	mockTab.On("ListAvailableByCapacity", mock.Anything, int64(5), 6, []int64{3}).
		Return([]domain.Table{
			{ID: 4, Capacity: 6, TableNumber: "T4"},
			{ID: 5, Capacity: 8, TableNumber: "T5"},
		}, nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	tables, err := svc.FindAvailableTables(context.Background(), 5, when, 6)

	assert.NoError(t, err)
	assert.Len(t, tables, 2)
	assert.Equal(t, 6, tables[0].Capacity)
	assert.Equal(t, 8, tables[1].Capacity)
}

func TestService_FindAvailableTables_ClosedDay(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	restaurant := openAllWeekRestaurant()
	restaurant.OpeningDays = []string{"friday", "saturday"}

	// A Wednesday.
	when := time.Date(2026, 9, 2, 20, 0, 0, 0, time.UTC)

	mockRest.On("GetActiveByID", mock.Anything, int64(5)).Return(restaurant, nil)

	svc := newTestService(mockRes, mockRest, mockTab, when.Add(-24*time.Hour))

	_, err := svc.FindAvailableTables(context.Background(), 5, when, 2)

	assert.ErrorIs(t, err, ErrClosedOnDay)
	mockRes.AssertNotCalled(t, "ConflictingTableIDs", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ListForUser_DateFilter(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	day := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)
	expected := repository.ReservationFilters{
		Status:   "confirmed",
		DayStart: day,
		DayEnd:   day.Add(24 * time.Hour),
		Limit:    10,
		Offset:   10,
	}
	mockRes.On("ListByUser", mock.Anything, int64(7), expected).
		Return([]domain.Reservation{{ID: 1}}, int64(13), nil)

	svc := newTestService(mockRes, mockRest, mockTab, time.Now())

	list, total, err := svc.ListForUser(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, ListRequest{
		Status: "confirmed",
		Date:   "2026-09-02",
		Page:   2,
	})

	assert.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, int64(13), total)
}

func TestService_ListForRestaurant_NotAnOwner(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	mockRest.On("GetByOwnerID", mock.Anything, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	svc := newTestService(mockRes, mockRest, mockTab, time.Now())

	_, _, err := svc.ListForRestaurant(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleAdmin}, ListRequest{})

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetForActor_ForeignReservationHidden(t *testing.T) {
	mockRes := new(MockReservationRepository)
	mockRest := new(MockRestaurantReader)
	mockTab := new(MockTableReader)

	mockRes.On("GetByID", mock.Anything, int64(42)).
		Return(&domain.Reservation{ID: 42, UserID: 8, RestaurantID: 5, Status: domain.ReservationPending}, nil)

	svc := newTestService(mockRes, mockRest, mockTab, time.Now())

	_, err := svc.GetForActor(context.Background(), domain.Actor{UserID: 7, Role: domain.RoleClient}, 42)

	// Another user's reservation reads as missing, not as forbidden.
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

package tickets_test

import (
	"context"
	"testing"
	"time"

	"stagepass/internal/tickets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository keeps everything in memory. InTransaction simply runs the
// closure against the same repository; rollback is emulated by tests never
// asserting on state after a failed operation.
type fakeRepository struct {
	schedules map[uint]*tickets.ScheduleInfo
	performs  map[uint]bool
	seats     map[uint]*tickets.SeatInfo
	byID      map[uint]*tickets.Ticket
	nextID    uint
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		schedules: make(map[uint]*tickets.ScheduleInfo),
		performs:  make(map[uint]bool),
		seats:     make(map[uint]*tickets.SeatInfo),
		byID:      make(map[uint]*tickets.Ticket),
		nextID:    1,
	}
}

func (f *fakeRepository) InTransaction(ctx context.Context, fn func(tickets.Repository) error) error {
	return fn(f)
}

func (f *fakeRepository) GetSchedule(ctx context.Context, scheduleID, performanceID uint) (*tickets.ScheduleInfo, error) {
	s, ok := f.schedules[scheduleID]
	if !ok || s.PerformanceID != performanceID {
		return nil, nil
	}
	return s, nil
}

func (f *fakeRepository) PerformanceExists(ctx context.Context, performanceID uint) (bool, error) {
	return f.performs[performanceID], nil
}

func (f *fakeRepository) GetSeatForUpdate(ctx context.Context, seatID, scheduleID, performanceID uint) (*tickets.SeatInfo, error) {
	seat, ok := f.seats[seatID]
	if !ok || seat.ScheduleID != scheduleID {
		return nil, nil
	}
	if s, ok := f.schedules[scheduleID]; !ok || s.PerformanceID != performanceID {
		return nil, nil
	}
	return seat, nil
}

func (f *fakeRepository) SeatHasSoldTicket(ctx context.Context, seatID, performanceID, scheduleID uint) (bool, error) {
	for _, t := range f.byID {
		if t.SeatID == seatID && t.PerformanceID == performanceID && t.ScheduleID == scheduleID && t.Status == tickets.StatusSold {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateTicket(ctx context.Context, ticket *tickets.Ticket) error {
	ticket.ID = f.nextID
	f.nextID++
	stored := *ticket
	f.byID[ticket.ID] = &stored
	return nil
}

func (f *fakeRepository) GetTicketForUpdate(ctx context.Context, id uint) (*tickets.Ticket, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *t
	return &copied, nil
}

func (f *fakeRepository) UpdateTicket(ctx context.Context, ticket *tickets.Ticket) error {
	stored := *ticket
	f.byID[ticket.ID] = &stored
	return nil
}

func (f *fakeRepository) GetTicketDetails(ctx context.Context, id uint) (*tickets.TicketDetails, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &tickets.TicketDetails{Ticket: *t}, nil
}

func (f *fakeRepository) ListTicketsByStatus(ctx context.Context, status tickets.Status) ([]tickets.TicketDetails, error) {
	var out []tickets.TicketDetails
	for _, t := range f.byID {
		if t.Status == status {
			out = append(out, tickets.TicketDetails{Ticket: *t})
		}
	}
	return out, nil
}

func (f *fakeRepository) ListTicketsByPerformance(ctx context.Context, performanceID uint) ([]tickets.Ticket, error) {
	var out []tickets.Ticket
	for _, t := range f.byID {
		if t.PerformanceID == performanceID {
			out = append(out, *t)
		}
	}
	return out, nil
}

// fakeAvailability records invalidations.
type fakeAvailability struct {
	invalidations int
}

func (f *fakeAvailability) InvalidateSchedule(ctx context.Context, performanceID, scheduleID uint) {
	f.invalidations++
}

// fakeNotifier records confirmations.
type fakeNotifier struct {
	sold     []*tickets.Ticket
	returned []*tickets.Ticket
}

func (f *fakeNotifier) TicketSold(ctx context.Context, ticket *tickets.Ticket) {
	f.sold = append(f.sold, ticket)
}

func (f *fakeNotifier) TicketReturned(ctx context.Context, ticket *tickets.Ticket) {
	f.returned = append(f.returned, ticket)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// seedRepo wires one performance with one schedule and one Hall seat.
func seedRepo(showDate time.Time) *fakeRepository {
	repo := newFakeRepository()
	repo.performs[1] = true
	repo.schedules[10] = &tickets.ScheduleInfo{ID: 10, PerformanceID: 1, Date: showDate}
	repo.seats[100] = &tickets.SeatInfo{ID: 100, ScheduleID: 10, Number: 7, Location: "Hall"}
	return repo
}

func TestBuyTicket_Success(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := seedRepo(now.Add(7 * 24 * time.Hour))
	availability := &fakeAvailability{}
	notifier := &fakeNotifier{}

	service := tickets.NewService(repo, availability, notifier, tickets.WithClock(fixedClock(now)))

	strategy, err := tickets.PricingForLocation("Hall")
	require.NoError(t, err)

	ticket, err := service.BuyTicket(context.Background(), 1, 10, 100, strategy, "0671234567")

	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, tickets.StatusSold, ticket.Status)
	assert.Equal(t, 300.0, ticket.Price)
	assert.Equal(t, "0671234567", ticket.PhoneNumber)
	assert.Equal(t, now, ticket.PurchaseDate)
	assert.False(t, ticket.IsReturned)
	assert.Equal(t, 1, availability.invalidations)
	require.Len(t, notifier.sold, 1)
	assert.Equal(t, ticket.ID, notifier.sold[0].ID)
}

func TestBuyTicket_BalconyPrice(t *testing.T) {
	now := time.Now().UTC()
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil)

	strategy, err := tickets.PricingForLocation("Balcony")
	require.NoError(t, err)

	ticket, err := service.BuyTicket(context.Background(), 1, 10, 100, strategy, "0671234567")

	require.NoError(t, err)
	require.NotNil(t, ticket)
	assert.Equal(t, 250.0, ticket.Price)
}

func TestBuyTicket_SeatAlreadySold(t *testing.T) {
	now := time.Now().UTC()
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil)

	first, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "0671234567")
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "0509876543")

	assert.NoError(t, err)
	assert.Nil(t, second)
	assert.Len(t, repo.byID, 1)
}

func TestBuyTicket_MissingEntities(t *testing.T) {
	now := time.Now().UTC()
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil)
	ctx := context.Background()

	cases := []struct {
		name          string
		performanceID uint
		scheduleID    uint
		seatID        uint
	}{
		{"unknown performance", 99, 10, 100},
		{"unknown schedule", 1, 99, 100},
		{"unknown seat", 1, 10, 999},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ticket, err := service.BuyTicket(ctx, tc.performanceID, tc.scheduleID, tc.seatID, tickets.HallPricing{}, "0671234567")
			assert.NoError(t, err)
			assert.Nil(t, ticket)
		})
	}
}

func TestBuyTicket_InvalidPhone(t *testing.T) {
	now := time.Now().UTC()
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil)

	ticket, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "067-123-45")

	assert.ErrorIs(t, err, tickets.ErrInvalidPhoneNumber)
	assert.Nil(t, ticket)
	assert.Empty(t, repo.byID)
}

func TestBuyTicket_NilStrategy(t *testing.T) {
	now := time.Now().UTC()
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil)

	ticket, err := service.BuyTicket(context.Background(), 1, 10, 100, nil, "0671234567")

	assert.ErrorIs(t, err, tickets.ErrPricingStrategyRequired)
	assert.Nil(t, ticket)
	assert.Empty(t, repo.byID)
}

func TestReturnTicket_Success(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := seedRepo(now.Add(72 * time.Hour))
	notifier := &fakeNotifier{}
	service := tickets.NewService(repo, nil, notifier, tickets.WithClock(fixedClock(now)))

	bought, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "0671234567")
	require.NoError(t, err)
	require.NotNil(t, bought)

	ok, returned, err := service.ReturnTicket(context.Background(), bought.ID, "0671234567")

	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, returned)
	assert.Equal(t, tickets.StatusReturned, returned.Status)
	assert.True(t, returned.IsReturned)
	assert.Equal(t, 240.0, returned.Price)
	require.Len(t, notifier.returned, 1)
}

func TestReturnTicket_WindowClosed(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		showDate time.Time
		want     bool
	}{
		{"exactly at the boundary", now.Add(48 * time.Hour), false},
		{"inside the window", now.Add(24 * time.Hour), false},
		{"just past the boundary", now.Add(48*time.Hour + time.Minute), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := seedRepo(tc.showDate)
			service := tickets.NewService(repo, nil, nil, tickets.WithClock(fixedClock(now)))

			bought, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "0671234567")
			require.NoError(t, err)
			require.NotNil(t, bought)

			ok, returned, err := service.ReturnTicket(context.Background(), bought.ID, "0671234567")

			assert.NoError(t, err)
			assert.Equal(t, tc.want, ok)
			if tc.want {
				assert.NotNil(t, returned)
			} else {
				assert.Nil(t, returned)
				stored, _ := repo.GetTicketForUpdate(context.Background(), bought.ID)
				assert.Equal(t, tickets.StatusSold, stored.Status)
				assert.Equal(t, 300.0, stored.Price)
			}
		})
	}
}

func TestReturnTicket_WrongPhone(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil, tickets.WithClock(fixedClock(now)))

	bought, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "0671234567")
	require.NoError(t, err)

	ok, returned, err := service.ReturnTicket(context.Background(), bought.ID, "0509876543")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, returned)
}

func TestReturnTicket_AlreadyReturned(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil, tickets.WithClock(fixedClock(now)))

	bought, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "0671234567")
	require.NoError(t, err)

	ok, _, err := service.ReturnTicket(context.Background(), bought.ID, "0671234567")
	require.NoError(t, err)
	require.True(t, ok)

	ok, returned, err := service.ReturnTicket(context.Background(), bought.ID, "0671234567")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, returned)
}

func TestReturnTicket_NotFound(t *testing.T) {
	repo := newFakeRepository()
	service := tickets.NewService(repo, nil, nil)

	ok, returned, err := service.ReturnTicket(context.Background(), 42, "0671234567")

	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, returned)
}

func TestGetTicketsByStatus(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := seedRepo(now.Add(72 * time.Hour))
	service := tickets.NewService(repo, nil, nil, tickets.WithClock(fixedClock(now)))

	bought, err := service.BuyTicket(context.Background(), 1, 10, 100, tickets.HallPricing{}, "0671234567")
	require.NoError(t, err)

	sold, err := service.GetTicketsByStatus(context.Background(), "Sold")
	require.NoError(t, err)
	require.Len(t, sold, 1)
	assert.Equal(t, bought.ID, sold[0].ID)

	returned, err := service.GetTicketsByStatus(context.Background(), "Returned")
	require.NoError(t, err)
	assert.Empty(t, returned)

	_, err = service.GetTicketsByStatus(context.Background(), "bogus")
	assert.ErrorIs(t, err, tickets.ErrInvalidStatus)
}

func TestGetTicketByID_NotFound(t *testing.T) {
	repo := newFakeRepository()
	service := tickets.NewService(repo, nil, nil)

	details, err := service.GetTicketByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Nil(t, details)
}

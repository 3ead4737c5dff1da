package tickets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"stagepass/pkg/logger"
)

// Refund business rules: a flat 20% cancellation fee, allowed only more than
// two days before the schedule date.
const (
	RefundWindow = 48 * time.Hour
	RefundRate   = 0.8
)

// Purchase and return outcomes that mean "the operation did not occur",
// reported to callers as nil results rather than errors.
var (
	errNotFound           = errors.New("performance, schedule, seat or ticket not found")
	errSeatUnavailable    = errors.New("seat already holds a sold ticket")
	errNotRefundable      = errors.New("ticket is not refundable")
	errRefundWindowClosed = errors.New("refund window closed")
)

// Availability interface for dropping cached seat availability
// (to avoid a dependency on the seats package)
type Availability interface {
	InvalidateSchedule(ctx context.Context, performanceID, scheduleID uint)
}

// Notifier interface for purchase/refund confirmations
// (to avoid a dependency on the notifications package)
type Notifier interface {
	TicketSold(ctx context.Context, ticket *Ticket)
	TicketReturned(ctx context.Context, ticket *Ticket)
}

// Service interface defines the contract for the booking workflow
type Service interface {
	BuyTicket(ctx context.Context, performanceID, scheduleID, seatID uint, strategy PricingStrategy, phoneNumber string) (*Ticket, error)
	ReturnTicket(ctx context.Context, ticketID uint, phoneNumber string) (bool, *Ticket, error)
	GetTicketByID(ctx context.Context, id uint) (*TicketDetails, error)
	GetTicketsByStatus(ctx context.Context, status string) ([]TicketDetails, error)
}

// service implements the Service interface
type service struct {
	repo         Repository
	availability Availability
	notifier     Notifier
	log          *logger.Logger
	now          func() time.Time
}

// Option customizes a booking service
type Option func(*service)

// WithClock overrides the time source, used to test refund window boundaries
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// NewService creates a new booking service instance. availability and
// notifier may be nil.
func NewService(repo Repository, availability Availability, notifier Notifier, opts ...Option) Service {
	s := &service{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		log:          logger.GetDefault(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuyTicket sells the seat to the given phone number. It returns (nil, nil)
// when the performance, schedule or seat does not exist or the seat already
// holds a sold ticket for this showing; store failures roll the transaction
// back and propagate.
func (s *service) BuyTicket(ctx context.Context, performanceID, scheduleID, seatID uint, strategy PricingStrategy, phoneNumber string) (*Ticket, error) {
	// Fail fast before any transactional work begins
	if err := ValidatePhoneNumber(phoneNumber); err != nil {
		return nil, err
	}
	if strategy == nil {
		return nil, ErrPricingStrategyRequired
	}

	var ticket *Ticket
	err := s.repo.InTransaction(ctx, func(r Repository) error {
		schedule, err := r.GetSchedule(ctx, scheduleID, performanceID)
		if err != nil {
			return err
		}
		if schedule == nil {
			return errNotFound
		}

		exists, err := r.PerformanceExists(ctx, performanceID)
		if err != nil {
			return err
		}
		if !exists {
			return errNotFound
		}

		seat, err := r.GetSeatForUpdate(ctx, seatID, scheduleID, performanceID)
		if err != nil {
			return err
		}
		if seat == nil {
			return errNotFound
		}

		sold, err := r.SeatHasSoldTicket(ctx, seatID, performanceID, scheduleID)
		if err != nil {
			return err
		}
		if sold {
			return errSeatUnavailable
		}

		ticket = &Ticket{
			PerformanceID: performanceID,
			ScheduleID:    scheduleID,
			SeatID:        seatID,
			Status:        StatusSold,
			Price:         strategy.CalculatePrice(),
			PurchaseDate:  s.now(),
			PhoneNumber:   phoneNumber,
		}
		return r.CreateTicket(ctx, ticket)
	})
	if errors.Is(err, errNotFound) || errors.Is(err, errSeatUnavailable) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to buy ticket: %w", err)
	}

	s.log.LogTicketSold(ctx, ticket.ID, performanceID, scheduleID, seatID, ticket.Price)
	if s.availability != nil {
		s.availability.InvalidateSchedule(ctx, performanceID, scheduleID)
	}
	if s.notifier != nil {
		s.notifier.TicketSold(ctx, ticket)
	}

	return ticket, nil
}

// ReturnTicket refunds a sold ticket. The refund succeeds only when the
// ticket exists, is Sold, was not returned before, carries the exact phone
// number, and the schedule date is more than RefundWindow away; every
// failure yields (false, nil).
func (s *service) ReturnTicket(ctx context.Context, ticketID uint, phoneNumber string) (bool, *Ticket, error) {
	var returned *Ticket
	err := s.repo.InTransaction(ctx, func(r Repository) error {
		ticket, err := r.GetTicketForUpdate(ctx, ticketID)
		if err != nil {
			return err
		}
		if ticket == nil {
			return errNotFound
		}
		if ticket.IsReturned || ticket.Status != StatusSold || ticket.PhoneNumber != phoneNumber {
			return errNotRefundable
		}

		schedule, err := r.GetSchedule(ctx, ticket.ScheduleID, ticket.PerformanceID)
		if err != nil {
			return err
		}
		if schedule == nil {
			return errNotFound
		}
		if schedule.Date.Sub(s.now()) <= RefundWindow {
			return errRefundWindowClosed
		}

		ticket.Status = StatusReturned
		ticket.IsReturned = true
		ticket.Price = roundPrice(ticket.Price * RefundRate)
		if err := r.UpdateTicket(ctx, ticket); err != nil {
			return err
		}
		returned = ticket
		return nil
	})
	if errors.Is(err, errNotFound) || errors.Is(err, errNotRefundable) || errors.Is(err, errRefundWindowClosed) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, fmt.Errorf("failed to return ticket: %w", err)
	}

	s.log.LogTicketReturned(ctx, returned.ID, returned.Price)
	if s.availability != nil {
		s.availability.InvalidateSchedule(ctx, returned.PerformanceID, returned.ScheduleID)
	}
	if s.notifier != nil {
		s.notifier.TicketReturned(ctx, returned)
	}

	return true, returned, nil
}

// GetTicketByID returns the ticket with performance and seat info, or nil
// when it does not exist.
func (s *service) GetTicketByID(ctx context.Context, id uint) (*TicketDetails, error) {
	return s.repo.GetTicketDetails(ctx, id)
}

// GetTicketsByStatus returns tickets in the given state with performance and
// seat info loaded. Unrecognized status values fail with ErrInvalidStatus.
func (s *service) GetTicketsByStatus(ctx context.Context, status string) ([]TicketDetails, error) {
	parsed, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTicketsByStatus(ctx, parsed)
}

// roundPrice keeps prices at two fractional digits, matching the store column
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}

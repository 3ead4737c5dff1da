package tickets

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository is the storage contract for the booking workflow. Lookups
// return nil (not an error) when the row is absent; store failures are
// returned unmodified. InTransaction runs fn against a repository bound to
// one database transaction and rolls back when fn fails.
type Repository interface {
	InTransaction(ctx context.Context, fn func(Repository) error) error

	GetSchedule(ctx context.Context, scheduleID, performanceID uint) (*ScheduleInfo, error)
	PerformanceExists(ctx context.Context, performanceID uint) (bool, error)
	GetSeatForUpdate(ctx context.Context, seatID, scheduleID, performanceID uint) (*SeatInfo, error)
	SeatHasSoldTicket(ctx context.Context, seatID, performanceID, scheduleID uint) (bool, error)

	CreateTicket(ctx context.Context, ticket *Ticket) error
	GetTicketForUpdate(ctx context.Context, id uint) (*Ticket, error)
	UpdateTicket(ctx context.Context, ticket *Ticket) error

	GetTicketDetails(ctx context.Context, id uint) (*TicketDetails, error)
	ListTicketsByStatus(ctx context.Context, status Status) ([]TicketDetails, error)
	ListTicketsByPerformance(ctx context.Context, performanceID uint) ([]Ticket, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) InTransaction(ctx context.Context, fn func(Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&repository{db: tx})
	})
}

func (r *repository) GetSchedule(ctx context.Context, scheduleID, performanceID uint) (*ScheduleInfo, error) {
	var schedule ScheduleInfo
	err := r.db.WithContext(ctx).
		Table("performance_schedules").
		Select("id, performance_id, date").
		Where("id = ? AND performance_id = ?", scheduleID, performanceID).
		Take(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *repository) PerformanceExists(ctx context.Context, performanceID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("performances").
		Where("id = ?", performanceID).
		Count(&count).Error
	return count > 0, err
}

// GetSeatForUpdate loads the seat and locks its row so a concurrent buyer
// blocks until this transaction commits or rolls back.
func (r *repository) GetSeatForUpdate(ctx context.Context, seatID, scheduleID, performanceID uint) (*SeatInfo, error) {
	var seat SeatInfo
	err := r.db.WithContext(ctx).
		Table("seats").
		Select("seats.id, seats.schedule_id, seats.number, seats.location").
		Joins("JOIN performance_schedules ON performance_schedules.id = seats.schedule_id").
		Where("seats.id = ? AND seats.schedule_id = ? AND performance_schedules.performance_id = ?",
			seatID, scheduleID, performanceID).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: "seats"}}).
		Take(&seat).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &seat, nil
}

func (r *repository) SeatHasSoldTicket(ctx context.Context, seatID, performanceID, scheduleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Ticket{}).
		Where("seat_id = ? AND performance_id = ? AND performance_schedule_id = ? AND status = ?",
			seatID, performanceID, scheduleID, StatusSold).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateTicket(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Create(ticket).Error
}

func (r *repository) GetTicketForUpdate(ctx context.Context, id uint) (*Ticket, error) {
	var ticket Ticket
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		Take(&ticket).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *repository) UpdateTicket(ctx context.Context, ticket *Ticket) error {
	return r.db.WithContext(ctx).Save(ticket).Error
}

const ticketDetailsSelect = `tickets.*,
	performances.title AS performance_title,
	performance_schedules.date AS schedule_date,
	seats.number AS seat_number,
	seats.location AS seat_location`

func (r *repository) detailsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&Ticket{}).
		Select(ticketDetailsSelect).
		Joins("JOIN performances ON performances.id = tickets.performance_id").
		Joins("JOIN performance_schedules ON performance_schedules.id = tickets.performance_schedule_id").
		Joins("JOIN seats ON seats.id = tickets.seat_id")
}

func (r *repository) GetTicketDetails(ctx context.Context, id uint) (*TicketDetails, error) {
	var details TicketDetails
	err := r.detailsQuery(ctx).
		Where("tickets.id = ?", id).
		Take(&details).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &details, nil
}

func (r *repository) ListTicketsByStatus(ctx context.Context, status Status) ([]TicketDetails, error) {
	var details []TicketDetails
	err := r.detailsQuery(ctx).
		Where("tickets.status = ?", status).
		Order("tickets.id").
		Find(&details).Error
	return details, err
}

func (r *repository) ListTicketsByPerformance(ctx context.Context, performanceID uint) ([]Ticket, error) {
	var result []Ticket
	err := r.db.WithContext(ctx).
		Where("performance_id = ?", performanceID).
		Order("id").
		Find(&result).Error
	return result, err
}

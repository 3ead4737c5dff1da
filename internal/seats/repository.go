package seats

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListAvailable(ctx context.Context, performanceID, scheduleID uint, location string) ([]Seat, error)
	CountAvailable(ctx context.Context, performanceID, scheduleID uint, location string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// availableQuery selects seats of the schedule (which must belong to the
// performance) whose ticket is absent or not in Sold status.
func (r *repository) availableQuery(ctx context.Context, performanceID, scheduleID uint, location string) *gorm.DB {
	query := r.db.WithContext(ctx).
		Model(&Seat{}).
		Joins("JOIN performance_schedules ON performance_schedules.id = seats.schedule_id").
		Where("seats.schedule_id = ?", scheduleID).
		Where("performance_schedules.performance_id = ?", performanceID).
		Where(`NOT EXISTS (
			SELECT 1 FROM tickets
			WHERE tickets.seat_id = seats.id
			  AND tickets.performance_schedule_id = seats.schedule_id
			  AND tickets.status = ?
		)`, "Sold")

	if location != "" {
		query = query.Where("seats.location = ?", location)
	}

	return query
}

func (r *repository) ListAvailable(ctx context.Context, performanceID, scheduleID uint, location string) ([]Seat, error) {
	var result []Seat
	err := r.availableQuery(ctx, performanceID, scheduleID, location).
		Order("seats.location, seats.number").
		Find(&result).Error

	return result, err
}

func (r *repository) CountAvailable(ctx context.Context, performanceID, scheduleID uint, location string) (int64, error) {
	var count int64
	err := r.availableQuery(ctx, performanceID, scheduleID, location).
		Count(&count).Error

	return count, err
}

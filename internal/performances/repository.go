package performances

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListPerformances(ctx context.Context) ([]Performance, error)
	GetPerformanceByID(ctx context.Context, id uint) (*Performance, error)
	CountPerformances(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ListPerformances loads every performance with its author, genres and
// schedules fully populated.
func (r *repository) ListPerformances(ctx context.Context) ([]Performance, error) {
	var result []Performance
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres").
		Preload("Schedules").
		Order("id").
		Find(&result).Error
	return result, err
}

// GetPerformanceByID returns the performance with relations, or nil when it
// does not exist.
func (r *repository) GetPerformanceByID(ctx context.Context, id uint) (*Performance, error) {
	var performance Performance
	err := r.db.WithContext(ctx).
		Preload("Author").
		Preload("Genres").
		Preload("Schedules").
		Where("id = ?", id).
		Take(&performance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &performance, nil
}

func (r *repository) CountPerformances(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Performance{}).Count(&count).Error
	return count, err
}

package seats

import (
	"context"
	"fmt"
	"time"

	"stagepass/pkg/cache"
)

// ErrInvalidLocation is returned for section names other than Hall or Balcony.
var ErrInvalidLocation = fmt.Errorf("invalid location: use %q or %q", LocationHall, LocationBalcony)

// Service interface defines the contract for seat availability queries
type Service interface {
	ListAvailable(ctx context.Context, performanceID, scheduleID uint, location string) ([]Seat, error)
	CountAvailable(ctx context.Context, performanceID, scheduleID uint, location string) (int64, error)

	// InvalidateSchedule drops cached availability for one schedule, called
	// after a ticket purchase or return changes it.
	InvalidateSchedule(ctx context.Context, performanceID, scheduleID uint)
}

// service implements the Service interface
type service struct {
	repo     Repository
	cache    cache.Service // nil disables caching
	cacheTTL time.Duration
}

// NewService creates a new seat availability service instance
func NewService(repo Repository, cacheService cache.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:     repo,
		cache:    cacheService,
		cacheTTL: cacheTTL,
	}
}

func (s *service) ListAvailable(ctx context.Context, performanceID, scheduleID uint, location string) ([]Seat, error) {
	if location != "" && !ValidLocation(location) {
		return nil, ErrInvalidLocation
	}

	if s.cache == nil {
		return s.repo.ListAvailable(ctx, performanceID, scheduleID, location)
	}

	var result []Seat
	key := availabilityKey(performanceID, scheduleID, "list", location)
	err := s.cache.GetOrSet(ctx, key, s.cacheTTL, func() (interface{}, error) {
		return s.repo.ListAvailable(ctx, performanceID, scheduleID, location)
	}, &result)
	if err != nil {
		// Cache trouble must not break availability queries
		return s.repo.ListAvailable(ctx, performanceID, scheduleID, location)
	}

	return result, nil
}

func (s *service) CountAvailable(ctx context.Context, performanceID, scheduleID uint, location string) (int64, error) {
	if location != "" && !ValidLocation(location) {
		return 0, ErrInvalidLocation
	}

	if s.cache == nil {
		return s.repo.CountAvailable(ctx, performanceID, scheduleID, location)
	}

	var count int64
	key := availabilityKey(performanceID, scheduleID, "count", location)
	err := s.cache.GetOrSet(ctx, key, s.cacheTTL, func() (interface{}, error) {
		return s.repo.CountAvailable(ctx, performanceID, scheduleID, location)
	}, &count)
	if err != nil {
		return s.repo.CountAvailable(ctx, performanceID, scheduleID, location)
	}

	return count, nil
}

func (s *service) InvalidateSchedule(ctx context.Context, performanceID, scheduleID uint) {
	if s.cache == nil {
		return
	}
	// Best effort: stale entries expire with the TTL anyway
	_ = s.cache.DeletePattern(ctx, fmt.Sprintf("stagepass:seats:available:%d:%d:*", performanceID, scheduleID))
}

func availabilityKey(performanceID, scheduleID uint, kind, location string) string {
	if location == "" {
		location = "all"
	}
	return fmt.Sprintf("stagepass:seats:available:%d:%d:%s:%s", performanceID, scheduleID, kind, location)
}

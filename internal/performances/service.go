package performances

import (
	"context"
)

// UnknownAuthor is the sentinel returned when the performance does not exist.
const UnknownAuthor = "unknown author"

// TicketSummary represents basic ticket information for performance responses
type TicketSummary struct {
	ID         uint    `json:"id"`
	ScheduleID uint    `json:"schedule_id"`
	SeatID     uint    `json:"seat_id"`
	Status     string  `json:"status"`
	Price      float64 `json:"price"`
}

// TicketSource interface for ticket lookups (to avoid circular dependency)
type TicketSource interface {
	ListTicketSummaries(ctx context.Context, performanceID uint) ([]TicketSummary, error)
}

// Service interface defines the contract for repertoire queries
type Service interface {
	ListPerformances(ctx context.Context) ([]PerformanceResponse, error)
	GetPerformance(ctx context.Context, id uint) (*PerformanceResponse, error)
	GetAuthorName(ctx context.Context, performanceID uint) (string, error)
	GetGenreNames(ctx context.Context, performanceID uint) ([]string, error)

	// SetTicketSource injects the ticket lookup dependency
	SetTicketSource(src TicketSource)
}

// service implements the Service interface
type service struct {
	repo    Repository
	tickets TicketSource
}

// NewService creates a new repertoire service instance
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) SetTicketSource(src TicketSource) {
	s.tickets = src
}

func (s *service) ListPerformances(ctx context.Context) ([]PerformanceResponse, error) {
	performances, err := s.repo.ListPerformances(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]PerformanceResponse, 0, len(performances))
	for i := range performances {
		resp, err := s.toResponse(ctx, &performances[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

// GetPerformance returns the performance or nil when it does not exist
func (s *service) GetPerformance(ctx context.Context, id uint) (*PerformanceResponse, error) {
	performance, err := s.repo.GetPerformanceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if performance == nil {
		return nil, nil
	}
	return s.toResponse(ctx, performance)
}

// GetAuthorName returns the author's name, or the UnknownAuthor sentinel
// when the performance does not exist.
func (s *service) GetAuthorName(ctx context.Context, performanceID uint) (string, error) {
	performance, err := s.repo.GetPerformanceByID(ctx, performanceID)
	if err != nil {
		return "", err
	}
	if performance == nil || performance.Author == nil {
		return UnknownAuthor, nil
	}
	return performance.Author.Name, nil
}

// GetGenreNames returns the genre names, empty when the performance is absent
func (s *service) GetGenreNames(ctx context.Context, performanceID uint) ([]string, error) {
	performance, err := s.repo.GetPerformanceByID(ctx, performanceID)
	if err != nil {
		return nil, err
	}
	if performance == nil {
		return []string{}, nil
	}

	names := make([]string, 0, len(performance.Genres))
	for _, genre := range performance.Genres {
		names = append(names, genre.Name)
	}
	return names, nil
}

func (s *service) toResponse(ctx context.Context, p *Performance) (*PerformanceResponse, error) {
	resp := &PerformanceResponse{
		ID:        p.ID,
		Title:     p.Title,
		Author:    UnknownAuthor,
		Genres:    make([]string, 0, len(p.Genres)),
		Schedules: make([]ScheduleResponse, 0, len(p.Schedules)),
		Tickets:   []TicketSummary{},
	}

	if p.Author != nil {
		resp.Author = p.Author.Name
	}
	for _, genre := range p.Genres {
		resp.Genres = append(resp.Genres, genre.Name)
	}
	for _, schedule := range p.Schedules {
		resp.Schedules = append(resp.Schedules, ScheduleResponse{
			ID:   schedule.ID,
			Date: schedule.Date,
		})
	}

	if s.tickets != nil {
		summaries, err := s.tickets.ListTicketSummaries(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		resp.Tickets = summaries
	}

	return resp, nil
}

package tickets

import (
	"context"

	"stagepass/internal/performances"
)

// performanceTicketSource adapts the ticket repository to the repertoire
// service's TicketSource interface.
type performanceTicketSource struct {
	repo Repository
}

// NewPerformanceTicketSource creates a ticket source for performance listings
func NewPerformanceTicketSource(repo Repository) performances.TicketSource {
	return &performanceTicketSource{repo: repo}
}

func (src *performanceTicketSource) ListTicketSummaries(ctx context.Context, performanceID uint) ([]performances.TicketSummary, error) {
	ticketList, err := src.repo.ListTicketsByPerformance(ctx, performanceID)
	if err != nil {
		return nil, err
	}

	summaries := make([]performances.TicketSummary, 0, len(ticketList))
	for _, t := range ticketList {
		summaries = append(summaries, performances.TicketSummary{
			ID:         t.ID,
			ScheduleID: t.ScheduleID,
			SeatID:     t.SeatID,
			Status:     string(t.Status),
			Price:      t.Price,
		})
	}
	return summaries, nil
}

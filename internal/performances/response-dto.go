package performances

import "time"

// ScheduleResponse represents one dated showing in API responses
type ScheduleResponse struct {
	ID   uint      `json:"id"`
	Date time.Time `json:"date"`
}

// PerformanceResponse represents a performance with author, genres,
// schedules and ticket summaries fully populated
type PerformanceResponse struct {
	ID        uint               `json:"id"`
	Title     string             `json:"title"`
	Author    string             `json:"author"`
	Genres    []string           `json:"genres"`
	Schedules []ScheduleResponse `json:"schedules"`
	Tickets   []TicketSummary    `json:"tickets"`
}

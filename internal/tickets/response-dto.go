package tickets

import "time"

// TicketResponse represents a ticket in API responses
type TicketResponse struct {
	ID            uint      `json:"id"`
	PerformanceID uint      `json:"performance_id"`
	ScheduleID    uint      `json:"schedule_id"`
	SeatID        uint      `json:"seat_id"`
	Status        Status    `json:"status"`
	Price         float64   `json:"price"`
	PurchaseDate  time.Time `json:"purchase_date"`
	PhoneNumber   string    `json:"phone_number"`
	IsReturned    bool      `json:"is_returned"`
}

// TicketDetailsResponse adds the joined performance and seat info
type TicketDetailsResponse struct {
	TicketResponse
	PerformanceTitle string    `json:"performance_title"`
	ScheduleDate     time.Time `json:"schedule_date"`
	SeatNumber       int       `json:"seat_number"`
	SeatLocation     string    `json:"seat_location"`
}

// ReturnTicketResponse reports the refund outcome
type ReturnTicketResponse struct {
	RefundAmount float64        `json:"refund_amount"`
	Ticket       TicketResponse `json:"ticket"`
}

func toTicketResponse(t *Ticket) TicketResponse {
	return TicketResponse{
		ID:            t.ID,
		PerformanceID: t.PerformanceID,
		ScheduleID:    t.ScheduleID,
		SeatID:        t.SeatID,
		Status:        t.Status,
		Price:         t.Price,
		PurchaseDate:  t.PurchaseDate,
		PhoneNumber:   t.PhoneNumber,
		IsReturned:    t.IsReturned,
	}
}

func toTicketDetailsResponse(d *TicketDetails) TicketDetailsResponse {
	return TicketDetailsResponse{
		TicketResponse:   toTicketResponse(&d.Ticket),
		PerformanceTitle: d.PerformanceTitle,
		ScheduleDate:     d.ScheduleDate,
		SeatNumber:       d.SeatNumber,
		SeatLocation:     d.SeatLocation,
	}
}

func toTicketDetailsResponses(details []TicketDetails) []TicketDetailsResponse {
	responses := make([]TicketDetailsResponse, 0, len(details))
	for i := range details {
		responses = append(responses, toTicketDetailsResponse(&details[i]))
	}
	return responses
}

package tickets

// BuyTicketRequest represents a ticket purchase request
type BuyTicketRequest struct {
	PerformanceID uint   `json:"performance_id" validate:"required"`
	ScheduleID    uint   `json:"schedule_id" validate:"required"`
	SeatID        uint   `json:"seat_id" validate:"required"`
	Location      string `json:"location" validate:"required,oneof=Hall Balcony"`
	PhoneNumber   string `json:"phone_number" validate:"required"`
}

// ReturnTicketRequest represents a ticket return request
type ReturnTicketRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
}

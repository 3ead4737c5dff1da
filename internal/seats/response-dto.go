package seats

// SeatResponse represents one available seat in API responses
type SeatResponse struct {
	ID         uint   `json:"id"`
	ScheduleID uint   `json:"schedule_id"`
	Number     int    `json:"number"`
	Location   string `json:"location"`
}

// AvailabilityCountResponse represents an availability count in API responses
type AvailabilityCountResponse struct {
	PerformanceID uint   `json:"performance_id"`
	ScheduleID    uint   `json:"schedule_id"`
	Location      string `json:"location,omitempty"`
	Available     int64  `json:"available"`
}

func toSeatResponses(seatList []Seat) []SeatResponse {
	responses := make([]SeatResponse, 0, len(seatList))
	for _, seat := range seatList {
		responses = append(responses, SeatResponse{
			ID:         seat.ID,
			ScheduleID: seat.ScheduleID,
			Number:     seat.Number,
			Location:   seat.Location,
		})
	}
	return responses
}

package tickets

import (
	"time"
)

// Ticket defines the main ticket structure. Tickets are created only by a
// purchase and mutated only by a return; they are never deleted.
type Ticket struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PerformanceID uint      `gorm:"index;not null" json:"performance_id"`
	ScheduleID    uint      `gorm:"column:performance_schedule_id;index;not null" json:"schedule_id"`
	SeatID        uint      `gorm:"index;not null" json:"seat_id"`
	Status        Status    `gorm:"type:varchar(20);not null;check:status IN ('Available', 'Sold', 'Returned')" json:"status"`
	Price         float64   `gorm:"type:numeric(10,2);not null;check:price >= 0" json:"price"`
	PurchaseDate  time.Time `gorm:"not null" json:"purchase_date"`
	PhoneNumber   string    `gorm:"type:varchar(10);not null" json:"phone_number"`
	IsReturned    bool      `gorm:"not null;default:false" json:"is_returned"`
}

// TableName sets the table name for Ticket
func (Ticket) TableName() string {
	return "tickets"
}

// TicketDetails is a ticket joined with its performance and seat
type TicketDetails struct {
	Ticket
	PerformanceTitle string    `json:"performance_title"`
	ScheduleDate     time.Time `json:"schedule_date"`
	SeatNumber       int       `json:"seat_number"`
	SeatLocation     string    `json:"seat_location"`
}

// ScheduleInfo mirrors the columns of performance_schedules the purchase and
// return workflows need, without importing the performances package.
type ScheduleInfo struct {
	ID            uint      `gorm:"column:id"`
	PerformanceID uint      `gorm:"column:performance_id"`
	Date          time.Time `gorm:"column:date"`
}

// SeatInfo mirrors the seat columns the purchase workflow needs.
type SeatInfo struct {
	ID         uint   `gorm:"column:id"`
	ScheduleID uint   `gorm:"column:schedule_id"`
	Number     int    `gorm:"column:number"`
	Location   string `gorm:"column:location"`
}

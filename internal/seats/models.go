package seats

// Venue sections. Each section carries its own fixed ticket price.
const (
	LocationHall    = "Hall"
	LocationBalcony = "Balcony"
)

// ValidLocation reports whether loc names a known venue section.
func ValidLocation(loc string) bool {
	return loc == LocationHall || loc == LocationBalcony
}

// Seat defines a bookable seat within one schedule
type Seat struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ScheduleID uint   `gorm:"column:schedule_id;index;not null" json:"schedule_id"`
	Number     int    `gorm:"not null" json:"number"`
	Location   string `gorm:"type:varchar(20);not null;check:location IN ('Hall', 'Balcony')" json:"location"`
}

// TableName sets the table name for Seat
func (Seat) TableName() string {
	return "seats"
}

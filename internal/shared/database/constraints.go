package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds critical database constraints for concurrency control
func MigrateConstraints(db *gorm.DB) error {
	// Backstop against double-selling a seat: at most one Sold ticket per
	// seat per schedule, even if two purchase transactions interleave.
	err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_sold_ticket_per_seat
		ON tickets (seat_id, performance_schedule_id)
		WHERE status = 'Sold';
	`).Error
	if err != nil {
		return err
	}

	// Index for ticket listings by status
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_tickets_status
		ON tickets (status);
	`).Error
	if err != nil {
		return err
	}

	// Index for seat availability queries per schedule and section
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_seats_schedule_location
		ON seats (schedule_id, location);
	`).Error
	if err != nil {
		return err
	}

	return nil
}

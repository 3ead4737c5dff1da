package database

import (
	"stagepass/internal/performances"
	"stagepass/internal/seats"
	"stagepass/internal/tickets"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&performances.Author{},
		&performances.Genre{},
		&performances.Performance{},
		&performances.PerformanceSchedule{},
		&seats.Seat{},
		&tickets.Ticket{},
	)
}

package performances

import (
	"time"

	"stagepass/internal/seats"
)

// Author defines a playwright with their staged performances
type Author struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:255" json:"name"`

	// Relationships
	Performances []Performance `json:"performances,omitempty" gorm:"foreignKey:AuthorID"`
}

// Genre defines a performance genre
type Genre struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;size:255" json:"name"`

	Performances []Performance `json:"-" gorm:"many2many:performance_genres;"`
}

// Performance defines a staged play
type Performance struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"not null;size:255" json:"title"`
	AuthorID uint   `gorm:"index;not null" json:"author_id"`

	// Relationships
	Author    *Author               `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	Genres    []Genre               `json:"genres,omitempty" gorm:"many2many:performance_genres;"`
	Schedules []PerformanceSchedule `json:"schedules,omitempty" gorm:"foreignKey:PerformanceID;constraint:OnDelete:CASCADE;"`
}

// PerformanceSchedule defines one dated showing of a performance
type PerformanceSchedule struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PerformanceID uint      `gorm:"index;not null" json:"performance_id"`
	Date          time.Time `gorm:"not null" json:"date"`

	// Relationships
	Seats []seats.Seat `json:"seats,omitempty" gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE;"`
}

// TableName sets the table name for Author
func (Author) TableName() string {
	return "authors"
}

// TableName sets the table name for Genre
func (Genre) TableName() string {
	return "genres"
}

// TableName sets the table name for Performance
func (Performance) TableName() string {
	return "performances"
}

// TableName sets the table name for PerformanceSchedule
func (PerformanceSchedule) TableName() string {
	return "performance_schedules"
}

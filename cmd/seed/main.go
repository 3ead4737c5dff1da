package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"stagepass/internal/performances"
	"stagepass/internal/seats"
	"stagepass/internal/shared/config"
	"stagepass/internal/shared/database"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting StagePass Database Seeder...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// The seeder is idempotent: a database that already holds
	// performances is left untouched.
	repo := performances.NewRepository(db.GetPostgreSQL())
	count, err := repo.CountPerformances(context.Background())
	if err != nil {
		log.Fatalf("Failed to inspect database: %v", err)
	}
	if count > 0 {
		fmt.Printf("✅ Database already seeded (%d performances), nothing to do\n", count)
		return
	}

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! The theater is open for business.")
}

func (s *Seeder) SeedAll() error {
	authors, err := s.SeedAuthors()
	if err != nil {
		return fmt.Errorf("failed to seed authors: %w", err)
	}
	fmt.Printf("   👤 Created %d authors\n", len(authors))

	genres, err := s.SeedGenres()
	if err != nil {
		return fmt.Errorf("failed to seed genres: %w", err)
	}
	fmt.Printf("   🎭 Created %d genres\n", len(genres))

	perfs, err := s.SeedPerformances(authors, genres)
	if err != nil {
		return fmt.Errorf("failed to seed performances: %w", err)
	}
	fmt.Printf("   🎬 Created %d performances with schedules and seats\n", len(perfs))

	return nil
}

func (s *Seeder) SeedAuthors() (map[string]*performances.Author, error) {
	names := []string{
		"Yaroslav Stelmakh",
		"William Shakespeare",
		"Ivan Franko",
	}

	authors := make(map[string]*performances.Author, len(names))
	for _, name := range names {
		author := &performances.Author{Name: name}
		if err := s.db.GetPostgreSQL().Create(author).Error; err != nil {
			return nil, fmt.Errorf("failed to create author %s: %w", name, err)
		}
		authors[name] = author
	}

	return authors, nil
}

func (s *Seeder) SeedGenres() (map[string]*performances.Genre, error) {
	names := []string{
		"Drama",
		"Tragedy",
		"Detective melodrama",
	}

	genres := make(map[string]*performances.Genre, len(names))
	for _, name := range names {
		genre := &performances.Genre{Name: name}
		if err := s.db.GetPostgreSQL().Create(genre).Error; err != nil {
			return nil, fmt.Errorf("failed to create genre %s: %w", name, err)
		}
		genres[name] = genre
	}

	return genres, nil
}

func (s *Seeder) SeedPerformances(authors map[string]*performances.Author, genres map[string]*performances.Genre) ([]*performances.Performance, error) {
	catalog := []struct {
		title  string
		author string
		genres []string
		dates  []time.Time
	}{
		{
			title:  "The Blue Car",
			author: "Yaroslav Stelmakh",
			genres: []string{"Drama"},
			dates: []time.Time{
				time.Date(2026, 10, 30, 16, 0, 0, 0, time.UTC),
				time.Date(2026, 11, 14, 18, 30, 0, 0, time.UTC),
			},
		},
		{
			title:  "Macbeth",
			author: "William Shakespeare",
			genres: []string{"Tragedy"},
			dates: []time.Time{
				time.Date(2026, 11, 2, 19, 0, 0, 0, time.UTC),
				time.Date(2026, 11, 21, 17, 0, 0, 0, time.UTC),
			},
		},
		{
			title:  "The Jay",
			author: "Ivan Franko",
			genres: []string{"Detective melodrama"},
			dates: []time.Time{
				time.Date(2026, 11, 8, 18, 0, 0, 0, time.UTC),
				time.Date(2026, 12, 5, 16, 30, 0, 0, time.UTC),
			},
		},
	}

	created := make([]*performances.Performance, 0, len(catalog))
	for _, entry := range catalog {
		author := authors[entry.author]
		perf := &performances.Performance{
			Title:    entry.title,
			AuthorID: author.ID,
		}
		for _, g := range entry.genres {
			perf.Genres = append(perf.Genres, *genres[g])
		}
		if err := s.db.GetPostgreSQL().Create(perf).Error; err != nil {
			return nil, fmt.Errorf("failed to create performance %s: %w", entry.title, err)
		}

		for _, date := range entry.dates {
			schedule := &performances.PerformanceSchedule{
				PerformanceID: perf.ID,
				Date:          date,
			}
			if err := s.db.GetPostgreSQL().Create(schedule).Error; err != nil {
				return nil, fmt.Errorf("failed to create schedule for %s: %w", entry.title, err)
			}
			if err := s.createSeatsForSchedule(schedule.ID); err != nil {
				return nil, fmt.Errorf("failed to create seats for %s: %w", entry.title, err)
			}
		}

		created = append(created, perf)
	}

	return created, nil
}

func (s *Seeder) createSeatsForSchedule(scheduleID uint) error {
	const (
		hallSeats    = 50
		balconySeats = 30
	)

	batch := make([]seats.Seat, 0, hallSeats+balconySeats)
	for n := 1; n <= hallSeats; n++ {
		batch = append(batch, seats.Seat{
			ScheduleID: scheduleID,
			Number:     n,
			Location:   seats.LocationHall,
		})
	}
	for n := 1; n <= balconySeats; n++ {
		batch = append(batch, seats.Seat{
			ScheduleID: scheduleID,
			Number:     n,
			Location:   seats.LocationBalcony,
		})
	}

	return s.db.GetPostgreSQL().CreateInBatches(batch, 100).Error
}

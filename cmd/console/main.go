package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"stagepass/internal/performances"
	"stagepass/internal/seats"
	"stagepass/internal/shared/config"
	"stagepass/internal/shared/database"
	"stagepass/internal/tickets"
)

// console is an interactive box-office client that talks to the same
// services the HTTP API uses.
type console struct {
	in           *bufio.Reader
	performances performances.Service
	seats        seats.Service
	tickets      tickets.Service
}

func main() {
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	gormDB := db.GetPostgreSQL()

	seatRepo := seats.NewRepository(gormDB)
	seatService := seats.NewService(seatRepo, nil, 0)

	ticketRepo := tickets.NewRepository(gormDB)
	ticketService := tickets.NewService(ticketRepo, seatService, nil)

	perfRepo := performances.NewRepository(gormDB)
	perfService := performances.NewService(perfRepo)
	perfService.SetTicketSource(tickets.NewPerformanceTicketSource(ticketRepo))

	c := &console{
		in:           bufio.NewReader(os.Stdin),
		performances: perfService,
		seats:        seatService,
		tickets:      ticketService,
	}
	c.run()
}

func (c *console) run() {
	fmt.Println("🎭 StagePass Box Office")

	for {
		fmt.Println()
		fmt.Println("1. List performances")
		fmt.Println("2. Show available seats")
		fmt.Println("3. Buy a ticket")
		fmt.Println("4. Return a ticket")
		fmt.Println("5. List tickets by status")
		fmt.Println("0. Exit")

		switch c.prompt("Choose an option") {
		case "1":
			c.listPerformances()
		case "2":
			c.showAvailableSeats()
		case "3":
			c.buyTicket()
		case "4":
			c.returnTicket()
		case "5":
			c.listTicketsByStatus()
		case "0":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Unknown option, try again")
		}
	}
}

func (c *console) prompt(label string) string {
	fmt.Printf("%s: ", label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func (c *console) promptUint(label string) (uint, bool) {
	raw := c.prompt(label)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		fmt.Printf("Invalid number: %q\n", raw)
		return 0, false
	}
	return uint(id), true
}

func (c *console) listPerformances() {
	ctx := context.Background()
	list, err := c.performances.ListPerformances(ctx)
	if err != nil {
		fmt.Printf("Could not load performances: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No performances scheduled")
		return
	}
	for _, p := range list {
		fmt.Printf("\n[%d] %s by %s (%s)\n", p.ID, p.Title, p.Author, strings.Join(p.Genres, ", "))
		for _, s := range p.Schedules {
			fmt.Printf("    schedule %d: %s\n", s.ID, s.Date.Format("2006-01-02 15:04"))
		}
	}
}

func (c *console) showAvailableSeats() {
	performanceID, ok := c.promptUint("Performance ID")
	if !ok {
		return
	}
	scheduleID, ok := c.promptUint("Schedule ID")
	if !ok {
		return
	}
	location := c.prompt("Location (Hall/Balcony, empty for all)")

	ctx := context.Background()
	available, err := c.seats.ListAvailable(ctx, performanceID, scheduleID, location)
	if err != nil {
		fmt.Printf("Could not load seats: %v\n", err)
		return
	}
	if len(available) == 0 {
		fmt.Println("No seats available")
		return
	}
	for _, seat := range available {
		fmt.Printf("  seat %d: %s #%d\n", seat.ID, seat.Location, seat.Number)
	}
	fmt.Printf("%d seats available\n", len(available))
}

func (c *console) buyTicket() {
	performanceID, ok := c.promptUint("Performance ID")
	if !ok {
		return
	}
	scheduleID, ok := c.promptUint("Schedule ID")
	if !ok {
		return
	}
	seatID, ok := c.promptUint("Seat ID")
	if !ok {
		return
	}
	location := c.prompt("Location (Hall/Balcony)")
	phone := c.prompt("Phone number")

	strategy, err := tickets.PricingForLocation(location)
	if err != nil {
		fmt.Printf("Unknown location %q\n", location)
		return
	}

	ticket, err := c.tickets.BuyTicket(context.Background(), performanceID, scheduleID, seatID, strategy, phone)
	if err != nil {
		fmt.Printf("Purchase failed: %v\n", err)
		return
	}
	if ticket == nil {
		fmt.Println("Seat is unavailable or the performance, schedule or seat does not exist")
		return
	}
	fmt.Printf("🎟️  Ticket %d sold for %.2f\n", ticket.ID, ticket.Price)
}

func (c *console) returnTicket() {
	ticketID, ok := c.promptUint("Ticket ID")
	if !ok {
		return
	}
	phone := c.prompt("Phone number")

	returned, ticket, err := c.tickets.ReturnTicket(context.Background(), ticketID, phone)
	if err != nil {
		fmt.Printf("Return failed: %v\n", err)
		return
	}
	if !returned {
		fmt.Println("Could not return ticket: it may not exist, belong to another phone number, already be returned, or the refund window may have closed")
		return
	}
	fmt.Printf("💸 Ticket %d returned, refund %.2f\n", ticket.ID, ticket.Price)
}

func (c *console) listTicketsByStatus() {
	status := c.prompt("Status (Available/Sold/Returned)")

	list, err := c.tickets.GetTicketsByStatus(context.Background(), status)
	if err != nil {
		fmt.Printf("Could not load tickets: %v\n", err)
		return
	}
	if len(list) == 0 {
		fmt.Println("No tickets found")
		return
	}
	for _, t := range list {
		fmt.Printf("  ticket %d: %s, %s seat #%d on %s, %.2f (%s)\n",
			t.ID, t.PerformanceTitle, t.SeatLocation, t.SeatNumber,
			t.ScheduleDate.Format("2006-01-02 15:04"), t.Price, t.Status)
	}
}

// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"stagepass/internal/performances"
	"stagepass/internal/seats"
	"stagepass/internal/shared/config"
	"stagepass/internal/shared/database"
	"stagepass/internal/tickets"
	"stagepass/pkg/cache"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	notifier tickets.Notifier
}

// NewRouter creates a new router instance. notifier may be nil when the
// confirmation pipeline is unavailable.
func NewRouter(cfg *config.Config, db *database.DB, notifier tickets.Notifier) *Router {
	return &Router{
		config:   cfg,
		db:       db,
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "stagepass-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "stagepass-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupBookingRoutes configures the repertoire, seat and ticket routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	var cacheService cache.Service
	if r.db.Redis != nil {
		cacheService = cache.NewService(r.db.GetRedis())
	}

	// Seat availability
	seatRepo := seats.NewRepository(r.db.GetPostgreSQL())
	seatService := seats.NewService(seatRepo, cacheService, r.config.Redis.AvailabilityTTL)
	seatController := seats.NewController(seatService)

	// Booking workflow
	ticketRepo := tickets.NewRepository(r.db.GetPostgreSQL())
	ticketService := tickets.NewService(ticketRepo, seatService, r.notifier)
	ticketController := tickets.NewController(ticketService)

	// Repertoire, with ticket summaries injected
	performanceRepo := performances.NewRepository(r.db.GetPostgreSQL())
	performanceService := performances.NewService(performanceRepo)
	performanceService.SetTicketSource(tickets.NewPerformanceTicketSource(ticketRepo))
	performanceController := performances.NewController(performanceService)

	performances.SetupPerformanceRoutes(rg, performanceController)
	seats.SetupSeatRoutes(rg, seatController)
	tickets.SetupTicketRoutes(rg, ticketController)
}

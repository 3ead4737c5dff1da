package seats

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stagepass/internal/shared/utils/response"
)

type Controller interface {
	GetAvailableSeats(c *gin.Context)
	GetAvailableSeatCount(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAvailableSeats(c *gin.Context) {
	performanceID, scheduleID, ok := pathIDs(c)
	if !ok {
		return
	}
	location := c.Query("location")

	seatList, err := ctrl.service.ListAvailable(c.Request.Context(), performanceID, scheduleID, location)
	if err != nil {
		if errors.Is(err, ErrInvalidLocation) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list available seats", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Available seats retrieved successfully", toSeatResponses(seatList), nil)
}

func (ctrl *controller) GetAvailableSeatCount(c *gin.Context) {
	performanceID, scheduleID, ok := pathIDs(c)
	if !ok {
		return
	}
	location := c.Query("location")

	count, err := ctrl.service.CountAvailable(c.Request.Context(), performanceID, scheduleID, location)
	if err != nil {
		if errors.Is(err, ErrInvalidLocation) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to count available seats", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Available seat count retrieved successfully", AvailabilityCountResponse{
		PerformanceID: performanceID,
		ScheduleID:    scheduleID,
		Location:      location,
		Available:     count,
	}, nil)
}

func pathIDs(c *gin.Context) (performanceID, scheduleID uint, ok bool) {
	pid, err := strconv.ParseUint(c.Param("performanceId"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return 0, 0, false
	}

	sid, err := strconv.ParseUint(c.Param("scheduleId"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid schedule ID", nil, err.Error())
		return 0, 0, false
	}

	return uint(pid), uint(sid), true
}

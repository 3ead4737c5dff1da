package tickets

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"stagepass/internal/shared/utils/response"
)

type Controller interface {
	GetTicketsByStatus(c *gin.Context)
	GetTicket(c *gin.Context)
	BuyTicket(c *gin.Context)
	ReturnTicket(c *gin.Context)
	DeleteTicket(c *gin.Context)
}

type controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) Controller {
	return &controller{
		service:   service,
		validator: validator.New(),
	}
}

func (ctrl *controller) GetTicketsByStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Query parameter 'status' is required", nil, nil)
		return
	}

	details, err := ctrl.service.GetTicketsByStatus(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list tickets", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Tickets retrieved successfully", toTicketDetailsResponses(details), nil)
}

func (ctrl *controller) GetTicket(c *gin.Context) {
	ticketID, ok := ticketIDParam(c)
	if !ok {
		return
	}

	details, err := ctrl.service.GetTicketByID(c.Request.Context(), ticketID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get ticket", nil, err.Error())
		return
	}
	if details == nil {
		response.RespondJSON(c, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket retrieved successfully", toTicketDetailsResponse(details), nil)
}

func (ctrl *controller) BuyTicket(c *gin.Context) {
	var req BuyTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	strategy, err := PricingForLocation(req.Location)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
		return
	}

	ticket, err := ctrl.service.BuyTicket(c.Request.Context(),
		req.PerformanceID, req.ScheduleID, req.SeatID, strategy, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, ErrInvalidPhoneNumber) {
			response.RespondJSON(c, "error", http.StatusBadRequest, err.Error(), nil, nil)
			return
		}
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to buy ticket", nil, err.Error())
		return
	}
	if ticket == nil {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			"Seat is unavailable or the performance, schedule or seat does not exist", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Ticket purchased successfully", toTicketResponse(ticket), nil)
}

func (ctrl *controller) ReturnTicket(c *gin.Context) {
	ticketID, ok := ticketIDParam(c)
	if !ok {
		return
	}

	var req ReturnTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := ctrl.validator.Struct(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	details, err := ctrl.service.GetTicketByID(c.Request.Context(), ticketID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get ticket", nil, err.Error())
		return
	}
	if details == nil {
		response.RespondJSON(c, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		return
	}
	if details.Status == StatusReturned {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Ticket has already been returned", nil, nil)
		return
	}
	if details.PhoneNumber != req.PhoneNumber {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Phone number does not match the one on the ticket", nil, nil)
		return
	}

	ctrl.performReturn(c, ticketID, req.PhoneNumber)
}

// DeleteTicket soft-returns the ticket using the phone number it was sold to
func (ctrl *controller) DeleteTicket(c *gin.Context) {
	ticketID, ok := ticketIDParam(c)
	if !ok {
		return
	}

	details, err := ctrl.service.GetTicketByID(c.Request.Context(), ticketID)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get ticket", nil, err.Error())
		return
	}
	if details == nil {
		response.RespondJSON(c, "error", http.StatusNotFound, "Ticket not found", nil, nil)
		return
	}
	if details.Status == StatusReturned {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Ticket has already been returned", nil, nil)
		return
	}

	ctrl.performReturn(c, ticketID, details.PhoneNumber)
}

func (ctrl *controller) performReturn(c *gin.Context, ticketID uint, phoneNumber string) {
	success, ticket, err := ctrl.service.ReturnTicket(c.Request.Context(), ticketID, phoneNumber)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to return ticket", nil, err.Error())
		return
	}
	if !success || ticket == nil {
		response.RespondJSON(c, "error", http.StatusBadRequest,
			"Could not return ticket: the refund window may have closed or the ticket is not refundable", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Ticket returned successfully", ReturnTicketResponse{
		RefundAmount: ticket.Price,
		Ticket:       toTicketResponse(ticket),
	}, nil)
}

func ticketIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("ticketId"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid ticket ID", nil, err.Error())
		return 0, false
	}
	return uint(id), true
}

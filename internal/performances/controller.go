package performances

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stagepass/internal/shared/utils/response"
)

type Controller interface {
	GetAllPerformances(c *gin.Context)
	GetPerformance(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetAllPerformances(c *gin.Context) {
	performances, err := ctrl.service.ListPerformances(c.Request.Context())
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to list performances", nil, err.Error())
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performances retrieved successfully", performances, nil)
}

func (ctrl *controller) GetPerformance(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("performanceId"), 10, 32)
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid performance ID", nil, err.Error())
		return
	}

	performance, err := ctrl.service.GetPerformance(c.Request.Context(), uint(id))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusInternalServerError, "Failed to get performance", nil, err.Error())
		return
	}
	if performance == nil {
		response.RespondJSON(c, "error", http.StatusNotFound, "Performance not found", nil, nil)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Performance retrieved successfully", performance, nil)
}

package handler

import (
	"net/http"

	"github.com/InhotaEverton/Aromas-Caf/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct{ svc service.ReportService }

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Get godoc
// @Summary Builds the sales report for a time window
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param range query string false "today | 7days | 30days | all (default today)"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/reports [get]
func (h *ReportHandler) Get(c *gin.Context) {
	rangeKey := c.DefaultQuery("range", service.RangeToday)
	resp, err := h.svc.Build(c.Request.Context(), rangeKey)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

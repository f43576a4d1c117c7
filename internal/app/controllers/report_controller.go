package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/app/services"
	"github.com/arjunrk/schoolbeam/internal/middleware"
)

// ReportController handles AI report generation
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// GenerateReport composes and generates a parent-facing performance report
// @Summary Generate a performance report
// @Description Builds a prompt from the supplied performance data and marker roster and delegates to the generation service
// @Tags reports
// @Accept json
// @Produce json
// @Param roll path string true "Roll number"
// @Param request body dto.GenerateReportRequest true "Student data and marker roster"
// @Success 200 {object} dto.GenerateReportResponse "Generated report text"
// @Failure 400 {object} dto.ErrorResponse "Student data and teachers are required"
// @Failure 500 {object} dto.ErrorResponse "Generation service failure"
// @Router /students/{roll}/generate-report [post]
func (c *ReportController) GenerateReport(ctx *gin.Context) {
	var req dto.GenerateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	text, err := c.reportService.GenerateReport(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.GenerateReportResponse{Text: text})
}

package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/models"
	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/app/services"
	"github.com/arjunrk/schoolbeam/internal/middleware"
)

// ResourceController handles study materials, timetables, and the teacher
// directory, all plain per-section collections.
type ResourceController struct {
	resourceService services.ResourceService
	teacherService  services.TeacherService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService, teacherService services.TeacherService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
		teacherService:  teacherService,
	}
}

// parseID reads a numeric id path parameter, responding with 400 on failure.
func parseID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "ID must be a valid number")))
		return 0, false
	}
	return id, true
}

// CreateMaterial shares a study material
// @Summary Share a study material
// @Tags materials
// @Accept json
// @Produce json
// @Param request body dto.CreateMaterialRequest true "Material information"
// @Success 201 {object} dto.APIResponse{data=models.Material} "Material created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials [post]
func (c *ResourceController) CreateMaterial(ctx *gin.Context) {
	var req dto.CreateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	material := &models.Material{Title: req.Title, Link: req.Link, Section: req.Section}
	if err := c.resourceService.CreateMaterial(ctx, material); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: material, Timestamp: time.Now()})
}

// GetMaterials lists a section's materials
// @Summary List materials by section
// @Tags materials
// @Produce json
// @Param section path string true "Section code"
// @Success 200 {object} dto.APIResponse{data=[]models.Material} "Materials retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{section} [get]
func (c *ResourceController) GetMaterials(ctx *gin.Context) {
	materials, err := c.resourceService.GetMaterialsBySection(ctx, ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: materials, Timestamp: time.Now()})
}

// DeleteMaterial removes a material
// @Summary Delete a material
// @Tags materials
// @Produce json
// @Param id path int true "Material ID"
// @Success 200 {object} dto.SuccessResponse "Material deleted"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{id} [delete]
func (c *ResourceController) DeleteMaterial(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.resourceService.DeleteMaterial(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Material deleted"})
}

// CreateTimetableEntry adds a timetable slot
// @Summary Add a timetable entry
// @Tags timetables
// @Accept json
// @Produce json
// @Param request body dto.CreateTimetableEntryRequest true "Timetable slot"
// @Success 201 {object} dto.APIResponse{data=models.TimetableEntry} "Entry created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables [post]
func (c *ResourceController) CreateTimetableEntry(ctx *gin.Context) {
	var req dto.CreateTimetableEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	entry := &models.TimetableEntry{Day: req.Day, Time: req.Time, Subject: req.Subject, Section: req.Section}
	if err := c.resourceService.CreateTimetableEntry(ctx, entry); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{Data: entry, Timestamp: time.Now()})
}

// GetTimetable lists a section's timetable
// @Summary List timetable entries by section
// @Tags timetables
// @Produce json
// @Param section path string true "Section code"
// @Success 200 {object} dto.APIResponse{data=[]models.TimetableEntry} "Timetable retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{section} [get]
func (c *ResourceController) GetTimetable(ctx *gin.Context) {
	entries, err := c.resourceService.GetTimetableBySection(ctx, ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: entries, Timestamp: time.Now()})
}

// DeleteTimetableEntry removes a timetable entry
// @Summary Delete a timetable entry
// @Tags timetables
// @Produce json
// @Param id path int true "Timetable entry ID"
// @Success 200 {object} dto.SuccessResponse "Entry deleted"
// @Failure 404 {object} dto.ErrorResponse "Timetable entry not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /timetables/{id} [delete]
func (c *ResourceController) DeleteTimetableEntry(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.resourceService.DeleteTimetableEntry(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Timetable entry deleted"})
}

// GetTeachers lists a section's teachers
// @Summary List teachers by section
// @Tags teachers
// @Produce json
// @Param section path string true "Section code"
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher} "Teachers retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /teachers/{section} [get]
func (c *ResourceController) GetTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.GetBySection(ctx, ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: teachers, Timestamp: time.Now()})
}

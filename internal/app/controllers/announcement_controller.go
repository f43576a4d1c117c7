package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/app/services"
	"github.com/arjunrk/schoolbeam/internal/middleware"
)

// AnnouncementController handles announcement operations
type AnnouncementController struct {
	announcementService services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// PublishAnnouncement persists an announcement and fans it out to subscribers
// @Summary Publish an announcement
// @Description Stores the announcement and immediately pushes it to every connected realtime subscriber
// @Tags announcements
// @Accept json
// @Produce json
// @Param request body dto.PublishAnnouncementRequest true "Announcement text and target section"
// @Success 201 {object} dto.APIResponse{data=models.Announcement} "Announcement published"
// @Failure 400 {object} dto.ErrorResponse "Missing text or section"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements [post]
func (c *AnnouncementController) PublishAnnouncement(ctx *gin.Context) {
	var req dto.PublishAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	announcement, err := c.announcementService.Publish(ctx, req.Text, req.Section)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      announcement,
		Timestamp: time.Now(),
	})
}

// GetAnnouncements lists announcements for a section
// @Summary List announcements
// @Description Retrieves announcements matching the exact section or "all", newest first
// @Tags announcements
// @Produce json
// @Param section path string true "Section code"
// @Success 200 {object} dto.APIResponse{data=[]models.Announcement} "Announcements retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /announcements/{section} [get]
func (c *AnnouncementController) GetAnnouncements(ctx *gin.Context) {
	announcements, err := c.announcementService.GetBySection(ctx, ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      announcements,
		Timestamp: time.Now(),
	})
}

package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/controllers"
	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/pkg/websocket"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	reportController *controllers.ReportController,
	announcementController *controllers.AnnouncementController,
	resourceController *controllers.ResourceController,
	wsHandler *websocket.Handler,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/teacher", authController.TeacherLogin)
		auth.POST("/student-parent", authController.StudentLookup)
	}

	// --- Student roster routes ---
	students := api.Group("/students")
	{
		students.POST("", studentController.EnrollStudent)
		students.GET("/:section", studentController.GetStudentsBySection)
		students.PUT("/:roll", studentController.UpdateStudent)
		students.DELETE("/:roll", studentController.DeleteStudent)

		// Per-student ledgers keyed by roll number
		students.POST("/:roll/attendance", studentController.MarkAttendance)
		students.PUT("/:roll/fees", studentController.SetFeeStatus)
		students.PUT("/:roll/performance", studentController.SetPerformance)
		students.POST("/:roll/generate-report", reportController.GenerateReport)
	}

	// --- Announcement routes ---
	announcements := api.Group("/announcements")
	{
		announcements.POST("", announcementController.PublishAnnouncement)
		announcements.GET("/:section", announcementController.GetAnnouncements)
	}

	// --- Study material routes ---
	materials := api.Group("/materials")
	{
		materials.POST("", resourceController.CreateMaterial)
		materials.GET("/:section", resourceController.GetMaterials)
		materials.DELETE("/:id", resourceController.DeleteMaterial)
	}

	// --- Timetable routes ---
	timetables := api.Group("/timetables")
	{
		timetables.POST("", resourceController.CreateTimetableEntry)
		timetables.GET("/:section", resourceController.GetTimetable)
		timetables.DELETE("/:id", resourceController.DeleteTimetableEntry)
	}

	// --- Teacher roster ---
	api.GET("/teachers/:section", resourceController.GetTeachers)

	// WebSocket endpoint for live announcement delivery
	router.GET("/ws", wsHandler.HandleConnection)

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}

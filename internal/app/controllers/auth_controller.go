package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/app/services"
	"github.com/arjunrk/schoolbeam/internal/middleware"
	"github.com/arjunrk/schoolbeam/internal/pkg/apperrors"
	"github.com/arjunrk/schoolbeam/internal/pkg/validation"
)

// AuthController handles the PIN and roll capability lookups. Neither issues
// a token or session; both simply resolve the matching record.
type AuthController struct {
	teacherService services.TeacherService
	studentService services.StudentService
}

// NewAuthController creates a new AuthController
func NewAuthController(teacherService services.TeacherService, studentService services.StudentService) *AuthController {
	return &AuthController{
		teacherService: teacherService,
		studentService: studentService,
	}
}

// TeacherLogin resolves a teacher by PIN
// @Summary Teacher PIN lookup
// @Description Resolves the teacher holding the given PIN and returns their record and section
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.TeacherLoginRequest true "Teacher PIN"
// @Success 200 {object} dto.TeacherLoginResponse "Matched teacher"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed PIN"
// @Failure 404 {object} dto.ErrorResponse "Invalid PIN"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/teacher [post]
func (c *AuthController) TeacherLogin(ctx *gin.Context) {
	var req dto.TeacherLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if !validation.IsValidPIN(req.PIN) {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("pin must be exactly 4 digits"))
		return
	}

	teacher, err := c.teacherService.AuthenticateByPIN(ctx, req.PIN)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TeacherLoginResponse{
		Teacher: teacher,
		Section: teacher.Section,
	})
}

// StudentLookup resolves a student by roll for parent/student self-service
// @Summary Student/parent roll lookup
// @Description Resolves the student with the given roll number and returns their record and section
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.StudentLookupRequest true "Roll number"
// @Success 200 {object} dto.StudentLookupResponse "Matched student"
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed roll"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/student-parent [post]
func (c *AuthController) StudentLookup(ctx *gin.Context) {
	var req dto.StudentLookupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if !validation.IsValidRoll(req.Roll) {
		middleware.HandleAPIError(ctx, apperrors.NewBadRequestError("roll must look like 12A-01"))
		return
	}

	student, err := c.studentService.GetByRoll(ctx, req.Roll)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.StudentLookupResponse{
		Student: student,
		Section: student.Section,
	})
}

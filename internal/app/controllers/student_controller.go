package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arjunrk/schoolbeam/internal/app/models/dto"
	"github.com/arjunrk/schoolbeam/internal/app/services"
	"github.com/arjunrk/schoolbeam/internal/middleware"
)

// StudentController handles student-record operations
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// EnrollStudent handles student enrollment
// @Summary Enroll a new student
// @Description Creates a student, allocating the next roll number for the section and deriving an access key
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.EnrollStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=models.Student} "Student enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students [post]
func (c *StudentController) EnrollStudent(ctx *gin.Context) {
	var req dto.EnrollStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.Enroll(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// GetStudentsBySection lists all students in a section
// @Summary List students by section
// @Description Retrieves all students enrolled in the given section
// @Tags students
// @Produce json
// @Param section path string true "Section code"
// @Success 200 {object} dto.APIResponse{data=[]models.Student} "Students retrieved successfully"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{section} [get]
func (c *StudentController) GetStudentsBySection(ctx *gin.Context) {
	students, err := c.studentService.GetBySection(ctx, ctx.Param("section"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      students,
		Timestamp: time.Now(),
	})
}

// UpdateStudent updates a student's details
// @Summary Update student details
// @Description Updates the name and parent contact of the student with the given roll
// @Tags students
// @Accept json
// @Produce json
// @Param roll path string true "Roll number"
// @Param request body dto.UpdateStudentRequest true "Updated details"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Student updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{roll} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.UpdateDetails(ctx, ctx.Param("roll"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// DeleteStudent removes a student by roll
// @Summary Delete a student
// @Description Deletes the student with the given roll number
// @Tags students
// @Produce json
// @Param roll path string true "Roll number"
// @Success 200 {object} dto.SuccessResponse "Student deleted successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{roll} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.Delete(ctx, ctx.Param("roll")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Student deleted successfully"})
}

// MarkAttendance appends one attendance status for a marker
// @Summary Mark attendance
// @Description Appends a status to the front of the marker's history for this student and returns the full updated record
// @Tags students
// @Accept json
// @Produce json
// @Param roll path string true "Roll number"
// @Param request body dto.MarkAttendanceRequest true "Marker id and status"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Attendance marked"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{roll}/attendance [post]
func (c *StudentController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.MarkAttendance(ctx, ctx.Param("roll"), req.TeacherID, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// SetFeeStatus overwrites a student's fee flag
// @Summary Set fee status
// @Description Overwrites the student's fee status with "paid" or "due"; the write is idempotent
// @Tags students
// @Accept json
// @Produce json
// @Param roll path string true "Roll number"
// @Param request body dto.SetFeeStatusRequest true "New fee status"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Fee status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid fee status"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{roll}/fees [put]
func (c *StudentController) SetFeeStatus(ctx *gin.Context) {
	var req dto.SetFeeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.SetFeeStatus(ctx, ctx.Param("roll"), req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

// SetPerformance replaces a student's performance map
// @Summary Set performance records
// @Description Replaces the student's entire performance map in one write; this is an overwrite, not a merge
// @Tags students
// @Accept json
// @Produce json
// @Param roll path string true "Roll number"
// @Param request body dto.SetPerformanceRequest true "Full performance map"
// @Success 200 {object} dto.APIResponse{data=models.Student} "Performance updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /students/{roll}/performance [put]
func (c *StudentController) SetPerformance(ctx *gin.Context) {
	var req dto.SetPerformanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.SetPerformance(ctx, ctx.Param("roll"), req.Performance)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      student,
		Timestamp: time.Now(),
	})
}

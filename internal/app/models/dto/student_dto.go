package dto

import "github.com/arjunrk/schoolbeam/internal/app/models"

// EnrollStudentRequest represents a request to enroll a new student. The roll
// number and access key are allocated server-side.
type EnrollStudentRequest struct {
	Name        string `json:"name" binding:"required" example:"Aarav Mehta"`
	Section     string `json:"section" binding:"required" example:"12A"`
	ParentPhone string `json:"parentPhone" binding:"required" example:"9876543210"`
}

// UpdateStudentRequest represents a request to update a student's details
type UpdateStudentRequest struct {
	Name        string `json:"name" binding:"required" example:"Aarav Mehta"`
	ParentPhone string `json:"parentPhone" binding:"required" example:"9876543210"`
}

// MarkAttendanceRequest represents a request to append one attendance status
// to the history a marker keeps for a student
type MarkAttendanceRequest struct {
	TeacherID string `json:"teacherId" binding:"required" example:"T01"`
	Status    string `json:"status" binding:"required" example:"present"`
}

// SetFeeStatusRequest represents a request to overwrite a student's fee flag
type SetFeeStatusRequest struct {
	Status models.FeeStatus `json:"status" binding:"required" example:"paid"`
}

// SetPerformanceRequest represents a request to replace a student's entire
// performance map. This is a full overwrite, not a merge: callers must send
// the complete map they want persisted.
type SetPerformanceRequest struct {
	Performance models.PerformanceMap `json:"performance" binding:"required"`
}

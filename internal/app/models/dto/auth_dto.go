package dto

import "github.com/arjunrk/schoolbeam/internal/app/models"

// TeacherLoginRequest represents a teacher PIN lookup. The PIN is a bare
// lookup credential; no token or session is issued.
type TeacherLoginRequest struct {
	PIN string `json:"pin" binding:"required" example:"1234"`
}

// TeacherLoginResponse carries the matched teacher and their section
type TeacherLoginResponse struct {
	Teacher *models.Teacher `json:"teacher"`
	Section string          `json:"section" example:"12A"`
}

// StudentLookupRequest represents a student/parent self-service lookup by roll
type StudentLookupRequest struct {
	Roll string `json:"roll" binding:"required" example:"12A-01"`
}

// StudentLookupResponse carries the matched student and their section
type StudentLookupResponse struct {
	Student *models.Student `json:"student"`
	Section string          `json:"section" example:"12A"`
}

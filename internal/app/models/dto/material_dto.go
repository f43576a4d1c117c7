package dto

// CreateMaterialRequest represents a request to share a study material link
type CreateMaterialRequest struct {
	Title   string `json:"title" binding:"required" example:"Trigonometry notes"`
	Link    string `json:"link" binding:"required" example:"https://example.com/notes.pdf"`
	Section string `json:"section" binding:"required" example:"12A"`
}

// CreateTimetableEntryRequest represents a request to add one timetable slot
type CreateTimetableEntryRequest struct {
	Day     string `json:"day" binding:"required" example:"Monday"`
	Time    string `json:"time" binding:"required" example:"09:00"`
	Subject string `json:"subject" binding:"required" example:"Mathematics"`
	Section string `json:"section" binding:"required" example:"12A"`
}

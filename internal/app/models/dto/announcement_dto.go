package dto

// PublishAnnouncementRequest represents a request to publish an announcement
// to a section (or "all") and fan it out to live subscribers
type PublishAnnouncementRequest struct {
	Text    string `json:"text" binding:"required" example:"PTM on Friday"`
	Section string `json:"section" binding:"required" example:"12A"`
}

package models

import "time"

// Announcement defines the announcement model based on the 'announcements'
// table. Announcements are append-only; they are never mutated or deleted.
type Announcement struct {
	ID        int64     `json:"id" db:"id" example:"1"`                              // Unique identifier
	Text      string    `json:"text" db:"text" example:"PTM on Friday"`              // Announcement body
	Section   string    `json:"section" db:"section" example:"12A"`                  // Target section code, or "all"
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2025-04-23T12:01:05Z"` // Server-assigned insert timestamp
}

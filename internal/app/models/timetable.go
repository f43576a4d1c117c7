package models

// TimetableEntry defines one slot of a section's timetable based on the
// 'timetable_entries' table
type TimetableEntry struct {
	ID      int64  `json:"id" db:"id" example:"1"`
	Day     string `json:"day" db:"day" example:"Monday"`
	Time    string `json:"time" db:"time" example:"09:00"`
	Subject string `json:"subject" db:"subject" example:"Mathematics"`
	Section string `json:"section" db:"section" example:"12A"`
}

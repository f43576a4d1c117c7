package models

// Material defines the study material model based on the 'materials' table
type Material struct {
	ID      int64  `json:"id" db:"id" example:"1"`
	Title   string `json:"title" db:"title" example:"Trigonometry notes"`
	Link    string `json:"link" db:"link" example:"https://example.com/notes.pdf"`
	Section string `json:"section" db:"section" example:"12A"`
}
